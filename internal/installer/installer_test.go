package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/getlawrence/typed-install/internal/commander"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		dev      bool
		yarn     bool
		wantBin  string
		wantArgs []string
	}{
		{"npm dev", true, false, "npm", []string{"install", "--save-dev", "lodash", "got"}},
		{"npm prod", false, false, "npm", []string{"install", "lodash", "got"}},
		{"yarn dev", true, true, "yarn", []string{"add", "--dev", "lodash", "got"}},
		{"yarn prod", false, true, "yarn", []string{"add", "lodash", "got"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin, args := Command([]string{"lodash", "got"}, tt.dev, tt.yarn)
			assert.Equal(t, tt.wantBin, bin)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestInstall(t *testing.T) {
	ctx := context.Background()

	t.Run("single batched invocation", func(t *testing.T) {
		mock := commander.NewMock()
		mock.Commands["npm"] = true
		dir := t.TempDir()

		err := New(mock, dir).Install(ctx, []string{"lodash", "commander"}, true, false)
		require.NoError(t, err)
		require.Len(t, mock.RecordedCalls, 1)
		assert.Equal(t, []string{"npm install --save-dev lodash commander"}, mock.CommandLines())
		assert.Equal(t, dir, mock.RecordedCalls[0].Dir)
	})

	t.Run("yarn", func(t *testing.T) {
		mock := commander.NewMock()
		mock.Commands["yarn"] = true

		require.NoError(t, New(mock, "").Install(ctx, []string{"@types/lodash"}, false, true))
		assert.Equal(t, []string{"yarn add @types/lodash"}, mock.CommandLines())
	})

	t.Run("empty list runs nothing", func(t *testing.T) {
		mock := commander.NewMock()
		require.NoError(t, New(mock, "").Install(ctx, nil, true, false))
		assert.Empty(t, mock.RecordedCalls)
	})

	t.Run("missing package manager", func(t *testing.T) {
		mock := commander.NewMock()

		err := New(mock, "").Install(ctx, []string{"lodash"}, true, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "yarn is not available")
		assert.Empty(t, mock.RecordedCalls)
	})

	t.Run("failed invocation carries output", func(t *testing.T) {
		mock := commander.NewMock()
		mock.Commands["npm"] = true
		cause := errors.New("exit status 1")
		mock.Errors["npm install"] = cause
		mock.Responses["npm install"] = "npm ERR! 404 Not Found"

		err := New(mock, "").Install(ctx, []string{"does-not-exist"}, false, false)
		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "npm ERR! 404 Not Found")
	})
}
