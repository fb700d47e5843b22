package manifest

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/getlawrence/typed-install/internal/logger"
	"github.com/getlawrence/typed-install/internal/typesync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePackage(t *testing.T, root, name, manifest string, files ...string) {
	t.Helper()
	dir := filepath.Join(root, "node_modules", filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0o644))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("export {}\n"), 0o644))
	}
}

func TestHasLocalTypes(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	var warnings bytes.Buffer
	inspector := NewInspector(root, logger.NewWriterLogger(&warnings))

	writePackage(t, root, "fp-ts", `{"name":"fp-ts","typings":"lib/index.d.ts"}`)
	writePackage(t, root, "commander", `{"name":"commander","types":"typings/index.d.ts"}`)
	writePackage(t, root, "orphan", `{"name":"orphan"}`, DeclarationIndex)
	writePackage(t, root, "got", `{"name":"got","main":"index.js"}`, "index.js")
	writePackage(t, root, "@scope/pkg", `{"name":"@scope/pkg","types":"index.d.ts"}`)
	writePackage(t, root, "broken", `{not json`)
	writePackage(t, root, "types-object", `{"name":"types-object","types":{"default":"./index.d.ts"}}`)
	writePackage(t, root, "types-array", `{"name":"types-array","typings":["a.d.ts"]}`)
	writePackage(t, root, "types-false", `{"name":"types-false","types":false,"typings":null}`)
	writePackage(t, root, "types-empty", `{"name":"types-empty","types":"","typings":0}`)

	tests := []struct {
		name string
		want bool
	}{
		{"fp-ts", true},
		{"commander", true},
		{"orphan", true},
		{"got", false},
		{"@scope/pkg", true},
		{"broken", false},
		{"types-object", true},
		{"types-array", true},
		{"types-false", false},
		{"types-empty", false},
		{"not-installed", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inspector.HasLocalTypes(ctx, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Contains(t, warnings.String(), "problem reading broken")
	assert.Contains(t, warnings.String(), "problem reading not-installed")
	for _, name := range []string{"types-object", "types-array", "types-false", "types-empty"} {
		assert.NotContains(t, warnings.String(), "problem reading "+name)
	}
}

func TestHasLocalTypesStatFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	ctx := context.Background()
	root := t.TempDir()
	writePackage(t, root, "looped", `{"name":"looped"}`)
	index := filepath.Join(root, "node_modules", "looped", DeclarationIndex)
	require.NoError(t, os.Symlink(index, index))

	inspector := NewInspector(root, logger.NewWriterLogger(&bytes.Buffer{}))
	_, err := inspector.HasLocalTypes(ctx, "looped")
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))

	remote := &fixedRemote{}
	_, err = typesync.NewClassifier(inspector, remote).Classify(ctx, "looped")
	require.EqualError(t, err, "error while checking local module `looped`")
	assert.False(t, remote.called)
}

type fixedRemote struct {
	called bool
}

func (f *fixedRemote) HasTypes(context.Context, string) (bool, error) {
	f.called = true
	return true, nil
}

func TestHasLocalTypesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewInspector(t.TempDir(), nil).HasLocalTypes(ctx, "lodash")
	require.ErrorIs(t, err, context.Canceled)
}
