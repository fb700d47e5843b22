package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/getlawrence/typed-install/internal/logger"
)

// DeclarationIndex is the file TypeScript resolves when a manifest names no types entry.
const DeclarationIndex = "index.d.ts"

// Manifest holds the package.json fields that point at declarations.
// Types and Typings stay raw: any truthy value counts, whatever its JSON type.
type Manifest struct {
	Name    string          `json:"name"`
	Types   json.RawMessage `json:"types"`
	Typings json.RawMessage `json:"typings"`
}

// HasDeclarations reports whether the manifest names a declaration entry.
func (m Manifest) HasDeclarations() bool {
	return truthy(m.Types) || truthy(m.Typings)
}

// truthy treats null, false, 0 and "" as unset, like a JavaScript condition.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

// Inspector looks for bundled declarations of installed packages.
type Inspector struct {
	projectDir string
	logger     logger.Logger
}

// NewInspector creates an inspector for the node_modules of projectDir.
func NewInspector(projectDir string, l logger.Logger) *Inspector {
	return &Inspector{projectDir: projectDir, logger: l}
}

// PackageDir returns where name is installed.
func (i *Inspector) PackageDir(name string) string {
	return filepath.Join(i.projectDir, "node_modules", filepath.FromSlash(name))
}

// Read parses the package.json of an installed package.
func (i *Inspector) Read(name string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(i.PackageDir(name), "package.json"))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	return &m, nil
}

// HasLocalTypes reports whether name ships declarations, either referenced
// from its manifest or as a root-level index.d.ts. An unreadable manifest is
// logged and counts as no declarations.
func (i *Inspector) HasLocalTypes(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m, err := i.Read(name)
	if err != nil {
		if i.logger != nil {
			i.logger.Logf("problem reading %s: %v\n", name, err)
		}
		return false, nil
	}
	if m.HasDeclarations() {
		return true, nil
	}

	_, err = os.Stat(filepath.Join(i.PackageDir(name), DeclarationIndex))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
