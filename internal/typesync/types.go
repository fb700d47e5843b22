package typesync

import "strings"

// ModuleName is a package name as the package manager knows it.
type ModuleName = string

// ModuleType describes where the type declarations of a package come from.
type ModuleType int

const (
	// HasLocalTypes means the package ships its own declarations.
	HasLocalTypes ModuleType = iota
	// HasRemoteTypes means a companion @types package exists in the registry.
	HasRemoteTypes
	// NoTypes means no declarations exist anywhere.
	NoTypes
)

func (t ModuleType) String() string {
	switch t {
	case HasLocalTypes:
		return "HasLocalTypes"
	case HasRemoteTypes:
		return "HasRemoteTypes"
	case NoTypes:
		return "NoTypes"
	default:
		return "Unknown"
	}
}

// ModuleInfo pairs a package name with its type availability.
type ModuleInfo struct {
	name ModuleName
	typ  ModuleType
}

// NewModuleInfo creates a ModuleInfo.
func NewModuleInfo(name ModuleName, typ ModuleType) ModuleInfo {
	return ModuleInfo{name: name, typ: typ}
}

// Name returns the package name.
func (m ModuleInfo) Name() ModuleName { return m.name }

// Type returns where the package's declarations come from.
func (m ModuleInfo) Type() ModuleType { return m.typ }

// HasRemoteTypes reports whether the declarations live in a companion package.
func (m ModuleInfo) HasRemoteTypes() bool { return m.typ == HasRemoteTypes }

// HasNoTypes reports whether the package has no declarations at all.
func (m ModuleInfo) HasNoTypes() bool { return m.typ == NoTypes }

// TypesScope is the registry namespace holding declaration-only packages.
const TypesScope = "@types"

// CompanionName returns the declaration package name for name.
// Scoped packages follow the DefinitelyTyped convention:
// @scope/pkg becomes @types/scope__pkg.
func CompanionName(name ModuleName) ModuleName {
	if strings.HasPrefix(name, "@") {
		if scope, pkg, ok := strings.Cut(name[1:], "/"); ok {
			return TypesScope + "/" + scope + "__" + pkg
		}
	}
	return TypesScope + "/" + name
}

func companionNames(names []ModuleName) []ModuleName {
	out := make([]ModuleName, 0, len(names))
	for _, n := range names {
		out = append(out, CompanionName(n))
	}
	return out
}
