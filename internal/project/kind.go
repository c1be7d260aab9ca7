package project

import "fmt"

// Kind is the category of a generated project.
type Kind int

const (
	ConsoleApp Kind = iota
	StaticLib
	SharedLib
	WindowedApp
)

// Kinds lists every kind in help order.
var Kinds = []Kind{ConsoleApp, StaticLib, SharedLib, WindowedApp}

// String returns the premake kind name.
func (k Kind) String() string {
	switch k {
	case ConsoleApp:
		return "ConsoleApp"
	case StaticLib:
		return "StaticLib"
	case SharedLib:
		return "SharedLib"
	case WindowedApp:
		return "WindowedApp"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Alias returns the command-line spelling of the kind.
func (k Kind) Alias() string {
	switch k {
	case ConsoleApp:
		return "app"
	case StaticLib:
		return "lib"
	case SharedLib:
		return "dll"
	case WindowedApp:
		return "win"
	default:
		return ""
	}
}

// Description is shown in help output.
func (k Kind) Description() string {
	switch k {
	case ConsoleApp:
		return "console application with a main.cpp entry point"
	case StaticLib:
		return "static library"
	case SharedLib:
		return "shared library (DLL)"
	case WindowedApp:
		return "wxWidgets GUI application (links wxWidgets as a DLL)"
	default:
		return ""
	}
}

// Defines returns the preprocessor defines injected into the build stanza.
func (k Kind) Defines() []string {
	if k == WindowedApp {
		return []string{"WXUSINGDLL"}
	}
	return nil
}

// ParseKind maps a command-line alias to a Kind.
func ParseKind(alias string) (Kind, error) {
	for _, k := range Kinds {
		if k.Alias() == alias {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnsupportedKind, alias)
}

// KindAliases returns "app|lib|dll|win".
func KindAliases() string {
	s := ""
	for i, k := range Kinds {
		if i > 0 {
			s += "|"
		}
		s += k.Alias()
	}
	return s
}
