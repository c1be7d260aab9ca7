package project

import (
	"path/filepath"

	"github.com/ppm-tools/ppm/internal/layout"
)

// stub is one default source file copied into a new project.
type stub struct {
	asset   string // path inside the embedded FS
	dest    string // path relative to the project directory
	include bool   // prefix with the pch include when UsePCH is set
}

var (
	consoleStubs = []stub{
		{asset: "stubs/console/main.cpp", dest: filepath.Join(layout.SrcDir, "main.cpp"), include: true},
	}
	guiStubs = []stub{
		{asset: "stubs/gui/App.cpp", dest: filepath.Join(layout.SrcDir, "App.cpp"), include: true},
		{asset: "stubs/gui/App.h", dest: filepath.Join(layout.SrcDir, layout.IncludeDir, "App.h")},
		{asset: "stubs/gui/MainFrame.cpp", dest: filepath.Join(layout.SrcDir, "MainFrame.cpp"), include: true},
		{asset: "stubs/gui/MainFrame.h", dest: filepath.Join(layout.SrcDir, layout.IncludeDir, "MainFrame.h")},
	}
	pchStubs = []stub{
		{asset: "stubs/pch/pch.cpp", dest: filepath.Join(layout.SrcDir, "pch.cpp")},
		{asset: "stubs/pch/pch.h", dest: filepath.Join(layout.SrcDir, "pch.h")},
	}
)

// stubsFor returns the default files for cfg in write order.
func stubsFor(cfg *Config) []stub {
	var out []stub
	switch cfg.Kind {
	case ConsoleApp:
		out = append(out, consoleStubs...)
	case WindowedApp:
		out = append(out, guiStubs...)
	case StaticLib, SharedLib:
	}
	if cfg.UsePCH {
		out = append(out, pchStubs...)
	}
	return out
}

// Repository files written at the workspace root by init -git.
const (
	GitignoreFile = ".gitignore"
	ReadmeFile    = "README.md"
)
