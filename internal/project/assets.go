package project

import (
	"embed"
	"fmt"
	"strings"

	"github.com/ppm-tools/ppm/internal/render"
)

// Embedded files are named without a leading dot (embed skips dotfiles);
// the destination name is set by the stub table.
//
//go:embed templates stubs
var assets embed.FS

// Placeholder tokens understood by the build templates.
const (
	tokenName         = "__NAME__"
	tokenArchitecture = "__ARCHITECTURE__"
	tokenKind         = "__KIND__"
	tokenDefines      = "__DEFINES__"
	tokenPCH          = "__PCH__"
	tokenAttribution  = "__ATTRIBUTION__"
)

func mustAsset(name string) string {
	data, err := assets.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("project: missing embedded asset %s: %v", name, err))
	}
	return string(data)
}

// RenderWorkspace returns the workspace header of premake5.lua.
func RenderWorkspace(name, architecture string) string {
	return render.Render(mustAsset("templates/workspace.lua"), []render.Sub{
		{Token: tokenArchitecture, Value: architecture},
		{Token: tokenName, Value: name},
	})
}

// RenderProject returns the build stanza for cfg. The pch block carries its
// own name token, so the name pass must run after it.
func RenderProject(cfg *Config) string {
	pch := ""
	if cfg.UsePCH {
		pch = mustAsset("templates/pch.lua")
	}
	return render.Render(mustAsset("templates/project.lua"), []render.Sub{
		{Token: tokenPCH, Value: pch},
		{Token: tokenDefines, Value: definesList(cfg.Kind.Defines())},
		{Token: tokenKind, Value: cfg.Kind.String()},
		{Token: tokenName, Value: cfg.Name},
	})
}

// RenderReadme returns the README stub for a new repository.
func RenderReadme(name, attributionURL string) string {
	return render.Render(mustAsset("stubs/repo/README.md"), []render.Sub{
		{Token: tokenAttribution, Value: attributionURL},
		{Token: tokenName, Value: name},
	})
}

// definesList formats defines for the inline `defines {...}` block.
func definesList(defines []string) string {
	if len(defines) == 0 {
		return ""
	}
	quoted := make([]string, len(defines))
	for i, d := range defines {
		quoted[i] = `"` + d + `"`
	}
	return " " + strings.Join(quoted, ", ") + " "
}
