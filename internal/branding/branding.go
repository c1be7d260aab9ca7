// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. They are parsed once on first access; nothing here
// changes after that.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
	version  *semver.Version
)

type versionParts struct {
	Major uint64 `yaml:"major"`
	Minor uint64 `yaml:"minor"`
	Patch uint64 `yaml:"patch"`
}

type brand struct {
	CLIName     string       `yaml:"cli_name"`
	DisplayName string       `yaml:"display_name"`
	Description string       `yaml:"description"`
	HomeDir     string       `yaml:"home_dir"`
	EnvPrefix   string       `yaml:"env_prefix"`
	ProjectURL  string       `yaml:"project_url"`
	Version     versionParts `yaml:"version"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "ppm",
			DisplayName: "ppm",
			Description: "Premake project manager for C++ workspaces",
			HomeDir:     ".ppm",
			EnvPrefix:   "PPM",
			ProjectURL:  "https://github.com/ppm-tools/ppm",
			Version:     versionParts{Major: 0, Minor: 4, Patch: 0},
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
		version = semver.New(defaults.Version.Major, defaults.Version.Minor, defaults.Version.Patch, "", "")
	})
}

// CLIName returns the root command name (e.g., "ppm").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ppm").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PPM").
func EnvPrefix() string { load(); return defaults.EnvPrefix }


// ProjectURL returns the link credited in generated READMEs.
func ProjectURL() string { load(); return defaults.ProjectURL }

// Version returns the semantic version of this build.
func Version() *semver.Version { load(); return version }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("arch") → "PPM_ARCH".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
