package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if CLIName() != "ppm" {
		t.Errorf("CLIName() = %q, want ppm", CLIName())
	}
	if HomeDir() != ".ppm" {
		t.Errorf("HomeDir() = %q, want .ppm", HomeDir())
	}
	if ProjectURL() == "" {
		t.Error("ProjectURL() is empty")
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if v == nil {
		t.Fatal("Version() returned nil")
	}
	if got := "v" + v.String(); got != "v0.4.0" {
		t.Errorf("version = %q, want v0.4.0", got)
	}
	if v.Prerelease() != "" {
		t.Errorf("unexpected prerelease %q", v.Prerelease())
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("architecture"); got != "PPM_ARCHITECTURE" {
		t.Errorf("EnvVar() = %q", got)
	}
}
