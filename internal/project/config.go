package project

import (
	"fmt"
	"strings"

	"golang.org/x/mod/module"
)

// Config describes one project to generate. It is built once per command
// and not modified afterwards.
type Config struct {
	Name     string
	Kind     Kind
	UsePCH   bool
	InitRepo bool
}

// NewConfig validates name and returns a Config.
func NewConfig(name string, kind Kind, usePCH, initRepo bool) (*Config, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Config{Name: name, Kind: kind, UsePCH: usePCH, InitRepo: initRepo}, nil
}

// ValidateName checks that name can be used both as a single directory name
// on every host filesystem and as a quoted premake string.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w %q: must not contain path separators", ErrInvalidName, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	if err := module.CheckFilePath(name); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidName, name, err)
	}
	return nil
}
