package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ppm-tools/ppm/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known keys.
const (
	KeyArchitecture   = "architecture"
	KeyCommitMessage  = "commit_message"
	KeyAttributionURL = "attribution_url"
)

// DefaultArchitecture is written into new workspace headers.
const DefaultArchitecture = "x64"

// Settings is the resolved configuration used by the generator.
type Settings struct {
	Architecture   string
	CommitMessage  string
	AttributionURL string
}

// Keys returns the known configuration keys, sorted.
func Keys() []string {
	keys := []string{KeyArchitecture, KeyCommitMessage, KeyAttributionURL}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.ppm/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ppm/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyArchitecture, DefaultArchitecture)
	viper.SetDefault(KeyCommitMessage, "Initial commit")
	viper.SetDefault(KeyAttributionURL, branding.ProjectURL())
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	setDefaults()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		Architecture:   viper.GetString(KeyArchitecture),
		CommitMessage:  viper.GetString(KeyCommitMessage),
		AttributionURL: viper.GetString(KeyAttributionURL),
	}
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	candidate := map[string]any{}
	for _, k := range Keys() {
		candidate[k] = viper.GetString(k)
	}
	candidate[key] = value

	result, err := Validate(candidate)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{Issues: result.Issues}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ValidateCurrent checks the loaded settings against the schema.
func ValidateCurrent() (*ValidationResult, error) {
	settings := map[string]any{}
	for _, k := range Keys() {
		settings[k] = viper.GetString(k)
	}
	return Validate(settings)
}
