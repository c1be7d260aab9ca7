// Package config manages user-level settings stored at ~/.ppm/config.yaml.
// Values can be overridden with PPM_* environment variables and are checked
// against an embedded JSON schema before they are written.
package config
