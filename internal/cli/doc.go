// Package cli defines the Cobra command tree for the ppm CLI. Each file in
// this package registers one top-level command (init, add, config, version)
// with the root command.
//
// The generator commands keep the single-dash switch syntax (-pch, -git,
// -v, -help): Cobra flag parsing is disabled for them and the raw arguments
// go through internal/args. Command implementations delegate to
// internal/project for the actual work.
package cli
