package args

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Flag is a registered boolean switch.
type Flag struct {
	Alias       string // Token matched on the command line, e.g. "-pch"
	Name        string // Key passed to HasCommand
	Description string // Help text only
}

// Parser partitions a raw argument vector into switches and positionals.
type Parser struct {
	raw      []string
	flags    map[string]Flag
	present  map[string]struct{}
	params   []string
	consumed bool
	out      io.Writer
}

// New creates a Parser over raw. raw[0] is the program name, as in os.Args.
func New(raw []string) *Parser {
	return &Parser{
		raw:     raw,
		flags:   make(map[string]Flag),
		present: make(map[string]struct{}),
		out:     os.Stdout,
	}
}

// SetOutput sets the destination for PrintUsage.
func (p *Parser) SetOutput(w io.Writer) {
	p.out = w
}

// RegisterCommand declares a switch. Registering an alias twice replaces the
// earlier definition.
func (p *Parser) RegisterCommand(alias, name, description string) {
	p.flags[alias] = Flag{Alias: alias, Name: name, Description: description}
}

// ConsumeFlags scans the raw arguments once. Arguments equal to a registered
// alias mark their flag present; all others become positionals in order.
// Calling it again rescans from scratch.
func (p *Parser) ConsumeFlags() {
	p.present = make(map[string]struct{})
	p.params = make([]string, 0, len(p.raw))
	for _, a := range p.raw {
		if f, ok := p.flags[a]; ok {
			p.present[f.Name] = struct{}{}
			continue
		}
		p.params = append(p.params, a)
	}
	p.consumed = true
}

// HasCommand reports whether the switch registered under name was present.
// It is always false before ConsumeFlags.
func (p *Parser) HasCommand(name string) bool {
	if !p.consumed {
		return false
	}
	_, ok := p.present[name]
	return ok
}

// RequireParams reports whether at least n parameters follow the program name.
func (p *Parser) RequireParams(n int) bool {
	return len(p.params)-1 >= n
}

// GetParam returns parameter i, counting from 1 after the program name.
// GetParam(0) is the program name. Out-of-range access panics; gate it with
// RequireParams.
func (p *Parser) GetParam(i int) string {
	if i < 0 || i >= len(p.params) {
		panic(fmt.Sprintf("args: parameter %d out of range (have %d)", i, len(p.params)-1))
	}
	return p.params[i]
}

// Params returns a copy of the positionals, program name included.
func (p *Parser) Params() []string {
	out := make([]string, len(p.params))
	copy(out, p.params)
	return out
}

// Flags returns the registered switches sorted by alias.
func (p *Parser) Flags() []Flag {
	out := make([]Flag, 0, len(p.flags))
	for _, f := range p.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}

// Program returns the base name of raw[0], or "" for an empty vector.
func (p *Parser) Program() string {
	if len(p.raw) == 0 {
		return ""
	}
	return filepath.Base(p.raw[0])
}

// PrintUsage writes a single usage line built from the program name and labels.
func (p *Parser) PrintUsage(labels ...string) {
	line := "Usage: " + p.Program()
	if len(labels) > 0 {
		line += " " + strings.Join(labels, " ")
	}
	fmt.Fprintln(p.out, line)
}
