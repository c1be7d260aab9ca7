// Package render fills placeholder tokens in static text templates.
package render

import "strings"

// Sub is one token substitution.
type Sub struct {
	Token string
	Value string
}

// Render applies subs to tmpl in order. Each pass replaces every
// non-overlapping occurrence of its token and resumes scanning after the
// inserted value, so a value containing its own token is not rescanned. A
// later pass does see text inserted by an earlier one. Empty tokens are
// skipped.
func Render(tmpl string, subs []Sub) string {
	for _, s := range subs {
		if s.Token == "" {
			continue
		}
		tmpl = strings.ReplaceAll(tmpl, s.Token, s.Value)
	}
	return tmpl
}
