package args

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestParser(raw ...string) *Parser {
	p := New(raw)
	p.RegisterCommand("-pch", "pch", "Use a precompiled header")
	p.RegisterCommand("-git", "git", "Initialize a git repository")
	return p
}

func TestConsumeFlags_Partition(t *testing.T) {
	tests := []struct {
		name       string
		raw        []string
		wantParams []string
		wantFlags  []string
	}{
		{
			name:       "no flags",
			raw:        []string{"ppm", "init", "app", "myapp"},
			wantParams: []string{"ppm", "init", "app", "myapp"},
		},
		{
			name:       "trailing flags",
			raw:        []string{"ppm", "init", "lib", "mylib", "-pch", "-git"},
			wantParams: []string{"ppm", "init", "lib", "mylib"},
			wantFlags:  []string{"git", "pch"},
		},
		{
			name:       "interleaved flags keep positional order",
			raw:        []string{"ppm", "-git", "init", "-pch", "win", "gui"},
			wantParams: []string{"ppm", "init", "win", "gui"},
			wantFlags:  []string{"git", "pch"},
		},
		{
			name:       "duplicates collapse",
			raw:        []string{"ppm", "-pch", "-pch", "add"},
			wantParams: []string{"ppm", "add"},
			wantFlags:  []string{"pch"},
		},
		{
			name:       "near misses stay positional",
			raw:        []string{"ppm", "--pch", "-PCH", "pch", "-pch=1"},
			wantParams: []string{"ppm", "--pch", "-PCH", "pch", "-pch=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(tt.raw...)
			p.ConsumeFlags()

			if diff := cmp.Diff(tt.wantParams, p.Params()); diff != "" {
				t.Errorf("Params() mismatch (-want +got):\n%s", diff)
			}

			var got []string
			for _, name := range []string{"pch", "git"} {
				if p.HasCommand(name) {
					got = append(got, name)
				}
			}
			sort.Strings(got)
			if diff := cmp.Diff(tt.wantFlags, got); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}

			// Positionals plus matched switch tokens reproduce the input multiset.
			matched := 0
			for _, a := range tt.raw {
				if a == "-pch" || a == "-git" {
					matched++
				}
			}
			if len(p.Params())+matched != len(tt.raw) {
				t.Errorf("partition lost tokens: %d params + %d flags != %d raw", len(p.Params()), matched, len(tt.raw))
			}
		})
	}
}

func TestHasCommand_BeforeConsume(t *testing.T) {
	p := newTestParser("ppm", "-pch")
	if p.HasCommand("pch") {
		t.Error("HasCommand should be false before ConsumeFlags")
	}
	p.ConsumeFlags()
	if !p.HasCommand("pch") {
		t.Error("HasCommand(pch) = false after ConsumeFlags")
	}
	if p.HasCommand("unregistered") {
		t.Error("HasCommand should be false for unregistered names")
	}
	if p.HasCommand("-pch") {
		t.Error("HasCommand matches names, not aliases")
	}
}

func TestRegisterCommand_LastAliasWins(t *testing.T) {
	p := New([]string{"ppm", "-x"})
	p.RegisterCommand("-x", "first", "")
	p.RegisterCommand("-x", "second", "overrides")
	p.ConsumeFlags()

	if p.HasCommand("first") {
		t.Error("overwritten registration should not match")
	}
	if !p.HasCommand("second") {
		t.Error("latest registration should match")
	}
	if n := len(p.Flags()); n != 1 {
		t.Errorf("Flags() has %d entries, want 1", n)
	}
}

func TestRegisterCommand_AfterConsumeNotRecognised(t *testing.T) {
	p := New([]string{"ppm", "-late"})
	p.ConsumeFlags()
	p.RegisterCommand("-late", "late", "")
	if p.HasCommand("late") {
		t.Error("flag registered after consumption should not be present")
	}
	if got := p.GetParam(1); got != "-late" {
		t.Errorf("GetParam(1) = %q, want -late", got)
	}
}

func TestRequireParams(t *testing.T) {
	tests := []struct {
		raw  []string
		n    int
		want bool
	}{
		{[]string{"ppm", "init", "app", "myapp"}, 3, true},
		{[]string{"ppm", "init", "app", "myapp", "extra"}, 3, true},
		{[]string{"ppm", "init", "app"}, 3, false},
		{[]string{"ppm", "init", "app", "-pch"}, 3, false},
		{[]string{"ppm"}, 0, true},
		{[]string{"ppm"}, 1, false},
	}

	for _, tt := range tests {
		p := newTestParser(tt.raw...)
		p.ConsumeFlags()
		if got := p.RequireParams(tt.n); got != tt.want {
			t.Errorf("RequireParams(%d) over %v = %v, want %v", tt.n, tt.raw, got, tt.want)
		}
	}
}

func TestGetParam(t *testing.T) {
	p := newTestParser("/usr/local/bin/ppm", "init", "-pch", "lib", "mylib")
	p.ConsumeFlags()

	if got := p.GetParam(0); got != "/usr/local/bin/ppm" {
		t.Errorf("GetParam(0) = %q", got)
	}
	want := []string{"init", "lib", "mylib"}
	for i, w := range want {
		if got := p.GetParam(i + 1); got != w {
			t.Errorf("GetParam(%d) = %q, want %q", i+1, got, w)
		}
	}
}

func TestGetParam_OutOfRangePanics(t *testing.T) {
	p := newTestParser("ppm", "init")
	p.ConsumeFlags()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for out-of-range GetParam")
		}
		if !strings.Contains(r.(string), "out of range") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	p.GetParam(2)
}

func TestFlags_SortedByAlias(t *testing.T) {
	p := newTestParser("ppm")
	var aliases []string
	for _, f := range p.Flags() {
		aliases = append(aliases, f.Alias)
	}
	if diff := cmp.Diff([]string{"-git", "-pch"}, aliases); diff != "" {
		t.Errorf("Flags() order mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	p := New([]string{"/opt/bin/ppm"})
	p.SetOutput(&buf)

	p.PrintUsage("init/add", "<app|lib|dll|win>", "<name>")
	p.PrintUsage()

	want := "Usage: ppm init/add <app|lib|dll|win> <name>\nUsage: ppm\n"
	if got := buf.String(); got != want {
		t.Errorf("PrintUsage output = %q, want %q", got, want)
	}
}
