// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package actions

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cybrota/artistfinder/catalog"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	env := &Env{
		Finder: catalog.NewFinder(catalog.Options{}),
		Paths: Paths{
			Small: filepath.Join("testdata", "artists.csv"),
			Large: filepath.Join("testdata", "missing.csv"),
			Probe: filepath.Join("testdata", "probe.csv"),
		},
		PageSize: 3,
		Now:      func() time.Time { return fixed },
	}
	return NewManager(env)
}

func run(t *testing.T, m *Manager, line string) string {
	t.Helper()
	out, err := m.Run(context.Background(), line)
	if err != nil {
		t.Fatalf("Run(%q) failed: %v", line, err)
	}
	return out
}

func TestManagerOrder(t *testing.T) {
	m := newTestManager(t)

	var names []string
	for _, a := range m.Actions() {
		names = append(names, a.Name())
	}
	want := "load list probe height find show playcount style help clear"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("Actions() = %q, want %q", got, want)
	}
}

func TestManagerLookup(t *testing.T) {
	m := newTestManager(t)

	var tests = []struct {
		name string
		want string
	}{
		{"load", "load"},
		{"1", "load"},
		{"LS", "list"},
		{"search", "probe"},
		{"4", "height"},
		{"contains", "find"},
		{"get", "show"},
		{"7", "playcount"},
		{"genre", "style"},
		{"?", "help"},
		{"10", "clear"},
		{"reset", "clear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := m.Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tt.name)
			}
			if a.Name() != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, a.Name(), tt.want)
			}
		})
	}

	if _, ok := m.Lookup("11"); ok {
		t.Errorf("Lookup(11) should fail")
	}
}

func TestManagerErrors(t *testing.T) {
	m := newTestManager(t)

	var tests = []struct {
		line string
		want error
	}{
		{"", ErrUsage},
		{"dance", ErrUnknownAction},
		{"find", ErrUsage},
		{"show abc", ErrUsage},
		{"playcount", ErrUsage},
		{"style", ErrUsage},
		{"list 0", ErrUsage},
		{"list 99", ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := m.Run(context.Background(), tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}

	if _, err := m.Run(context.Background(), `style "unterminated`); err == nil {
		t.Errorf("expected a parse error for an unterminated quote")
	}
	if _, err := m.Run(context.Background(), "load large"); err == nil {
		t.Errorf("expected an error loading a missing file")
	}
}

func TestManagerCancelledContext(t *testing.T) {
	m := newTestManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Run(ctx, "height"); !errors.Is(err, context.Canceled) {
		t.Errorf("Run with cancelled context = %v, want context.Canceled", err)
	}
}

func TestMenuSession(t *testing.T) {
	m := newTestManager(t)

	out := run(t, m, "load small")
	if !strings.Contains(out, "7 artists added (3 malformed, 1 duplicates)") {
		t.Errorf("unexpected load output: %q", out)
	}
	if !strings.Contains(out, "Elapsed: 0 ms.") {
		t.Errorf("unexpected elapsed time in %q", out)
	}

	var tests = []struct {
		line string
		want string
	}{
		{"height", "Tree height: 3 (7 artists, balanced mode)"},
		{"find 91", "Artist 91 found"},
		{"find 64", "Artist 64 not found"},
		{"show 3", "3::Camarón de la Isla::Male::Spain::Flamenco::6120"},
		{"show 1000", "artist 1000 not found"},
		{"playcount 3000", "Artists with at least 3000 plays: 4"},
		{"style Rock", "Artists with style Rock:\n77\n91\n"},
		{`style "Hard Rock"`, "Artists with style Hard Rock:\n77\n"},
		{"style indie rock", "Artists with style indie rock:\n91\n"},
		{"style Jazz", "No artists with style Jazz"},
		{"list", "3 8 12\n40 55 77\n91 "},
		{"list 2", "Page 2/3\n40 55 77\n"},
		{"list 3", "Page 3/3\n91\n"},
		{"probe", "3 of 5 artists from testdata/probe.csv found in the catalog.\nElapsed: 0s."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := run(t, m, tt.line); got != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestClearEmptiesCatalog(t *testing.T) {
	m := newTestManager(t)
	run(t, m, "load small")
	run(t, m, "playcount 3000")

	if got := run(t, m, "clear"); got != "Catalog cleared: 7 artists removed." {
		t.Errorf("clear = %q", got)
	}
	var tests = []struct {
		line string
		want string
	}{
		{"height", "Tree height: 0 (0 artists, balanced mode)"},
		{"find 40", "Artist 40 not found"},
		{"playcount 3000", "Artists with at least 3000 plays: 0"},
		{"list", ""},
		{"reset", "Catalog cleared: 0 artists removed."},
	}
	for _, tt := range tests {
		if got := run(t, m, tt.line); got != tt.want {
			t.Errorf("Run(%q) after clear = %q, want %q", tt.line, got, tt.want)
		}
	}

	// the same file loads again without duplicates
	if out := run(t, m, "load small"); !strings.Contains(out, "7 artists added (3 malformed, 1 duplicates)") {
		t.Errorf("reload after clear: %q", out)
	}
}

func TestFormatIDs(t *testing.T) {
	var tests = []struct {
		ids     []int
		perLine int
		want    string
	}{
		{nil, 3, ""},
		{[]int{1, 2, 3, 4}, 3, "1 2 3\n4\n"},
		{[]int{1, 2}, 2, "1 2\n"},
		{[]int{5}, 0, "5\n"},
	}
	for _, tt := range tests {
		if got := FormatIDs(tt.ids, tt.perLine); got != tt.want {
			t.Errorf("FormatIDs(%v, %d) = %q, want %q", tt.ids, tt.perLine, got, tt.want)
		}
	}

	// no truncation marker however long the listing
	ids := make([]int, 100000)
	for i := range ids {
		ids[i] = i + 1000000
	}
	out := FormatIDs(ids, 40)
	if len(out) <= MaxOutputSize || strings.Contains(out, "TRUNCATED") {
		t.Errorf("listing of %d ids has %d bytes", len(ids), len(out))
	}
	if !strings.HasSuffix(out, "1099999\n") {
		t.Errorf("listing ends with %q", out[len(out)-20:])
	}
}

func TestHelpListsEveryAction(t *testing.T) {
	m := newTestManager(t)
	out := run(t, m, "help")

	for _, a := range m.Actions() {
		if !strings.Contains(out, a.Usage()) {
			t.Errorf("help output misses %q", a.Usage())
		}
	}
	if !strings.HasPrefix(out, "Actions:\n  1. load") {
		t.Errorf("unexpected help output: %q", out)
	}
}

func TestRequest(t *testing.T) {
	req := NewRequest([]string{"style", "Hard", "Rock"})

	if req.Name != "style" {
		t.Errorf("Expected Name to be 'style', got '%s'", req.Name)
	}
	if !req.HasArg(2) {
		t.Errorf("Expected request to have at least 2 arguments")
	}
	if req.Arg(1) != "Rock" {
		t.Errorf("Expected second argument to be 'Rock', got '%s'", req.Arg(1))
	}
	if req.Arg(5) != "" {
		t.Errorf("Expected missing argument to be empty")
	}
	if req.FullName != "style Hard Rock" {
		t.Errorf("Expected FullName to be 'style Hard Rock', got '%s'", req.FullName)
	}
	if _, err := req.IntArg(0); !errors.Is(err, ErrUsage) {
		t.Errorf("IntArg on a word should fail with ErrUsage, got %v", err)
	}

	empty := NewRequest(nil)
	if empty.Name != "" || empty.HasArg(1) {
		t.Errorf("empty request should have no name and no args")
	}
}

func TestLimitedWriter(t *testing.T) {
	var buf strings.Builder
	lw := NewLimitedWriter(&buf, 5)

	n, err := lw.Write([]byte("abc"))
	if n != 3 || err != nil {
		t.Fatalf("Write = %d, %v", n, err)
	}
	n, _ = lw.Write([]byte("defg"))
	if n != 4 {
		t.Errorf("Write should report the full length, got %d", n)
	}
	lw.Write([]byte("h"))

	if buf.String() != "abcde" {
		t.Errorf("buffer = %q, want %q", buf.String(), "abcde")
	}
	if !lw.Truncated() {
		t.Errorf("expected truncation")
	}
}
