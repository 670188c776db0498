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

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreloadWarnsAboutSkippedRows(t *testing.T) {
	s, err := newSession(&globalFlags{configPath: filepath.Join(t.TempDir(), "none.yaml")}, false)
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	s.preload("testdata/artists.csv", false)

	out := buf.String()
	if !strings.Contains(out, Warning+"testdata/artists.csv: ") {
		t.Errorf("preload log = %q, want a warning for the file", out)
	}
	if !strings.Contains(out, "3 malformed, 1 duplicates") {
		t.Errorf("preload log = %q, want the skipped row counts", out)
	}
	if !strings.HasSuffix(strings.TrimSuffix(out, "\n"), Reset) {
		t.Errorf("preload warning not reset: %q", out)
	}
	if s.finder.Len() == 0 {
		t.Error("preload left the catalog empty")
	}
}

func TestPreloadWithoutFile(t *testing.T) {
	s, err := newSession(&globalFlags{configPath: filepath.Join(t.TempDir(), "none.yaml"), mode: "plain"}, false)
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	s.preload("", false)

	if buf.Len() != 0 {
		t.Errorf("preload logged %q for an empty path", buf.String())
	}
	if s.finder.Len() != 0 {
		t.Errorf("catalog has %d artists, want 0", s.finder.Len())
	}
}

func TestNewSessionRejectsUnknownMode(t *testing.T) {
	_, err := newSession(&globalFlags{configPath: filepath.Join(t.TempDir(), "none.yaml"), mode: "redblack"}, false)
	if err == nil {
		t.Fatal("newSession accepted an unknown index mode")
	}
}
