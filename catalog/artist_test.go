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

package catalog

import (
	"strings"
	"testing"
)

func TestArtistString(t *testing.T) {
	a := Artist{ID: 3, Name: "Camarón", Gender: "Male", Country: "Spain", Styles: "Flamenco|Copla", Playcount: 61}
	want := "Camarón::Male::Spain::Flamenco|Copla::61"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHasStyle(t *testing.T) {
	a := Artist{Styles: "Indie Rock| Pop |Flamenco"}

	var tests = []struct {
		style string
		want  bool
	}{
		{"Pop", true},
		{"pop", true},
		{" FLAMENCO ", true},
		{"indie rock", true},
		{"Rock", false},
		{"Indie", false},
		{"Po", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			if got := a.HasStyle(tt.style); got != tt.want {
				t.Errorf("HasStyle(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestStyleList(t *testing.T) {
	got := Artist{Styles: "Rock||Hard Rock| "}.StyleList()
	if len(got) != 2 || got[0] != "Rock" || got[1] != "Hard Rock" {
		t.Errorf("StyleList() = %q", got)
	}
	if got := (Artist{}).StyleList(); got != nil {
		t.Errorf("StyleList() of empty styles = %q, want nil", got)
	}
}

func TestMarkdown(t *testing.T) {
	md := Artist{ID: 7, Name: "Mecano", Styles: "Pop|Synthpop", Playcount: 9}.Markdown()

	for _, want := range []string{"# Mecano", "**ID:** 7", "**Country:** -", "- Synthpop"} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}
}
