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

// Package catalog loads artist records into an AVL tree keyed by artist ID
// and answers the queries of the artist finder.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// StyleSeparator separates the styles of one artist.
const StyleSeparator = "|"

// Artist is one row of an artists file.
type Artist struct {
	ID        int
	Name      string
	Gender    string
	Country   string
	Styles    string
	Playcount int
}

// String renders the artist without its ID as name::gender::country::styles::playcount.
func (a Artist) String() string {
	return strings.Join([]string{
		a.Name, a.Gender, a.Country, a.Styles, strconv.Itoa(a.Playcount),
	}, "::")
}

// StyleList splits Styles into trimmed, non-empty style names.
func (a Artist) StyleList() []string {
	var styles []string
	for _, s := range strings.Split(a.Styles, StyleSeparator) {
		if s = strings.TrimSpace(s); s != "" {
			styles = append(styles, s)
		}
	}
	return styles
}

// HasStyle reports whether style is one of the artist's styles. Case is
// ignored, but the whole style name has to match.
func (a Artist) HasStyle(style string) bool {
	style = strings.TrimSpace(style)
	if style == "" {
		return false
	}
	for _, s := range a.StyleList() {
		if strings.EqualFold(s, style) {
			return true
		}
	}
	return false
}

// Markdown renders a detail card for the terminal renderers.
func (a Artist) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Name)
	fmt.Fprintf(&b, "- **ID:** %d\n", a.ID)
	fmt.Fprintf(&b, "- **Gender:** %s\n", orDash(a.Gender))
	fmt.Fprintf(&b, "- **Country:** %s\n", orDash(a.Country))
	fmt.Fprintf(&b, "- **Playcount:** %d\n", a.Playcount)
	if styles := a.StyleList(); len(styles) > 0 {
		b.WriteString("\n## Styles\n\n")
		for _, s := range styles {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
