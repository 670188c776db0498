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
	"fmt"
	"strings"
)

// HeightAction reports the height of the catalog tree.
type HeightAction struct {
	info
	env *Env
}

func NewHeightAction(env *Env) *HeightAction {
	return &HeightAction{
		info: info{name: "height", usage: "height", aliases: []string{"depth"}, priority: 4},
		env:  env,
	}
}

func (h *HeightAction) Run(_ context.Context, _ *Request) (string, error) {
	f := h.env.Finder
	return fmt.Sprintf("Tree height: %d (%d artists, %s mode)", f.Height(), f.Len(), f.Mode()), nil
}

// FindAction tells whether an artist ID is in the catalog.
type FindAction struct {
	info
	env *Env
}

func NewFindAction(env *Env) *FindAction {
	return &FindAction{
		info: info{name: "find", usage: "find <id>", aliases: []string{"contains"}, priority: 5},
		env:  env,
	}
}

func (f *FindAction) Run(_ context.Context, req *Request) (string, error) {
	id, err := req.IntArg(0)
	if err != nil {
		return "", f.usageError()
	}
	if f.env.Finder.Contains(id) {
		return fmt.Sprintf("Artist %d found", id), nil
	}
	return fmt.Sprintf("Artist %d not found", id), nil
}

// ShowAction prints one artist.
type ShowAction struct {
	info
	env *Env
}

func NewShowAction(env *Env) *ShowAction {
	return &ShowAction{
		info: info{name: "show", usage: "show <id>", aliases: []string{"get"}, priority: 6},
		env:  env,
	}
}

func (s *ShowAction) Run(_ context.Context, req *Request) (string, error) {
	id, err := req.IntArg(0)
	if err != nil {
		return "", s.usageError()
	}
	return s.env.Finder.Show(id), nil
}

// PlaycountAction counts artists played at least a given number of times.
type PlaycountAction struct {
	info
	env *Env
}

func NewPlaycountAction(env *Env) *PlaycountAction {
	return &PlaycountAction{
		info: info{name: "playcount", usage: "playcount <n>", aliases: []string{"plays"}, priority: 7},
		env:  env,
	}
}

func (p *PlaycountAction) Run(_ context.Context, req *Request) (string, error) {
	n, err := req.IntArg(0)
	if err != nil {
		return "", p.usageError()
	}
	return fmt.Sprintf("Artists with at least %d plays: %d", n, p.env.Finder.CountAtLeast(n)), nil
}

// StyleAction lists the artists of a style.
type StyleAction struct {
	info
	env *Env
}

func NewStyleAction(env *Env) *StyleAction {
	return &StyleAction{
		info: info{name: "style", usage: "style <style>", aliases: []string{"genre"}, priority: 8},
		env:  env,
	}
}

func (s *StyleAction) Run(_ context.Context, req *Request) (string, error) {
	// multi word styles may come quoted or as separate arguments
	style := strings.TrimSpace(strings.Join(req.Args, " "))
	if style == "" {
		return "", s.usageError()
	}

	ids := s.env.Finder.IDsByStyle(style)
	if len(ids) == 0 {
		return fmt.Sprintf("No artists with style %s", style), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Artists with style %s:\n", style)
	for _, id := range ids {
		fmt.Fprintf(&b, "%d\n", id)
	}
	return b.String(), nil
}
