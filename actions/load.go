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
	"os"
	"strings"
	"time"

	"github.com/cybrota/artistfinder/catalog"
)

// LoadAction inserts an artists file into the catalog.
type LoadAction struct {
	info
	env *Env
}

func NewLoadAction(env *Env) *LoadAction {
	return &LoadAction{
		info: info{
			name:     "load",
			usage:    "load [small|large|<file>]",
			aliases:  []string{"open"},
			priority: 1,
		},
		env: env,
	}
}

// resolve maps the small/large shorthands (also p/g) to paths.
func (l *LoadAction) resolve(arg string) string {
	switch strings.ToLower(arg) {
	case "", "small", "s", "p":
		return l.env.Paths.Small
	case "large", "l", "g":
		return l.env.Paths.Large
	}
	return arg
}

func (l *LoadAction) Run(ctx context.Context, req *Request) (string, error) {
	path := l.resolve(req.Arg(0))
	if path == "" {
		return "", l.usageError()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	start := l.env.now()
	stats, err := l.env.Finder.LoadFile(path, l.env.ShowProgress)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Loaded %s: %d artists added (%d malformed, %d duplicates). Catalog holds %d artists.\nElapsed: %d ms.",
		path, stats.Loaded, stats.Malformed, stats.Duplicates, l.env.Finder.Len(), l.env.since(start).Milliseconds()), nil
}

// ProbeAction counts how many artists of a probe file are in the catalog.
type ProbeAction struct {
	info
	env *Env
}

func NewProbeAction(env *Env) *ProbeAction {
	return &ProbeAction{
		info: info{
			name:     "probe",
			usage:    "probe [<file>]",
			aliases:  []string{"search"},
			priority: 3,
		},
		env: env,
	}
}

func (p *ProbeAction) Run(ctx context.Context, req *Request) (string, error) {
	path := req.Arg(0)
	if path == "" {
		path = p.env.Paths.Probe
	}
	if path == "" {
		return "", p.usageError()
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	start := p.env.now()
	ids, err := catalog.ReadIDs(file)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	found := p.env.Finder.CountPresent(ids)
	elapsed := p.env.since(start)

	return fmt.Sprintf("%d of %d artists from %s found in the catalog.\nElapsed: %s.",
		found, len(ids), path, elapsed.Round(time.Microsecond)), nil
}

// ClearAction empties the catalog so another file can be loaded alone.
type ClearAction struct {
	info
	env *Env
}

func NewClearAction(env *Env) *ClearAction {
	return &ClearAction{
		info: info{name: "clear", usage: "clear", aliases: []string{"reset"}, priority: 10},
		env:  env,
	}
}

func (c *ClearAction) Run(ctx context.Context, _ *Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n := c.env.Finder.Len()
	c.env.Finder.Reset()
	return fmt.Sprintf("Catalog cleared: %d artists removed.", n), nil
}
