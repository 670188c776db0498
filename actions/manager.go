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
	"slices"

	"github.com/mattn/go-shellwords"
)

// Manager holds the registered actions.
type Manager struct {
	actions []Action
	env     *Env
}

// NewManager creates a manager with every menu action registered.
func NewManager(env *Env) *Manager {
	m := &Manager{env: env}

	m.Register(NewLoadAction(env))
	m.Register(NewListAction(env))
	m.Register(NewProbeAction(env))
	m.Register(NewHeightAction(env))
	m.Register(NewFindAction(env))
	m.Register(NewShowAction(env))
	m.Register(NewPlaycountAction(env))
	m.Register(NewStyleAction(env))
	m.Register(NewHelpAction(m))
	m.Register(NewClearAction(env))

	return m
}

// Register adds an action, keeping the list ordered by priority.
func (m *Manager) Register(a Action) {
	m.actions = append(m.actions, a)
	slices.SortStableFunc(m.actions, func(x, y Action) int {
		return x.Priority() - y.Priority()
	})
}

// Actions returns the registered actions in menu order.
func (m *Manager) Actions() []Action {
	return slices.Clone(m.actions)
}

// Env returns the state the actions work on.
func (m *Manager) Env() *Env {
	return m.env
}

// Lookup finds the action handling name.
func (m *Manager) Lookup(name string) (Action, bool) {
	for _, a := range m.actions {
		if a.SupportsCommand(name) {
			return a, true
		}
	}
	return nil, false
}

// Run parses line with shell quoting rules and runs the matching action.
func (m *Manager) Run(ctx context.Context, line string) (string, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", line, err)
	}
	return m.RunParts(ctx, parts)
}

// RunParts runs an already split command line.
func (m *Manager) RunParts(ctx context.Context, parts []string) (string, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("no action provided: %w", ErrUsage)
	}
	req := NewRequest(parts)

	a, ok := m.Lookup(req.Name)
	if !ok {
		return "", fmt.Errorf("%q: %w", req.Name, ErrUnknownAction)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := a.Run(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.Name(), err)
	}
	return out, nil
}
