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

// Package actions implements the operations of the artist finder menu.
// Each operation is an Action registered in a Manager, which resolves a
// typed command line to the action that handles it.
package actions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUsage         = errors.New("bad arguments")
)

// Action is one menu operation.
type Action interface {
	Name() string
	Usage() string
	Priority() int // menu position, lower comes first
	SupportsCommand(name string) bool
	Run(ctx context.Context, req *Request) (string, error)
}

// Request is a parsed command line.
type Request struct {
	Parts    []string
	Name     string
	Args     []string
	FullName string
}

// NewRequest creates a Request from command line parts.
func NewRequest(parts []string) *Request {
	if len(parts) == 0 {
		return &Request{Parts: parts}
	}

	return &Request{
		Parts:    parts,
		Name:     parts[0],
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasArg checks if the request has at least n arguments
func (r *Request) HasArg(n int) bool {
	return len(r.Args) >= n
}

// Arg returns the nth argument (0-indexed)
func (r *Request) Arg(n int) string {
	if n >= len(r.Args) {
		return ""
	}
	return r.Args[n]
}

// IntArg parses the nth argument as an integer.
func (r *Request) IntArg(n int) (int, error) {
	if !r.HasArg(n + 1) {
		return 0, fmt.Errorf("missing argument %d: %w", n+1, ErrUsage)
	}
	v, err := strconv.Atoi(r.Arg(n))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", r.Arg(n), ErrUsage)
	}
	return v, nil
}

// info carries the descriptive half of an Action.
type info struct {
	name     string
	usage    string
	aliases  []string
	priority int
}

func (i info) Name() string {
	return i.name
}

func (i info) Usage() string {
	return i.usage
}

func (i info) Priority() int {
	return i.priority
}

// SupportsCommand matches the action name, its menu number and its aliases.
func (i info) SupportsCommand(name string) bool {
	name = strings.ToLower(name)
	if name == i.name || name == strconv.Itoa(i.priority) {
		return true
	}
	for _, a := range i.aliases {
		if name == a {
			return true
		}
	}
	return false
}

func (i info) usageError() error {
	return fmt.Errorf("usage: %s: %w", i.usage, ErrUsage)
}
