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

// HelpAction lists the registered actions.
type HelpAction struct {
	info
	manager *Manager
}

func NewHelpAction(m *Manager) *HelpAction {
	return &HelpAction{
		info:    info{name: "help", usage: "help", aliases: []string{"?"}, priority: 9},
		manager: m,
	}
}

func (h *HelpAction) Run(_ context.Context, _ *Request) (string, error) {
	var b strings.Builder
	b.WriteString("Actions:\n")
	for _, a := range h.manager.Actions() {
		fmt.Fprintf(&b, "  %d. %s\n", a.Priority(), a.Usage())
	}
	return b.String(), nil
}
