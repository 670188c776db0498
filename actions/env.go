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
	"time"

	"github.com/cybrota/artistfinder/catalog"
)

// DefaultPageSize is how many IDs a listing page holds.
const DefaultPageSize = 40

// Paths locates the data files of the menu.
type Paths struct {
	Small string
	Large string
	Probe string
}

// Env is the state shared by all actions.
type Env struct {
	Finder   *catalog.Finder
	Paths    Paths
	PageSize int

	// ShowProgress draws a progress bar while files load.
	ShowProgress bool

	// Now is replaced in tests.
	Now func() time.Time
}

func (e *Env) pageSize() int {
	if e.PageSize <= 0 {
		return DefaultPageSize
	}
	return e.PageSize
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Env) since(start time.Time) time.Duration {
	return e.now().Sub(start)
}
