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
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/cybrota/artistfinder/avl"
)

// ListAction prints the catalog IDs in ascending order.
type ListAction struct {
	info
	env *Env
}

func NewListAction(env *Env) *ListAction {
	return &ListAction{
		info: info{
			name:     "list",
			usage:    "list [<page>]",
			aliases:  []string{"ls", "sorted"},
			priority: 2,
		},
		env: env,
	}
}

func (l *ListAction) Run(ctx context.Context, req *Request) (string, error) {
	f := l.env.Finder
	size := l.env.pageSize()

	if req.HasArg(1) {
		n, err := req.IntArg(0)
		if err != nil || n < 1 {
			return "", l.usageError()
		}
		pages := f.Pages(size)
		if n > pages {
			return "", fmt.Errorf("page %d out of range, catalog has %d pages: %w", n, pages, ErrUsage)
		}
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Page %d/%d\n", n, pages)
		writeIDs(&buf, f.Page(n-1, size), size)
		return buf.String(), nil
	}

	var buf bytes.Buffer
	lw := NewLimitedWriter(&buf, MaxOutputSize)
	i := 0
	for id := range f.Tree().All(avl.InOrder) {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		sep := " "
		if (i+1)%size == 0 {
			sep = "\n"
		}
		fmt.Fprintf(lw, "%d%s", id, sep)
		i++
	}
	out := buf.String()
	if lw.Truncated() {
		out += "\n[OUTPUT TRUNCATED - use list <page> or the pager]"
	}
	return out, nil
}

// FormatIDs renders ids space separated, perLine to a line, with no size
// limit.
func FormatIDs(ids []int, perLine int) string {
	if perLine <= 0 {
		perLine = DefaultPageSize
	}
	var buf bytes.Buffer
	writeIDs(&buf, ids, perLine)
	return buf.String()
}

// writeIDs writes ids space separated, perLine to a line.
func writeIDs(buf *bytes.Buffer, ids []int, perLine int) {
	for i, id := range ids {
		buf.WriteString(strconv.Itoa(id))
		if (i+1)%perLine == 0 || i == len(ids)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
}
