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

package avl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateWithoutPivotPanics(t *testing.T) {
	var tests = []struct {
		op     string
		rotate func(*OrderedTree[int, int], *Node[int, int])
	}{
		{"rotate-right", func(t *OrderedTree[int, int], n *Node[int, int]) { t.rotateRight(n) }},
		{"rotate-left", func(t *OrderedTree[int, int], n *Node[int, int]) { t.rotateLeft(n) }},
		{"rotate-left-right", func(t *OrderedTree[int, int], n *Node[int, int]) { t.rotateLeftRight(n) }},
		{"rotate-right-left", func(t *OrderedTree[int, int], n *Node[int, int]) { t.rotateRightLeft(n) }},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			tree := New[int, int]()
			leaf, err := tree.Insert(1, 1)
			require.NoError(t, err)

			assert.PanicsWithValue(t, InvariantViolation{Op: tt.op, Key: 1}, func() {
				tt.rotate(tree, leaf)
			})
		})
	}
}

func TestReplaceDetachedNodePanics(t *testing.T) {
	tree := New[int, int]()
	root, _ := tree.Insert(5, 5)
	stray := newNode(9, 9)
	stray.parent = root

	assert.Panics(t, func() { tree.replace(stray, newNode(10, 10)) })
}

func TestRotateRightKeepsHeightsAndParents(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{10, 5, 15, 3, 7, 1} {
		_, err := tree.Insert(k, k)
		require.NoError(t, err)
	}

	pivot := tree.rotateRight(tree.root)
	assert.Same(t, tree.root, pivot)
	assert.Equal(t, 5, pivot.key)
	assert.Equal(t, []int{5, 3, 1, 10, 7, 15}, tree.Traverse(PreOrder))
	require.NoError(t, tree.Verify())
}

func TestInvariantViolationMessage(t *testing.T) {
	err := InvariantViolation{Op: "rotate-left", Key: 42}
	assert.Contains(t, err.Error(), "rotate-left")
	assert.Contains(t, err.Error(), "42")
}

func TestFprint(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{2, 1, 3} {
		_, _ = tree.Insert(k, strings.Repeat("x", k))
	}

	var buf bytes.Buffer
	h := tree.Fprint(&buf, false)
	assert.Equal(t, 2, h)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "       /------+ 3", lines[0])
	assert.Equal(t, "|------+ 2", lines[1])
	assert.Equal(t, "       \\------+ 1", lines[2])

	buf.Reset()
	tree.Fprint(&buf, true)
	assert.Contains(t, buf.String(), "3 → xxx  h=1 bf=+0")
	assert.Contains(t, buf.String(), "2 → xx  h=2 bf=+0")

	buf.Reset()
	assert.Equal(t, 0, New[int, int]().Fprint(&buf, true))
	assert.Empty(t, buf.String())
}
