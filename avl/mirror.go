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
	"cmp"
	"fmt"
)

// Mirror swaps the left and right children of every node. Afterwards an
// inorder traversal yields the keys in descending order; Insert and Search
// follow the new orientation, and a second Mirror restores the original
// tree exactly.
func (t *OrderedTree[K, V]) Mirror() error {
	if t.root == nil {
		return fmt.Errorf("mirror: %w", ErrEmptyTree)
	}

	stack := []*Node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mirrorNode(n)

		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	t.mirrored = !t.mirrored
	return nil
}

// mirrorNode swaps the children of a single node. A lone child is moved to
// the opposite slot and the slot it came from, which still points at the
// moved subtree, is cleared.
func mirrorNode[K cmp.Ordered, V any](n *Node[K, V]) {
	switch {
	case n.left != nil && n.right != nil:
		n.left, n.right = n.right, n.left
	case n.left != nil:
		n.right = n.left
		discard(&n.left)
	case n.right != nil:
		n.left = n.right
		discard(&n.right)
	}
}

// discard drops a stale child pointer. Only the slot is cleared: the
// subtree it referenced is still owned through the other slot.
func discard[K cmp.Ordered, V any](slot **Node[K, V]) {
	*slot = nil
}
