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

import "fmt"

// Verify runs CheckParents, CheckOrder, CheckHeights and CheckCount and
// returns the first failure.
func (t *OrderedTree[K, V]) Verify() error {
	for _, check := range []func() error{t.CheckParents, t.CheckOrder, t.CheckHeights, t.CheckCount} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// CheckParents checks that every child points back to its parent and that
// the root has none.
func (t *OrderedTree[K, V]) CheckParents() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root %v has parent %v", t.root.key, t.root.parent.key)
	}
	for n := range t.Nodes(PreOrder) {
		for _, c := range [...]*Node[K, V]{n.left, n.right} {
			if c != nil && c.parent != n {
				return fmt.Errorf("node %v: parent link does not point at %v", c.key, n.key)
			}
		}
	}
	return nil
}

// CheckOrder checks that an inorder walk yields strictly increasing keys,
// or strictly decreasing ones while the tree is mirrored.
func (t *OrderedTree[K, V]) CheckOrder() error {
	var prev *Node[K, V]
	for n := range t.Nodes(InOrder) {
		if prev != nil && t.compare(prev.key, n.key) >= 0 {
			return fmt.Errorf("keys out of order: %v before %v", prev.key, n.key)
		}
		prev = n
	}
	return nil
}

// CheckHeights recomputes every height from scratch and compares it with
// the cached value.
func (t *OrderedTree[K, V]) CheckHeights() error {
	heights := make(map[*Node[K, V]]int, t.count)
	for n := range t.Nodes(PostOrder) {
		h := max(heights[n.left], heights[n.right]) + 1
		if h != n.height {
			return fmt.Errorf("node %v: cached height %d, actual %d", n.key, n.height, h)
		}
		heights[n] = h
	}
	return nil
}

// CheckCount compares the element count with the number of reachable nodes.
func (t *OrderedTree[K, V]) CheckCount() error {
	n := 0
	for range t.Nodes(PreOrder) {
		n++
	}
	if n != t.count {
		return fmt.Errorf("count %d, but %d nodes reachable", t.count, n)
	}
	return nil
}

// CheckBalanced checks |height(left) - height(right)| <= 1 at every node.
// It trusts the cached heights; run CheckHeights first to validate them.
func (t *OrderedTree[K, V]) CheckBalanced() error {
	for n := range t.Nodes(PreOrder) {
		if bf := n.balance(); bf > 1 || bf < -1 {
			return fmt.Errorf("node %v: balance factor %d", n.key, bf)
		}
	}
	return nil
}
