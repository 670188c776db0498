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

// LeavesOnSide scans the whole tree in preorder and returns every leaf
// that hangs on the given side of its parent.
//
// A tree made of a single node returns that node whatever the side, and an
// empty tree returns nil.
func (t *OrderedTree[K, V]) LeavesOnSide(side Side) []*Node[K, V] {
	if t.root == nil {
		return nil
	}
	if t.count == 1 {
		return []*Node[K, V]{t.root}
	}

	var leaves []*Node[K, V]
	for n := range t.Nodes(PreOrder) {
		if c := n.Child(side); c != nil && c.IsLeaf() {
			leaves = append(leaves, c)
		}
	}
	return leaves
}

// Leaves returns every leaf, left to right.
func (t *OrderedTree[K, V]) Leaves() []*Node[K, V] {
	var leaves []*Node[K, V]
	for n := range t.Nodes(InOrder) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}
	return leaves
}
