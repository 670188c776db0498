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

import "cmp"

// BalancedTree is an OrderedTree kept height balanced by InsertBalanced.
// Read operations are those of the embedded OrderedTree. Calling the
// embedded Insert directly bypasses balancing.
type BalancedTree[K cmp.Ordered, V any] struct {
	*OrderedTree[K, V]

	rotations int
}

// NewBalanced creates an initially empty balanced tree.
func NewBalanced[K cmp.Ordered, V any]() *BalancedTree[K, V] {
	return &BalancedTree[K, V]{OrderedTree: New[K, V]()}
}

// InsertBalanced inserts key like Insert and then restores the AVL
// invariant. A duplicate key is reported exactly as Insert reports it and
// leaves the tree untouched.
func (b *BalancedTree[K, V]) InsertBalanced(key K, value V) (*Node[K, V], error) {
	n, err := b.Insert(key, value)
	if err != nil {
		return nil, err
	}
	b.rebalanceFrom(n)
	return n, nil
}

// Rotations returns how many single or double rotations have fired since
// the tree was created.
func (b *BalancedTree[K, V]) Rotations() int {
	return b.rotations
}

// Clone returns an independent deep copy of the tree.
func (b *BalancedTree[K, V]) Clone() *BalancedTree[K, V] {
	return &BalancedTree[K, V]{
		OrderedTree: b.OrderedTree.Clone(),
		rotations:   b.rotations,
	}
}

// rebalanceFrom walks from n towards the root. Only ancestors of a freshly
// inserted node can be out of balance, and the first rotation brings the
// rotated subtree back to its height before the insertion, so the walk
// stops there.
func (b *BalancedTree[K, V]) rebalanceFrom(n *Node[K, V]) {
	for ; n != nil; n = n.parent {
		bf := n.balance()
		switch {
		case bf > 1:
			if n.left.balance() >= 0 {
				b.rotateRight(n)
			} else {
				b.rotateLeftRight(n)
			}
			b.rotations++
			return
		case bf < -1:
			if n.right.balance() <= 0 {
				b.rotateLeft(n)
			} else {
				b.rotateRightLeft(n)
			}
			b.rotations++
			return
		}
	}
}
