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

// OrderedTree is an unbalanced binary search tree keyed by K.
// The zero value is an empty tree ready to use.
type OrderedTree[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int

	// mirrored is set while the tree is stored in descending order,
	// i.e. after an odd number of Mirror calls.
	mirrored bool
}

// New creates an initially empty tree.
func New[K cmp.Ordered, V any]() *OrderedTree[K, V] {
	return &OrderedTree[K, V]{}
}

// IsEmpty reports whether the tree holds no nodes.
func (t *OrderedTree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *OrderedTree[K, V]) Len() int {
	return t.count
}

// Root returns the root node, nil for an empty tree.
func (t *OrderedTree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Height returns the height of the root. An empty tree has height 0.
func (t *OrderedTree[K, V]) Height() int {
	return t.root.Height()
}

// Mirrored reports whether the tree currently stores keys in descending
// order.
func (t *OrderedTree[K, V]) Mirrored() bool {
	return t.mirrored
}

// Clear drops every node.
func (t *OrderedTree[K, V]) Clear() {
	t.root = nil
	t.count = 0
	t.mirrored = false
}

// Clone returns an independent deep copy of the tree.
func (t *OrderedTree[K, V]) Clone() *OrderedTree[K, V] {
	return &OrderedTree[K, V]{
		root:     t.root.Clone(),
		count:    t.count,
		mirrored: t.mirrored,
	}
}

func (t *OrderedTree[K, V]) compare(a, b K) int {
	c := cmp.Compare(a, b)
	if t.mirrored {
		return -c
	}
	return c
}

// Insert adds key as a new leaf and returns its node. If the key is
// already present the tree is left unchanged and the error wraps
// ErrDuplicateKey.
func (t *OrderedTree[K, V]) Insert(key K, value V) (*Node[K, V], error) {
	var parent *Node[K, V]
	side := LeftSide

	for p := t.root; p != nil; {
		c := t.compare(key, p.key)
		if c == 0 {
			return nil, fmt.Errorf("insert %v: %w", key, ErrDuplicateKey)
		}
		parent = p
		if c < 0 {
			side = LeftSide
			p = p.left
		} else {
			side = RightSide
			p = p.right
		}
	}

	n := newNode(key, value)
	if parent == nil {
		t.root = n
	} else {
		parent.setChild(side, n)
	}
	t.count++
	refreshHeights(parent)
	return n, nil
}

// refreshHeights walks from n to the root recomputing cached heights and
// stops at the first node whose height did not change.
func refreshHeights[K cmp.Ordered, V any](n *Node[K, V]) {
	for ; n != nil; n = n.parent {
		if !n.updateHeight() {
			return
		}
	}
}

// Search returns the node holding key.
func (t *OrderedTree[K, V]) Search(key K) (*Node[K, V], bool) {
	p := t.root
	for p != nil {
		switch c := t.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p, true
		}
	}
	return nil, false
}

// ContainsKey reports whether key is present.
func (t *OrderedTree[K, V]) ContainsKey(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// ValueOf returns the value stored for key, or an error wrapping
// ErrKeyNotFound.
func (t *OrderedTree[K, V]) ValueOf(key K) (V, error) {
	n, ok := t.Search(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("value of %v: %w", key, ErrKeyNotFound)
	}
	return n.value, nil
}

// First returns the leftmost node: the lowest key, or the highest one
// while the tree is mirrored.
func (t *OrderedTree[K, V]) First() *Node[K, V] {
	p := t.root
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last returns the rightmost node.
func (t *OrderedTree[K, V]) Last() *Node[K, V] {
	p := t.root
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
