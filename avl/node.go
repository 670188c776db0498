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

// Side selects the left or right child slot of a node.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == RightSide {
		return "right"
	}
	return "left"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == RightSide {
		return LeftSide
	}
	return RightSide
}

// Node is one key/value entry of a tree. A node owns its left and right
// subtrees; parent is only a back reference.
type Node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int // cached, 1 for a leaf
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V]
}

func newNode[K cmp.Ordered, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value, height: 1}
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the node's value.
func (n *Node[K, V]) Value() V {
	return n.value
}

// SetValue replaces the value in place. The key and the shape of the tree
// are left untouched.
func (n *Node[K, V]) SetValue(value V) {
	n.value = value
}

func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Parent returns the parent node, or nil for the root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

func (n *Node[K, V]) IsRoot() bool {
	return n.parent == nil
}

func (n *Node[K, V]) HasLeft() bool {
	return n.left != nil
}

func (n *Node[K, V]) HasRight() bool {
	return n.right != nil
}

// IsLeaf reports whether the node has no children.
func (n *Node[K, V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Height returns the height of the subtree rooted at n: 1 for a leaf and 0
// for a nil node.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Depth returns the number of edges between n and the root.
func (n *Node[K, V]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Child returns the child on the given side.
func (n *Node[K, V]) Child(side Side) *Node[K, V] {
	if side == RightSide {
		return n.right
	}
	return n.left
}

func (n *Node[K, V]) setChild(side Side, child *Node[K, V]) {
	if side == RightSide {
		n.right = child
	} else {
		n.left = child
	}
	if child != nil {
		child.parent = n
	}
}

// updateHeight recomputes the cached height from the children and reports
// whether it changed.
func (n *Node[K, V]) updateHeight() bool {
	h := max(n.left.Height(), n.right.Height()) + 1
	if h == n.height {
		return false
	}
	n.height = h
	return true
}

// balance is height(left) - height(right).
func (n *Node[K, V]) balance() int {
	return n.left.Height() - n.right.Height()
}

// Clone deep copies the subtree rooted at n. The copy's root has no parent;
// attaching it somewhere is up to the caller. The copy is built with an
// explicit stack so that degenerate trees cannot exhaust the call stack.
func (n *Node[K, V]) Clone() *Node[K, V] {
	if n == nil {
		return nil
	}
	type pair struct {
		src, dst *Node[K, V]
	}

	root := &Node[K, V]{key: n.key, value: n.value, height: n.height}
	stack := []pair{{n, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, side := range [...]Side{LeftSide, RightSide} {
			src := p.src.Child(side)
			if src == nil {
				continue
			}
			dst := &Node[K, V]{key: src.key, value: src.value, height: src.height}
			p.dst.setChild(side, dst)
			stack = append(stack, pair{src, dst})
		}
	}
	return root
}

// Equal reports whether two nodes hold the same key and value. The shape
// of their subtrees is ignored.
func Equal[K cmp.Ordered, V comparable](a, b *Node[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.key == b.key && a.value == b.value
}
