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

// rotateRight lifts n.left into n's place:
//
//	      n              pivot
//	     / \             /   \
//	 pivot  c    =>     a     n
//	  / \                    / \
//	 a   b                  b   c
//
// Heights of the two moved nodes and of every ancestor are refreshed.
func (t *OrderedTree[K, V]) rotateRight(n *Node[K, V]) *Node[K, V] {
	pivot := n.left
	if pivot == nil {
		panic(InvariantViolation{Op: "rotate-right", Key: n.key})
	}

	n.left = pivot.right
	if n.left != nil {
		n.left.parent = n
	}
	t.replace(n, pivot)
	pivot.right = n
	n.parent = pivot

	n.updateHeight()
	pivot.updateHeight()
	refreshHeights(pivot.parent)
	return pivot
}

// rotateLeft is the mirror image of rotateRight: n.right takes n's place.
func (t *OrderedTree[K, V]) rotateLeft(n *Node[K, V]) *Node[K, V] {
	pivot := n.right
	if pivot == nil {
		panic(InvariantViolation{Op: "rotate-left", Key: n.key})
	}

	n.right = pivot.left
	if n.right != nil {
		n.right.parent = n
	}
	t.replace(n, pivot)
	pivot.left = n
	n.parent = pivot

	n.updateHeight()
	pivot.updateHeight()
	refreshHeights(pivot.parent)
	return pivot
}

// rotateLeftRight straightens a left-right zig-zag: rotate n.left left,
// then n right.
func (t *OrderedTree[K, V]) rotateLeftRight(n *Node[K, V]) *Node[K, V] {
	if n.left == nil {
		panic(InvariantViolation{Op: "rotate-left-right", Key: n.key})
	}
	t.rotateLeft(n.left)
	return t.rotateRight(n)
}

// rotateRightLeft straightens a right-left zig-zag: rotate n.right right,
// then n left.
func (t *OrderedTree[K, V]) rotateRightLeft(n *Node[K, V]) *Node[K, V] {
	if n.right == nil {
		panic(InvariantViolation{Op: "rotate-right-left", Key: n.key})
	}
	t.rotateRight(n.right)
	return t.rotateLeft(n)
}

// replace hangs repl where old used to be: in the same slot of old's
// parent, or at the root.
func (t *OrderedTree[K, V]) replace(old, repl *Node[K, V]) {
	p := old.parent
	repl.parent = p
	switch {
	case p == nil:
		t.root = repl
	case p.left == old:
		p.left = repl
	case p.right == old:
		p.right = repl
	default:
		panic(InvariantViolation{Op: "relink", Key: old.key})
	}
}
