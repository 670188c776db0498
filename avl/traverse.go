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
	"iter"
	"strings"
)

// Order is a depth-first traversal order.
type Order int

const (
	PreOrder  Order = iota // root, left, right
	InOrder                // left, root, right
	PostOrder              // left, right, root
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "pre", "in", "post" with or without the "order" suffix.
func ParseOrder(s string) (Order, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order") {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

// Traverse returns every key in the requested order.
func (t *OrderedTree[K, V]) Traverse(order Order) []K {
	keys := make([]K, 0, t.count)
	for n := range t.Nodes(order) {
		keys = append(keys, n.key)
	}
	return keys
}

// All returns an iterator over the key/value pairs in the requested order.
// The sequence can be ranged over any number of times.
func (t *OrderedTree[K, V]) All(order Order) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range t.Nodes(order) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes in the requested order. The tree
// must not be modified while the iteration is in progress.
func (t *OrderedTree[K, V]) Nodes(order Order) iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		switch order {
		case PreOrder:
			preorder(t.root, yield)
		case InOrder:
			inorder(t.root, yield)
		case PostOrder:
			postorder(t.root, yield)
		}
	}
}

// The walkers below keep their own stack instead of recursing, so an
// unbalanced tree of any depth can be traversed.

func preorder[K cmp.Ordered, V any](root *Node[K, V], yield func(*Node[K, V]) bool) {
	if root == nil {
		return
	}
	stack := []*Node[K, V]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func inorder[K cmp.Ordered, V any](root *Node[K, V], yield func(*Node[K, V]) bool) {
	var stack []*Node[K, V]
	p := root
	for p != nil || len(stack) > 0 {
		for p != nil {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(p) {
			return
		}
		p = p.right
	}
}

func postorder[K cmp.Ordered, V any](root *Node[K, V], yield func(*Node[K, V]) bool) {
	var stack []*Node[K, V]
	var last *Node[K, V]
	p := root
	for p != nil || len(stack) > 0 {
		if p != nil {
			stack = append(stack, p)
			p = p.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			p = top.right
			continue
		}
		if !yield(top) {
			return
		}
		last = top
		stack = stack[:len(stack)-1]
	}
}
