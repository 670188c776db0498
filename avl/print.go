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

// print.go
// The drawing routine is adapted from avl/print.go of
// https://github.com/bitmark-inc/bitmarkd, Copyright (c) 2014-2019 Bitmark Inc.,
// used under the ISC license.

package avl

import (
	"cmp"
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes an ASCII drawing of the tree to w, right subtrees above
// their parent and left subtrees below. It returns the height of the tree.
func (t *OrderedTree[K, V]) Fprint(w io.Writer, withValues bool) int {
	return fprintNode(w, t.root, "", rootBranch, withValues)
}

func fprintNode[K cmp.Ordered, V any](w io.Writer, n *Node[K, V], prefix string, br branch, withValues bool) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = fprintNode(w, n.right, prefix+pad, rightBranch, withValues)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withValues {
		fmt.Fprintf(w, "%v → %v  h=%d bf=%+d\n", n.key, n.value, n.height, n.balance())
	} else {
		fmt.Fprintf(w, "%v\n", n.key)
	}

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = fprintNode(w, n.left, prefix+pad, leftBranch, withValues)
	}
	return 1 + max(ld, rd)
}
