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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/artistfinder/avl"
	"github.com/cybrota/artistfinder/catalog"
)

var (
	walkthroughKeys   = []int{2, 0, 8, 45, 76, 5, 6, 3, 40}
	walkthroughValues = []int{5, 5, 1, 88, 99, 6, 12, 9, 11}
	walkthroughProbes = []int{45, 37, 76, 2}

	// IDs looked up in the catalog part of the walkthrough
	walkthroughShowID = 1370
	walkthroughFindID = 4893
)

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func nodeKeys(nodes []*avl.Node[int, int]) []int {
	keys := make([]int, len(nodes))
	for i, n := range nodes {
		keys[i] = n.Key()
	}
	return keys
}

func printTraversals(w io.Writer, t *avl.OrderedTree[int, int]) {
	for _, order := range []avl.Order{avl.PreOrder, avl.InOrder, avl.PostOrder} {
		fmt.Fprintf(w, "%s=%s\n", order, joinKeys(t.Traverse(order)))
	}
}

// walkTree prints what every read operation returns for t.
func walkTree(w io.Writer, name string, t *avl.OrderedTree[int, int]) error {
	fmt.Fprintf(w, " ------------- %s tree ----------- \n", name)
	printTraversals(w, t)
	for _, k := range walkthroughProbes {
		fmt.Fprintf(w, " containsKey %d %t\n", k, t.ContainsKey(k))
	}
	fmt.Fprintf(w, " height %d\n\n", t.Height())

	c := t.Clone()
	fmt.Fprintf(w, "postorder copy=%s\n", joinKeys(c.Traverse(avl.PostOrder)))
	fmt.Fprintf(w, "preorder copy=%s\n\n", joinKeys(c.Traverse(avl.PreOrder)))

	for i := 1; i <= 2; i++ {
		if err := c.Mirror(); err != nil {
			return err
		}
		fmt.Fprintf(w, "preorder mirror %d=%s\n", i, joinKeys(c.Traverse(avl.PreOrder)))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "leaves(left)=%s\n", joinKeys(nodeKeys(t.LeavesOnSide(avl.LeftSide))))
	fmt.Fprintf(w, "leaves(right)=%s\n\n", joinKeys(nodeKeys(t.LeavesOnSide(avl.RightSide))))

	t.Fprint(w, true)
	fmt.Fprintln(w)

	return t.Verify()
}

// runWalkthrough builds the sample tree plainly and balanced and prints
// every tree operation on both.
func runWalkthrough(w io.Writer) error {
	plain := avl.New[int, int]()
	balanced := avl.NewBalanced[int, int]()

	for i, k := range walkthroughKeys {
		if _, err := plain.Insert(k, walkthroughValues[i]); err != nil {
			return err
		}
		if _, err := balanced.InsertBalanced(k, walkthroughValues[i]); err != nil {
			return err
		}
	}

	if err := walkTree(w, "plain", plain); err != nil {
		return err
	}
	if err := walkTree(w, "balanced", balanced.OrderedTree); err != nil {
		return err
	}
	if err := balanced.CheckBalanced(); err != nil {
		return err
	}
	fmt.Fprintf(w, "rotations while balancing: %d\n", balanced.Rotations())
	fmt.Fprintf(w, "height plain=%d balanced=%d\n", plain.Height(), balanced.Height())
	return nil
}

// runCatalogWalkthrough loads path and runs a few catalog queries on it.
func runCatalogWalkthrough(w io.Writer, f *catalog.Finder, path string, pageSize int) error {
	fmt.Fprintf(w, " ------------- catalog (%s) ----------- \n", f.Mode())
	stats, err := f.LoadFile(path, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", path, stats)
	fmt.Fprintf(w, "tree height: %d\n", f.Height())
	fmt.Fprintf(w, "artist %d: %s\n", walkthroughShowID, f.Show(walkthroughShowID))
	if f.Contains(walkthroughFindID) {
		fmt.Fprintf(w, "artist %d exists.\n", walkthroughFindID)
	} else {
		fmt.Fprintf(w, "artist %d does not exist.\n", walkthroughFindID)
	}
	fmt.Fprintf(w, "first IDs: %s\n", joinKeys(f.Page(0, pageSize)))
	return nil
}
