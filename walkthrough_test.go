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
	"bytes"
	"strings"
	"testing"

	"github.com/cybrota/artistfinder/catalog"
)

func TestRunWalkthrough(t *testing.T) {
	var buf bytes.Buffer
	if err := runWalkthrough(&buf); err != nil {
		t.Fatalf("runWalkthrough: %v", err)
	}
	out := buf.String()

	want := []string{
		"preorder={ 2 0 8 5 3 6 45 40 76 }",
		"preorder={ 8 2 0 5 3 6 45 40 76 }",
		"inorder={ 0 2 3 5 6 8 40 45 76 }",
		"postorder={ 0 3 6 5 40 76 45 8 2 }",
		"postorder={ 0 3 6 5 2 40 76 45 8 }",
		" containsKey 45 true",
		" containsKey 37 false",
		"preorder mirror 1={ 2 8 45 76 40 5 6 3 0 }",
		"preorder mirror 1={ 8 45 76 40 2 5 6 3 0 }",
		"preorder mirror 2={ 8 2 0 5 3 6 45 40 76 }",
		"leaves(left)={ 0 3 40 }",
		"leaves(right)={ 6 76 }",
		"rotations while balancing: 2",
		"height plain=4 balanced=4",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("walkthrough output missing %q", w)
		}
	}

	if strings.Count(out, "postorder copy=") != 2 {
		t.Errorf("expected one clone per tree:\n%s", out)
	}
}

func TestRunCatalogWalkthrough(t *testing.T) {
	f := catalog.NewFinder(catalog.Options{})
	var buf bytes.Buffer
	if err := runCatalogWalkthrough(&buf, f, "testdata/artists.csv", 3); err != nil {
		t.Fatalf("runCatalogWalkthrough: %v", err)
	}
	out := buf.String()

	for _, w := range []string{
		"catalog (balanced)",
		"tree height: 3",
		"artist 1370 not found",
		"artist 4893 does not exist.",
		"first IDs: { 3 8 12 }",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestRunCatalogWalkthroughMissingFile(t *testing.T) {
	f := catalog.NewFinder(catalog.Options{Mode: catalog.ModePlain})
	var buf bytes.Buffer
	if err := runCatalogWalkthrough(&buf, f, "testdata/nope.csv", 3); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
