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

// Package avl provides a generic ordered key/value tree with parent
// pointers, and an AVL balancing layer composed on top of it.
//
// OrderedTree is a plain binary search tree: insertion never reorganises
// the shape, so adversarial insertion orders degrade it to a list.
// BalancedTree embeds an OrderedTree and, after every InsertBalanced, walks
// from the new node towards the root applying at most one single or double
// rotation to restore |height(left) - height(right)| <= 1 everywhere.
//
// Keys are unique. Inserting an existing key fails with ErrDuplicateKey
// and never overwrites the stored value; use Node.SetValue for that.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package avl
