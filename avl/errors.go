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
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned when inserting a key that is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound is returned by ValueOf when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyTree is returned by structural operations on an empty tree.
	ErrEmptyTree = errors.New("tree is empty")
)

// InvariantViolation is the panic value raised when a rotation does not
// find the nodes it has to move. It signals a defect in this package, not a
// condition callers are expected to recover from.
type InvariantViolation struct {
	Op  string
	Key any
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf("avl: invariant violated during %s at key %v", v.Op, v.Key)
}
