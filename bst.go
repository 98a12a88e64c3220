// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package bst implements an ordered set of unique values stored in an
// unbalanced binary search tree.
//
// Construction produces a height-balanced tree. Insert and Delete never
// rebalance; callers that insert in sorted order should call Rebalance
// periodically to bound the tree height. A Tree is not safe for concurrent
// use.
package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/ajwerner/bst/internal/abstract"
)

// Compare is the natural ordering used by every Tree. Floating point NaN
// values are not ordered and must not be stored.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Tree is an ordered set of unique values. The zero value is not usable;
// construct trees with MakeTree.
type Tree[T constraints.Ordered] struct {
	t abstract.Tree[T]
}

// MakeTree builds a height-balanced Tree holding the distinct values of
// values. The input may be unordered and contain duplicates; it is not
// modified. A nil or empty slice yields an empty Tree.
func MakeTree[T constraints.Ordered](values []T) *Tree[T] {
	t := &Tree[T]{
		t: abstract.MakeTree[T](Compare[T]),
	}
	t.build(values)
	return t
}

func (t *Tree[T]) build(values []T) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	t.t.Build(sorted)
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int { return t.t.Len() }

// Root returns the root node, or false if the tree is empty.
func (t *Tree[T]) Root() (Node[T], bool) {
	return makeNode(t.t.Root())
}

// Insert adds v to the tree as a new leaf. It returns false, leaving the
// tree unchanged, if v is already present.
func (t *Tree[T]) Insert(v T) (inserted bool) {
	return t.t.Insert(v)
}

// Delete removes v from the tree. It returns false if v was not present.
func (t *Tree[T]) Delete(v T) (removed bool) {
	return t.t.Delete(v)
}

// Contains returns whether v is in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.t.Find(v) != nil
}

// Find returns the node holding v. It returns ErrNotFound if v is not in
// the tree.
func (t *Tree[T]) Find(v T) (Node[T], error) {
	n, ok := makeNode(t.t.Find(v))
	if !ok {
		return Node[T]{}, fmt.Errorf("find %v: %w", v, ErrNotFound)
	}
	return n, nil
}

// Height returns the number of edges on the longest downward path from the
// node holding v to a leaf. It returns ErrNotFound if v is not in the tree.
func (t *Tree[T]) Height(v T) (int, error) {
	h, ok := t.t.Height(v)
	if !ok {
		return 0, fmt.Errorf("height of %v: %w", v, ErrNotFound)
	}
	return h, nil
}

// Depth returns the number of edges from the root to the node holding v.
// It returns ErrNotFound if v is not in the tree.
func (t *Tree[T]) Depth(v T) (int, error) {
	d, ok := t.t.Depth(v)
	if !ok {
		return 0, fmt.Errorf("depth of %v: %w", v, ErrNotFound)
	}
	return d, nil
}

// IsBalanced reports whether the heights of the root's left and right
// subtrees differ by at most one. Deeper subtrees are not examined, so a
// tree may report balanced while containing a skewed internal subtree.
// An empty tree is balanced.
func (t *Tree[T]) IsBalanced() bool {
	return t.t.IsBalanced()
}

// Rebalance rebuilds the tree from its ascending values when IsBalanced
// is false, and otherwise does nothing. It returns whether the tree was
// rebuilt. Nodes obtained before a rebuild are invalid afterwards.
func (t *Tree[T]) Rebalance() (rebuilt bool) {
	return t.t.Rebalance()
}
