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

package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/ajwerner/bst/internal/abstract"
)

// Order is a traversal order.
type Order int

const (
	// Level visits values breadth-first, left to right within each level.
	Level Order = iota
	// Pre visits a node before its left and then its right subtree.
	Pre
	// In visits values in ascending order.
	In
	// Post visits both subtrees before the node.
	Post
)

var orderNames = [...]string{
	Level: "level",
	Pre:   "pre",
	In:    "in",
	Post:  "post",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder returns the Order named s, as produced by Order.String.
func ParseOrder(s string) (Order, error) {
	for o, name := range orderNames {
		if name == s {
			return Order(o), nil
		}
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

// Walk calls fn for each value in the given order until fn returns false.
func (t *Tree[T]) Walk(o Order, fn func(T) bool) {
	root := t.t.Root()
	switch o {
	case Level:
		abstract.WalkLevelOrder(root, fn)
	case Pre:
		abstract.WalkPreOrder(root, fn)
	case In:
		abstract.WalkInOrder(root, fn)
	case Post:
		abstract.WalkPostOrder(root, fn)
	default:
		panic(fmt.Sprintf("bst: invalid traversal order %d", int(o)))
	}
}

// Collect returns the values of t in the given order, each passed through
// fn. The result is empty, not nil, for an empty tree.
func Collect[T constraints.Ordered, U any](t *Tree[T], o Order, fn func(T) U) []U {
	out := make([]U, 0, t.Len())
	t.Walk(o, func(v T) bool {
		out = append(out, fn(v))
		return true
	})
	return out
}

func (t *Tree[T]) collect(o Order, fn func(T) T) []T {
	if fn == nil {
		fn = func(v T) T { return v }
	}
	return Collect(t, o, fn)
}

// LevelOrder returns the values breadth-first. If fn is non-nil it is
// applied to each value before it is collected.
func (t *Tree[T]) LevelOrder(fn func(T) T) []T { return t.collect(Level, fn) }

// PreOrder returns the values in pre-order, transformed by fn if non-nil.
func (t *Tree[T]) PreOrder(fn func(T) T) []T { return t.collect(Pre, fn) }

// InOrder returns the values in ascending order, transformed by fn if
// non-nil.
func (t *Tree[T]) InOrder(fn func(T) T) []T { return t.collect(In, fn) }

// PostOrder returns the values in post-order, transformed by fn if non-nil.
func (t *Tree[T]) PostOrder(fn func(T) T) []T { return t.collect(Post, fn) }
