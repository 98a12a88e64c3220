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
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/bst/internal/abstract"
)

// Node is a read-only view of a single vertex of a Tree. It is valid until
// the next call to Insert, Delete or Rebalance on that Tree.
type Node[T constraints.Ordered] struct {
	n *abstract.Node[T]
}

func makeNode[T constraints.Ordered](n *abstract.Node[T]) (Node[T], bool) {
	return Node[T]{n: n}, n != nil
}

// Value returns the value stored in the node.
func (n Node[T]) Value() T { return n.n.Key() }

// Left returns the root of the left subtree, or false if it is absent.
func (n Node[T]) Left() (Node[T], bool) { return makeNode(n.n.Left()) }

// Right returns the root of the right subtree, or false if it is absent.
func (n Node[T]) Right() (Node[T], bool) { return makeNode(n.n.Right()) }
