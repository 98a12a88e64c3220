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

// Iterator iterates a Tree in ascending order. It is invalidated by any
// mutation of the Tree.
type Iterator[T constraints.Ordered] struct {
	it abstract.Iterator[T]
}

// MakeIter returns an unpositioned Iterator over t.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{t.t.MakeIter()}
}

// First positions the iterator at the smallest value.
func (it *Iterator[T]) First() { it.it.First() }

// SeekGE positions the iterator at the smallest value >= v.
func (it *Iterator[T]) SeekGE(v T) { it.it.SeekGE(v) }

// Next advances to the next larger value.
func (it *Iterator[T]) Next() { it.it.Next() }

// Valid returns whether the iterator is positioned at a value.
func (it *Iterator[T]) Valid() bool { return it.it.Valid() }

// Cur returns the current value. It is illegal to call Cur if the iterator
// is not valid.
func (it *Iterator[T]) Cur() T { return it.it.Key() }
