// Copyright 2018 The Cockroach Authors.
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

package abstract

// Iterator is responsible for search and in-order traversal within a Tree.
// The top of the stack is the current node; the rest of the stack holds
// the ancestors whose keys follow it.
type Iterator[K any] struct {
	t *Tree[K]
	s iterStack[K]
}

// Reset invalidates the iterator.
func (i *Iterator[K]) Reset() {
	i.s.reset()
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K]) SeekGE(key K) {
	i.Reset()
	for n := i.t.root; n != nil; {
		c := i.t.cfg.cmp(key, n.key)
		if c > 0 {
			n = n.right
			continue
		}
		i.s.push(n)
		if c == 0 {
			return
		}
		n = n.left
	}
}

// First seeks to the first key in the Tree.
func (i *Iterator[K]) First() {
	i.Reset()
	i.descendLeft(i.t.root)
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K]) Next() {
	if i.s.len() == 0 {
		return
	}
	n := i.s.pop()
	i.descendLeft(n.right)
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K]) Valid() bool {
	return i.s.len() > 0
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K]) Key() K {
	return i.s.top().key
}

func (i *Iterator[K]) descendLeft(n *Node[K]) {
	for ; n != nil; n = n.left {
		i.s.push(n)
	}
}
