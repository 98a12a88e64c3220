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

// iterStack represents a stack of nodes whose keys have not yet been
// visited, which captures iteration state as an Iterator descends a Tree.
type iterStack[K any] struct {
	a    iterStackArr[K]
	aLen int16 // -1 when using s
	s    []*Node[K]
}

const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[K any] [iterStackDepth]*Node[K]

func (is *iterStack[K]) push(n *Node[K]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*Node[K], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack[K]) pop() *Node[K] {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[K]) top() *Node[K] {
	if is.aLen == -1 {
		return is.s[len(is.s)-1]
	}
	return is.a[is.aLen-1]
}

func (is *iterStack[K]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

func (is *iterStack[K]) reset() {
	if is.aLen == -1 {
		is.s = is.s[:0]
	} else {
		is.aLen = 0
	}
}

// nodeQueue is a FIFO of nodes used for breadth-first walks.
type nodeQueue[K any] struct {
	head int
	s    []*Node[K]
}

func (q *nodeQueue[K]) push(n *Node[K]) { q.s = append(q.s, n) }

func (q *nodeQueue[K]) pop() *Node[K] {
	n := q.s[q.head]
	q.s[q.head] = nil
	q.head++
	return n
}

func (q *nodeQueue[K]) len() int { return len(q.s) - q.head }
