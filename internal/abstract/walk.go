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

// The Walk functions visit every key of the subtree rooted at n in their
// respective order until fn returns false. They return false if the walk
// was stopped early.

// WalkPreOrder visits a node, then its left subtree, then its right subtree.
func WalkPreOrder[K any](n *Node[K], fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.key) && WalkPreOrder(n.left, fn) && WalkPreOrder(n.right, fn)
}

// WalkInOrder visits keys in ascending order.
func WalkInOrder[K any](n *Node[K], fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return WalkInOrder(n.left, fn) && fn(n.key) && WalkInOrder(n.right, fn)
}

// WalkPostOrder visits both subtrees before the node itself.
func WalkPostOrder[K any](n *Node[K], fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return WalkPostOrder(n.left, fn) && WalkPostOrder(n.right, fn) && fn(n.key)
}

// WalkLevelOrder visits keys breadth-first, left to right within a level.
func WalkLevelOrder[K any](n *Node[K], fn func(K) bool) bool {
	if n == nil {
		return true
	}
	var q nodeQueue[K]
	q.push(n)
	for q.len() > 0 {
		cur := q.pop()
		if !fn(cur.key) {
			return false
		}
		if cur.left != nil {
			q.push(cur.left)
		}
		if cur.right != nil {
			q.push(cur.right)
		}
	}
	return true
}
