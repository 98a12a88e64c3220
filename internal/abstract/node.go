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

// Node is a single vertex of the tree. Every key in the left subtree
// compares less than key and every key in the right subtree compares
// greater. A node is owned by exactly one parent link.
type Node[K any] struct {
	key         K
	left, right *Node[K]
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K { return n.key }

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// IsLeaf returns whether the node has no children.
func (n *Node[K]) IsLeaf() bool { return n.left == nil && n.right == nil }

// height returns the number of edges on the longest downward path from n.
// An absent node has height -1.
func height[K any](n *Node[K]) int {
	if n == nil {
		return -1
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func (c *config[K]) build(sorted []K) *Node[K] {
	if len(sorted) == 0 {
		return nil
	}
	// Lower middle on even lengths: (start+end)/2 with end inclusive.
	mid := (len(sorted) - 1) / 2
	n := c.np.getNode(sorted[mid])
	n.left = c.build(sorted[:mid])
	n.right = c.build(sorted[mid+1:])
	return n
}

func (c *config[K]) insert(n *Node[K], key K) (_ *Node[K], inserted bool) {
	if n == nil {
		return c.np.getNode(key), true
	}
	switch v := c.cmp(key, n.key); {
	case v < 0:
		n.left, inserted = c.insert(n.left, key)
	case v > 0:
		n.right, inserted = c.insert(n.right, key)
	}
	return n, inserted
}

// remove deletes key from the subtree rooted at n and returns the new
// subtree root.
func (c *config[K]) remove(n *Node[K], key K) (_ *Node[K], removed bool) {
	if n == nil {
		return nil, false
	}
	switch v := c.cmp(key, n.key); {
	case v < 0:
		n.left, removed = c.remove(n.left, key)
		return n, removed
	case v > 0:
		n.right, removed = c.remove(n.right, key)
		return n, removed
	}
	if n.left == nil {
		r := n.right
		c.np.putNode(n)
		return r, true
	}
	if n.right == nil {
		l := n.left
		c.np.putNode(n)
		return l, true
	}

	// Two children: the successor is the leftmost node of the right
	// subtree. Its key moves into n and the successor node is unlinked.
	succParent, succ := n, n.right
	for succ.left != nil {
		succParent, succ = succ, succ.left
	}
	if succParent != n {
		succParent.left = succ.right
	} else {
		succParent.right = succ.right
	}
	n.key = succ.key
	c.np.putNode(succ)
	return n, true
}

func (c *config[K]) find(n *Node[K], key K) *Node[K] {
	if n == nil {
		return nil
	}
	switch v := c.cmp(key, n.key); {
	case v < 0:
		return c.find(n.left, key)
	case v > 0:
		return c.find(n.right, key)
	default:
		return n
	}
}

// depth returns the number of edges from n to the node holding key.
func (c *config[K]) depth(n *Node[K], key K) (int, bool) {
	if n == nil {
		return 0, false
	}
	var d int
	var found bool
	switch v := c.cmp(key, n.key); {
	case v < 0:
		d, found = c.depth(n.left, key)
	case v > 0:
		d, found = c.depth(n.right, key)
	default:
		return 0, true
	}
	return d + 1, found
}
