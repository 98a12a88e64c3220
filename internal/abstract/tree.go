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

// Tree is an unbalanced binary search tree of unique keys ordered by the
// comparison function in its Config. Insertions never rebalance; Rebalance
// rebuilds the whole tree on demand.
type Tree[K any] struct {
	cfg    config[K]
	root   *Node[K]
	length int
}

// MakeTree constructs an empty Tree ordered by cmp.
func MakeTree[K any](cmp func(K, K) int) Tree[K] {
	return Tree[K]{
		cfg: makeConfig(cmp),
	}
}

// Config returns the Tree's config.
func (t *Tree[K]) Config() *Config[K] { return &t.cfg.Config }

// Root returns the root node or nil if the tree is empty. Nodes are
// recycled, so a node must not be retained across mutations of the Tree.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.length }

// Build discards the current contents and builds a height-balanced tree
// from keys, which must be sorted ascending and free of duplicates.
func (t *Tree[K]) Build(keys []K) {
	t.Reset()
	t.root = t.cfg.build(keys)
	t.length = len(keys)
}

// Reset removes all keys from the tree.
func (t *Tree[K]) Reset() {
	t.cfg.np.putTree(t.root)
	t.root = nil
	t.length = 0
}

// Insert adds key to the tree. It returns false if the key was already
// present, in which case the tree is unchanged.
func (t *Tree[K]) Insert(key K) (inserted bool) {
	t.root, inserted = t.cfg.insert(t.root, key)
	if inserted {
		t.length++
	}
	return inserted
}

// Delete removes key from the tree. It returns false if the key was not
// present.
func (t *Tree[K]) Delete(key K) (removed bool) {
	t.root, removed = t.cfg.remove(t.root, key)
	if removed {
		t.length--
	}
	return removed
}

// Find returns the node holding key, or nil.
func (t *Tree[K]) Find(key K) *Node[K] {
	return t.cfg.find(t.root, key)
}

// Height returns the height of the subtree rooted at the node holding key.
// A leaf has height 0.
func (t *Tree[K]) Height(key K) (int, bool) {
	n := t.cfg.find(t.root, key)
	if n == nil {
		return 0, false
	}
	return height(n), true
}

// Depth returns the number of edges between the root and the node holding
// key.
func (t *Tree[K]) Depth(key K) (int, bool) {
	return t.cfg.depth(t.root, key)
}

// IsBalanced reports whether the heights of the root's two subtrees differ
// by at most one. Only the root is examined; internal subtrees may be
// arbitrarily skewed. An empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	if t.root == nil {
		return true
	}
	d := height(t.root.left) - height(t.root.right)
	return d >= -1 && d <= 1
}

// Rebalance rebuilds the tree from its in-order keys if IsBalanced is
// false. It returns whether a rebuild happened.
func (t *Tree[K]) Rebalance() (rebuilt bool) {
	if t.IsBalanced() {
		return false
	}
	keys := make([]K, 0, t.length)
	WalkInOrder(t.root, func(k K) bool {
		keys = append(keys, k)
		return true
	})
	t.Build(keys)
	return true
}

// MakeIter returns an in-order Iterator over the tree. The iterator is
// invalidated by any mutation of the tree.
func (t *Tree[K]) MakeIter() Iterator[K] {
	return Iterator[K]{t: t}
}
