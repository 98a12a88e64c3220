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
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrdered checks the search tree property over every node reachable
// from n and returns the number of nodes visited.
func assertOrdered[T int | string](t *testing.T, n Node[T], ok bool, lo, hi *T) int {
	t.Helper()
	if !ok {
		return 0
	}
	v := n.Value()
	if lo != nil {
		require.Greater(t, v, *lo)
	}
	if hi != nil {
		require.Less(t, v, *hi)
	}
	l, lok := n.Left()
	r, rok := n.Right()
	return 1 + assertOrdered(t, l, lok, lo, &v) + assertOrdered(t, r, rok, &v, hi)
}

func checkTree(t *testing.T, tree *Tree[int]) {
	t.Helper()
	root, ok := tree.Root()
	require.Equal(t, tree.Len(), assertOrdered(t, root, ok, nil, nil))
}

func TestMakeTree(t *testing.T) {
	input := []int{20, 30, 40, 32, 34, 36, 50, 70, 60, 65, 80, 75, 85}
	orig := append([]int(nil), input...)
	tree := MakeTree(input)
	require.Equal(t, orig, input, "input must not be modified")

	root, ok := tree.Root()
	require.True(t, ok)
	require.Equal(t, 50, root.Value())
	require.Equal(t,
		[]int{20, 30, 32, 34, 36, 40, 50, 60, 65, 70, 75, 80, 85},
		tree.InOrder(nil))
	require.Equal(t, 13, tree.Len())
	require.True(t, tree.IsBalanced())
	checkTree(t, tree)
}

func TestMakeTreeDuplicates(t *testing.T) {
	tree := MakeTree([]int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324, 300, 240, 305, 400, 350, 70, 330, 24, 25})
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9, 23, 24, 25, 67, 70, 240, 300, 305, 324, 330, 350, 400, 6345}, tree.InOrder(nil))
	require.Equal(t, 20, tree.Len())
	checkTree(t, tree)
}

func TestEmptyTree(t *testing.T) {
	for _, tree := range []*Tree[int]{MakeTree[int](nil), MakeTree([]int{})} {
		_, ok := tree.Root()
		require.False(t, ok)
		require.Equal(t, 0, tree.Len())
		require.True(t, tree.IsBalanced())
		require.False(t, tree.Rebalance())
		for _, got := range [][]int{
			tree.LevelOrder(nil), tree.PreOrder(nil), tree.InOrder(nil), tree.PostOrder(nil),
		} {
			require.NotNil(t, got)
			require.Empty(t, got)
		}

		_, err := tree.Find(1)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = tree.Height(1)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = tree.Depth(1)
		require.ErrorIs(t, err, ErrNotFound)
		require.False(t, tree.Delete(1))
	}
}

func TestInsert(t *testing.T) {
	tree := MakeTree[int](nil)
	require.True(t, tree.Insert(5))
	root, ok := tree.Root()
	require.True(t, ok)
	require.Equal(t, 5, root.Value())

	require.True(t, tree.Insert(3))
	require.True(t, tree.Insert(8))
	require.False(t, tree.Insert(8))
	require.Equal(t, 3, tree.Len())
	require.Equal(t, []int{3, 5, 8}, tree.InOrder(nil))

	n, err := tree.Find(8)
	require.NoError(t, err)
	require.Equal(t, 8, n.Value())
	_, ok = n.Left()
	require.False(t, ok)
	require.True(t, tree.Contains(3))
	require.False(t, tree.Contains(4))
}

func TestDelete(t *testing.T) {
	tree := MakeTree([]int{20, 30, 40, 32, 34, 36, 50, 70, 60, 65, 80, 75, 85})

	t.Run("two children root", func(t *testing.T) {
		// The successor of 50 is 60, the leftmost node of the right
		// subtree; its right child 65 moves up to 60's former parent.
		require.Equal(t, []int{50, 32, 70, 20, 36, 60, 80, 30, 34, 40, 65, 75, 85}, tree.LevelOrder(nil))
		require.True(t, tree.Delete(50))
		root, _ := tree.Root()
		require.Equal(t, 60, root.Value())
		n, err := tree.Find(70)
		require.NoError(t, err)
		l, _ := n.Left()
		require.Equal(t, 65, l.Value())
		_, ok := l.Left()
		require.False(t, ok)
		_, err = tree.Find(50)
		require.ErrorIs(t, err, ErrNotFound)
		checkTree(t, tree)
	})
	t.Run("single child and leaf", func(t *testing.T) {
		require.True(t, tree.Delete(20))
		n, err := tree.Find(32)
		require.NoError(t, err)
		l, _ := n.Left()
		require.Equal(t, 30, l.Value())

		require.True(t, tree.Delete(30))
		require.False(t, tree.Delete(30))
		n, err = tree.Find(32)
		require.NoError(t, err)
		_, ok := n.Left()
		require.False(t, ok)
		r, _ := n.Right()
		require.Equal(t, 36, r.Value())
		checkTree(t, tree)
	})
	require.Equal(t, []int{32, 34, 36, 40, 60, 65, 70, 75, 80, 85}, tree.InOrder(nil))
}

func TestHeightDepth(t *testing.T) {
	tree := MakeTree([]int{20, 30, 40, 32, 34, 36, 50, 70, 60, 65, 80, 75, 85})
	for _, tc := range []struct {
		v             int
		height, depth int
	}{
		{50, 3, 0},
		{32, 2, 1},
		{70, 2, 1},
		{20, 1, 2},
		{85, 0, 3},
		{65, 0, 3},
	} {
		t.Run(strconv.Itoa(tc.v), func(t *testing.T) {
			h, err := tree.Height(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.height, h)
			d, err := tree.Depth(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.depth, d)
		})
	}
	_, err := tree.Height(51)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = tree.Depth(51)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTraversals(t *testing.T) {
	tree := MakeTree([]int{1, 2, 3, 4, 5, 6, 7})
	double := func(v int) int { return v * 2 }

	require.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, tree.LevelOrder(nil))
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, tree.PreOrder(nil))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.InOrder(nil))
	require.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, tree.PostOrder(nil))
	require.Equal(t, []int{8, 4, 12, 2, 6, 10, 14}, tree.LevelOrder(double))
	require.Equal(t, []int{2, 6, 4, 10, 14, 12, 8}, tree.PostOrder(double))

	require.Equal(t,
		[]string{"1", "2", "3", "4", "5", "6", "7"},
		Collect(tree, In, strconv.Itoa))

	var visited []int
	tree.Walk(Pre, func(v int) bool {
		visited = append(visited, v)
		return len(visited) < 3
	})
	require.Equal(t, []int{4, 2, 1}, visited)
	require.Panics(t, func() { tree.Walk(Order(42), func(int) bool { return true }) })
}

func TestOrderString(t *testing.T) {
	for _, o := range []Order{Level, Pre, In, Post} {
		parsed, err := ParseOrder(o.String())
		require.NoError(t, err)
		require.Equal(t, o, parsed)
	}
	require.Equal(t, "Order(9)", Order(9).String())
	_, err := ParseOrder("sideways")
	require.Error(t, err)
}

func TestRebalance(t *testing.T) {
	values := make([]int, 0, 99)
	for i := 1; i <= 99; i++ {
		values = append(values, i)
	}
	tree := MakeTree(values)
	require.True(t, tree.IsBalanced())

	before := [][]int{tree.LevelOrder(nil), tree.PreOrder(nil), tree.InOrder(nil), tree.PostOrder(nil)}
	require.False(t, tree.Rebalance())
	after := [][]int{tree.LevelOrder(nil), tree.PreOrder(nil), tree.InOrder(nil), tree.PostOrder(nil)}
	require.Equal(t, before, after)

	for i := 100; i <= 200; i++ {
		require.True(t, tree.Insert(i))
	}
	require.False(t, tree.IsBalanced())
	inOrder := tree.InOrder(nil)

	require.True(t, tree.Rebalance())
	require.True(t, tree.IsBalanced())
	require.Equal(t, inOrder, tree.InOrder(nil))
	require.Equal(t, 200, tree.Len())
	checkTree(t, tree)

	// Rebuilt trees have logarithmic height.
	root, _ := tree.Root()
	h, err := tree.Height(root.Value())
	require.NoError(t, err)
	require.Equal(t, 7, h)
}

func TestShallowBalance(t *testing.T) {
	// Both root subtrees have height 2 but the left one is a chain.
	tree := MakeTree[int](nil)
	for _, v := range []int{10, 5, 4, 3, 15, 12, 18, 20} {
		tree.Insert(v)
	}
	require.True(t, tree.IsBalanced())
	h, err := tree.Height(5)
	require.NoError(t, err)
	require.Equal(t, 2, h)
	require.False(t, tree.Rebalance())
	require.Equal(t, []int{10, 5, 15, 4, 12, 18, 3, 20}, tree.LevelOrder(nil))
}

func TestIterator(t *testing.T) {
	tree := MakeTree([]int{9, 3, 7, 1, 5})
	it := tree.MakeIter()
	var got []int
	for it.First(); it.Valid(); it.Next() {
		got = append(got, it.Cur())
	}
	require.Equal(t, []int{1, 3, 5, 7, 9}, got)

	it.SeekGE(4)
	require.True(t, it.Valid())
	require.Equal(t, 5, it.Cur())
	it.SeekGE(10)
	require.False(t, it.Valid())
}

func TestStrings(t *testing.T) {
	tree := MakeTree([]string{"pear", "apple", "fig", "apple"})
	require.Equal(t, []string{"apple", "fig", "pear"}, tree.InOrder(nil))
	root, _ := tree.Root()
	require.Equal(t, 3, assertOrdered(t, root, true, nil, nil))
}

func TestRandomized(t *testing.T) {
	t.Parallel()
	const maxN = 1000
	N := rand.Intn(maxN) + 1
	tree := MakeTree[int](nil)
	present := map[int]bool{}
	for i := 0; i < 4*N; i++ {
		v := rand.Intn(N)
		if rand.Float64() < .3 {
			require.Equal(t, present[v], tree.Delete(v))
			delete(present, v)
			_, err := tree.Find(v)
			require.ErrorIs(t, err, ErrNotFound)
			continue
		}
		require.Equal(t, !present[v], tree.Insert(v))
		present[v] = true
		n, err := tree.Find(v)
		require.NoError(t, err)
		require.Equal(t, v, n.Value())
	}
	checkTree(t, tree)

	exp := make([]int, 0, len(present))
	for v := range present {
		exp = append(exp, v)
	}
	sort.Ints(exp)
	require.Equal(t, exp, tree.InOrder(nil))

	tree.Rebalance()
	require.True(t, tree.IsBalanced())
	require.Equal(t, exp, tree.InOrder(nil))
	checkTree(t, tree)
}
