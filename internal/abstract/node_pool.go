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

import "sync"

type nodePool[K any] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

// getNodePool returns the pool shared by every tree of key type K. The
// typed nil pointer is a distinct map key per instantiation.
func getNodePool[K any]() *nodePool[K] {
	var nilNode *Node[K]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[K]())
	}
	return v.(*nodePool[K])
}

func newNodePool[K any]() *nodePool[K] {
	np := nodePool[K]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(Node[K])
		},
	}
	return &np
}

func (np *nodePool[K]) getNode(key K) *Node[K] {
	n := np.pool.Get().(*Node[K])
	n.key = key
	return n
}

func (np *nodePool[K]) putNode(n *Node[K]) {
	*n = Node[K]{}
	np.pool.Put(n)
}

// putTree releases every node in the subtree rooted at n.
func (np *nodePool[K]) putTree(n *Node[K]) {
	if n == nil {
		return
	}
	np.putTree(n.left)
	np.putTree(n.right)
	np.putNode(n)
}
