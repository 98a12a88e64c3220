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

package main

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"

	"github.com/ajwerner/bst"
)

// printTree draws t sideways: the right subtree above its parent and the
// left subtree below.
func printTree[T constraints.Ordered](w io.Writer, t *bst.Tree[T]) {
	if root, ok := t.Root(); ok {
		printNode(w, root, "", true)
	}
}

func printNode[T constraints.Ordered](w io.Writer, n bst.Node[T], prefix string, isLeft bool) {
	if r, ok := n.Right(); ok {
		printNode(w, r, prefix+pick(isLeft, "│   ", "    "), false)
	}
	fmt.Fprintf(w, "%s%s%v\n", prefix, pick(isLeft, "└── ", "┌── "), n.Value())
	if l, ok := n.Left(); ok {
		printNode(w, l, prefix+pick(isLeft, "    ", "│   "), true)
	}
}

func pick(left bool, ifLeft, ifRight string) string {
	if left {
		return ifLeft
	}
	return ifRight
}
