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

import "errors"

var (
	// ErrNotFound indicates that a value is not stored in the tree. It is
	// returned for every lookup on an empty tree.
	ErrNotFound = errors.New("value not found")

	// ErrConstruction indicates that a collection of values was required
	// to build a tree but none was supplied.
	ErrConstruction = errors.New("no collection to build tree from")
)
