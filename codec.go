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
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/ajwerner/bst/internal/abstract"
)

// A Tree encodes as the array of its values in ascending order and decodes
// by rebuilding a height-balanced tree from an array, as MakeTree does.

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON implements json.Marshaler.
func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.InOrder(nil))
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is rejected with
// ErrConstruction.
func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("decoding tree: %w", ErrConstruction)
	}
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decoding tree: %w", err)
	}
	t.reset()
	t.build(values)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t *Tree[T]) MarshalYAML() (interface{}, error) {
	return t.InOrder(nil), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A null sequence is rejected
// with ErrConstruction.
func (t *Tree[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var values []T
	if err := unmarshal(&values); err != nil {
		return fmt.Errorf("decoding tree: %w", err)
	}
	if values == nil {
		return fmt.Errorf("decoding tree: %w", ErrConstruction)
	}
	t.reset()
	t.build(values)
	return nil
}

// reset releases the current nodes and prepares t for a rebuild. Decoders
// may be handed a zero Tree.
func (t *Tree[T]) reset() {
	t.t.Reset()
	t.t = abstract.MakeTree[T](Compare[T])
}
