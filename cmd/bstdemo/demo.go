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
	"log"
	"math/rand"
	"os"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"

	"github.com/ajwerner/bst"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type config struct {
	Input  string
	Count  int
	Seed   int64
	Skew   int
	Format string
	Orders []bst.Order
}

// inputFile is the layout of the file named by --demo.input.
type inputFile struct {
	Values *bst.Tree[int] `yaml:"values"`
}

type traversal struct {
	order  bst.Order
	Order  string `json:"order" yaml:"order"`
	Values []int  `json:"values" yaml:"values"`
}

type report struct {
	Stage      string      `json:"stage" yaml:"stage"`
	Len        int         `json:"len" yaml:"len"`
	Balanced   bool        `json:"balanced" yaml:"balanced"`
	Traversals []traversal `json:"traversals" yaml:"traversals"`
}

var orderTitles = map[bst.Order]string{
	bst.Level: "Level Order",
	bst.Pre:   "Pre Order",
	bst.In:    "In Order",
	bst.Post:  "Post Order",
}

func loadInput(path string) (*bst.Tree[int], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in inputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if in.Values == nil {
		return nil, fmt.Errorf("%s: values: %w", path, bst.ErrConstruction)
	}
	return in.Values, nil
}

func randomValues(rng *rand.Rand, n, lo, hi int) []int {
	values := make([]int, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, lo+rng.Intn(hi-lo+1))
	}
	return values
}

func run(cfg config, w io.Writer, logger *log.Logger) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	var tree *bst.Tree[int]
	if cfg.Input != "" {
		var err error
		if tree, err = loadInput(cfg.Input); err != nil {
			return err
		}
		logger.Printf("loaded %d values from %s", tree.Len(), cfg.Input)
	} else {
		tree = bst.MakeTree(randomValues(rng, cfg.Count, 1, 99))
		logger.Printf("built tree of %d values (seed %d)", tree.Len(), cfg.Seed)
	}
	out := newReporter(w, cfg.Format)
	if err := out.write("initial", tree, cfg.Orders); err != nil {
		return err
	}

	var inserted int
	for _, v := range randomValues(rng, cfg.Skew, 100, 200) {
		if tree.Insert(v) {
			inserted++
		}
	}
	logger.Printf("inserted %d of %d skew values", inserted, cfg.Skew)
	if err := out.write("skewed", tree, cfg.Orders); err != nil {
		return err
	}

	if tree.Rebalance() {
		logger.Printf("rebalanced %d values", tree.Len())
	}
	return out.write("rebalanced", tree, cfg.Orders)
}

type reporter struct {
	w      io.Writer
	format string
	json   *jsoniter.Encoder
}

func newReporter(w io.Writer, format string) *reporter {
	r := &reporter{w: w, format: format}
	if format == formatJSON {
		r.json = jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		r.json.SetIndent("", "  ")
	}
	return r
}

func makeReport(stage string, tree *bst.Tree[int], orders []bst.Order) report {
	r := report{
		Stage:    stage,
		Len:      tree.Len(),
		Balanced: tree.IsBalanced(),
	}
	for _, o := range orders {
		r.Traversals = append(r.Traversals, traversal{
			order:  o,
			Order:  o.String(),
			Values: bst.Collect(tree, o, func(v int) int { return v }),
		})
	}
	return r
}

func (r *reporter) write(stage string, tree *bst.Tree[int], orders []bst.Order) error {
	rep := makeReport(stage, tree, orders)
	switch r.format {
	case formatJSON:
		return r.json.Encode(rep)
	case formatYAML:
		data, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.w, "---\n%s", data)
		return err
	}

	fmt.Fprintf(r.w, "== %s ==\n", rep.Stage)
	printTree(r.w, tree)
	fmt.Fprintf(r.w, "Balanced? %t\n", rep.Balanced)
	for _, t := range rep.Traversals {
		fmt.Fprintf(r.w, "%s:\n%v\n", orderTitles[t.order], t.Values)
	}
	_, err := fmt.Fprintln(r.w)
	return err
}
