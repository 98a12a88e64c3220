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

// bstdemo builds a binary search tree from sample data, skews it with
// large insertions, rebalances it and prints the tree after each step.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajwerner/bst"
)

const (
	cfgInput  = "demo.input"
	cfgCount  = "demo.count"
	cfgSeed   = "demo.seed"
	cfgSkew   = "demo.skew"
	cfgFormat = "demo.format"
	cfgOrders = "demo.orders"
)

var rootCmd = &cobra.Command{
	Use:          "bstdemo",
	Short:        "build, skew and rebalance a binary search tree",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return run(cfg, os.Stdout, log.Default())
	},
}

// RegisterFlags registers the configuration flags with the provided
// command and binds them into viper.
func RegisterFlags(cmd *cobra.Command) {
	if !cmd.Flags().Parsed() {
		cmd.Flags().String(cfgInput, "", "YAML file with a values list to build the tree from")
		cmd.Flags().Int(cfgCount, 20, "Number of random values in [1, 99] when no input file is given")
		cmd.Flags().Int64(cfgSeed, 0, "Random seed (0 uses the current time)")
		cmd.Flags().Int(cfgSkew, 5, "Number of random values in [100, 200] inserted to unbalance the tree")
		cmd.Flags().String(cfgFormat, "text", "Output format: text, json or yaml")
		cmd.Flags().StringSlice(cfgOrders, []string{"level", "pre", "in", "post"}, "Traversal orders to print")
	}

	for _, v := range []string{
		cfgInput,
		cfgCount,
		cfgSeed,
		cfgSkew,
		cfgFormat,
		cfgOrders,
	} {
		_ = viper.BindPFlag(v, cmd.Flags().Lookup(v))
	}
}

func loadConfig() (config, error) {
	cfg := config{
		Input:  viper.GetString(cfgInput),
		Count:  viper.GetInt(cfgCount),
		Seed:   viper.GetInt64(cfgSeed),
		Skew:   viper.GetInt(cfgSkew),
		Format: viper.GetString(cfgFormat),
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	switch cfg.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return config{}, fmt.Errorf("%s: unknown format %q", cfgFormat, cfg.Format)
	}
	if cfg.Count < 0 || cfg.Skew < 0 {
		return config{}, fmt.Errorf("%s and %s must not be negative", cfgCount, cfgSkew)
	}
	for _, name := range viper.GetStringSlice(cfgOrders) {
		o, err := bst.ParseOrder(strings.TrimSpace(name))
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", cfgOrders, err)
		}
		cfg.Orders = append(cfg.Orders, o)
	}
	return cfg, nil
}

func init() {
	viper.SetEnvPrefix("bstdemo")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	RegisterFlags(rootCmd)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bstdemo: ")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
