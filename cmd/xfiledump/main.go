// Copyright 2024 The xfile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/nightdive-tools/xfile"
)

// version is the dumper's own release tag. The version subcommand prints it
// in x/mod/semver canonical form when it is a valid semantic version, and
// verbatim otherwise.
const version = "v0.1.0"

var (
	strict    bool
	jsonOut   bool
	dumpKind  string
	configPth string
)

// fileConfig mirrors the subset of Options a user may want to pin in a
// checked-in config file rather than pass as flags every time.
type fileConfig struct {
	StrictUnknownKinds bool   `toml:"strict_unknown_kinds"`
	MaxStringLength    uint32 `toml:"max_string_length"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

func prettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

func dump(cmd *cobra.Command, args []string) {
	path := args[0]

	cfg, err := loadConfig(configPth)
	if err != nil {
		log.Fatalf("xfiledump: reading config %s: %v", configPth, err)
	}

	opts := &xfile.Options{
		StrictUnknownKinds: strict || cfg.StrictUnknownKinds,
		MaxStringLength:    cfg.MaxStringLength,
	}

	d, err := xfile.Open(path, opts)
	if err != nil {
		log.Fatalf("xfiledump: opening %s: %v", path, err)
	}
	defer d.Close()

	result, err := d.Decode()
	if err != nil {
		log.Printf("xfiledump: decoding %s: %v", path, err)
		os.Exit(1)
	}

	var assets []xfile.Asset
	if dumpKind != "" {
		for _, a := range result.Assets {
			if a.Kind.String() == dumpKind {
				assets = append(assets, a)
			}
		}
	} else {
		assets = result.Assets
	}

	if jsonOut {
		fmt.Println(prettyJSON(struct {
			Assets   []xfile.Asset   `json:"assets"`
			Warnings []xfile.Warning `json:"warnings"`
		}{Assets: assets, Warnings: result.Warnings}))
	} else {
		for _, a := range assets {
			fmt.Printf("%s\t%s\n", a.Kind, a.Name)
		}
		for _, w := range result.Warnings {
			fmt.Fprintln(os.Stderr, w.String())
		}
	}

	if len(result.Warnings) > 0 && strict {
		os.Exit(2)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "xfiledump",
		Short: "Dumps the contents of an XFile container",
		Long:  "xfiledump reads a Fastfile/XFile container and prints its decoded asset list",
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			if !semver.IsValid(version) {
				fmt.Println(version)
				return
			}
			fmt.Printf("xfiledump %s\n", semver.Canonical(version))
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump <path>",
		Short: "Decode an XFile and print its assets",
		Args:  cobra.ExactArgs(1),
		Run:   dump,
	}
	dumpCmd.Flags().BoolVar(&strict, "strict", false, "promote recoverable warnings to fatal errors")
	dumpCmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	dumpCmd.Flags().StringVar(&dumpKind, "dump-kind", "", "only print assets of this kind")
	dumpCmd.Flags().StringVar(&configPth, "config", "", "path to a TOML config file")

	rootCmd.AddCommand(versionCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
