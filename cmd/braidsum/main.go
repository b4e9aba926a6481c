// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command braidsum hashes files with braid.Hash, either one at a time
// from the command line or in batches described by a YAML config file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"

	"github.com/braidhash/braid"
)

var (
	dashv      bool
	dashseed   uint64
	dashconfig string
	dashsum    bool
)

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose logging")
	flag.Uint64Var(&dashseed, "seed", 0, "hash seed (ignored when -config is given)")
	flag.StringVar(&dashconfig, "config", "", "batch config file (YAML) of {path, seed} targets")
	flag.BoolVar(&dashsum, "sum", false, "print bytesum instead of hash")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// target is one {path, seed} entry of a batch config file.
type target struct {
	Path string `json:"path"`
	Seed uint64 `json:"seed"`
}

func loadConfig(path string) ([]target, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var targets []target
	if err := yaml.Unmarshal(raw, &targets); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return targets, nil
}

func hashFile(path string, seed uint64) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	st := braid.NewState(seed)
	if _, err := io.Copy(st, f); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return st.Sum64(), nil
}

func sumFile(path string) (uint64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return braid.BytesSum(raw), nil
}

func runOne(path string, seed uint64) error {
	if dashsum {
		v, err := sumFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("%016x  %s\n", v, path)
		return nil
	}
	v, err := hashFile(path, seed)
	if err != nil {
		return err
	}
	fmt.Printf("%016x  %s\n", v, path)
	return nil
}

func main() {
	flag.Parse()

	if dashconfig != "" {
		runID := uuid.New()
		targets, err := loadConfig(dashconfig)
		if err != nil {
			exitf("%s", err)
		}
		if dashv {
			log.Printf("run %s: hashing %d targets from %s", runID, len(targets), dashconfig)
		}
		failed := 0
		for _, tg := range targets {
			if err := runOne(tg.Path, tg.Seed); err != nil {
				log.Printf("run %s: %s", runID, err)
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		exitf("usage: braidsum [-seed N] [-sum] file [file...]\n   or: braidsum -config batch.yaml")
	}
	failed := 0
	for _, path := range args {
		if err := runOne(path, dashseed); err != nil {
			log.Print(err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
