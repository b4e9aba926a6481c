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

// Command braidbench reports the throughput of braid.Hash/BytesSum/Generate
// against a buffer of configurable size, alongside golang.org/x/crypto/blake2b
// as a reference point for what a general-purpose hash costs on the same
// machine. It is the out-of-scope "benchmarking harness" collaborator: it
// never reaches into internal/core, only the public braid API.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/braidhash/braid"
	"github.com/braidhash/braid/internal/bitutil"
)

var (
	dashsize int
	dashsecs float64
)

func init() {
	flag.IntVar(&dashsize, "size", 1<<20, "buffer size in bytes")
	flag.Float64Var(&dashsecs, "time", 1.0, "seconds to run each benchmark")
}

func rate(bytesDone int64, elapsed time.Duration) float64 {
	return float64(bytesDone) / elapsed.Seconds() / (1 << 20)
}

func benchHash(buf []byte) {
	deadline := time.Now().Add(time.Duration(dashsecs * float64(time.Second)))
	var n int64
	start := time.Now()
	for time.Now().Before(deadline) {
		braid.Hash(buf, 0)
		n += int64(len(buf))
	}
	fmt.Printf("braid.Hash:     %8.1f MiB/s\n", rate(n, time.Since(start)))
}

func benchBytesSum(buf []byte) {
	deadline := time.Now().Add(time.Duration(dashsecs * float64(time.Second)))
	var n int64
	start := time.Now()
	for time.Now().Before(deadline) {
		braid.BytesSum(buf)
		n += int64(len(buf))
	}
	fmt.Printf("braid.BytesSum: %8.1f MiB/s\n", rate(n, time.Since(start)))
}

func benchGenerate(buf []byte) {
	deadline := time.Now().Add(time.Duration(dashsecs * float64(time.Second)))
	var n int64
	start := time.Now()
	for time.Now().Before(deadline) {
		braid.Generate(buf, 0)
		n += int64(len(buf))
	}
	fmt.Printf("braid.Generate: %8.1f MiB/s\n", rate(n, time.Since(start)))
}

func benchBlake2b(buf []byte) {
	deadline := time.Now().Add(time.Duration(dashsecs * float64(time.Second)))
	var n int64
	start := time.Now()
	for time.Now().Before(deadline) {
		h, err := blake2b.New256(nil)
		if err != nil {
			log.Fatalf("blake2b.New256: %v", err)
		}
		h.Write(buf)
		h.Sum(nil)
		n += int64(len(buf))
	}
	fmt.Printf("blake2b.Sum256: %8.1f MiB/s (reference)\n", rate(n, time.Since(start)))
}

func main() {
	flag.Parse()

	size := int(bitutil.AlignUp(uint(dashsize), 64))
	buf := make([]byte, size)
	if err := bitutil.RandomFillSlice(buf); err != nil {
		log.Fatalf("filling benchmark buffer: %v", err)
	}

	fmt.Printf("buffer size: %d bytes, %.1f seconds per benchmark\n", size, dashsecs)
	benchHash(buf)
	benchBytesSum(buf)
	benchGenerate(buf)
	benchBlake2b(buf)
}
