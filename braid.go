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

// Package braid is a portable, high-throughput, non-cryptographic
// hash and pseudo-random generator core built on a single AES round as
// its only mixing primitive. Hash and Generate are bit-exact for a
// given input on every target: the same inputs always produce the
// same outputs, regardless of which backend internal/core selects at
// runtime. There is no cryptographic security claim; callers that need
// one should reach for a real cipher instead.
package braid

import (
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/braidhash/braid/internal/bitutil"
	"github.com/braidhash/braid/internal/core"
)

// Hash returns the 64-bit keyed hash of data. It is identical,
// byte-for-byte, to folding a State that has streamed the same bytes
// in any partition.
func Hash(data []byte, seed uint64) uint64 {
	return core.Hash(data, seed)
}

// BytesSum returns the unsigned 64-bit sum of every byte in data.
func BytesSum(data []byte) uint64 {
	return core.BytesSum(data)
}

// Generate fills dst deterministically from nonce: two calls with the
// same nonce and the same len(dst) always produce identical bytes.
func Generate(dst []byte, nonce uint64) {
	core.Generate(dst, nonce)
}

// RandomSeed returns a seed suitable for Hash/State drawn from a
// cryptographically strong random source, for callers that want an
// unpredictable keying instead of a fixed one.
func RandomSeed() (uint64, error) {
	var out [1]uint64
	if err := bitutil.RandomFillSlice(out[:]); err != nil {
		return 0, err
	}
	return out[0], nil
}

// RandomNonce returns a nonce suitable for Generate, drawn the same
// way as RandomSeed.
func RandomNonce() (uint64, error) {
	return RandomSeed()
}

// Hashable is the set of integer types HashValue and HashSlice accept.
type Hashable interface {
	constraints.Integer
}

// HashValue hashes the in-memory representation of v: a convenience
// wrapper over Hash for fixed-width integer keys, grounded on the same
// generic-over-Hashable shape as this package's SIMD-hash ancestor.
func HashValue[T Hashable](v T, seed uint64) uint64 {
	var b []byte
	h := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	h.Data = uintptr(unsafe.Pointer(&v))
	h.Len = int(unsafe.Sizeof(v))
	h.Cap = h.Len
	return Hash(b, seed)
}

// HashSlice hashes the in-memory representation of s: a convenience
// wrapper over Hash for slices of fixed-width integers.
func HashSlice[T Hashable](s []T, seed uint64) uint64 {
	if len(s) == 0 {
		return Hash(nil, seed)
	}
	var b []byte
	h := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&s))
	h.Data = sh.Data
	h.Len = sh.Len * int(unsafe.Sizeof(s[0]))
	h.Cap = h.Len
	return Hash(b, seed)
}
