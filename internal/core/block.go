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

// Package core implements the reference hash/PRNG algorithm and its
// cross-backend equivalence layer. Nothing here allocates on the heap
// or touches anything outside caller-provided memory; the only shared
// state is the read-only Pi and Shuffle tables below.
package core

import "encoding/binary"

// Block128 is one 128-bit AES block, addressable as 16 bytes or as a
// little-endian pair of u64 halves on every target, big- or
// little-endian.
type Block128 [16]byte

// Lanes returns the block as a little-endian (lo, hi) pair of u64 halves.
func (b Block128) Lanes() (lo, hi uint64) {
	return binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])
}

// BlockFromLanes packs a little-endian (lo, hi) pair of u64 halves into a block.
func BlockFromLanes(lo, hi uint64) Block128 {
	var b Block128
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	return b
}

// AddLanes returns the lane-wise 64-bit sum of a and b, wrapping modulo 2^64.
func (a Block128) AddLanes(b Block128) Block128 {
	alo, ahi := a.Lanes()
	blo, bhi := b.Lanes()
	return BlockFromLanes(alo+blo, ahi+bhi)
}

// XOR returns the bytewise XOR of a and b.
func (a Block128) XOR(b Block128) Block128 {
	var out Block128
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Quad is four 128-bit blocks treated as one unit: the four parallel
// lanes of the full state. It plays the same role the teacher's
// Key128Quad plays for key material, except a Quad here carries data,
// never a derived AES key schedule.
type Quad [4]Block128

// XOR returns the lane-wise XOR of q and o.
func (q Quad) XOR(o Quad) Quad {
	var out Quad
	for i := range out {
		out[i] = q[i].XOR(o[i])
	}
	return out
}

// Pi holds 1024 bits of the hexadecimal digits of Pi, used to derive
// the initial keying material for both the hash and the PRNG.
var Pi = [16]uint64{
	0x243F6A8885A308D3, 0x13198A2E03707344, 0xA4093822299F31D0, 0x082EFA98EC4E6C89,
	0x452821E638D01377, 0xBE5466CF34E90C6C, 0xC0AC29B7C97C50DD, 0x3F84D5B5B5470917,
	0x9216D5D98979FB1B, 0xD1310BA698DFB5AC, 0x2FFD72DBD01ADFB7, 0xB8E1AFED6A267E96,
	0xBA7C9045F12C7F99, 0x24A19947B3916CF7, 0x0801F2E2858EFC16, 0x636920D871574E69,
}

// Shuffle is the byte permutation applied as the additive-mix step
// before every lane-wise 64-bit add: Shuffle[i] gives the source byte
// index feeding destination byte i.
var Shuffle = [16]byte{
	0x04, 0x0b, 0x09, 0x06, 0x08, 0x0d, 0x0f, 0x05,
	0x0e, 0x03, 0x01, 0x0c, 0x00, 0x07, 0x0a, 0x02,
}

// ShuffleBlock applies the Shuffle permutation to one 128-bit lane.
func ShuffleBlock(b Block128) Block128 {
	var out Block128
	for i, src := range Shuffle {
		out[i] = b[src]
	}
	return out
}
