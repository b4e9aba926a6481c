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

package core

// Generate fills dst deterministically from nonce using one AES round
// per 128-bit output lane: lane i's input is {nonce+i, nonce+i}, its
// key is {nonce XOR Pi[2(i mod 4)], nonce XOR Pi[2(i mod 4)+1]}. Two
// calls with the same nonce and the same len(dst) always produce the
// same bytes; this is a counter-mode mixing construction, not a
// cryptographic cipher.
func Generate(dst []byte, nonce uint64) {
	var lane int
	var i uint64
	for pos := 0; pos < len(dst); pos += 16 {
		input := BlockFromLanes(nonce+i, nonce+i)
		key := BlockFromLanes(nonce^Pi[2*lane], nonce^Pi[2*lane+1])
		block := Round(input, key)
		copy(dst[pos:], block[:])
		i++
		lane = int(i % 4)
	}
}
