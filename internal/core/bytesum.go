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

// BytesSum returns the unsigned 64-bit sum of every byte in data,
// wrapping modulo 2^64. There is no seed and no padding; a SIMD
// backend would split the buffer into aligned head/body/tail and
// accumulate lanes in parallel, but the result is defined to be the
// same regardless of how the bytes are grouped, since addition mod
// 2^64 is associative and commutative.
func BytesSum(data []byte) uint64 {
	var sum uint64
	for _, b := range data {
		sum += uint64(b)
	}
	return sum
}
