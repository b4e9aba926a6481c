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

// Package bitutil holds small alignment and randomness helpers shared
// by the PRNG and CLI tooling built on top of internal/core.
package bitutil

import "golang.org/x/exp/constraints"

// IsAligned reports whether v is an integer multiple of alignment.
func IsAligned[T constraints.Unsigned](v, alignment T) bool {
	return v%alignment == 0
}

// AlignDown returns v rounded down to the nearest multiple of alignment.
func AlignDown[T constraints.Unsigned](v, alignment T) T {
	return (v / alignment) * alignment
}

// AlignUp returns v rounded up to the nearest multiple of alignment,
// used to round a requested Generate buffer length up to a whole
// number of 16-byte AES lanes when a caller wants to avoid a partial
// final lane.
func AlignUp[T constraints.Unsigned](v, alignment T) T {
	return ((v + alignment - 1) / alignment) * alignment
}

// LaneCount returns the number of 16-byte lanes Generate would produce
// to cover n bytes of output, i.e. ceil(n/16).
func LaneCount[T constraints.Unsigned](n T) T {
	return (n + 15) / 16
}
