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

// Hash computes the single-shot 64-bit hash of data keyed by seed. It
// dispatches to the minimal (≤64 bytes) or full (>64 bytes) state per
// §4.4: the two are structurally different algorithms, not a
// difference in how many times the same loop runs, so the boundary is
// exact rather than approximate.
func Hash(data []byte, seed uint64) uint64 {
	if len(data) <= 64 {
		return minimalDispatch(data, seed)
	}
	return hashLong(data, seed)
}
