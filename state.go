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

package braid

import (
	"hash"

	"github.com/braidhash/braid/internal/core"
)

// State is an incremental hash keyed by a 64-bit seed. It implements
// hash.Hash64, so it can be used anywhere the standard library expects
// a streaming hash (io.Writer-based checksumming, hash/maphash-style
// table keys, etc). A State is exclusively owned during any Write
// call; concurrent Writes on the same State are a contract violation,
// but Sum64/Sum may run concurrently with each other on the same
// State.
type State struct {
	seed   uint64
	stream core.StreamState
}

var _ hash.Hash64 = (*State)(nil)

// NewState returns a State keyed by seed, ready to Write.
func NewState(seed uint64) *State {
	return &State{seed: seed, stream: core.InitStream(seed)}
}

// Write appends p to the hash. It never returns an error.
func (s *State) Write(p []byte) (int, error) {
	s.stream.Stream(p)
	return len(p), nil
}

// Sum64 folds the state into its 64-bit output without resetting it.
func (s *State) Sum64() uint64 {
	return s.stream.Fold()
}

// Sum appends the big-endian encoding of Sum64 to b and returns the
// resulting slice, per hash.Hash's contract.
func (s *State) Sum(b []byte) []byte {
	v := s.Sum64()
	return append(b,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v),
	)
}

// Reset reinitializes the state with its original seed, discarding any
// streamed bytes. A fresh State is required to hash another input with
// a different seed; Reset keeps the same one.
func (s *State) Reset() {
	s.stream = core.InitStream(s.seed)
}

// Size returns the number of bytes Sum appends: 8.
func (s *State) Size() int { return 8 }

// BlockSize returns the hash's natural block size in bytes, used as a
// hint by io.Copy-style callers; it has no effect on correctness.
func (s *State) BlockSize() int { return 64 }

// Equal reports whether a and b have the same aes/sum/key registers:
// hash_state_equal from the external interface. Each state's staging
// buffer is ignored, so two Equal states whose staged bytes differ
// still fold to different values.
func Equal(a, b *State) bool {
	return core.Equal(a.stream, b.stream)
}
