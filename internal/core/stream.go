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

// StreamState is an incremental hash: Init establishes ownership,
// Stream appends bytes, Fold is a non-destructive observer. A fresh
// Init is required to reuse a state for another input; concurrent
// Stream calls on the same state are a contract violation, but Fold
// may run concurrently with other Folds on the same state.
//
// The last completed 64-byte chunk is held in full uncommitted until a
// later Stream call proves it is not the final chunk: fold decides,
// from the total streamed length, whether to finalize it through the
// minimal dispatch (total ≤ 64) or absorb it into the full lanes first
// (total > 64). This is what keeps Fold's result identical to
// Hash(concat-of-all-streamed-bytes, seed) exactly at a 64-byte
// boundary, where the single-shot and naive-streaming dispatch rules
// would otherwise disagree.
type StreamState struct {
	seed  uint64
	full  FullState
	ins   [64]byte
	inLen uint64 // bytes currently staged in ins, 0..64
	total uint64 // bytes logically streamed so far
}

// InitStream creates a new StreamState keyed by seed.
func InitStream(seed uint64) StreamState {
	return StreamState{seed: seed, full: InitFull(seed)}
}

// Stream appends data to the state.
func (s *StreamState) Stream(data []byte) {
	for len(data) > 0 {
		if s.inLen == 64 {
			s.full.Absorb64(splitQuad(s.ins[:]))
			s.ins = [64]byte{}
			s.inLen = 0
		}
		n := copy(s.ins[s.inLen:64], data)
		s.inLen += uint64(n)
		s.total += uint64(n)
		data = data[n:]
	}
}

// Fold finalizes the state into its 64-bit output without mutating it.
func (s StreamState) Fold() uint64 {
	if s.total <= 64 {
		aes0, sum0 := s.full.Aes[0], s.full.Sum[0]
		return minimalDispatchFrom(aes0, sum0, s.full.Key, s.ins[:s.inLen])
	}
	tmp := s.full
	if s.inLen > 0 {
		var chunk [64]byte
		copy(chunk[:], s.ins[:s.inLen])
		tmp.Absorb64(splitQuad(chunk[:]))
	}
	tmp.InsLength = s.total
	return tmp.Finalize()
}

// Equal implements hash_state_equal: it compares the aes, sum, and key
// registers only; the staged ins bytes and the lengths are ignored, so
// states that compare equal can still fold to different values when
// their staged bytes differ.
func Equal(a, b StreamState) bool {
	return a.full.Aes == b.full.Aes && a.full.Sum == b.full.Sum && a.full.Key == b.full.Key
}
