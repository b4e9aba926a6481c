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

// MinimalState is the narrow 3x128-bit register file used for inputs
// of 64 bytes or fewer: one AES accumulator, one additive-sum
// accumulator, and the seed-derived key, each a single Block128. It
// fits in one vector register on every target, which is the point of
// keeping it separate from FullState.
type MinimalState struct {
	Aes Block128
	Sum Block128
	Key Block128
}

// InitMinimal derives a fresh MinimalState from seed, per the §4.3 init
// formula: the key is the seed repeated in both halves, and the aes/sum
// accumulators start at the seed XORed with two lanes of Pi each.
func InitMinimal(seed uint64) MinimalState {
	return MinimalState{
		Key: BlockFromLanes(seed, seed),
		Aes: BlockFromLanes(seed^Pi[0], seed^Pi[1]),
		Sum: BlockFromLanes(seed^Pi[8], seed^Pi[9]),
	}
}

// Absorb mixes one 128-bit block into the state: the aes lane takes
// one AES round keyed by block, and the sum lane is shuffled then
// added to block, lane-wise, modulo 2^64.
func (m *MinimalState) Absorb(block Block128) {
	m.Aes = Round(m.Aes, block)
	m.Sum = ShuffleBlock(m.Sum).AddLanes(block)
}

// Finalize folds the state into its 64-bit output given the total
// number of bytes absorbed through this state's lifetime. length is
// injected into the low half of the key at finalize time, never into
// an absorbed block, so streaming never needs to know the total length
// in advance.
func (m MinimalState) Finalize(length uint64) uint64 {
	keyPrime := BlockFromLanes(lowLane(m.Key)+length, highLane(m.Key))
	mix := Round(m.Sum, m.Aes)
	out := Round(Round(mix, keyPrime), mix)
	lo, _ := out.Lanes()
	return lo
}

func lowLane(b Block128) uint64 {
	lo, _ := b.Lanes()
	return lo
}

func highLane(b Block128) uint64 {
	_, hi := b.Lanes()
	return hi
}

// shiftRightBytes interprets b as a little-endian 128-bit integer and
// shifts it right by 8*k bits: byte i of the result is byte i+k of b,
// and bytes beyond the end become zero. Shifting by 0 is a no-op;
// shifting by 16 or more yields the zero block. This realizes the tail
// overlap scheme of §4.4: the final non-aligned block is the last 16
// input bytes, shifted so the bytes genuinely beyond the input's end
// become zero instead of being re-absorbed as live data.
func shiftRightBytes(b Block128, k int) Block128 {
	var out Block128
	if k >= 16 {
		return out
	}
	if k == 0 {
		return b
	}
	copy(out[:16-k], b[k:])
	return out
}

// minimalDispatch runs the length ≤ 64 single-shot absorption schedule
// of §4.4 against a freshly initialized MinimalState and returns the
// finalized hash. data must have length n ≤ 64.
func minimalDispatch(data []byte, seed uint64) uint64 {
	st := InitMinimal(seed)
	absorbTail(&st, data)
	return st.Finalize(uint64(len(data)))
}

// minimalDispatchFrom runs the same absorption schedule as
// minimalDispatch but starting from caller-supplied aes/sum/key
// registers instead of a fresh InitMinimal. This is how StreamState.Fold
// reproduces the single-shot result for a total input of 64 bytes or
// fewer that arrived through the streaming interface: lane 0 of a
// fresh FullState's aes/sum registers and its key are, by construction,
// bit-identical to a fresh MinimalState's, so reusing them here is
// exact, not approximate.
func minimalDispatchFrom(aes, sum, key Block128, data []byte) uint64 {
	st := MinimalState{Aes: aes, Sum: sum, Key: key}
	absorbTail(&st, data)
	return st.Finalize(uint64(len(data)))
}

// absorbTail implements the §4.4 dispatch table for 0 ≤ n ≤ 64: it
// covers every byte of data, never covers a byte twice when n is a
// multiple of 16, and overlaps the final aligned block with the tail
// otherwise via shiftRightBytes.
func absorbTail(st *MinimalState, data []byte) {
	n := len(data)
	switch {
	case n <= 16:
		var b Block128
		copy(b[:], data)
		st.Absorb(b)
	case n <= 32:
		var b0 Block128
		copy(b0[:], data[0:16])
		st.Absorb(b0)
		var tail Block128
		copy(tail[:], data[n-16:n])
		st.Absorb(shiftRightBytes(tail, 32-n))
	case n <= 48:
		var b0, b1 Block128
		copy(b0[:], data[0:16])
		copy(b1[:], data[16:32])
		st.Absorb(b0)
		st.Absorb(b1)
		var tail Block128
		copy(tail[:], data[n-16:n])
		st.Absorb(shiftRightBytes(tail, 48-n))
	default: // n <= 64
		var b0, b1, b2 Block128
		copy(b0[:], data[0:16])
		copy(b1[:], data[16:32])
		copy(b2[:], data[32:48])
		st.Absorb(b0)
		st.Absorb(b1)
		st.Absorb(b2)
		var tail Block128
		copy(tail[:], data[n-16:n])
		st.Absorb(shiftRightBytes(tail, 64-n))
	}
}
