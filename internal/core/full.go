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

// FullState is the wide register file used for inputs longer than 64
// bytes: four independent 128-bit aes/sum chains (one per Quad lane),
// a single 128-bit key, and a 64-byte staging buffer for partially
// filled chunks. On a vector backend the four lanes map onto one
// 512-bit register; here they are simply four Block128 values, and
// InsLength counts bytes logically ingested, not bytes physically
// staged.
type FullState struct {
	Aes       Quad
	Sum       Quad
	Key       Block128
	Ins       [64]byte
	InsLength uint64
}

// InitFull derives a fresh FullState from seed, per §4.5: lane i's aes
// half starts at seed XOR Pi[2i]/Pi[2i+1], lane i's sum half at seed
// XOR Pi[8+2i]/Pi[8+2i+1]. Lane 0 is bit-identical to a fresh
// MinimalState's aes/sum/key by construction: that identity is what
// lets Fold reuse lane 0 for totals of 64 bytes or fewer.
func InitFull(seed uint64) FullState {
	var fs FullState
	fs.Key = BlockFromLanes(seed, seed)
	for i := 0; i < 4; i++ {
		fs.Aes[i] = BlockFromLanes(seed^Pi[2*i], seed^Pi[2*i+1])
		fs.Sum[i] = BlockFromLanes(seed^Pi[8+2*i], seed^Pi[8+2*i+1])
	}
	return fs
}

// splitQuad splits a 64-byte chunk into four 16-byte lanes in order.
func splitQuad(chunk []byte) Quad {
	var q Quad
	for i := 0; i < 4; i++ {
		copy(q[i][:], chunk[i*16:(i+1)*16])
	}
	return q
}

// Absorb64 mixes one 64-byte chunk (four independent 128-bit lanes)
// into the state, per §4.5.
func (fs *FullState) Absorb64(ins Quad) {
	for i := 0; i < 4; i++ {
		fs.Aes[i] = Round(fs.Aes[i], ins[i])
		fs.Sum[i] = ShuffleBlock(fs.Sum[i]).AddLanes(ins[i])
	}
}

// Finalize folds the full state into its 64-bit output given the total
// number of bytes absorbed. It does not mutate fs.
func (fs FullState) Finalize() uint64 {
	keyPrime := BlockFromLanes(lowLane(fs.Key)+fs.InsLength, highLane(fs.Key))
	var m [4]Block128
	for i := 0; i < 4; i++ {
		m[i] = Round(fs.Sum[i], fs.Aes[i])
	}
	m01 := Round(m[0], m[1])
	m23 := Round(m[2], m[3])
	mix := Round(m01, m23)
	out := Round(Round(mix, keyPrime), mix)
	lo, _ := out.Lanes()
	return lo
}

// hashLong runs the §4.5 single-shot schedule for inputs longer than
// 64 bytes: absorb every full 64-byte chunk, then, if a partial tail
// remains, zero-pad it into one more chunk and absorb that too.
func hashLong(data []byte, seed uint64) uint64 {
	n := len(data)
	fs := InitFull(seed)
	full := n / 64
	for c := 0; c < full; c++ {
		fs.Absorb64(splitQuad(data[c*64 : (c+1)*64]))
	}
	if r := n % 64; r > 0 {
		var tail [64]byte
		copy(tail[:r], data[n-r:n])
		fs.Absorb64(splitQuad(tail[:]))
	}
	fs.InsLength = uint64(n)
	return fs.Finalize()
}
