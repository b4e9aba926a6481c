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

import (
	"encoding/hex"
	"reflect"
	"testing"
)

func mustBlock(t *testing.T, s string) Block128 {
	t.Helper()
	raw, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	var b Block128
	copy(b[:], raw)
	return b
}

// TestRoundFIPS197 checks subBytes/shiftRows/mixColumns against the
// published FIPS-197 AES-128 encryption example (Appendix C.1):
// SubBytes . ShiftRows . MixColumns is the nonlinear core of every AES
// round except the last, so if these three stages are wired correctly
// here they must also be wired correctly in Round/roundScalar.
func TestRoundFIPS197(t *testing.T) {
	plaintext := mustBlock(t, "00112233445566778899aabbccddeeff")
	cipherKey := mustBlock(t, "000102030405060708090a0b0c0d0e0f")

	// FIPS-197 Appendix C.1 folds the cipher key into the plaintext
	// before round 1 proper begins (the "round 0" AddRoundKey); that
	// XOR, not the bare plaintext, is round 1's state input.
	state := plaintext.XOR(cipherKey)

	// column-major layout: byte i lives at state[col*4+row]; verify
	// shiftRows against that fixed layout by reconstructing row 1's
	// rotation directly instead of trusting a second implementation.
	got := shiftRows(state)

	// Independent check of ShiftRows: row r, byte at column c moves to
	// column (c-r) mod 4 (forward shift by r performed on load). Rebuild
	// row r of the input, rotate, and compare against the row extracted
	// from got.
	for row := 0; row < 4; row++ {
		var inRow, outRow [4]byte
		for col := 0; col < 4; col++ {
			inRow[col] = state[col*4+row]
			outRow[col] = got[col*4+row]
		}
		var wantRow [4]byte
		for col := 0; col < 4; col++ {
			wantRow[col] = inRow[(col+row)%4]
		}
		if wantRow != outRow {
			t.Fatalf("shiftRows row %d: got %v want %v", row, outRow, wantRow)
		}
	}

	// AES-128 known-answer test, FIPS-197 Appendix C.1, round 1: state
	// after MixColumns (pre-AddRoundKey) is
	// 5f72641557f5bc92f7be3b291db9f91a, and XOR with round key 1
	// (d6aa74fdd2af72fadaa678f1d6ab76fe) gives the documented round-1
	// output 89d810e8855ace682d1843d8cb128fe4. Use that as the
	// AddRoundKey operand to pin down Round end to end.
	afterMix := mustBlock(t, "5f72641557f5bc92f7be3b291db9f91a")
	roundKey1 := mustBlock(t, "d6aa74fdd2af72fadaa678f1d6ab76fe")
	wantRound1 := mustBlock(t, "89d810e8855ace682d1843d8cb128fe4")

	gotMix := mixColumns(subBytes(shiftRows(state)))
	if !reflect.DeepEqual(gotMix, afterMix) {
		t.Fatalf("mixColumns(subBytes(shiftRows(state))) = %x, want %x", gotMix, afterMix)
	}

	gotRound := Round(state, roundKey1)
	if !reflect.DeepEqual(gotRound, wantRound1) {
		t.Fatalf("Round(state, roundKey1) = %x, want %x", gotRound, wantRound1)
	}
}

func TestXtimeAndGmul(t *testing.T) {
	// x*0x57 = 0xae, a standard worked example from FIPS-197 Appendix A.
	if got := xtimeGF(0x57); got != 0xae {
		t.Fatalf("xtimeGF(0x57) = %#x, want 0xae", got)
	}
	// 0x57 * 0x13 = 0xfe (FIPS-197 Appendix A example).
	if got := gmul(0x57, 0x13); got != 0xfe {
		t.Fatalf("gmul(0x57, 0x13) = %#x, want 0xfe", got)
	}
	// multiplication by 1 is the identity.
	for _, v := range []byte{0x00, 0x01, 0x7f, 0x80, 0xff} {
		if got := gmul(v, 1); got != v {
			t.Fatalf("gmul(%#x, 1) = %#x, want %#x", v, got, v)
		}
	}
}
