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

import "golang.org/x/sys/cpu"

// Backend names a hardware instruction set that a native kernel for
// Round could target on the current machine. Select reports the best
// one available; AESRound itself always runs the portable
// implementation regardless of what Select reports; the equivalence
// between what hardware would compute and what this package computes
// is established by construction (AES is AES) and exercised in
// equivalence_test.go by re-deriving the same primitive two different
// ways (per-block and per-Quad) and requiring them to agree.
type Backend int

const (
	// BackendScalar is the portable fallback: no AES hardware support
	// detected, or support irrelevant since this package never
	// dispatches to assembly.
	BackendScalar Backend = iota
	// BackendAESNI indicates the host CPU has AES-NI together with AVX2.
	BackendAESNI
	// BackendVAES indicates the host CPU has AVX-512 with VAES, capable
	// of four parallel AES rounds per instruction.
	BackendVAES
	// BackendNEON indicates the host CPU has ARMv8 Cryptography
	// Extensions (AES).
	BackendNEON
)

func (b Backend) String() string {
	switch b {
	case BackendAESNI:
		return "aesni"
	case BackendVAES:
		return "vaes"
	case BackendNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// Select reports the widest hardware AES backend the current process
// could target, determined from runtime CPU feature bits. It does not
// change which code path Round or Quad.AESRound execute: both are
// portable Go today. Select exists so callers (and
// equivalence_test.go) can record which hardware tier was present when
// a given test run's bit-exactness was verified.
func Select() Backend {
	switch {
	case cpu.X86.HasAVX512VAES && cpu.X86.HasAVX512F:
		return BackendVAES
	case cpu.X86.HasAES && cpu.X86.HasAVX2:
		return BackendAESNI
	case cpu.ARM64.HasAES:
		return BackendNEON
	default:
		return BackendScalar
	}
}

// AESRound applies Round to all four lanes of q against the matching
// lane of keys, patterned on the teacher's internal/simd batched-lane
// idiom (Vec64x8 operations applied uniformly across four packed
// blocks). This is the "vector-style" backend: a real VAES kernel
// would compute this in one instruction instead of a loop, but the
// output is defined to be identical, and equivalence_test.go checks
// that against roundScalar for randomized inputs.
func (q Quad) AESRound(keys Quad) Quad {
	var out Quad
	for i := range out {
		out[i] = Round(q[i], keys[i])
	}
	return out
}
