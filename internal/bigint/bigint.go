// Copyright © 2026 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bigint implements an arbitrary-precision non-negative integer
// from first principles: no math/big, no external bignum library.
//
// Values are stored as base-1e9 limbs, least-significant limb first, with
// no leading (high-order) zero limb except for the value zero itself,
// which is represented as a single zero limb. This keeps decimal parsing
// and rendering a simple per-limb chunking operation while giving
// schoolbook arithmetic a wide digit to work with.
package bigint

import (
	"errors"
)

const (
	limbBase  = 1_000_000_000
	limbDigits = 9
)

var (
	// ErrInvalidNumber is returned by Parse on empty or non-decimal input.
	ErrInvalidNumber = errors.New("bigint: invalid number")
	// ErrNegativeResult is returned by Sub when the result would be negative.
	ErrNegativeResult = errors.New("bigint: negative result")
	// ErrDivideByZero is returned by DivMod and Mod when the divisor is zero.
	ErrDivideByZero = errors.New("bigint: divide by zero")
	// ErrNoInverse is returned by ModInverse when gcd(a, m) != 1.
	ErrNoInverse = errors.New("bigint: no modular inverse")
	// ErrInvalidLength is returned by RandomWithDigits when k < 1.
	ErrInvalidLength = errors.New("bigint: invalid digit length")
	// ErrEmptyRange is returned by RandomInRange when lo >= hi.
	ErrEmptyRange = errors.New("bigint: empty range")
)

// Int is an immutable arbitrary-precision non-negative integer. The zero
// value is not valid; use Zero() or Parse().
type Int struct {
	// limbs holds base-1e9 digits, least significant first. len(limbs) >= 1.
	// No trailing zero limb is kept except for the single-limb value zero.
	limbs []uint32
}

// Zero returns the value 0.
func Zero() *Int {
	return &Int{limbs: []uint32{0}}
}

// One returns the value 1.
func One() *Int {
	return &Int{limbs: []uint32{1}}
}

// FromUint64 converts a native unsigned integer.
func FromUint64(v uint64) *Int {
	if v == 0 {
		return Zero()
	}
	limbs := make([]uint32, 0, 3)
	for v > 0 {
		limbs = append(limbs, uint32(v%limbBase))
		v /= limbBase
	}
	return &Int{limbs: limbs}
}

// FromInt converts a small non-negative native integer.
func FromInt(v int) *Int {
	if v < 0 {
		panic("bigint: FromInt with negative value")
	}
	return FromUint64(uint64(v))
}

// normalize strips high-order zero limbs, keeping at least one limb.
func normalize(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

// Clone returns an independent copy of x.
func (x *Int) Clone() *Int {
	limbs := make([]uint32, len(x.limbs))
	copy(limbs, x.limbs)
	return &Int{limbs: limbs}
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return len(x.limbs) == 1 && x.limbs[0] == 0
}

// IsEven reports whether x is divisible by 2.
func (x *Int) IsEven() bool {
	return x.limbs[0]%2 == 0
}

// Cmp returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func Cmp(a, b *Int) int {
	if len(a.limbs) != len(b.limbs) {
		if len(a.limbs) < len(b.limbs) {
			return -1
		}
		return 1
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b denote the same value.
func Equal(a, b *Int) bool {
	return Cmp(a, b) == 0
}

// Less reports whether a < b.
func Less(a, b *Int) bool {
	return Cmp(a, b) < 0
}
