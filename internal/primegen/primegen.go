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

// Package primegen generates probable primes of a requested decimal
// length, as a standalone primitive over internal/bigint.
package primegen

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/getamis/rsacore/internal/bigint"
)

var (
	// ErrInvalidLength is returned by Generate when digits <= 0.
	ErrInvalidLength = errors.New("primegen: digits must be positive")
	// ErrInvalidIterations is returned by Generate when iterations <= 0.
	ErrInvalidIterations = errors.New("primegen: iterations must be positive")
)

// DefaultIterations is the customary Miller-Rabin round count. Generate
// does not fall back to it: callers always pass iterations explicitly.
const DefaultIterations = 3

var smallPrimes = []*bigint.Int{
	bigint.FromInt(2), bigint.FromInt(3), bigint.FromInt(5), bigint.FromInt(7),
}

var two = bigint.FromInt(2)

// Generate draws a probable prime of exactly digits decimal digits,
// confirmed across iterations rounds of Miller-Rabin. It draws a random
// candidate (odd, except for 1-digit requests; see firstCandidate),
// tests it, and on failure steps by 2 until the
// candidate would exceed the requested digit length, at which point it
// redraws a fresh candidate from scratch.
func Generate(rng *rand.Rand, digits int, iterations int) (*bigint.Int, error) {
	if digits <= 0 {
		return nil, ErrInvalidLength
	}
	if iterations <= 0 {
		return nil, ErrInvalidIterations
	}

	limit := upperBound(digits)
	for {
		p, err := firstCandidate(rng, digits)
		if err != nil {
			return nil, err
		}
		for {
			if isProbablePrime(rng, p, iterations) {
				return p, nil
			}
			p = bigint.Add(p, two)
			if !bigint.Less(p, limit) {
				break
			}
		}
	}
}

// firstCandidate draws the initial candidate for a fresh Generate
// attempt. A 1-digit request draws any digit 1..9 so that 2 itself is
// reachable; longer requests draw an odd digits-digit number directly.
func firstCandidate(rng *rand.Rand, digits int) (*bigint.Int, error) {
	if digits == 1 {
		return bigint.FromInt(1 + rng.Intn(9)), nil
	}
	p, err := bigint.RandomWithDigits(rng, digits)
	if err != nil {
		return nil, err
	}
	if p.IsEven() {
		p = bigint.Add(p, bigint.One())
	}
	return p, nil
}

func upperBound(digits int) *bigint.Int {
	return bigint.MustParse("1" + strings.Repeat("0", digits))
}
