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

package primegen

import (
	"math/rand"

	"github.com/getamis/rsacore/internal/bigint"
)

// isProbablePrime reports whether p is prime (exactly, for the four
// smallest primes) or probably prime at the requested confidence
// (Miller-Rabin, iterations rounds).
func isProbablePrime(rng *rand.Rand, p *bigint.Int, iterations int) bool {
	if bigint.Less(p, two) {
		return false
	}
	for _, sp := range smallPrimes {
		if bigint.Equal(p, sp) {
			return true
		}
	}
	if p.IsEven() {
		return false
	}

	pMinus1, _ := bigint.Sub(p, bigint.One())
	d := pMinus1
	s := 0
	for d.IsEven() {
		d = bigint.ShiftRightOne(d)
		s++
	}

	for i := 0; i < iterations; i++ {
		if !millerRabinRound(rng, p, pMinus1, d, s) {
			return false
		}
	}
	return true
}

// millerRabinRound runs a single Miller-Rabin round with a witness
// drawn uniformly from [2, p-2]. p-1 = 2^s * d with d odd.
func millerRabinRound(rng *rand.Rand, p, pMinus1, d *bigint.Int, s int) bool {
	a, err := bigint.RandomInRange(rng, two, pMinus1)
	if err != nil {
		return false
	}
	x, err := bigint.ModPow(a, d, p)
	if err != nil {
		return false
	}
	one := bigint.One()
	if bigint.Equal(x, one) || bigint.Equal(x, pMinus1) {
		return true
	}
	for i := 0; i < s-1; i++ {
		x, err = bigint.ModPow(x, two, p)
		if err != nil {
			return false
		}
		if bigint.Equal(x, pMinus1) {
			return true
		}
	}
	return false
}
