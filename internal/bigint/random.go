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

package bigint

import "math/rand"

// RandomWithDigits draws a uniformly-distributed Int whose canonical
// decimal rendering has exactly k digits: the leading digit is drawn
// from 1..9, the remaining k-1 from 0..9. Requires k >= 1.
func RandomWithDigits(rng *rand.Rand, k int) (*Int, error) {
	if k < 1 {
		return nil, ErrInvalidLength
	}
	b := make([]byte, k)
	b[0] = byte('1' + rng.Intn(9))
	for i := 1; i < k; i++ {
		b[i] = byte('0' + rng.Intn(10))
	}
	return Parse(string(b))
}

// randomBelow draws a uniformly-distributed Int in [0, n) by rejection
// sampling over decimal strings of n's digit length.
func randomBelow(rng *rand.Rand, n *Int) *Int {
	if n.IsZero() {
		return Zero()
	}
	d := n.DecimalDigits()
	for {
		b := make([]byte, d)
		for i := 0; i < d; i++ {
			b[i] = byte('0' + rng.Intn(10))
		}
		cand, _ := Parse(string(b))
		if Less(cand, n) {
			return cand
		}
	}
}

// RandomInRange draws a uniformly-distributed Int in [lo, hi). Fails
// with ErrEmptyRange if lo >= hi.
func RandomInRange(rng *rand.Rand, lo, hi *Int) (*Int, error) {
	if Cmp(lo, hi) >= 0 {
		return nil, ErrEmptyRange
	}
	span, err := Sub(hi, lo)
	if err != nil {
		return nil, err
	}
	return Add(randomBelow(rng, span), lo), nil
}
