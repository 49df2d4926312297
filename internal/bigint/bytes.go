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

import "errors"

// ErrDoesNotFit is returned by ToBytes when x does not fit in the
// requested byte width.
var ErrDoesNotFit = errors.New("bigint: value does not fit in requested width")

var base256 = FromUint64(256)

// FromBytesBE interprets b as a big-endian base-256 non-negative
// integer.
func FromBytesBE(b []byte) *Int {
	result := Zero()
	for _, by := range b {
		result = Add(Mul(result, base256), FromUint64(uint64(by)))
	}
	return result
}

// ToBytes renders x as exactly width big-endian bytes. Fails with
// ErrDoesNotFit if x >= 256^width.
func ToBytes(x *Int, width int) ([]byte, error) {
	out := make([]byte, width)
	t := x.Clone()
	for i := width - 1; i >= 0; i-- {
		q, r, _ := DivMod(t, base256)
		out[i] = byte(r.limbs[0])
		t = q
	}
	if !t.IsZero() {
		return nil, ErrDoesNotFit
	}
	return out, nil
}
