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

import (
	"strconv"
	"strings"
)

// Parse converts a decimal string into an Int. A single optional leading
// '+' is accepted. Leading zeros are stripped. Empty input or any
// non-decimal character yields ErrInvalidNumber.
func Parse(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, ErrInvalidNumber
	}
	if s[0] == '+' {
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, ErrInvalidNumber
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, ErrInvalidNumber
		}
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return Zero(), nil
	}

	nLimbs := (len(s) + limbDigits - 1) / limbDigits
	limbs := make([]uint32, nLimbs)
	// Walk the string from the least-significant end, limbDigits at a time.
	end := len(s)
	for i := 0; i < nLimbs; i++ {
		start := end - limbDigits
		if start < 0 {
			start = 0
		}
		chunk := s[start:end]
		v, err := strconv.ParseUint(chunk, 10, 32)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		limbs[i] = uint32(v)
		end = start
	}
	return &Int{limbs: normalize(limbs)}, nil
}

// MustParse is Parse but panics on error; for constants in tests and
// init-time values known to be well-formed.
func MustParse(s string) *Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders x in canonical decimal form: no leading zeros, and "0"
// for the zero value.
func (x *Int) String() string {
	n := len(x.limbs)
	var b strings.Builder
	b.Grow(n * limbDigits)
	b.WriteString(strconv.FormatUint(uint64(x.limbs[n-1]), 10))
	for i := n - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(x.limbs[i]), 10)
		b.WriteString(strings.Repeat("0", limbDigits-len(s)))
		b.WriteString(s)
	}
	return b.String()
}

// DecimalDigits returns the number of decimal digits in the canonical
// rendering of x (1 for zero).
func (x *Int) DecimalDigits() int {
	return len(x.String())
}
