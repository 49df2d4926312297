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

// ShiftRightOne returns floor(x / 2), computed limb-by-limb from the
// most significant end without going through DivMod.
func ShiftRightOne(x *Int) *Int {
	limbs := make([]uint32, len(x.limbs))
	carry := uint64(0)
	for i := len(x.limbs) - 1; i >= 0; i-- {
		cur := carry*limbBase + uint64(x.limbs[i])
		limbs[i] = uint32(cur / 2)
		carry = cur % 2
	}
	return &Int{limbs: normalize(limbs)}
}

// BitLength returns the number of bits in the binary expansion of x (0
// for x == 0).
func (x *Int) BitLength() int {
	n := 0
	t := x
	for !t.IsZero() {
		t = ShiftRightOne(t)
		n++
	}
	return n
}

// ModPow computes base^exp mod m. The exponent's binary expansion is
// consumed from least to most significant bit by repeated halving (via
// ShiftRightOne), squaring and conditionally multiplying the running
// result, reducing modulo m after every multiplication. Returns 1 when
// exp == 0, including 0^0.
func ModPow(base, exp, m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, ErrDivideByZero
	}
	result := One()
	b, err := Mod(base, m)
	if err != nil {
		return nil, err
	}
	e := exp.Clone()
	for !e.IsZero() {
		if !e.IsEven() {
			result = Mul(result, b)
			if result, err = Mod(result, m); err != nil {
				return nil, err
			}
		}
		b = Mul(b, b)
		if b, err = Mod(b, m); err != nil {
			return nil, err
		}
		e = ShiftRightOne(e)
	}
	return Mod(result, m)
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm (repeated Mod).
func GCD(a, b *Int) *Int {
	x, y := a.Clone(), b.Clone()
	for !y.IsZero() {
		_, r, _ := DivMod(x, y)
		x, y = y, r
	}
	return x
}

// addSigned adds two sign-magnitude values, returning the sign and
// magnitude of the sum. Used only by ModInverse's extended-Euclidean
// back-substitution, where Bézout coefficients can go negative even
// though Int itself is non-negative-only.
func addSigned(aNeg bool, a *Int, bNeg bool, b *Int) (bool, *Int) {
	if a.IsZero() {
		return bNeg, b
	}
	if b.IsZero() {
		return aNeg, a
	}
	if aNeg == bNeg {
		return aNeg, Add(a, b)
	}
	if Cmp(a, b) >= 0 {
		return aNeg, sub(a, b)
	}
	return bNeg, sub(b, a)
}

// ModInverse returns the unique x with 0 <= x < m and a*x = 1 (mod m),
// via the extended Euclidean algorithm. Fails with ErrNoInverse if
// gcd(a, m) != 1.
func ModInverse(a, m *Int) (*Int, error) {
	a0, err := Mod(a, m)
	if err != nil {
		return nil, err
	}

	oldR, r := a0, m.Clone()
	oldSNeg, oldS := false, One()
	sNeg, s := false, Zero()

	for !r.IsZero() {
		q, rem, _ := DivMod(oldR, r)
		oldR, r = r, rem

		qs := Mul(q, s)
		newNeg, newMag := addSigned(oldSNeg, oldS, !sNeg, qs)
		oldSNeg, oldS = sNeg, s
		sNeg, s = newNeg, newMag
	}

	if !Equal(oldR, One()) {
		return nil, ErrNoInverse
	}

	if oldSNeg && !oldS.IsZero() {
		rem, _ := Mod(oldS, m)
		if rem.IsZero() {
			return Zero(), nil
		}
		return sub(m, rem), nil
	}
	return Mod(oldS, m)
}
