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

// Add returns a + b.
func Add(a, b *Int) *Int {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}
	limbs := make([]uint32, n+1)
	carry := uint64(0)
	for i := 0; i < n; i++ {
		var av, bv uint64
		if i < len(a.limbs) {
			av = uint64(a.limbs[i])
		}
		if i < len(b.limbs) {
			bv = uint64(b.limbs[i])
		}
		sum := av + bv + carry
		limbs[i] = uint32(sum % limbBase)
		carry = sum / limbBase
	}
	limbs[n] = uint32(carry)
	return &Int{limbs: normalize(limbs)}
}

// sub computes a - b assuming a >= b; callers must check first.
func sub(a, b *Int) *Int {
	limbs := make([]uint32, len(a.limbs))
	borrow := int64(0)
	for i := 0; i < len(a.limbs); i++ {
		var bv int64
		if i < len(b.limbs) {
			bv = int64(b.limbs[i])
		}
		diff := int64(a.limbs[i]) - bv - borrow
		if diff < 0 {
			diff += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		limbs[i] = uint32(diff)
	}
	return &Int{limbs: normalize(limbs)}
}

// Sub returns a - b. It fails with ErrNegativeResult if b > a, since Int
// represents only non-negative values.
func Sub(a, b *Int) (*Int, error) {
	if Cmp(a, b) < 0 {
		return nil, ErrNegativeResult
	}
	return sub(a, b), nil
}

// mulSmall returns x * m for a native scalar m (m < limbBase).
func mulSmall(x *Int, m uint32) *Int {
	if m == 0 || x.IsZero() {
		return Zero()
	}
	limbs := make([]uint32, len(x.limbs)+1)
	carry := uint64(0)
	for i, v := range x.limbs {
		cur := uint64(v)*uint64(m) + carry
		limbs[i] = uint32(cur % limbBase)
		carry = cur / limbBase
	}
	limbs[len(x.limbs)] = uint32(carry)
	return &Int{limbs: normalize(limbs)}
}

// shiftInLimb returns r*limbBase + d, i.e. r shifted one limb to the
// left with d inserted as the new least-significant limb.
func shiftInLimb(r *Int, d uint32) *Int {
	limbs := make([]uint32, len(r.limbs)+1)
	limbs[0] = d
	copy(limbs[1:], r.limbs)
	return &Int{limbs: normalize(limbs)}
}

// Mul returns a * b via schoolbook long multiplication.
func Mul(a, b *Int) *Int {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	acc := make([]uint64, len(a.limbs)+len(b.limbs))
	for i, av := range a.limbs {
		if av == 0 {
			continue
		}
		carry := uint64(0)
		for j, bv := range b.limbs {
			acc[i+j] += uint64(av)*uint64(bv) + carry
			carry = acc[i+j] / limbBase
			acc[i+j] %= limbBase
		}
		k := i + len(b.limbs)
		for carry > 0 {
			acc[k] += carry
			carry = acc[k] / limbBase
			acc[k] %= limbBase
			k++
		}
	}
	limbs := make([]uint32, len(acc))
	for i, v := range acc {
		limbs[i] = uint32(v)
	}
	return &Int{limbs: normalize(limbs)}
}

// DivMod returns (q, r) such that a = q*b + r and 0 <= r < b. Long
// division proceeds one limb of a at a time, most significant first,
// with each quotient limb found by binary search against the running
// remainder (trial-digit estimation and correction).
func DivMod(a, b *Int) (*Int, *Int, error) {
	if b.IsZero() {
		return nil, nil, ErrDivideByZero
	}
	if Cmp(a, b) < 0 {
		return Zero(), a.Clone(), nil
	}
	r := Zero()
	qLimbs := make([]uint32, len(a.limbs))
	for i := len(a.limbs) - 1; i >= 0; i-- {
		r = shiftInLimb(r, a.limbs[i])
		lo, hi := uint32(0), uint32(limbBase-1)
		for lo < hi {
			mid := lo + (hi-lo+1)/2
			if Cmp(mulSmall(b, mid), r) <= 0 {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		qLimbs[i] = lo
		r = sub(r, mulSmall(b, lo))
	}
	q := &Int{limbs: normalize(qLimbs)}
	return q, r, nil
}

// Mod returns a mod b.
func Mod(a, b *Int) (*Int, error) {
	_, r, err := DivMod(a, b)
	if err != nil {
		return nil, err
	}
	return r, nil
}
