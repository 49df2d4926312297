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

package bigint_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/getamis/rsacore/internal/bigint"
)

var _ = Describe("Int", func() {
	Describe("Parse/String", func() {
		It("round-trips arbitrary decimal values", func() {
			for _, s := range []string{"0", "1", "9", "10", "100000000000000000000", "123456789987654321"} {
				v, err := bigint.Parse(s)
				Expect(err).Should(BeNil())
				Expect(v.String()).Should(Equal(s))
			}
		})

		It("strips a leading +", func() {
			v, err := bigint.Parse("+42")
			Expect(err).Should(BeNil())
			Expect(v.String()).Should(Equal("42"))
		})

		It("strips leading zeros", func() {
			v, err := bigint.Parse("007")
			Expect(err).Should(BeNil())
			Expect(v.String()).Should(Equal("7"))
		})

		It("renders zero as \"0\"", func() {
			Expect(bigint.Zero().String()).Should(Equal("0"))
		})

		DescribeTable("rejects malformed input",
			func(s string) {
				_, err := bigint.Parse(s)
				Expect(err).Should(Equal(bigint.ErrInvalidNumber))
			},
			Entry("empty", ""),
			Entry("just a sign", "+"),
			Entry("letters", "12a3"),
			Entry("internal sign", "1+2"),
		)
	})

	DescribeTable("Add is commutative",
		func(a, b string) {
			x, y := bigint.MustParse(a), bigint.MustParse(b)
			Expect(bigint.Add(x, y).String()).Should(Equal(bigint.Add(y, x).String()))
		},
		Entry("small", "3", "4"),
		Entry("multi-limb", "999999999999999999", "2"),
		Entry("zero", "0", "12345"),
	)

	It("Sub inverts Add", func() {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 50; i++ {
			a, _ := bigint.RandomWithDigits(rng, 1+rng.Intn(20))
			b, _ := bigint.RandomWithDigits(rng, 1+rng.Intn(20))
			sum := bigint.Add(a, b)
			back, err := bigint.Sub(sum, b)
			Expect(err).Should(BeNil())
			Expect(back.String()).Should(Equal(a.String()))
		}
	})

	It("subtracting equal values yields zero", func() {
		v := bigint.MustParse("928374928374928374")
		r, err := bigint.Sub(v, v)
		Expect(err).Should(BeNil())
		Expect(r.IsZero()).Should(BeTrue())
	})

	It("Sub fails with ErrNegativeResult when b > a", func() {
		_, err := bigint.Sub(bigint.FromInt(1), bigint.FromInt(2))
		Expect(err).Should(Equal(bigint.ErrNegativeResult))
	})

	DescribeTable("Mul is commutative",
		func(a, b string) {
			x, y := bigint.MustParse(a), bigint.MustParse(b)
			Expect(bigint.Mul(x, y).String()).Should(Equal(bigint.Mul(y, x).String()))
		},
		Entry("small", "12", "34"),
		Entry("multi-limb", "123456789012345678", "987654321098765432"),
	)

	Describe("DivMod", func() {
		It("satisfies a = q*b + r with 0 <= r < b", func() {
			rng := rand.New(rand.NewSource(2))
			for i := 0; i < 50; i++ {
				a, _ := bigint.RandomWithDigits(rng, 1+rng.Intn(15))
				b, _ := bigint.RandomWithDigits(rng, 1+rng.Intn(10))
				q, r, err := bigint.DivMod(a, b)
				Expect(err).Should(BeNil())
				Expect(bigint.Add(bigint.Mul(q, b), r).String()).Should(Equal(a.String()))
				Expect(bigint.Less(r, b)).Should(BeTrue())
			}
		})

		It("matches the reference 10^20 / 7 scenario", func() {
			a := bigint.MustParse("100000000000000000000")
			b := bigint.FromInt(7)
			q, r, err := bigint.DivMod(a, b)
			Expect(err).Should(BeNil())
			Expect(q.String()).Should(Equal("14285714285714285714"))
			Expect(r.String()).Should(Equal("2"))
		})

		It("fails with ErrDivideByZero", func() {
			_, _, err := bigint.DivMod(bigint.FromInt(10), bigint.Zero())
			Expect(err).Should(Equal(bigint.ErrDivideByZero))
		})
	})

	Describe("ModPow", func() {
		It("is always less than the modulus", func() {
			rng := rand.New(rand.NewSource(3))
			m := bigint.MustParse("1000000007")
			for i := 0; i < 20; i++ {
				a, _ := bigint.RandomWithDigits(rng, 5)
				e, _ := bigint.RandomWithDigits(rng, 3)
				got, err := bigint.ModPow(a, e, m)
				Expect(err).Should(BeNil())
				Expect(bigint.Less(got, m)).Should(BeTrue())
			}
		})

		It("returns a mod m for exponent 1", func() {
			a := bigint.FromInt(17)
			m := bigint.FromInt(5)
			got, err := bigint.ModPow(a, bigint.One(), m)
			Expect(err).Should(BeNil())
			want, _ := bigint.Mod(a, m)
			Expect(got.String()).Should(Equal(want.String()))
		})

		It("returns 1 for exponent 0, including 0^0", func() {
			m := bigint.FromInt(97)
			got, err := bigint.ModPow(bigint.Zero(), bigint.Zero(), m)
			Expect(err).Should(BeNil())
			Expect(got.String()).Should(Equal("1"))
		})

		It("matches the reference RSA scenario n=3233, e=17, d=2753", func() {
			n, e, d := bigint.FromInt(3233), bigint.FromInt(17), bigint.FromInt(2753)
			m := bigint.FromInt(65) // 'A'
			c, err := bigint.ModPow(m, e, n)
			Expect(err).Should(BeNil())
			Expect(c.String()).Should(Equal("2790"))

			back, err := bigint.ModPow(c, d, n)
			Expect(err).Should(BeNil())
			Expect(back.String()).Should(Equal("65"))
		})

		It("reduces correctly when base >= modulus", func() {
			got, err := bigint.ModPow(bigint.FromInt(123), bigint.FromInt(2), bigint.FromInt(10))
			Expect(err).Should(BeNil())
			// 123^2 = 15129, mod 10 = 9
			Expect(got.String()).Should(Equal("9"))
		})
	})

	Describe("ModInverse", func() {
		It("satisfies a*x = 1 (mod m) for coprime inputs", func() {
			a, m := bigint.FromInt(17), bigint.FromInt(3120)
			x, err := bigint.ModInverse(a, m)
			Expect(err).Should(BeNil())
			Expect(x.String()).Should(Equal("2753"))

			product := bigint.Mul(a, x)
			got, _ := bigint.Mod(product, m)
			Expect(got.String()).Should(Equal("1"))
		})

		It("fails with ErrNoInverse when gcd(a, m) != 1", func() {
			_, err := bigint.ModInverse(bigint.FromInt(4), bigint.FromInt(8))
			Expect(err).Should(Equal(bigint.ErrNoInverse))
		})
	})

	Describe("random draws", func() {
		It("RandomWithDigits yields exactly k decimal digits", func() {
			rng := rand.New(rand.NewSource(4))
			for k := 1; k <= 30; k++ {
				v, err := bigint.RandomWithDigits(rng, k)
				Expect(err).Should(BeNil())
				Expect(len(v.String())).Should(Equal(k))
			}
		})

		It("RandomWithDigits fails with ErrInvalidLength for k < 1", func() {
			rng := rand.New(rand.NewSource(5))
			_, err := bigint.RandomWithDigits(rng, 0)
			Expect(err).Should(Equal(bigint.ErrInvalidLength))
		})

		It("RandomInRange stays within [lo, hi)", func() {
			rng := rand.New(rand.NewSource(6))
			lo, hi := bigint.FromInt(100), bigint.FromInt(200)
			for i := 0; i < 100; i++ {
				v, err := bigint.RandomInRange(rng, lo, hi)
				Expect(err).Should(BeNil())
				Expect(bigint.Cmp(v, lo)).ShouldNot(BeNumerically("<", 0))
				Expect(bigint.Less(v, hi)).Should(BeTrue())
			}
		})

		It("RandomInRange fails with ErrEmptyRange when lo >= hi", func() {
			rng := rand.New(rand.NewSource(7))
			_, err := bigint.RandomInRange(rng, bigint.FromInt(5), bigint.FromInt(5))
			Expect(err).Should(Equal(bigint.ErrEmptyRange))
		})
	})

	Describe("factorial benchmark", func() {
		It("computes small factorials exactly via repeated Mul", func() {
			want := map[int]string{
				5:  "120",
				10: "3628800",
				15: "1307674368000",
			}
			for n, expect := range want {
				f := bigint.One()
				for i := 2; i <= n; i++ {
					f = bigint.Mul(f, bigint.FromInt(i))
				}
				Expect(f.String()).Should(Equal(expect))
			}
		})

		It("stays correct under a longer chain of multiplications", func() {
			f := bigint.One()
			for i := 2; i <= 100; i++ {
				f = bigint.Mul(f, bigint.FromInt(i))
			}
			// 100! has exactly 158 decimal digits.
			Expect(len(f.String())).Should(Equal(158))
		})
	})

	Describe("byte conversion", func() {
		It("round-trips through ToBytes/FromBytesBE", func() {
			v := bigint.MustParse("123456789")
			b, err := bigint.ToBytes(v, 8)
			Expect(err).Should(BeNil())
			Expect(bigint.FromBytesBE(b).String()).Should(Equal("123456789"))
		})

		It("fails with ErrDoesNotFit when the value overflows the width", func() {
			v := bigint.FromInt(256)
			_, err := bigint.ToBytes(v, 1)
			Expect(err).Should(Equal(bigint.ErrDoesNotFit))
		})
	})
})
