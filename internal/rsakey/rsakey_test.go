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

package rsakey_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/getamis/rsacore/internal/bigint"
	"github.com/getamis/rsacore/internal/rsakey"
)

var _ = Describe("Key", func() {
	It("Copy returns an independently mutable value with the same contents", func() {
		k := rsakey.Key{N: bigint.FromInt(10), X: bigint.FromInt(3)}
		cp := k.Copy()
		Expect(cp.Equal(k)).Should(BeTrue())
		Expect(cp.N).ShouldNot(BeIdenticalTo(k.N))
		Expect(cp.X).ShouldNot(BeIdenticalTo(k.X))
	})

	It("renders as \"<n> <x>\"", func() {
		k := rsakey.Key{N: bigint.FromInt(3233), X: bigint.FromInt(17)}
		Expect(k.String()).Should(Equal("3233 17"))
	})

	It("Equal distinguishes differing exponents", func() {
		a := rsakey.Key{N: bigint.FromInt(10), X: bigint.FromInt(3)}
		b := rsakey.Key{N: bigint.FromInt(10), X: bigint.FromInt(7)}
		Expect(a.Equal(b)).Should(BeFalse())
	})
})

var _ = Describe("KeyPair", func() {
	It("splits into a public and private Key sharing the same modulus", func() {
		kp := rsakey.KeyPair{N: bigint.FromInt(3233), E: bigint.FromInt(17), D: bigint.FromInt(2753)}
		pub := kp.PublicKey()
		priv := kp.PrivateKey()
		Expect(pub.N.String()).Should(Equal(priv.N.String()))
		Expect(pub.X.String()).Should(Equal("17"))
		Expect(priv.X.String()).Should(Equal("2753"))
	})

	It("renders the canonical two-line form", func() {
		kp := rsakey.KeyPair{N: bigint.FromInt(3233), E: bigint.FromInt(17), D: bigint.FromInt(2753)}
		Expect(kp.String()).Should(Equal("Public key:  3233 17\nPrivate key: 3233 2753"))
	})
})
