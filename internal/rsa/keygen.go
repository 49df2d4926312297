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

// Package rsa implements RSA key generation and block-wise
// encryption/decryption on top of internal/bigint and
// internal/primegen. It has no relation to, and does not import,
// the standard library's crypto/rsa.
package rsa

import (
	"errors"
	"math/rand"

	"github.com/getamis/rsacore/internal/bigint"
	"github.com/getamis/rsacore/internal/primegen"
	"github.com/getamis/rsacore/internal/rsakey"
)

var (
	// ErrInvalidLength is returned by GenerateKeyPair when digits <= 0.
	ErrInvalidLength = errors.New("rsa: digits must be positive")
)

var (
	two   = bigint.FromInt(2)
	three = bigint.FromInt(3)
	one   = bigint.One()
)

// GenerateKeyPair produces a KeyPair whose modulus has at least digits-1
// decimal digits (at least digits when digits is odd). Two distinct
// primegen.Generate primes of
// ceil(digits/2) digits each are combined into n = p*q and
// phi = (p-1)*(q-1); the public exponent starts at 3 and steps by 2
// until it is coprime with phi; the private exponent is its modular
// inverse mod phi. Prime pairs too small to leave room for a valid
// exponent (e.g. p=2, q=3, giving phi=2) are discarded and redrawn.
func GenerateKeyPair(rng *rand.Rand, digits int, iterations int) (rsakey.KeyPair, error) {
	if digits <= 0 {
		return rsakey.KeyPair{}, ErrInvalidLength
	}
	half := (digits + 1) / 2

	for {
		p, err := primegen.Generate(rng, half, iterations)
		if err != nil {
			return rsakey.KeyPair{}, err
		}
		var q *bigint.Int
		for {
			q, err = primegen.Generate(rng, half, iterations)
			if err != nil {
				return rsakey.KeyPair{}, err
			}
			if !bigint.Equal(p, q) {
				break
			}
		}

		n := bigint.Mul(p, q)
		pMinus1, _ := bigint.Sub(p, one)
		qMinus1, _ := bigint.Sub(q, one)
		phi := bigint.Mul(pMinus1, qMinus1)

		if !bigint.Less(three, phi) {
			continue
		}

		e := three
		for !bigint.Equal(bigint.GCD(e, phi), one) {
			e = bigint.Add(e, two)
		}
		if !bigint.Less(e, phi) {
			continue
		}

		d, err := bigint.ModInverse(e, phi)
		if err != nil {
			return rsakey.KeyPair{}, err
		}

		return rsakey.KeyPair{N: n, E: e, D: d}, nil
	}
}
