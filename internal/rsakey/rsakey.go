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

// Package rsakey defines the value types RSA keys are built from: a
// bare (modulus, exponent) pair and the (n, e, d) triple produced by
// key generation. Neither type carries behaviour beyond its own
// textual rendering; everything else lives in package rsa.
package rsakey

import (
	"fmt"

	"github.com/getamis/rsacore/internal/bigint"
)

// Key is a (modulus, exponent) pair. The exponent is either the public
// exponent e or the private exponent d; Key itself carries no tag
// distinguishing the two, the distinction is contextual.
type Key struct {
	N *bigint.Int
	X *bigint.Int
}

// Copy returns a defensive copy of k.
func (k Key) Copy() Key {
	return Key{N: k.N.Clone(), X: k.X.Clone()}
}

// Equal reports whether k and other denote the same (n, x) pair.
func (k Key) Equal(other Key) bool {
	return bigint.Equal(k.N, other.N) && bigint.Equal(k.X, other.X)
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.N.String(), k.X.String())
}

// KeyPair bundles a modulus n = p*q with its public exponent e and
// private exponent d, where e is coprime to phi(n) and d is e's
// modular inverse mod phi(n).
type KeyPair struct {
	N *bigint.Int
	E *bigint.Int
	D *bigint.Int
}

// PublicKey returns the (n, e) half of the pair.
func (kp KeyPair) PublicKey() Key {
	return Key{N: kp.N.Clone(), X: kp.E.Clone()}
}

// PrivateKey returns the (n, d) half of the pair.
func (kp KeyPair) PrivateKey() Key {
	return Key{N: kp.N.Clone(), X: kp.D.Clone()}
}

// String renders both halves of the pair in the canonical two-line
// form shared with the CLI adapter:
//
//	Public key:  <n> <e>
//	Private key: <n> <d>
func (kp KeyPair) String() string {
	return fmt.Sprintf("Public key:  %s\nPrivate key: %s", kp.PublicKey(), kp.PrivateKey())
}
