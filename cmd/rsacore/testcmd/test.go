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

// Package testcmd implements the `test` subcommand: a quick smoke run
// over the library, independent of the package-level test suites under
// internal/*_test.go which `go test` drives separately.
package testcmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getamis/rsacore/internal/bigint"
	"github.com/getamis/rsacore/internal/prng"
	"github.com/getamis/rsacore/internal/primegen"
	"github.com/getamis/rsacore/internal/rsa"
)

// Cmd is the `test` subcommand.
var Cmd = &cobra.Command{
	Use:   "test",
	Short: "Run preconfigured smoke tests",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		checks := []struct {
			name string
			run  func() error
		}{
			{"bigint operators", checkBigIntOperators},
			{"bigint division", checkBigIntDivision},
			{"prime generation", checkPrimeGeneration},
			{"key generation", checkKeyGeneration},
			{"encryption round trip", checkEncryptionRoundTrip},
		}
		for _, chk := range checks {
			if err := chk.run(); err != nil {
				return fmt.Errorf("%s: %w", chk.name, err)
			}
			fmt.Printf("ok   %s\n", chk.name)
		}
		fmt.Println("All tests passed.")
		return nil
	},
}

func checkBigIntOperators() error {
	a, b := bigint.FromInt(12345), bigint.FromInt(6789)
	if !bigint.Equal(bigint.Add(a, b), bigint.Add(b, a)) {
		return fmt.Errorf("add is not commutative")
	}
	sum := bigint.Add(a, b)
	back, err := bigint.Sub(sum, b)
	if err != nil || !bigint.Equal(back, a) {
		return fmt.Errorf("sub does not invert add")
	}
	if !bigint.Equal(bigint.Mul(a, b), bigint.Mul(b, a)) {
		return fmt.Errorf("mul is not commutative")
	}
	return nil
}

func checkBigIntDivision() error {
	a := bigint.MustParse("100000000000000000000")
	b := bigint.FromInt(7)
	q, r, err := bigint.DivMod(a, b)
	if err != nil {
		return err
	}
	if q.String() != "14285714285714285714" || r.String() != "2" {
		return fmt.Errorf("divmod(10^20, 7) = (%s, %s), want (14285714285714285714, 2)", q, r)
	}
	return nil
}

func checkPrimeGeneration() error {
	p, err := primegen.Generate(prng.Rand(), 3, 10)
	if err != nil {
		return err
	}
	lo, hi := bigint.FromInt(100), bigint.FromInt(1000)
	if bigint.Less(p, lo) || !bigint.Less(p, hi) {
		return fmt.Errorf("genprime 3 did not return a 3-digit value: %s", p)
	}
	return nil
}

func checkKeyGeneration() error {
	kp, err := rsa.GenerateKeyPair(prng.Rand(), 10, 5)
	if err != nil {
		return err
	}
	// Two 5-digit primes multiply to a 9- or 10-digit n; only the
	// 9-digit floor is guaranteed.
	min := bigint.MustParse("100000000")
	if bigint.Less(kp.N, min) {
		return fmt.Errorf("genkey 10 produced n=%s, shorter than expected", kp.N)
	}
	return nil
}

func checkEncryptionRoundTrip() error {
	kp, err := rsa.GenerateKeyPair(prng.Rand(), 32, 5)
	if err != nil {
		return err
	}
	want := []byte("Hello, rsacore!")
	cipher, err := rsa.Encrypt(want, kp.PublicKey())
	if err != nil {
		return err
	}
	got, err := rsa.Decrypt(cipher, kp.PrivateKey())
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("round trip mismatch: got %q, want %q", got, want)
	}
	return nil
}
