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

// Package encryptcmd implements the `encrypt` subcommand.
package encryptcmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getamis/rsacore/internal/config"
	"github.com/getamis/rsacore/internal/prng"
	"github.com/getamis/rsacore/internal/rsa"
	"github.com/getamis/rsacore/internal/xlog"
)

// Cmd is the `encrypt [LENGTH] MESSAGE` subcommand. It generates a
// fresh key pair on every invocation and prints both halves before the
// ciphertext — a demo convenience, not a durable keystore.
var Cmd = &cobra.Command{
	Use:   "encrypt [LENGTH] MESSAGE",
	Short: "Generate a key pair and encrypt a message under it",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(c *cobra.Command, args []string) error {
		cfg := config.Current()
		digits := cfg.DefaultDigits
		message := args[0]
		if len(args) == 2 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return errors.New("'LENGTH' must be a positive integer.")
			}
			digits = n
			message = args[1]
		}

		xlog.Logger().Info("encrypt", "digits", digits)
		kp, err := rsa.GenerateKeyPair(prng.Rand(), digits, cfg.DefaultIterations)
		if err != nil {
			return err
		}
		fmt.Println(kp)

		cipher, err := rsa.Encrypt([]byte(message), kp.PublicKey())
		if err != nil {
			return err
		}
		fmt.Println(cipher)
		return nil
	},
}
