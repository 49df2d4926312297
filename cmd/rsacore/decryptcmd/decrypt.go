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

// Package decryptcmd implements the `decrypt` subcommand.
package decryptcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getamis/rsacore/internal/bigint"
	"github.com/getamis/rsacore/internal/rsa"
	"github.com/getamis/rsacore/internal/rsakey"
	"github.com/getamis/rsacore/internal/xlog"
)

// Cmd is the `decrypt CIPHER N D` subcommand. A cipher produced under a
// different key is not reliably detected: it either decrypts into
// garbage bytes or, when a recovered block does not fit the block width
// or carries an out-of-range length marker, fails with an error.
var Cmd = &cobra.Command{
	Use:   "decrypt CIPHER N D",
	Short: "Decrypt a ciphertext with a given private key",
	Args:  cobra.ExactArgs(3),
	RunE: func(c *cobra.Command, args []string) error {
		cipher, nStr, dStr := args[0], args[1], args[2]

		n, err := bigint.Parse(nStr)
		if err != nil {
			return err
		}
		d, err := bigint.Parse(dStr)
		if err != nil {
			return err
		}

		xlog.Logger().Info("decrypt")
		plain, err := rsa.Decrypt(cipher, rsakey.Key{N: n, X: d})
		if err != nil {
			return err
		}
		fmt.Println(string(plain))
		return nil
	},
}
