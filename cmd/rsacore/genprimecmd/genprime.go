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

// Package genprimecmd implements the `genprime` subcommand.
package genprimecmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getamis/rsacore/internal/config"
	"github.com/getamis/rsacore/internal/prng"
	"github.com/getamis/rsacore/internal/primegen"
	"github.com/getamis/rsacore/internal/xlog"
)

// Cmd is the `genprime LENGTH [N]` subcommand.
var Cmd = &cobra.Command{
	Use:   "genprime LENGTH [N]",
	Short: "Generate and print a prime number",
	Long: `Generate and print a prime number. The generated prime is LENGTH digits
long and is generated in N iterations (default N = 3 is fine). LENGTH
and N must be positive decimal integers.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(c *cobra.Command, args []string) error {
		digits, err := strconv.Atoi(args[0])
		if err != nil || digits <= 0 {
			return errors.New("'LENGTH' must be a positive integer.")
		}
		iterations := config.Current().DefaultIterations
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				return errors.New("'N' must be a positive integer.")
			}
			iterations = n
		}

		xlog.Logger().Info("genprime", "digits", digits, "iterations", iterations)
		p, err := primegen.Generate(prng.Rand(), digits, iterations)
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}
