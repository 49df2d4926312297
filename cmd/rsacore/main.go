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

// Command rsacore is a command-line frontend to the rsacore library.
// It provides RSA key generation, encryption, decryption, and the
// library's own test suite. See cmd.Long for usage.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/rsacore/cmd/rsacore/decryptcmd"
	"github.com/getamis/rsacore/cmd/rsacore/encryptcmd"
	"github.com/getamis/rsacore/cmd/rsacore/genkeycmd"
	"github.com/getamis/rsacore/cmd/rsacore/genprimecmd"
	"github.com/getamis/rsacore/cmd/rsacore/testcmd"
	"github.com/getamis/rsacore/internal/config"
	"github.com/getamis/rsacore/internal/prng"
)

var cmd = &cobra.Command{
	Use:   "rsacore",
	Short: "A command-line frontend to a from-scratch RSA cryptosystem",
	Long: `rsacore is a command-line frontend to a from-scratch RSA cryptosystem.
It provides RSA encryption, decryption, key generation and prime generation.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := viper.BindPFlags(c.Flags()); err != nil {
			return err
		}
		cfg, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}
		config.SetCurrent(cfg)
		return nil
	},
}

func init() {
	cmd.PersistentFlags().String("config", "", "config file path")
	cmd.PersistentFlags().Int("digits", 0, "default digit length override")
	cmd.PersistentFlags().Int("iterations", 0, "default Miller-Rabin iteration count override")

	cmd.AddCommand(genkeycmd.Cmd)
	cmd.AddCommand(genprimecmd.Cmd)
	cmd.AddCommand(encryptcmd.Cmd)
	cmd.AddCommand(decryptcmd.Cmd)
	cmd.AddCommand(testcmd.Cmd)
}

func main() {
	prng.Seed(time.Now().UnixNano())

	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		fmt.Println()
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}
