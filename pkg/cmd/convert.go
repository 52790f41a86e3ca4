// Copyright Hartgen Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/hartgen/go-bitvec/pkg/bits"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] literal",
	Short: "Re-base and re-width a bit-vector literal.",
	Long: `Parse a bit-vector literal and print it back in decimal, hex and
	binary form, optionally cast to a different width.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			signed = GetFlag(cmd, "signed")
			width  = GetUint(cmd, "width")
			format = GetString(cmd, "format")
			value  bits.Bits
			err    error
		)
		//
		if signed {
			value, err = bits.ParseSignedBits(args[0])
		} else {
			value, err = bits.ParseBits(args[0])
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if width != 0 {
			value = value.Cast(width)
		}
		//
		switch format {
		case "all":
			fmt.Printf("dec: %s\n", value.String())
			fmt.Printf("hex: %s\n", value.Hex())
			fmt.Printf("bin: %s\n", value.Binary())
		case "dec":
			fmt.Println(value.String())
		case "hex":
			fmt.Println(value.Hex())
		case "bin":
			fmt.Println(value.Binary())
		default:
			fmt.Printf("unknown format %q (expected all, dec, hex or bin)\n", format)
			os.Exit(2)
		}
	},
}

func init() {
	convertCmd.Flags().Bool("signed", false, "interpret the literal as signed")
	convertCmd.Flags().Uint("width", 0, "cast the value to a given width")
	convertCmd.Flags().String("format", "all", "output base (all, dec, hex or bin)")
	rootCmd.AddCommand(convertCmd)
}
