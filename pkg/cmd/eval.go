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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hartgen/go-bitvec/pkg/bexp"
	"github.com/hartgen/go-bitvec/pkg/bits"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression]",
	Short: "Evaluate a bit-vector expression.",
	Long: `Evaluate an infix expression over bit-vector literals, printing the
	result in decimal and hex.  Literals follow the 0x/0o/0b grammar with
	optional :width suffixes and (in hex or binary) x digits marking unknown
	positions.  Without an expression argument, expressions are read line by
	line from standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		if len(args) > 0 {
			evalAndPrint(strings.Join(args, " "))
			return
		}
		// Interactive sessions get a prompt, piped input does not.
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		scanner := bufio.NewScanner(os.Stdin)
		//
		for {
			if interactive {
				fmt.Print("> ")
			}
			//
			if !scanner.Scan() {
				return
			} else if line := strings.TrimSpace(scanner.Text()); line != "" {
				evalAndPrint(line)
			}
		}
	},
}

func evalAndPrint(input string) {
	log.Debugf("evaluating %q", input)
	//
	result, err := bexp.Eval(input)
	//
	if err != nil {
		fmt.Printf("error: %s\n", err)
		return
	}
	//
	if !result.IsFullyKnown() {
		fmt.Printf("%s (width %d, %d unknown bits)\n", result.String(),
			result.Width(), result.UnknownPositions().Count())
		return
	}
	//
	value := result.MustValue()
	fmt.Printf("%s (%s, width %s)\n", value.String(), value.Hex(), widthString(value))
}

func widthString(value bits.Bits) string {
	if value.IsUnbounded() {
		return "*"
	}
	//
	return fmt.Sprintf("%d", value.Width())
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
