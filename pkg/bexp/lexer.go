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
package bexp

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokOperator
	tokLeftBracket
	tokRightBracket
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

// scan splits an input string into tokens, always terminated by an EOF
// marker.
func scan(input string) ([]token, error) {
	var tokens []token
	//
	i := 0
	//
	for i < len(input) {
		c := input[i]
		//
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9':
			start := i
			// The first character is a digit (checked by the enclosing case),
			// so the prev-character check only applies from the second one.
			i++
			//
			for i < len(input) && isNumberChar(input[i], input[i-1]) {
				i++
			}
			//
			tokens = append(tokens, token{tokNumber, input[start:i], start})
		case c == '(':
			tokens = append(tokens, token{tokLeftBracket, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, token{tokRightBracket, ")", i})
			i++
		default:
			op := scanOperator(input[i:])
			if op == "" {
				return nil, fmt.Errorf("unexpected character %q at offset %d", c, i)
			}
			//
			tokens = append(tokens, token{tokOperator, op, i})
			i += len(op)
		}
	}
	//
	return append(tokens, token{tokEOF, "", len(input)}), nil
}

// isNumberChar accepts every character which can occur inside a literal:
// digits of any supported base, the x placeholder, base prefixes, group
// separators and the width suffix.  A * is only a digit in the unbounded
// width suffix :*; anywhere else it is the multiplication operator.
func isNumberChar(c, prev byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	case c == 'x' || c == 'X' || c == 'o' || c == 'O':
		return true
	case c == '\'' || c == ':':
		return true
	case c == '*':
		return prev == ':'
	default:
		return false
	}
}

// scanOperator matches the longest operator at the head of the input.
func scanOperator(input string) string {
	for _, op := range []string{">>>", "<<", ">>", "|", "^", "&", "+", "-", "*", "/", "%", "~"} {
		if strings.HasPrefix(input, op) {
			return op
		}
	}
	//
	return ""
}
