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
package bits

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Literals follow the grammar
//
//	[-] [0x|0o|0b] digits [:width]
//
// where digits may be grouped with ' separators, width is a decimal bit count
// or * for unbounded, and (in the possibly-unknown form only) the digit x
// marks a whole unknown digit: one bit in binary, three bits in octal, a full
// nibble in hexadecimal.  When no width is given, the minimal width covering
// the written digits is used.

// ParseBits parses an unsigned literal into a bit vector.  A literal wider
// than an explicitly given width is truncated silently, mirroring the
// construction contract.
func ParseBits(input string) (Bits, error) {
	lit, err := scanLiteral(input, false, false)
	if err != nil {
		return Bits{}, err
	}
	//
	return newBits(lit.width, false, &lit.value), nil
}

// ParseSignedBits parses a literal with an optional leading minus sign into a
// signed bit vector.  The inferred minimal width includes room for the sign
// bit.
func ParseSignedBits(input string) (Bits, error) {
	lit, err := scanLiteral(input, true, false)
	if err != nil {
		return Bits{}, err
	}
	//
	return newBits(lit.width, true, &lit.value), nil
}

// ParseUnknownBits parses a literal which may contain x placeholder digits
// marking unknown positions.
func ParseUnknownBits(input string) (UnknownBits, error) {
	lit, err := scanLiteral(input, false, true)
	if err != nil {
		return UnknownBits{}, err
	}
	//
	return UnknownBits{
		value: newBits(lit.width, false, &lit.value),
		mask:  newBits(lit.width, false, &lit.mask),
	}, nil
}

// MustBits parses an unsigned literal, panicking on malformed input.  Useful
// for literals embedded in source.
func MustBits(input string) Bits {
	b, err := ParseBits(input)
	if err != nil {
		panic(err)
	}
	//
	return b
}

// MustSignedBits parses a signed literal, panicking on malformed input.
func MustSignedBits(input string) Bits {
	b, err := ParseSignedBits(input)
	if err != nil {
		panic(err)
	}
	//
	return b
}

// MustUnknownBits parses a possibly-unknown literal, panicking on malformed
// input.
func MustUnknownBits(input string) UnknownBits {
	b, err := ParseUnknownBits(input)
	if err != nil {
		panic(err)
	}
	//
	return b
}

// ============================================================================
// Scanner
// ============================================================================

type literal struct {
	width uint
	value big.Int
	mask  big.Int
}

func scanLiteral(input string, signed bool, unknown bool) (literal, error) {
	var (
		lit      literal
		original = input
		negative bool
	)
	// Split off any explicit width suffix.
	input, width, err := scanWidth(input)
	if err != nil {
		return lit, err
	}
	// Optional sign.
	if signed && strings.HasPrefix(input, "-") {
		negative = true
		input = input[1:]
	}
	// Optional base prefix.
	base, digitBits, input := scanBase(input)
	//
	if input == "" {
		return lit, fmt.Errorf("%w: %q", ErrLiteral, original)
	}
	//
	var digits uint
	//
	for _, c := range input {
		switch {
		case c == '\'':
			// Digit group separator.
			continue
		case (c == 'x' || c == 'X') && unknown && base != 10:
			lit.value.Lsh(&lit.value, digitBits)
			lit.mask.Lsh(&lit.mask, digitBits)
			lit.mask.Or(&lit.mask, big.NewInt(int64(mask64(digitBits))))
		default:
			d := digitValue(c)
			if d < 0 || d >= int(base) {
				return lit, fmt.Errorf("%w: unexpected digit %q in %q", ErrLiteral, c, original)
			}
			//
			if base == 10 {
				lit.value.Mul(&lit.value, big.NewInt(10))
			} else {
				lit.value.Lsh(&lit.value, digitBits)
				lit.mask.Lsh(&lit.mask, digitBits)
			}
			//
			lit.value.Add(&lit.value, big.NewInt(int64(d)))
		}
		//
		digits++
	}
	//
	if digits == 0 {
		return lit, fmt.Errorf("%w: %q", ErrLiteral, original)
	}
	//
	if negative {
		lit.value.Neg(&lit.value)
	}
	// Infer minimal width when none was given.
	if width == 0 {
		width = minimalWidth(base, digitBits, digits, signed, &lit.value)
	}
	//
	lit.width = width
	//
	return lit, nil
}

// scanWidth strips a trailing :width suffix, returning zero when absent.
func scanWidth(input string) (string, uint, error) {
	i := strings.LastIndexByte(input, ':')
	if i < 0 {
		return input, 0, nil
	}
	//
	suffix := input[i+1:]
	//
	if suffix == "*" {
		return input[:i], WidthUnbounded, nil
	}
	//
	width, err := strconv.ParseUint(suffix, 10, 32)
	if err != nil || width == 0 {
		return "", 0, fmt.Errorf("%w: bad width suffix %q", ErrLiteral, suffix)
	}
	//
	return input[:i], uint(width), nil
}

// scanBase strips an optional base prefix, returning the base, the number of
// bits per digit (zero for decimal) and the remaining digits.
func scanBase(input string) (uint, uint, string) {
	if len(input) >= 2 && input[0] == '0' {
		switch input[1] {
		case 'x', 'X':
			return 16, 4, input[2:]
		case 'o', 'O':
			return 8, 3, input[2:]
		case 'b', 'B':
			return 2, 1, input[2:]
		}
	}
	//
	return 10, 0, input
}

func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func minimalWidth(base uint, digitBits uint, digits uint, signed bool, value *big.Int) uint {
	var width uint
	//
	if base == 10 {
		width = uint(new(big.Int).Abs(value).BitLen())
	} else {
		width = digitBits * digits
	}
	// Signed literals reserve a sign bit.
	if signed {
		width++
	}
	//
	return max(width, 1)
}
