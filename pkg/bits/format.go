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
	"strings"
)

// String returns the numeric value of this vector in decimal, under its
// signedness.
func (p Bits) String() string {
	return p.number().String()
}

// Text returns the numeric value of this vector in the given base.
func (p Bits) Text(base int) string {
	return p.number().Text(base)
}

// Hex returns the underlying pattern as a 0x literal, zero padded to the full
// declared width.
func (p Bits) Hex() string {
	if p.IsUnbounded() {
		return fmt.Sprintf("0x%x", p.number())
	}
	//
	nibbles := int((p.width + 3) / 4)
	//
	return fmt.Sprintf("0x%0*x", nibbles, p.patternBig())
}

// Binary returns the underlying pattern as a 0b literal, zero padded to the
// full declared width.
func (p Bits) Binary() string {
	if p.IsUnbounded() {
		return fmt.Sprintf("0b%b", p.number())
	}
	//
	var sb strings.Builder
	//
	sb.WriteString("0b")
	//
	for i := p.width; i > 0; i-- {
		if p.Bit(i - 1) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	//
	return sb.String()
}

// String renders a possibly-unknown value as a hex literal when every nibble
// is either fully known or fully unknown, falling back to a binary rendering
// with per-bit x digits otherwise.
func (p UnknownBits) String() string {
	if p.IsFullyKnown() {
		return p.value.String()
	}
	//
	if p.Width() == WidthUnbounded {
		return p.unboundedString()
	}
	//
	if s, ok := p.hexString(); ok {
		return s
	}
	//
	var sb strings.Builder
	//
	sb.WriteString("0b")
	//
	width := p.value.Width()
	//
	for i := width; i > 0; i-- {
		switch {
		case p.mask.Bit(i - 1):
			sb.WriteByte('x')
		case p.value.Bit(i - 1):
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	//
	return sb.String()
}

// unboundedString renders a partially-unknown unbounded value in binary.  An
// unbounded value has infinitely many high bits, all identical; that run
// abbreviates to a two-character marker before the significant low bits.
func (p UnknownBits) unboundedString() string {
	var (
		value = p.value.Pattern()
		mask  = p.mask.Pattern()
		sb    strings.Builder
	)
	//
	sb.WriteString("0b")
	//
	switch {
	case mask.Sign() < 0:
		sb.WriteString("x..")
	case value.Sign() < 0:
		sb.WriteString("1..")
	default:
		sb.WriteString("0..")
	}
	//
	n := max(sigBits(value), sigBits(mask))
	//
	for i := n; i > 0; i-- {
		switch {
		case mask.Bit(i-1) == 1:
			sb.WriteByte('x')
		case value.Bit(i-1) == 1:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	//
	return sb.String()
}

// sigBits counts the significant low bits of an exact integer, i.e. those
// below its infinite run of identical high bits.
func sigBits(v *big.Int) int {
	if v.Sign() < 0 {
		return new(big.Int).Not(v).BitLen()
	}
	//
	return v.BitLen()
}

// hexString renders a hex literal with x digits for unknown nibbles, failing
// when some nibble is only partially unknown.
func (p UnknownBits) hexString() (string, bool) {
	var (
		width = p.value.Width()
		sb    strings.Builder
	)
	//
	if width == WidthUnbounded || width%4 != 0 {
		return "", false
	}
	//
	sb.WriteString("0x")
	//
	for i := width; i > 0; i -= 4 {
		var nibble, unknown uint
		//
		for j := uint(0); j < 4; j++ {
			if p.mask.Bit(i - 1 - j) {
				unknown++
			} else if p.value.Bit(i - 1 - j) {
				nibble |= 1 << (3 - j)
			}
		}
		//
		switch unknown {
		case 0:
			sb.WriteString(fmt.Sprintf("%x", nibble))
		case 4:
			sb.WriteByte('x')
		default:
			return "", false
		}
	}
	//
	return sb.String(), true
}
