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
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

// WidthUnbounded is a sentinel width selecting arbitrary-precision storage
// unconditionally.  Values at this width are exact integers and are never
// reduced modulo anything.
const WidthUnbounded uint = ^uint(0)

// Bits represents a fixed-width bit vector interpreted as either an unsigned
// or a two's-complement signed integer.  The underlying bit pattern is always
// kept reduced modulo 2^width; signedness only affects how the pattern is
// interpreted (extension, comparison, division, printing).  Storage is chosen
// once from the width and is invisible to every operation.
type Bits struct {
	width  uint
	signed bool
	kind   storeKind
	// Payload for widths up to 64 bits.
	word uint64
	// Payload for widths between 65 and 128 bits.
	dword num.U128
	// Payload for wider (or unbounded) widths.  For bounded widths this is
	// always the non-negative pattern; for unbounded widths it holds the
	// exact integer, which can be negative.
	arb big.Int
}

// New constructs the zero value of a given width and signedness.
func New(width uint, signed bool) Bits {
	checkWidth(width)
	//
	return Bits{width: width, signed: signed, kind: storeOf(width)}
}

// FromUint64 constructs an unsigned bit vector of the given width, truncating
// the value to fit.
func FromUint64(width uint, v uint64) Bits {
	checkWidth(width)
	//
	if width != WidthUnbounded && width <= 64 {
		return fromPattern64(width, false, v)
	}
	//
	var b big.Int
	//
	return newBits(width, false, b.SetUint64(v))
}

// FromInt64 constructs a signed bit vector of the given width, wrapping the
// value into the two's-complement range of that width.
func FromInt64(width uint, v int64) Bits {
	checkWidth(width)
	//
	var b big.Int
	//
	return newBits(width, true, b.SetInt64(v))
}

// FromBigInt constructs a bit vector of the given width and signedness from an
// arbitrary integer, which is reduced modulo 2^width.  Negative inputs wrap
// into their two's-complement pattern.
func FromBigInt(width uint, signed bool, v *big.Int) Bits {
	checkWidth(width)
	//
	return newBits(width, signed, v)
}

// FromBytes constructs a bit vector of the given width and signedness from a
// big-endian byte slice, truncating high bits which do not fit.
func FromBytes(width uint, signed bool, bytes []byte) Bits {
	var b big.Int
	//
	return FromBigInt(width, signed, b.SetBytes(bytes))
}

// Unbounded constructs an exact, arbitrary-precision integer value.
func Unbounded(v *big.Int) Bits {
	var b big.Int
	//
	b.Set(v)
	//
	return Bits{width: WidthUnbounded, signed: true, kind: storeBig, arb: b}
}

// Width returns the declared width of this bit vector in bits.
func (p Bits) Width() uint {
	return p.width
}

// Signed indicates whether this bit vector is interpreted as a
// two's-complement signed integer.
func (p Bits) Signed() bool {
	return p.signed
}

// IsUnbounded indicates whether this value uses the unbounded-width sentinel.
func (p Bits) IsUnbounded() bool {
	return p.width == WidthUnbounded
}

// WithSigned returns this value reinterpreted under a different signedness.
// The underlying pattern is unchanged.
func (p Bits) WithSigned(signed bool) Bits {
	p.signed = signed
	//
	return p
}

// IsZero checks whether the underlying pattern is all zeros.
func (p Bits) IsZero() bool {
	switch p.kind {
	case storeWord:
		return p.word == 0
	case storeDouble:
		return p.dword.IsZero()
	default:
		return p.arb.Sign() == 0
	}
}

// Sign returns -1, 0 or +1 according to the numeric interpretation of this
// value under its signedness.
func (p Bits) Sign() int {
	if p.signed {
		return p.number().Sign()
	} else if p.IsZero() {
		return 0
	}
	//
	return 1
}

// Bit returns the bit at a given offset, where offsets always start with the
// least-significant bit.  Offsets at or beyond the width read as the sign
// extension (zero for unsigned values).
func (p Bits) Bit(offset uint) bool {
	if !p.IsUnbounded() && offset >= p.width {
		return p.signed && p.topBit()
	}
	//
	switch p.kind {
	case storeWord:
		return (p.word>>offset)&1 == 1
	case storeDouble:
		return p.dword.Rsh(offset).AsUint64()&1 == 1
	default:
		// Offsets beyond the representable index range lie in the sign
		// extension of an unbounded value.
		if int(offset) < 0 {
			return p.arb.Sign() < 0
		}
		//
		return p.arb.Bit(int(offset)) == 1
	}
}

// Pattern returns a fresh copy of the underlying two's-complement bit pattern
// as a non-negative integer.  For unbounded values this is the exact integer
// and can be negative.
func (p Bits) Pattern() *big.Int {
	return p.patternBig()
}

// BigInt returns the numeric value of this bit vector under its signedness,
// as a fresh big integer.
func (p Bits) BigInt() *big.Int {
	return p.number()
}

// Uint64 returns the low 64 bits of the underlying pattern.
func (p Bits) Uint64() uint64 {
	switch p.kind {
	case storeWord:
		return p.word
	case storeDouble:
		return p.dword.AsUint64()
	default:
		var b big.Int
		// Low 64 bits of (possibly negative) pattern.
		b.And(p.patternBig(), new(big.Int).SetUint64(^uint64(0)))
		//
		return b.Uint64()
	}
}

// Int64 returns the numeric value under this vector's signedness, truncated
// to 64 bits.
func (p Bits) Int64() int64 {
	if p.signed {
		return p.number().Int64()
	}
	//
	return int64(p.Uint64())
}

// Bytes returns the underlying pattern in big-endian form with leading zero
// bytes removed.  For unbounded values the absolute value is returned.
func (p Bits) Bytes() []byte {
	return p.patternBig().Bytes()
}

// Truncate discards all bits at or above the given width, producing a value
// of exactly that width.  Signedness is preserved.
func (p Bits) Truncate(width uint) Bits {
	checkWidth(width)
	//
	return newBits(width, p.signed, p.patternBig())
}

// ZeroExtend returns this value at a strictly wider width, filling the new
// high bits with zeros.
func (p Bits) ZeroExtend(width uint) Bits {
	if width != WidthUnbounded && width < p.width {
		panic("cannot zero extend to narrower width")
	}
	//
	return newBits(width, p.signed, p.patternBig())
}

// SignExtend returns this value at a strictly wider width, filling the new
// high bits with copies of the current sign bit.
func (p Bits) SignExtend(width uint) Bits {
	if width != WidthUnbounded && width < p.width {
		panic("cannot sign extend to narrower width")
	}
	//
	v := p.patternBig()
	// Apply current sign bit, regardless of declared signedness.
	if !p.IsUnbounded() && p.topBit() {
		v.Sub(v, twoPow(p.width))
	}
	//
	return newBits(width, p.signed, v)
}

// Cast converts this value to a different width following its signedness:
// signed values sign extend on widening, unsigned values zero extend, and
// both truncate on narrowing.
func (p Bits) Cast(width uint) Bits {
	checkWidth(width)
	//
	return newBits(width, p.signed, p.number())
}

// Extract returns bits hi down to lo (inclusive) as an unsigned vector of
// width hi-lo+1.  Offsets at or beyond the width read as the sign extension
// (zero for unsigned values), matching Bit.
func (p Bits) Extract(hi, lo uint) Bits {
	if hi < lo {
		panic("bit range is empty")
	}
	//
	var v big.Int
	// Shifting the signed view extends signed values through the top.
	v.Rsh(p.number(), lo)
	//
	return newBits(hi-lo+1, false, &v)
}

// Insert overwrites bits hi down to lo (inclusive) with the low bits of the
// given value, leaving all other bits untouched.
func (p Bits) Insert(hi, lo uint, val Bits) Bits {
	if hi < lo {
		panic("bit range is empty")
	} else if !p.IsUnbounded() && hi >= p.width {
		panic("bit range out of bounds")
	}
	//
	var (
		width = hi - lo + 1
		field big.Int
		v     big.Int
	)
	// Reduce inserted value to field width.
	field.Mod(val.patternBig(), twoPow(width))
	field.Lsh(&field, lo)
	// Clear the field in the original pattern.
	var mask big.Int
	//
	mask.Sub(twoPow(width), big.NewInt(1))
	mask.Lsh(&mask, lo)
	v.AndNot(p.patternBig(), &mask)
	v.Or(&v, &field)
	//
	return newBits(p.width, p.signed, &v)
}

// Concat appends another bit vector below this one, producing a value whose
// width is the sum of both widths and whose high bits come from the receiver.
func (p Bits) Concat(o Bits) Bits {
	if p.IsUnbounded() || o.IsUnbounded() {
		panic("cannot concatenate unbounded values")
	}
	//
	var v big.Int
	//
	v.Lsh(p.patternBig(), o.width)
	v.Or(&v, o.patternBig())
	//
	return newBits(p.width+o.width, p.signed, &v)
}

// ============================================================================
// Helpers
// ============================================================================

func checkWidth(width uint) {
	if width == 0 {
		panic("bit vector requires non-zero width")
	}
}

// topBit reports the most significant bit of the declared width, which acts
// as the sign bit under two's-complement interpretation.
func (p Bits) topBit() bool {
	if p.IsUnbounded() {
		return p.arb.Sign() < 0
	}
	//
	return p.Bit(p.width - 1)
}

// combinedWidth determines the width at which a mixed-width binary operation
// is performed, being the wider of the two operands (with unbounded
// dominating everything).
func combinedWidth(p, o Bits) uint {
	if p.IsUnbounded() || o.IsUnbounded() {
		return WidthUnbounded
	}
	//
	return max(p.width, o.width)
}
