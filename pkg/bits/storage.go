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

// storeKind identifies which backing representation holds the pattern of a
// given bit vector.  The kind is a pure function of the declared width, hence
// two vectors of the same width always share a kind.
type storeKind uint8

const (
	// storeWord backs widths of up to 64 bits with a native machine word.
	storeWord storeKind = iota
	// storeDouble backs widths of 65 up to 128 bits with a 128-bit integer.
	storeDouble
	// storeBig backs all wider (and unbounded) widths with an
	// arbitrary-precision integer.
	storeBig
)

var one128 = num.U128From64(1)

// storeOf selects the narrowest backing representation able to hold a given
// number of bits.
func storeOf(width uint) storeKind {
	switch {
	case width == WidthUnbounded:
		return storeBig
	case width <= 64:
		return storeWord
	case width <= 128:
		return storeDouble
	default:
		return storeBig
	}
}

// newBits constructs a bit vector of the given width from an arbitrary
// integer, reducing it modulo 2^width.  Negative inputs therefore wrap into
// their two's-complement pattern at that width.  This is the single point at
// which backing storage is selected.
func newBits(width uint, signed bool, v *big.Int) Bits {
	var r big.Int
	//
	if width == WidthUnbounded {
		r.Set(v)
		//
		return Bits{width: width, signed: signed, kind: storeBig, arb: r}
	}
	//
	checkWidth(width)
	r.Mod(v, twoPow(width))
	//
	switch storeOf(width) {
	case storeWord:
		return Bits{width: width, signed: signed, kind: storeWord, word: r.Uint64()}
	case storeDouble:
		dword, _ := num.U128FromBigInt(&r)
		//
		return Bits{width: width, signed: signed, kind: storeDouble, dword: dword}
	default:
		return Bits{width: width, signed: signed, kind: storeBig, arb: r}
	}
}

// fromPattern64 constructs a word-backed vector directly from a native
// pattern, masking off bits beyond the width.
func fromPattern64(width uint, signed bool, pattern uint64) Bits {
	return Bits{width: width, signed: signed, kind: storeWord, word: pattern & mask64(width)}
}

// fromPattern128 constructs a vector of width at most 128 directly from a
// 128-bit pattern, masking off bits beyond the width.
func fromPattern128(width uint, signed bool, pattern num.U128) Bits {
	pattern = pattern.And(mask128(width))
	//
	if width <= 64 {
		return Bits{width: width, signed: signed, kind: storeWord, word: pattern.AsUint64()}
	}
	//
	return Bits{width: width, signed: signed, kind: storeDouble, dword: pattern}
}

// patternBig returns a fresh copy of the pattern as a big integer.  For
// bounded widths the result is always non-negative; for unbounded values it
// is the exact integer.
func (p Bits) patternBig() *big.Int {
	var v big.Int
	//
	switch p.kind {
	case storeWord:
		v.SetUint64(p.word)
	case storeDouble:
		v.Set(p.dword.AsBigInt())
	default:
		v.Set(&p.arb)
	}
	//
	return &v
}

// number returns the numeric value of this vector under its signedness, as a
// fresh big integer.
func (p Bits) number() *big.Int {
	v := p.patternBig()
	//
	if p.signed && !p.IsUnbounded() && p.topBit() {
		v.Sub(v, twoPow(p.width))
	}
	//
	return v
}

// pattern128 widens the pattern of a vector of width at most 128 into a
// 128-bit integer.
func (p Bits) pattern128() num.U128 {
	switch p.kind {
	case storeWord:
		return num.U128From64(p.word)
	case storeDouble:
		return p.dword
	default:
		panic("pattern exceeds 128 bits")
	}
}

// extend64 produces the pattern of this vector extended (per its own
// signedness) to a target width of at most 64 bits.
func (p Bits) extend64(width uint) uint64 {
	v := p.word
	// Sign extension supplies the high bits for negative values.
	if p.signed && p.width < 64 && (v>>(p.width-1))&1 == 1 {
		v |= ^mask64(p.width)
	}
	//
	return v & mask64(width)
}

// extend128 produces the pattern of this vector extended (per its own
// signedness) to a target width of at most 128 bits.
func (p Bits) extend128(width uint) num.U128 {
	v := p.pattern128()
	//
	if p.signed && p.width < 128 && p.topBit() {
		v = v.Or(mask128(width).Xor(mask128(p.width)))
	}
	//
	return v.And(mask128(width))
}

// mask64 returns a native word with the low width bits set.
func mask64(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	//
	return (uint64(1) << width) - 1
}

// mask128 returns a 128-bit integer with the low width bits set.
func mask128(width uint) num.U128 {
	switch {
	case width >= 128:
		return num.MaxU128
	case width > 64:
		return num.U128FromRaw(mask64(width-64), ^uint64(0))
	default:
		return num.U128From64(mask64(width))
	}
}

// twoPow computes 2^width as a fresh big integer.
func twoPow(width uint) *big.Int {
	var v big.Int
	//
	return v.Lsh(big.NewInt(1), width)
}
