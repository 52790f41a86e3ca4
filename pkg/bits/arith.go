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
)

// Add computes the modular sum of two bit vectors at the wider of their two
// widths.  Overflow wraps silently, matching hardware behaviour.  The result
// adopts the receiver's signedness.
func (p Bits) Add(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	switch {
	case w <= 64:
		return fromPattern64(w, p.signed, p.extend64(w)+o.extend64(w))
	case w <= 128:
		return fromPattern128(w, p.signed, p.extend128(w).Add(o.extend128(w)))
	default:
		var v big.Int
		//
		v.Add(p.number(), o.number())
		//
		return newBits(w, p.signed, &v)
	}
}

// Sub computes the modular difference of two bit vectors at the wider of
// their two widths.  Underflow wraps silently.
func (p Bits) Sub(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	switch {
	case w <= 64:
		return fromPattern64(w, p.signed, p.extend64(w)-o.extend64(w))
	case w <= 128:
		return fromPattern128(w, p.signed, p.extend128(w).Sub(o.extend128(w)))
	default:
		var v big.Int
		//
		v.Sub(p.number(), o.number())
		//
		return newBits(w, p.signed, &v)
	}
}

// Mul computes the modular product of two bit vectors at the wider of their
// two widths, truncating high bits of the full product.
func (p Bits) Mul(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	switch {
	case w <= 64:
		return fromPattern64(w, p.signed, p.extend64(w)*o.extend64(w))
	case w <= 128:
		return fromPattern128(w, p.signed, p.extend128(w).Mul(o.extend128(w)))
	default:
		var v big.Int
		//
		v.Mul(p.number(), o.number())
		//
		return newBits(w, p.signed, &v)
	}
}

// Div computes the quotient of two bit vectors under the receiver's
// signedness, truncating toward zero.  Division by zero panics, matching
// native integer semantics.
func (p Bits) Div(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	if o.IsZero() {
		panic("division by zero")
	}
	// Fast path for unsigned machine words.
	if w <= 64 && !p.signed && !o.signed {
		return fromPattern64(w, false, p.extend64(w)/o.extend64(w))
	}
	//
	var v big.Int
	//
	v.Quo(p.number(), o.number())
	//
	return newBits(w, p.signed, &v)
}

// Rem computes the remainder of two bit vectors under the receiver's
// signedness, with the sign of the dividend (truncated division).  Division
// by zero panics.
func (p Bits) Rem(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	if o.IsZero() {
		panic("division by zero")
	}
	//
	if w <= 64 && !p.signed && !o.signed {
		return fromPattern64(w, false, p.extend64(w)%o.extend64(w))
	}
	//
	var v big.Int
	//
	v.Rem(p.number(), o.number())
	//
	return newBits(w, p.signed, &v)
}

// Neg computes the two's-complement negation of this value at its own width.
// Negation is an involution at every width, including width one.
func (p Bits) Neg() Bits {
	switch p.kind {
	case storeWord:
		return fromPattern64(p.width, p.signed, -p.word)
	case storeDouble:
		return fromPattern128(p.width, p.signed, p.dword.Not().Add(one128))
	default:
		var v big.Int
		//
		v.Neg(p.number())
		//
		return newBits(p.width, p.signed, &v)
	}
}

// WideningAdd computes the exact (never wrapped) sum of two bit vectors.  The
// result is one bit wider than the wider operand, which is always sufficient
// to hold the mathematical sum.
func (p Bits) WideningAdd(o Bits) Bits {
	var (
		w = wideningWidth(combinedWidth(p, o), 1)
		v big.Int
	)
	//
	v.Add(p.number(), o.number())
	//
	return newBits(w, p.signed, &v)
}

// WideningSub computes the exact difference of two bit vectors at one bit
// wider than the wider operand.  For unsigned operands whose difference is
// negative, the result is the two's-complement pattern at the wider width,
// i.e. a borrow extends through the new high bits.
func (p Bits) WideningSub(o Bits) Bits {
	var (
		w = wideningWidth(combinedWidth(p, o), 1)
		v big.Int
	)
	//
	v.Sub(p.number(), o.number())
	//
	return newBits(w, p.signed, &v)
}

// WideningMul computes the exact product of two bit vectors.  The result
// width is the sum of the operand widths, which always accommodates the full
// product.
func (p Bits) WideningMul(o Bits) Bits {
	var (
		w = sumWidth(p.width, o.width)
		v big.Int
	)
	//
	v.Mul(p.number(), o.number())
	//
	return newBits(w, p.signed, &v)
}

// ============================================================================
// Helpers
// ============================================================================

// wideningWidth grows a width by a given amount, saturating at the unbounded
// sentinel.
func wideningWidth(width uint, delta uint) uint {
	if width == WidthUnbounded {
		return WidthUnbounded
	}
	//
	return width + delta
}

// sumWidth adds two widths, where unbounded dominates.
func sumWidth(w1, w2 uint) uint {
	if w1 == WidthUnbounded || w2 == WidthUnbounded {
		return WidthUnbounded
	}
	//
	return w1 + w2
}
