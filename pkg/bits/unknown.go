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

	"github.com/bits-and-blooms/bitset"
)

// UnknownBits pairs a bit vector with a same-width mask tracking, per bit,
// whether the value at that position is defined.  A set mask bit means the
// position is unknown; the value bit underneath is kept at zero but must
// never be relied upon.  Bitwise operations propagate unknownness through
// three-valued logic, while observing a definite numeric value fails while
// any contributing bit remains unknown.
type UnknownBits struct {
	value Bits
	mask  Bits
}

// Known wraps a fully-known bit vector, with an empty unknown mask.
func Known(value Bits) UnknownBits {
	return UnknownBits{value: value, mask: New(value.Width(), false)}
}

// NewUnknownBits pairs a value with an unknown mask.  The mask is cast to the
// value's width, and value bits at unknown positions are cleared.
func NewUnknownBits(value, mask Bits) UnknownBits {
	mask = mask.WithSigned(false).Cast(value.Width())
	//
	return UnknownBits{value: value.AndNot(mask).WithSigned(value.Signed()), mask: mask}
}

// Width returns the declared width of this value.
func (p UnknownBits) Width() uint {
	return p.value.Width()
}

// Signed indicates whether the underlying value is interpreted as signed.
func (p UnknownBits) Signed() bool {
	return p.value.Signed()
}

// IsFullyKnown checks whether every bit of this value is defined.
func (p UnknownBits) IsFullyKnown() bool {
	return p.mask.IsZero()
}

// UnknownMask returns the unknown mask.  Querying the mask is always safe,
// even when the numeric value is not knowable.
func (p UnknownBits) UnknownMask() Bits {
	return p.mask
}

// UnknownPositions returns the set of unknown bit offsets.
func (p UnknownBits) UnknownPositions() *bitset.BitSet {
	var (
		pattern   = p.mask.Pattern()
		positions = bitset.New(uint(pattern.BitLen()))
	)
	//
	for i := 0; i < pattern.BitLen(); i++ {
		if pattern.Bit(i) == 1 {
			positions.Set(uint(i))
		}
	}
	//
	return positions
}

// Value extracts the definite bit vector underneath, failing with an
// undefined-value error while any bit remains unknown.
func (p UnknownBits) Value() (Bits, error) {
	if !p.IsFullyKnown() {
		return Bits{}, fmt.Errorf("%w: %d unknown bit(s)", ErrUndefined, p.unknownCount())
	}
	//
	return p.value, nil
}

// MustValue extracts the definite bit vector underneath, panicking while any
// bit remains unknown.
func (p UnknownBits) MustValue() Bits {
	v, err := p.Value()
	if err != nil {
		panic(err)
	}
	//
	return v
}

// Uint64 extracts the low 64 bits of the pattern, failing while any bit
// remains unknown.
func (p UnknownBits) Uint64() (uint64, error) {
	v, err := p.Value()
	if err != nil {
		return 0, err
	}
	//
	return v.Uint64(), nil
}

// Bit reads a single bit, failing when that particular position is unknown.
func (p UnknownBits) Bit(offset uint) (bool, error) {
	if p.mask.Bit(offset) {
		return false, fmt.Errorf("%w: bit %d is unknown", ErrUndefined, offset)
	}
	//
	return p.value.Bit(offset), nil
}

// ============================================================================
// Comparisons
// ============================================================================

// Eq checks two possibly-unknown values for numeric equality, failing with an
// undefined-value error while either operand carries any unknown bit.
func (p UnknownBits) Eq(o UnknownBits) (bool, error) {
	if err := p.observable(o); err != nil {
		return false, err
	}
	//
	return p.value.Eq(o.value), nil
}

// Cmp compares two possibly-unknown values numerically, failing with an
// undefined-value error while either operand carries any unknown bit.
func (p UnknownBits) Cmp(o UnknownBits) (int, error) {
	if err := p.observable(o); err != nil {
		return 0, err
	}
	//
	return p.value.Cmp(o.value), nil
}

// EqBits checks a possibly-unknown value against a definite one.
func (p UnknownBits) EqBits(o Bits) (bool, error) {
	return p.Eq(Known(o))
}

func (p UnknownBits) observable(o UnknownBits) error {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fmt.Errorf("%w: comparison involves unknown bits", ErrUndefined)
	}
	//
	return nil
}

// ============================================================================
// Bitwise operations (three-valued logic)
// ============================================================================

// And computes a bitwise conjunction under three-valued logic: a known zero
// on either side gives a known zero regardless of the other side, so the
// result mask can be strictly narrower than the union of the input masks.
func (p UnknownBits) And(o UnknownBits) UnknownBits {
	var (
		w      = combinedWidth(p.value, o.value)
		v1, m1 = p.parts(w)
		v2, m2 = o.parts(w)
	)
	// Positions known to be zero absorb unknownness.
	zero1 := v1.Or(m1).Not()
	zero2 := v2.Or(m2).Not()
	mask := m1.Or(m2).AndNot(zero1.Or(zero2))
	value := v1.And(v2).AndNot(mask)
	//
	return UnknownBits{value.WithSigned(p.Signed()), mask}
}

// Or computes a bitwise disjunction under three-valued logic: a known one on
// either side gives a known one regardless of the other side.
func (p UnknownBits) Or(o UnknownBits) UnknownBits {
	var (
		w      = combinedWidth(p.value, o.value)
		v1, m1 = p.parts(w)
		v2, m2 = o.parts(w)
	)
	// Value bits at unknown positions are zero, hence v_i is exactly the
	// known-one set.
	mask := m1.Or(m2).AndNot(v1.Or(v2))
	value := v1.Or(v2).AndNot(mask)
	//
	return UnknownBits{value.WithSigned(p.Signed()), mask}
}

// Xor computes a bitwise exclusive-or under three-valued logic.  Exclusive-or
// has no absorbing element, so a result bit is unknown whenever either input
// bit is.
func (p UnknownBits) Xor(o UnknownBits) UnknownBits {
	var (
		w      = combinedWidth(p.value, o.value)
		v1, m1 = p.parts(w)
		v2, m2 = o.parts(w)
	)
	//
	mask := m1.Or(m2)
	value := v1.Xor(v2).AndNot(mask)
	//
	return UnknownBits{value.WithSigned(p.Signed()), mask}
}

// AndNot computes p AND (NOT o) under three-valued logic.
func (p UnknownBits) AndNot(o UnknownBits) UnknownBits {
	return p.And(o.Not())
}

// Not complements every known bit, leaving unknown positions unknown.
func (p UnknownBits) Not() UnknownBits {
	value := p.value.Not().AndNot(p.mask).WithSigned(p.Signed())
	//
	return UnknownBits{value, p.mask}
}

// ============================================================================
// Arithmetic
// ============================================================================

// Add computes a modular sum.  Carry propagation spreads unknownness, hence
// any unknown operand bit makes the whole result unknown; the result can
// still be held and manipulated, only observing it fails.
func (p UnknownBits) Add(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(combinedWidth(p.value, o.value), p.Signed())
	}
	//
	return Known(p.value.Add(o.value))
}

// Sub computes a modular difference, with the same unknown-propagation rule
// as Add.
func (p UnknownBits) Sub(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(combinedWidth(p.value, o.value), p.Signed())
	}
	//
	return Known(p.value.Sub(o.value))
}

// Mul computes a modular product, with the same unknown-propagation rule as
// Add.
func (p UnknownBits) Mul(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(combinedWidth(p.value, o.value), p.Signed())
	}
	//
	return Known(p.value.Mul(o.value))
}

// Div computes a quotient, with the same unknown-propagation rule as Add.
func (p UnknownBits) Div(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(combinedWidth(p.value, o.value), p.Signed())
	}
	//
	return Known(p.value.Div(o.value))
}

// Rem computes a remainder, with the same unknown-propagation rule as Add.
func (p UnknownBits) Rem(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(combinedWidth(p.value, o.value), p.Signed())
	}
	//
	return Known(p.value.Rem(o.value))
}

// Neg computes a two's-complement negation, with the same
// unknown-propagation rule as Add.
func (p UnknownBits) Neg() UnknownBits {
	if !p.IsFullyKnown() {
		return fullyUnknown(p.Width(), p.Signed())
	}
	//
	return Known(p.value.Neg())
}

// WideningAdd computes an exact sum at one extra bit of width.
func (p UnknownBits) WideningAdd(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(wideningWidth(combinedWidth(p.value, o.value), 1), p.Signed())
	}
	//
	return Known(p.value.WideningAdd(o.value))
}

// WideningSub computes an exact difference at one extra bit of width.
func (p UnknownBits) WideningSub(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(wideningWidth(combinedWidth(p.value, o.value), 1), p.Signed())
	}
	//
	return Known(p.value.WideningSub(o.value))
}

// WideningMul computes an exact product at the sum of the operand widths.
func (p UnknownBits) WideningMul(o UnknownBits) UnknownBits {
	if !p.IsFullyKnown() || !o.IsFullyKnown() {
		return fullyUnknown(sumWidth(p.Width(), o.Width()), p.Signed())
	}
	//
	return Known(p.value.WideningMul(o.value))
}

// ============================================================================
// Shifts
// ============================================================================

// Shl shifts left by a known amount.  Unknown bits travel with the shift, so
// a partially-known operand stays exactly as known as before, with fresh
// known zeros entering at the bottom.
func (p UnknownBits) Shl(shift uint) UnknownBits {
	return UnknownBits{p.value.Shl(shift), p.mask.Shl(shift)}
}

// Shr shifts right logically by a known amount, with unknown bits travelling
// along and known zeros entering at the top.
func (p UnknownBits) Shr(shift uint) UnknownBits {
	return UnknownBits{p.value.Shr(shift), p.mask.Shr(shift)}
}

// Sra shifts right arithmetically.  The fill bit is the top bit of the
// current width: when that bit is unknown, the filled positions are unknown
// too, which falls out of shifting the mask arithmetically as well.
func (p UnknownBits) Sra(shift uint) UnknownBits {
	var (
		value = p.value.Sra(shift)
		mask  = p.mask.Sra(shift)
	)
	// Keep value bits canonically zero at unknown positions.
	return UnknownBits{value.AndNot(mask).WithSigned(p.Signed()), mask}
}

// WideningShl shifts left exactly, growing the width by the shift amount.
func (p UnknownBits) WideningShl(shift uint) UnknownBits {
	return UnknownBits{p.value.WideningShl(shift), p.mask.WideningShl(shift)}
}

// ============================================================================
// Helpers
// ============================================================================

// parts aligns value and mask to a common operating width.  The mask extends
// the way the value does: sign extension replicates the top bit, whose
// knownness is the mask's own top bit.
func (p UnknownBits) parts(width uint) (Bits, Bits) {
	var (
		value = p.value.Cast(width).WithSigned(false)
		mask  = p.mask.WithSigned(p.Signed()).Cast(width).WithSigned(false)
	)
	//
	return value, mask
}

// fullyUnknown constructs a value of the given width with every bit unknown.
func fullyUnknown(width uint, signed bool) UnknownBits {
	return UnknownBits{
		value: New(width, signed),
		mask:  New(width, false).Not(),
	}
}

func (p UnknownBits) unknownCount() uint {
	return p.UnknownPositions().Count()
}
