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
)

// RuntimeWidthBits is the width at which runtime width values themselves are
// represented.
const RuntimeWidthBits = 32

// RuntimeBits pairs a bit vector with a logical width determined only at run
// time, enabling variable-width computation (decoding hardware fields whose
// size is not known until execution) on top of the fixed-width core.  The
// payload is kept truncated to the runtime width; the static width of the
// original value acts as a capacity bound which construction validates.
type RuntimeBits struct {
	// value truncated to the runtime width.
	bits Bits
	// runtime width, itself a bit vector.
	width Bits
	// static capacity the runtime width was validated against.
	capacity uint
}

// NewRuntimeBits pairs a value with a runtime width, failing with a width
// error when the width exceeds the value's static capacity.
func NewRuntimeBits(value Bits, width Bits) (RuntimeBits, error) {
	if !width.Pattern().IsUint64() {
		return RuntimeBits{}, fmt.Errorf("%w: unrepresentable runtime width", ErrWidth)
	}
	//
	w := uint(width.Uint64())
	//
	if !value.IsUnbounded() && w > value.Width() {
		return RuntimeBits{}, fmt.Errorf("%w: runtime width %d exceeds capacity %d", ErrWidth, w, value.Width())
	} else if w == 0 {
		return RuntimeBits{}, fmt.Errorf("%w: runtime width must be non-zero", ErrWidth)
	}
	//
	return RuntimeBits{
		bits:     value.Truncate(w),
		width:    width.WithSigned(false),
		capacity: value.Width(),
	}, nil
}

// RuntimeUint64 constructs a runtime-width value directly from a native word
// and a width, panicking when the width exceeds 64 bits.
func RuntimeUint64(v uint64, width uint) RuntimeBits {
	r, err := NewRuntimeBits(FromUint64(64, v), FromUint64(RuntimeWidthBits, uint64(width)))
	if err != nil {
		panic(err)
	}
	//
	return r
}

// Assign replaces the payload of this runtime-width value, re-validating the
// current runtime width against the new value's static capacity.
func (p RuntimeBits) Assign(value Bits) (RuntimeBits, error) {
	return NewRuntimeBits(value, p.width)
}

// Width returns the runtime width in bits.
func (p RuntimeBits) Width() uint {
	return p.bits.Width()
}

// RuntimeWidth returns the runtime width as a bit vector.
func (p RuntimeBits) RuntimeWidth() Bits {
	return p.width
}

// Capacity returns the static capacity the runtime width was validated
// against.
func (p RuntimeBits) Capacity() uint {
	return p.capacity
}

// Signed indicates whether the payload is interpreted as signed.
func (p RuntimeBits) Signed() bool {
	return p.bits.Signed()
}

// Bits returns the payload at the runtime width.
func (p RuntimeBits) Bits() Bits {
	return p.bits
}

// Uint64 returns the low 64 bits of the payload pattern.
func (p RuntimeBits) Uint64() uint64 {
	return p.bits.Uint64()
}

// BigInt returns the numeric value of the payload under its signedness.
func (p RuntimeBits) BigInt() *big.Int {
	return p.bits.BigInt()
}

// IsZero checks whether the payload pattern is all zeros.
func (p RuntimeBits) IsZero() bool {
	return p.bits.IsZero()
}

func (p RuntimeBits) String() string {
	return p.bits.String()
}

// ============================================================================
// Operators
// ============================================================================

// Add computes a modular sum; the result width is the wider of the two
// runtime widths.
func (p RuntimeBits) Add(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.Add(o.bits))
}

// Sub computes a modular difference at the wider runtime width.
func (p RuntimeBits) Sub(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.Sub(o.bits))
}

// Mul computes a modular product at the wider runtime width.
func (p RuntimeBits) Mul(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.Mul(o.bits))
}

// Div computes a quotient under the receiver's signedness.
func (p RuntimeBits) Div(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.Div(o.bits))
}

// Rem computes a remainder under the receiver's signedness.
func (p RuntimeBits) Rem(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.Rem(o.bits))
}

// Neg computes a two's-complement negation at the runtime width.
func (p RuntimeBits) Neg() RuntimeBits {
	return rebind(p.bits.Neg())
}

// Not computes a bitwise complement at the runtime width.
func (p RuntimeBits) Not() RuntimeBits {
	return rebind(p.bits.Not())
}

// And computes a bitwise conjunction at the wider runtime width.
func (p RuntimeBits) And(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.And(o.bits))
}

// Or computes a bitwise disjunction at the wider runtime width.
func (p RuntimeBits) Or(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.Or(o.bits))
}

// Xor computes a bitwise exclusive-or at the wider runtime width.
func (p RuntimeBits) Xor(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.Xor(o.bits))
}

// Shl shifts left logically at the current runtime width.
func (p RuntimeBits) Shl(shift uint) RuntimeBits {
	return rebind(p.bits.Shl(shift))
}

// Shr shifts right logically at the current runtime width.
func (p RuntimeBits) Shr(shift uint) RuntimeBits {
	return rebind(p.bits.Shr(shift))
}

// Sra shifts right arithmetically at the current runtime width.
func (p RuntimeBits) Sra(shift uint) RuntimeBits {
	return rebind(p.bits.Sra(shift))
}

// WideningAdd computes an exact sum; the result's runtime width is one more
// than the wider of the two current runtime widths.
func (p RuntimeBits) WideningAdd(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.WideningAdd(o.bits))
}

// WideningSub computes an exact difference at one extra bit of runtime width.
func (p RuntimeBits) WideningSub(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.WideningSub(o.bits))
}

// WideningMul computes an exact product; the result's runtime width is the
// sum of the two current runtime widths.
func (p RuntimeBits) WideningMul(o RuntimeBits) RuntimeBits {
	return rebind(p.bits.WideningMul(o.bits))
}

// WideningShl shifts left exactly, growing the runtime width (not the static
// capacity) by the shift amount.
func (p RuntimeBits) WideningShl(shift uint) RuntimeBits {
	return rebind(p.bits.WideningShl(shift))
}

// Cmp compares two runtime-width values numerically.
func (p RuntimeBits) Cmp(o RuntimeBits) int {
	return p.bits.Cmp(o.bits)
}

// Eq checks two runtime-width values for numeric equality.
func (p RuntimeBits) Eq(o RuntimeBits) bool {
	return p.bits.Eq(o.bits)
}

// Lt checks whether this value is numerically below another.
func (p RuntimeBits) Lt(o RuntimeBits) bool {
	return p.bits.Lt(o.bits)
}

// Le checks whether this value is numerically at most another.
func (p RuntimeBits) Le(o RuntimeBits) bool {
	return p.bits.Le(o.bits)
}

// Gt checks whether this value is numerically above another.
func (p RuntimeBits) Gt(o RuntimeBits) bool {
	return p.bits.Gt(o.bits)
}

// Ge checks whether this value is numerically at least another.
func (p RuntimeBits) Ge(o RuntimeBits) bool {
	return p.bits.Ge(o.bits)
}

// rebind wraps an operation result as a runtime-width value whose width field
// tracks the result width.
func rebind(b Bits) RuntimeBits {
	return RuntimeBits{
		bits:     b,
		width:    FromUint64(RuntimeWidthBits, uint64(b.Width())),
		capacity: b.Width(),
	}
}
