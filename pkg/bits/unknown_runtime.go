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
)

// UnknownRuntimeBits composes runtime-width and possibly-unknown tracking: a
// variable-width value whose bits may individually be unknown.  Bounds
// validation applies to both the value and the mask payloads, and unknown
// propagation reasons only about bits inside the active runtime width.
type UnknownRuntimeBits struct {
	value    UnknownBits
	width    Bits
	capacity uint
}

// NewUnknownRuntimeBits pairs a possibly-unknown value with a runtime width,
// failing with a width error when the width exceeds the value's static
// capacity.
func NewUnknownRuntimeBits(value UnknownBits, width Bits) (UnknownRuntimeBits, error) {
	if !width.Pattern().IsUint64() {
		return UnknownRuntimeBits{}, fmt.Errorf("%w: unrepresentable runtime width", ErrWidth)
	}
	//
	w := uint(width.Uint64())
	//
	if value.Width() != WidthUnbounded && w > value.Width() {
		return UnknownRuntimeBits{}, fmt.Errorf("%w: runtime width %d exceeds capacity %d", ErrWidth, w, value.Width())
	} else if w == 0 {
		return UnknownRuntimeBits{}, fmt.Errorf("%w: runtime width must be non-zero", ErrWidth)
	}
	// Bits beyond the runtime width are not part of the logical value, and so
	// are excluded from unknown-propagation reasoning.
	truncated := UnknownBits{
		value: value.value.Truncate(w),
		mask:  value.mask.Truncate(w),
	}
	//
	return UnknownRuntimeBits{
		value:    truncated,
		width:    width.WithSigned(false),
		capacity: value.Width(),
	}, nil
}

// KnownRuntime wraps a fully-known runtime-width value.
func KnownRuntime(value RuntimeBits) UnknownRuntimeBits {
	return UnknownRuntimeBits{
		value:    Known(value.Bits()),
		width:    value.RuntimeWidth(),
		capacity: value.Capacity(),
	}
}

// Width returns the runtime width in bits.
func (p UnknownRuntimeBits) Width() uint {
	return p.value.Width()
}

// RuntimeWidth returns the runtime width as a bit vector.
func (p UnknownRuntimeBits) RuntimeWidth() Bits {
	return p.width
}

// Capacity returns the static capacity the runtime width was validated
// against.
func (p UnknownRuntimeBits) Capacity() uint {
	return p.capacity
}

// IsFullyKnown checks whether every bit inside the runtime width is defined.
func (p UnknownRuntimeBits) IsFullyKnown() bool {
	return p.value.IsFullyKnown()
}

// UnknownMask returns the unknown mask at the runtime width.  Always safe.
func (p UnknownRuntimeBits) UnknownMask() Bits {
	return p.value.UnknownMask()
}

// Value extracts the definite payload, failing with an undefined-value error
// while any bit inside the runtime width remains unknown.
func (p UnknownRuntimeBits) Value() (RuntimeBits, error) {
	v, err := p.value.Value()
	if err != nil {
		return RuntimeBits{}, err
	}
	//
	return RuntimeBits{bits: v, width: p.width, capacity: p.capacity}, nil
}

// Uint64 extracts the low 64 bits of the payload pattern, failing while any
// bit remains unknown.
func (p UnknownRuntimeBits) Uint64() (uint64, error) {
	return p.value.Uint64()
}

func (p UnknownRuntimeBits) String() string {
	return p.value.String()
}

// ============================================================================
// Operators
// ============================================================================

// And computes a three-valued conjunction at the wider runtime width.
func (p UnknownRuntimeBits) And(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.And(o.value))
}

// Or computes a three-valued disjunction at the wider runtime width.
func (p UnknownRuntimeBits) Or(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.Or(o.value))
}

// Xor computes a three-valued exclusive-or at the wider runtime width.
func (p UnknownRuntimeBits) Xor(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.Xor(o.value))
}

// Not complements every known bit inside the runtime width.
func (p UnknownRuntimeBits) Not() UnknownRuntimeBits {
	return rebindUnknown(p.value.Not())
}

// Add computes a modular sum at the wider runtime width.
func (p UnknownRuntimeBits) Add(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.Add(o.value))
}

// Sub computes a modular difference at the wider runtime width.
func (p UnknownRuntimeBits) Sub(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.Sub(o.value))
}

// Mul computes a modular product at the wider runtime width.
func (p UnknownRuntimeBits) Mul(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.Mul(o.value))
}

// Div computes a quotient at the wider runtime width.
func (p UnknownRuntimeBits) Div(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.Div(o.value))
}

// Rem computes a remainder at the wider runtime width.
func (p UnknownRuntimeBits) Rem(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.Rem(o.value))
}

// Neg computes a two's-complement negation at the runtime width.
func (p UnknownRuntimeBits) Neg() UnknownRuntimeBits {
	return rebindUnknown(p.value.Neg())
}

// Shl shifts left logically at the current runtime width.
func (p UnknownRuntimeBits) Shl(shift uint) UnknownRuntimeBits {
	return rebindUnknown(p.value.Shl(shift))
}

// Shr shifts right logically at the current runtime width.
func (p UnknownRuntimeBits) Shr(shift uint) UnknownRuntimeBits {
	return rebindUnknown(p.value.Shr(shift))
}

// Sra shifts right arithmetically at the current runtime width.
func (p UnknownRuntimeBits) Sra(shift uint) UnknownRuntimeBits {
	return rebindUnknown(p.value.Sra(shift))
}

// WideningAdd computes an exact sum at one extra bit of runtime width.
func (p UnknownRuntimeBits) WideningAdd(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.WideningAdd(o.value))
}

// WideningSub computes an exact difference at one extra bit of runtime width.
func (p UnknownRuntimeBits) WideningSub(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.WideningSub(o.value))
}

// WideningMul computes an exact product at the sum of the runtime widths.
func (p UnknownRuntimeBits) WideningMul(o UnknownRuntimeBits) UnknownRuntimeBits {
	return rebindUnknown(p.value.WideningMul(o.value))
}

// WideningShl shifts left exactly, growing the runtime width by the shift
// amount.
func (p UnknownRuntimeBits) WideningShl(shift uint) UnknownRuntimeBits {
	return rebindUnknown(p.value.WideningShl(shift))
}

// Eq checks numeric equality, failing with an undefined-value error while
// either operand carries any unknown bit.
func (p UnknownRuntimeBits) Eq(o UnknownRuntimeBits) (bool, error) {
	return p.value.Eq(o.value)
}

// Cmp compares numerically, failing with an undefined-value error while
// either operand carries any unknown bit.
func (p UnknownRuntimeBits) Cmp(o UnknownRuntimeBits) (int, error) {
	return p.value.Cmp(o.value)
}

// rebindUnknown wraps an operation result with a width field tracking the
// result's runtime width.
func rebindUnknown(v UnknownBits) UnknownRuntimeBits {
	return UnknownRuntimeBits{
		value:    v,
		width:    FromUint64(RuntimeWidthBits, uint64(v.Width())),
		capacity: v.Width(),
	}
}
