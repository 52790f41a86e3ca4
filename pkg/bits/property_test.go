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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Widths chosen to straddle every storage representation, including both
// boundaries.
var propertyWidths = []uint{1, 7, 16, 33, 64, 65, 100, 128, 129, 200}

// TestModularArithmetic_PropertyBased verifies, for randomly drawn operands at
// widths spanning all three storage representations, that Add / Sub / Mul
// agree with reference computations over big.Int reduced mod 2^n.
func TestModularArithmetic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	for _, width := range propertyWidths {
		var (
			n   = width
			mod = new(big.Int).Lsh(big.NewInt(1), n)
		)
		//
		properties.Property("Add matches big.Int reference", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x        = FromUint64(n, a)
					y        = FromUint64(n, b)
					expected = new(big.Int).Add(x.Pattern(), y.Pattern())
				)
				//
				return x.Add(y).Pattern().Cmp(expected.Mod(expected, mod)) == 0
			},
			gen.UInt64(), gen.UInt64(),
		))
		//
		properties.Property("Sub matches big.Int reference", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x        = FromUint64(n, a)
					y        = FromUint64(n, b)
					expected = new(big.Int).Sub(x.Pattern(), y.Pattern())
				)
				//
				return x.Sub(y).Pattern().Cmp(expected.Mod(expected, mod)) == 0
			},
			gen.UInt64(), gen.UInt64(),
		))
		//
		properties.Property("Mul matches big.Int reference", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x        = FromUint64(n, a)
					y        = FromUint64(n, b)
					expected = new(big.Int).Mul(x.Pattern(), y.Pattern())
				)
				//
				return x.Mul(y).Pattern().Cmp(expected.Mod(expected, mod)) == 0
			},
			gen.UInt64(), gen.UInt64(),
		))
	}
	//
	properties.TestingRun(t)
}

// TestWideningExactness_PropertyBased verifies that widening operations never
// wrap: the result equals the exact integer result of the operation.
func TestWideningExactness_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	for _, width := range propertyWidths {
		var n = width
		//
		properties.Property("WideningAdd is exact", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x        = FromUint64(n, a)
					y        = FromUint64(n, b)
					r        = x.WideningAdd(y)
					expected = new(big.Int).Add(x.Pattern(), y.Pattern())
				)
				//
				return r.Width() == n+1 && r.Pattern().Cmp(expected) == 0
			},
			gen.UInt64(), gen.UInt64(),
		))
		//
		properties.Property("WideningMul is exact", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x        = FromUint64(n, a)
					y        = FromUint64(n, b)
					r        = x.WideningMul(y)
					expected = new(big.Int).Mul(x.Pattern(), y.Pattern())
				)
				//
				return r.Width() == 2*n && r.Pattern().Cmp(expected) == 0
			},
			gen.UInt64(), gen.UInt64(),
		))
	}
	//
	properties.TestingRun(t)
}

// TestRepresentationIndependence_PropertyBased verifies that all four value
// variants produce identical bit patterns for the same operation, and that a
// value squeezed through the widest representation survives a round trip.
func TestRepresentationIndependence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	for _, width := range propertyWidths {
		var n = width
		//
		properties.Property("variants agree on Add", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x = FromUint64(n, a)
					y = FromUint64(n, b)
					//
					direct  = x.Add(y)
					runtime = mustRuntime(x).Add(mustRuntime(y))
					unknown = Known(x).Add(Known(y))
				)
				//
				if !direct.Eq(runtime.Bits()) {
					return false
				}
				//
				v, err := unknown.Value()
				//
				return err == nil && direct.Eq(v)
			},
			gen.UInt64(), gen.UInt64(),
		))
		//
		properties.Property("round trip through arbitrary precision", prop.ForAll(
			func(a uint64) bool {
				var (
					x = FromUint64(n, a)
					// Force the widest representation and back
					y = x.ZeroExtend(200).Truncate(n)
				)
				//
				return x.Eq(y) && x.Pattern().Cmp(y.Pattern()) == 0
			},
			gen.UInt64(),
		))
	}
	//
	properties.TestingRun(t)
}

// TestInvolutions_PropertyBased verifies algebraic identities: complement and
// negation are involutions, and x - x is zero at every width.
func TestInvolutions_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	for _, width := range propertyWidths {
		var n = width
		//
		properties.Property("Not is an involution", prop.ForAll(
			func(a uint64) bool {
				var x = FromUint64(n, a)
				//
				return x.Not().Not().Eq(x)
			},
			gen.UInt64(),
		))
		//
		properties.Property("Neg is an involution", prop.ForAll(
			func(a uint64) bool {
				var x = FromUint64(n, a)
				//
				return x.Neg().Neg().Eq(x)
			},
			gen.UInt64(),
		))
		//
		properties.Property("x - x is zero", prop.ForAll(
			func(a uint64) bool {
				return FromUint64(n, a).Sub(FromUint64(n, a)).IsZero()
			},
			gen.UInt64(),
		))
		//
		properties.Property("x + ~x is all ones", prop.ForAll(
			func(a uint64) bool {
				var x = FromUint64(n, a)
				//
				return x.Add(x.Not()).Not().IsZero()
			},
			gen.UInt64(),
		))
	}
	//
	properties.TestingRun(t)
}

// TestShifts_PropertyBased verifies shift identities: in-range shifts match
// big.Int references, out-of-range shifts saturate, and a logical left-right
// pair masks the low bits.
func TestShifts_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	for _, width := range propertyWidths {
		var (
			n   = width
			mod = new(big.Int).Lsh(big.NewInt(1), n)
		)
		//
		properties.Property("Shl matches big.Int reference", prop.ForAll(
			func(a uint64, k uint8) bool {
				var (
					s        = uint(k) % n
					x        = FromUint64(n, a)
					expected = new(big.Int).Lsh(x.Pattern(), s)
				)
				//
				return x.Shl(s).Pattern().Cmp(expected.Mod(expected, mod)) == 0
			},
			gen.UInt64(), gen.UInt8(),
		))
		//
		properties.Property("Shr matches big.Int reference", prop.ForAll(
			func(a uint64, k uint8) bool {
				var (
					s = uint(k) % n
					x = FromUint64(n, a)
				)
				//
				return x.Shr(s).Pattern().Cmp(new(big.Int).Rsh(x.Pattern(), s)) == 0
			},
			gen.UInt64(), gen.UInt8(),
		))
		//
		properties.Property("out-of-range shifts saturate", prop.ForAll(
			func(a uint64) bool {
				var x = FromUint64(n, a)
				//
				return x.Shl(n).IsZero() && x.Shr(n).IsZero()
			},
			gen.UInt64(),
		))
	}
	//
	properties.TestingRun(t)
}

// TestOrdering_PropertyBased verifies that unsigned comparison agrees with
// big.Int ordering of the patterns, and signed comparison with big.Int
// ordering of the numeric values.
func TestOrdering_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	//
	for _, width := range propertyWidths {
		var n = width
		//
		properties.Property("unsigned Cmp matches pattern order", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x = FromUint64(n, a)
					y = FromUint64(n, b)
				)
				//
				return x.Cmp(y) == x.Pattern().Cmp(y.Pattern())
			},
			gen.UInt64(), gen.UInt64(),
		))
		//
		properties.Property("signed Cmp matches numeric order", prop.ForAll(
			func(a, b uint64) bool {
				var (
					x = FromUint64(n, a).WithSigned(true)
					y = FromUint64(n, b).WithSigned(true)
				)
				//
				return x.Cmp(y) == x.BigInt().Cmp(y.BigInt())
			},
			gen.UInt64(), gen.UInt64(),
		))
	}
	//
	properties.TestingRun(t)
}

func mustRuntime(v Bits) RuntimeBits {
	r, err := NewRuntimeBits(v, FromUint64(RuntimeWidthBits, uint64(v.Width())))
	if err != nil {
		panic(err)
	}
	//
	return r
}
