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

// Package field maps fully-known bit vectors into elements of the BLS12-377
// scalar field, allowing generated arithmetic to feed constraint-system
// traces.  Only widths which embed injectively (i.e. strictly below the
// modulus width) are accepted.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/hartgen/go-bitvec/pkg/bits"
)

// MaxWidth is the widest bit vector which embeds injectively into the scalar
// field, being one bit below the 253-bit modulus.
const MaxWidth = fr.Bits - 1

// ToElement embeds the pattern of a bit vector into a field element.  Signed
// values embed via their two's-complement pattern, not their numeric value.
func ToElement(v bits.Bits) (fr.Element, error) {
	var e fr.Element
	//
	if v.IsUnbounded() || v.Width() > MaxWidth {
		return e, fmt.Errorf("%w: %d bits do not embed into %d-bit field", bits.ErrWidth, v.Width(), fr.Bits)
	}
	//
	e.SetBigInt(v.Pattern())
	//
	return e, nil
}

// FromElement recovers a bit vector of the given width and signedness from a
// field element, truncating any pattern bits beyond the width.
func FromElement(e fr.Element, width uint, signed bool) bits.Bits {
	var v big.Int
	//
	e.BigInt(&v)
	//
	return bits.FromBigInt(width, signed, &v)
}
