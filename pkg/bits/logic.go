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

// And computes the bitwise conjunction of two bit vectors at the wider of
// their two widths, with each operand extended per its own signedness.
func (p Bits) And(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	switch {
	case w <= 64:
		return fromPattern64(w, p.signed, p.extend64(w)&o.extend64(w))
	case w <= 128:
		return fromPattern128(w, p.signed, p.extend128(w).And(o.extend128(w)))
	default:
		var v big.Int
		// big.Int bitwise operations treat negative values as infinite
		// two's complement, which is exactly sign extension.
		v.And(p.number(), o.number())
		//
		return newBits(w, p.signed, &v)
	}
}

// Or computes the bitwise disjunction of two bit vectors at the wider of
// their two widths.
func (p Bits) Or(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	switch {
	case w <= 64:
		return fromPattern64(w, p.signed, p.extend64(w)|o.extend64(w))
	case w <= 128:
		return fromPattern128(w, p.signed, p.extend128(w).Or(o.extend128(w)))
	default:
		var v big.Int
		//
		v.Or(p.number(), o.number())
		//
		return newBits(w, p.signed, &v)
	}
}

// Xor computes the bitwise exclusive-or of two bit vectors at the wider of
// their two widths.
func (p Bits) Xor(o Bits) Bits {
	w := combinedWidth(p, o)
	//
	switch {
	case w <= 64:
		return fromPattern64(w, p.signed, p.extend64(w)^o.extend64(w))
	case w <= 128:
		return fromPattern128(w, p.signed, p.extend128(w).Xor(o.extend128(w)))
	default:
		var v big.Int
		//
		v.Xor(p.number(), o.number())
		//
		return newBits(w, p.signed, &v)
	}
}

// AndNot computes p AND (NOT o) at the wider of the two widths.
func (p Bits) AndNot(o Bits) Bits {
	return p.And(o.Not())
}

// Not computes the bitwise complement of this value at its own width.
// Complement is an involution at every width.
func (p Bits) Not() Bits {
	switch p.kind {
	case storeWord:
		return fromPattern64(p.width, p.signed, ^p.word)
	case storeDouble:
		return fromPattern128(p.width, p.signed, p.dword.Not())
	default:
		var v big.Int
		// ~x == -x-1 in two's complement, which holds at every width
		// including the unbounded case.
		v.Not(p.number())
		//
		return newBits(p.width, p.signed, &v)
	}
}
