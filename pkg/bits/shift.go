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

// Shl computes a logical left shift at this vector's own width.  Bits shifted
// past the width are discarded, hence shifting by the width or more yields
// zero.
func (p Bits) Shl(shift uint) Bits {
	if p.IsUnbounded() {
		var v big.Int
		//
		v.Lsh(p.number(), shift)
		//
		return newBits(WidthUnbounded, p.signed, &v)
	} else if shift >= p.width {
		return New(p.width, p.signed)
	}
	//
	switch p.kind {
	case storeWord:
		return fromPattern64(p.width, p.signed, p.word<<shift)
	case storeDouble:
		return fromPattern128(p.width, p.signed, p.dword.Lsh(shift))
	default:
		var v big.Int
		//
		v.Lsh(p.patternBig(), shift)
		//
		return newBits(p.width, p.signed, &v)
	}
}

// Shr computes a logical right shift, filling with zeros from the top.
// Shifting by the width or more yields zero.
func (p Bits) Shr(shift uint) Bits {
	if p.IsUnbounded() {
		var v big.Int
		//
		v.Rsh(p.number(), shift)
		//
		return newBits(WidthUnbounded, p.signed, &v)
	} else if shift >= p.width {
		return New(p.width, p.signed)
	}
	//
	switch p.kind {
	case storeWord:
		return fromPattern64(p.width, p.signed, p.word>>shift)
	case storeDouble:
		return fromPattern128(p.width, p.signed, p.dword.Rsh(shift))
	default:
		var v big.Int
		//
		v.Rsh(p.patternBig(), shift)
		//
		return newBits(p.width, p.signed, &v)
	}
}

// Sra computes an arithmetic right shift.  The bit filled in from the top is
// the most significant bit of the current width, regardless of the declared
// signedness, modelling the hardware shift instruction operating on a signed
// view of the data.  Shifting by the width or more yields all zeros or all
// ones according to that bit.
func (p Bits) Sra(shift uint) Bits {
	if p.IsUnbounded() {
		var v big.Int
		//
		v.Rsh(p.number(), shift)
		//
		return newBits(WidthUnbounded, p.signed, &v)
	}
	//
	negative := p.topBit()
	//
	if shift >= p.width {
		if negative {
			return newBits(p.width, p.signed, big.NewInt(-1))
		}
		//
		return New(p.width, p.signed)
	}
	//
	var v big.Int
	// Shift the signed view, which big.Int performs arithmetically.
	sv := p.patternBig()
	//
	if negative {
		sv.Sub(sv, twoPow(p.width))
	}
	//
	v.Rsh(sv, shift)
	//
	return newBits(p.width, p.signed, &v)
}

// WideningShl computes an exact left shift whose result width grows by the
// shift amount, so no bits are ever lost.
func (p Bits) WideningShl(shift uint) Bits {
	var v big.Int
	//
	v.Lsh(p.number(), shift)
	//
	return newBits(wideningWidth(p.width, shift), p.signed, &v)
}
