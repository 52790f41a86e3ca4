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
	"cmp"
)

// Cmp returns 1 if p > o, 0 if p == o, and -1 if p < o, where each operand is
// interpreted numerically under its own signedness.  Comparison is correct
// across mixed widths and mixed backing representations.
func (p Bits) Cmp(o Bits) int {
	// Fast path for matching machine-word operands.
	if p.kind == storeWord && o.kind == storeWord {
		switch {
		case !p.signed && !o.signed:
			return cmp.Compare(p.word, o.word)
		case p.signed && o.signed:
			return cmp.Compare(int64(p.extend64(64)), int64(o.extend64(64)))
		}
	}
	//
	return p.number().Cmp(o.number())
}

// Eq checks whether two bit vectors are numerically equal.
func (p Bits) Eq(o Bits) bool {
	return p.Cmp(o) == 0
}

// Ne checks whether two bit vectors are numerically distinct.
func (p Bits) Ne(o Bits) bool {
	return p.Cmp(o) != 0
}

// Lt checks whether this vector is numerically below another.
func (p Bits) Lt(o Bits) bool {
	return p.Cmp(o) < 0
}

// Le checks whether this vector is numerically at most another.
func (p Bits) Le(o Bits) bool {
	return p.Cmp(o) <= 0
}

// Gt checks whether this vector is numerically above another.
func (p Bits) Gt(o Bits) bool {
	return p.Cmp(o) > 0
}

// Ge checks whether this vector is numerically at least another.
func (p Bits) Ge(o Bits) bool {
	return p.Cmp(o) >= 0
}

// EqUint64 checks equality against a native unsigned constant.
func (p Bits) EqUint64(v uint64) bool {
	return p.Eq(FromUint64(64, v))
}

// CmpUint64 compares this vector against a native unsigned constant.
func (p Bits) CmpUint64(v uint64) int {
	return p.Cmp(FromUint64(64, v))
}
