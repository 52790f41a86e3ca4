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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Shr_01(t *testing.T) {
	// Identity shift
	assert.Equal(t, uint64(185), FromUint64(16, 185).Shr(0).Uint64())
}

func Test_Shr_02(t *testing.T) {
	// Shift by the full width saturates to zero
	assert.Equal(t, uint64(0), FromUint64(16, 50307).Shr(16).Uint64())
}

func Test_Shr_03(t *testing.T) {
	// Shift beyond the width also saturates
	for _, width := range []uint{1, 16, 64, 65, 128, 129} {
		x := FromUint64(width, 0xffff)
		assert.True(t, x.Shr(width+3).IsZero(), "width %d", width)
	}
}

func Test_Shl_01(t *testing.T) {
	assert.Equal(t, uint64(0xff00), FromUint64(16, 0xff).Shl(8).Uint64())
}

func Test_Shl_02(t *testing.T) {
	// Bits shifted past the width are discarded
	assert.Equal(t, uint64(0xf000), FromUint64(16, 0xff).Shl(12).Uint64())
}

func Test_Shl_03(t *testing.T) {
	for _, width := range []uint{1, 16, 64, 65, 128, 129} {
		x := FromUint64(width, 1)
		assert.True(t, x.Shl(width).IsZero(), "width %d", width)
	}
}

func Test_Sra_01(t *testing.T) {
	// Top bit clear: behaves as a logical shift
	assert.Equal(t, uint64(0x0f), FromUint64(8, 0x78).Sra(3).Uint64())
}

func Test_Sra_02(t *testing.T) {
	// Top bit set on an unsigned-typed value: still sign extends, modelling
	// the hardware instruction on a signed view of the data.
	assert.Equal(t, uint64(0xf8), FromUint64(8, 0x80).Sra(4).Uint64())
}

func Test_Sra_03(t *testing.T) {
	// Shift by the full width or more yields all ones or all zeros
	assert.Equal(t, uint64(0xff), FromUint64(8, 0x80).Sra(8).Uint64())
	assert.Equal(t, uint64(0x00), FromUint64(8, 0x7f).Sra(8).Uint64())
	assert.Equal(t, uint64(0xff), FromUint64(8, 0x80).Sra(100).Uint64())
}

func Test_Sra_04(t *testing.T) {
	// Arbitrary-precision backing behaves identically
	var (
		x = FromBigInt(129, false, pow2(128))
		r = x.Sra(1)
	)
	// Sign bit replicated downward
	assert.True(t, r.Bit(128))
	assert.True(t, r.Bit(127))
	assert.False(t, r.Bit(126))
}

func Test_WideningShl_01(t *testing.T) {
	// Result width grows by the shift amount, losing no bits
	var (
		x = FromUint64(16, 0xffff)
		r = x.WideningShl(8)
	)
	//
	require.Equal(t, uint(24), r.Width())
	assert.Equal(t, uint64(0xffff00), r.Uint64())
}

func Test_WideningShl_02(t *testing.T) {
	// Crossing the native-word boundary
	var (
		x = FromUint64(64, ^uint64(0))
		r = x.WideningShl(64)
	)
	//
	require.Equal(t, uint(128), r.Width())
	assert.Equal(t, "340282366920938463444927863358058659840", r.Pattern().String())
}

func Test_Not_01(t *testing.T) {
	// Complement is an involution at every width
	for _, width := range []uint{1, 16, 32, 64, 65, 128, 129, 155} {
		x := FromUint64(width, 0xcafe)
		assert.True(t, x.Not().Not().Eq(x), "width %d", width)
	}
}

func Test_Not_02(t *testing.T) {
	assert.Equal(t, uint64(0xff00), FromUint64(16, 0xff).Not().Uint64())
}
