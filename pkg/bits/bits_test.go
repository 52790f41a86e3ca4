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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Construct_01(t *testing.T) {
	// Construction truncates silently to the declared width
	assert.Equal(t, uint64(0xef), FromUint64(8, 0xdeadbeef).Uint64())
}

func Test_Construct_02(t *testing.T) {
	// Negative values wrap into their two's-complement pattern
	assert.Equal(t, uint64(0xfb), FromInt64(8, -5).Uint64())
	assert.Equal(t, int64(-5), FromInt64(8, -5).Int64())
}

func Test_Construct_03(t *testing.T) {
	// Storage selection across the tier boundaries
	for _, width := range []uint{1, 63, 64} {
		assert.Equal(t, storeWord, New(width, false).kind, "width %d", width)
	}
	//
	for _, width := range []uint{65, 127, 128} {
		assert.Equal(t, storeDouble, New(width, false).kind, "width %d", width)
	}
	//
	for _, width := range []uint{129, 256, WidthUnbounded} {
		assert.Equal(t, storeBig, New(width, false).kind, "width %d", width)
	}
}

func Test_Construct_04(t *testing.T) {
	assert.Panics(t, func() { New(0, false) })
}

func Test_Construct_05(t *testing.T) {
	// Big-endian byte construction
	assert.Equal(t, uint64(0x1234), FromBytes(16, false, []byte{0x12, 0x34}).Uint64())
}

func Test_Extend_01(t *testing.T) {
	// Zero extension of an unsigned value
	var x = FromUint64(8, 0xff)
	//
	assert.Equal(t, uint64(0xff), x.ZeroExtend(16).Uint64())
	assert.Equal(t, uint64(0xff), x.Cast(16).Uint64())
}

func Test_Extend_02(t *testing.T) {
	// Sign extension of a signed value
	var x = FromInt64(8, -1)
	//
	assert.Equal(t, uint64(0xffff), x.SignExtend(16).Uint64())
	assert.Equal(t, uint64(0xffff), x.Cast(16).Uint64())
	assert.Equal(t, int64(-1), x.Cast(16).Int64())
}

func Test_Extend_03(t *testing.T) {
	// Sign extension across a storage-tier boundary
	var (
		x = FromInt64(64, -1)
		r = x.SignExtend(128)
	)
	//
	assert.Equal(t, 0, r.Pattern().Cmp(new(big.Int).Sub(pow2(128), big.NewInt(1))))
}

func Test_Truncate_01(t *testing.T) {
	assert.Equal(t, uint64(0xbeef), FromUint64(64, 0xdeadbeef).Truncate(16).Uint64())
}

func Test_Truncate_02(t *testing.T) {
	// Truncation from arbitrary-precision backing to a native word
	var x = FromBigInt(200, false, new(big.Int).Add(pow2(199), big.NewInt(77)))
	//
	assert.Equal(t, uint64(77), x.Truncate(32).Uint64())
}

func Test_Bit_01(t *testing.T) {
	var x = FromUint64(16, 0b1010)
	//
	assert.False(t, x.Bit(0))
	assert.True(t, x.Bit(1))
	assert.False(t, x.Bit(2))
	assert.True(t, x.Bit(3))
	// Reads beyond the width give the (zero) extension
	assert.False(t, x.Bit(100))
}

func Test_Bit_02(t *testing.T) {
	var (
		minusOne = Unbounded(big.NewInt(-1))
		one      = Unbounded(big.NewInt(1))
	)
	// Unbounded values sign extend through every offset, including those
	// beyond the range of an int index.
	assert.True(t, minusOne.Bit(100))
	assert.True(t, minusOne.Bit(WidthUnbounded-1))
	assert.False(t, one.Bit(100))
	assert.False(t, one.Bit(WidthUnbounded-1))
}

func Test_Extract_01(t *testing.T) {
	var (
		x = FromUint64(32, 0xdeadbeef)
		r = x.Extract(15, 8)
	)
	//
	require.Equal(t, uint(8), r.Width())
	assert.Equal(t, uint64(0xbe), r.Uint64())
}

func Test_Extract_02(t *testing.T) {
	var (
		signed   = FromInt64(8, -128)
		unsigned = FromUint64(8, 0x80)
	)
	// Beyond the width, extraction reads the sign extension the way Bit does
	assert.Equal(t, uint64(0xf8), signed.Extract(11, 4).Uint64())
	assert.Equal(t, uint64(0x08), unsigned.Extract(11, 4).Uint64())
}

func Test_Insert_01(t *testing.T) {
	var (
		x = FromUint64(32, 0xdeadbeef)
		r = x.Insert(15, 8, FromUint64(8, 0x42))
	)
	//
	assert.Equal(t, uint64(0xdead42ef), r.Uint64())
}

func Test_Concat_01(t *testing.T) {
	var (
		hi = FromUint64(8, 0xde)
		lo = FromUint64(16, 0xadbe)
		r  = hi.Concat(lo)
	)
	//
	require.Equal(t, uint(24), r.Width())
	assert.Equal(t, uint64(0xdeadbe), r.Uint64())
}

func Test_Bytes_01(t *testing.T) {
	// Leading zero bytes are trimmed
	assert.Equal(t, []byte{0x12, 0x34}, FromUint64(64, 0x1234).Bytes())
}

func Test_Sign_01(t *testing.T) {
	assert.Equal(t, 0, New(16, true).Sign())
	assert.Equal(t, 1, FromUint64(16, 5).Sign())
	assert.Equal(t, -1, FromInt64(16, -5).Sign())
	// Unsigned interpretation never reports negative
	assert.Equal(t, 1, FromUint64(16, 0x8000).Sign())
}
