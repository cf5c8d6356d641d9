// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec_test

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/byte-mods/bit-packer/buffer"
	"github.com/byte-mods/bit-packer/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type varintTestDefinition struct {
	Value int64
	Hex   string
}

var int64Tests = []varintTestDefinition{
	{Value: 0, Hex: "00"},
	{Value: -1, Hex: "01"},
	{Value: 1, Hex: "02"},
	{Value: -2, Hex: "03"},
	{Value: 2, Hex: "04"},
	{Value: 63, Hex: "7e"},
	{Value: -64, Hex: "7f"},
	{Value: 64, Hex: "8001"},
	{Value: -65, Hex: "8101"},
	{Value: 8191, Hex: "fe7f"},
	{Value: -8192, Hex: "ff7f"},
	{Value: 8192, Hex: "808001"},
	{Value: math.MaxInt32, Hex: "feffffff0f"},
	{Value: math.MinInt32, Hex: "ffffffff0f"},
	{Value: math.MaxInt64, Hex: "feffffffffffffffff01"},
	{Value: math.MinInt64, Hex: "ffffffffffffffffff01"},
}

func TestInt64Encode(t *testing.T) {
	for _, test := range int64Tests {
		w := buffer.NewWriter(0)
		codec.PutInt64(w, test.Value)
		assert.Equal(
			t,
			test.Hex,
			hex.EncodeToString(w.Bytes()),
			"value %d did not encode to expected bytes",
			test.Value,
		)
		assert.Equal(t, len(test.Hex)/2, codec.SizeInt64(test.Value))
	}
}

func TestInt64Decode(t *testing.T) {
	for _, test := range int64Tests {
		data, err := hex.DecodeString(test.Hex)
		require.NoError(t, err)
		r := buffer.NewReader(data)
		v, err := codec.Int64(r)
		require.NoError(t, err)
		assert.Equal(t, test.Value, v)
		assert.Equal(t, 0, r.Remaining())
	}
}

func TestInt32MatchesInt64Encoding(t *testing.T) {
	for _, test := range int64Tests {
		if test.Value < math.MinInt32 || test.Value > math.MaxInt32 {
			continue
		}
		w32 := buffer.NewWriter(0)
		codec.PutInt32(w32, int32(test.Value))
		assert.Equal(t, test.Hex, hex.EncodeToString(w32.Bytes()))
		v, err := codec.Int32(buffer.NewReader(w32.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, int32(test.Value), v)
	}
}

func TestInt32Overflow(t *testing.T) {
	w := buffer.NewWriter(0)
	codec.PutInt64(w, math.MaxInt32+1)
	_, err := codec.Int32(buffer.NewReader(w.Bytes()))
	assert.ErrorIs(t, err, codec.ErrIntegerOverflow)
}

func TestZigZagRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 2, -2, 127, -128, 1 << 40, -(1 << 40),
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64,
		math.MaxInt64 - 1, math.MinInt64 + 1,
	}
	for _, v := range values {
		assert.Equal(t, v, codec.UnZigZag64(codec.ZigZag64(v)))
	}
	assert.Equal(t, uint64(math.MaxUint64), codec.ZigZag64(math.MinInt64))
	assert.Equal(t, uint64(math.MaxUint64-1), codec.ZigZag64(math.MaxInt64))
	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, v, codec.UnZigZag32(codec.ZigZag32(v)))
		assert.Equal(t, uint64(codec.ZigZag32(v)), codec.ZigZag64(int64(v)))
	}
}

func TestVarintMinimality(t *testing.T) {
	for _, u := range []uint64{0, 1, 64, 127} {
		w := buffer.NewWriter(0)
		codec.PutUvarint(w, u)
		assert.Equal(t, 1, w.Len(), "value %d", u)
	}
	for _, u := range []uint64{128, 300, 8192, 16383} {
		w := buffer.NewWriter(0)
		codec.PutUvarint(w, u)
		assert.Equal(t, 2, w.Len(), "value %d", u)
	}
	for _, u := range []uint64{16384, 1 << 20} {
		w := buffer.NewWriter(0)
		codec.PutUvarint(w, u)
		assert.Equal(t, 3, w.Len(), "value %d", u)
	}
	w := buffer.NewWriter(0)
	codec.PutUvarint(w, math.MaxUint64)
	assert.Equal(t, codec.MaxVarintLen64, w.Len())
	assert.Equal(t, codec.MaxVarintLen64, codec.SizeUvarint(math.MaxUint64))
}

func TestUvarintTruncated(t *testing.T) {
	for _, hexData := range []string{"", "80", "ff", "8080", "ffffffffffffffffff"} {
		data, err := hex.DecodeString(hexData)
		require.NoError(t, err)
		r := buffer.NewReader(data)
		_, err = codec.Uvarint(r)
		assert.ErrorIs(t, err, codec.ErrBufferUnderflow, "input %q", hexData)
		assert.Equal(t, 0, r.Offset(), "input %q", hexData)
	}
}

func TestUvarintOverflow(t *testing.T) {
	for _, hexData := range []string{
		// 10th byte carries more than the top bit
		"ffffffffffffffffff02",
		// 11 byte continuation run
		"ffffffffffffffffff8101",
	} {
		data, err := hex.DecodeString(hexData)
		require.NoError(t, err)
		r := buffer.NewReader(data)
		_, err = codec.Uvarint(r)
		assert.ErrorIs(t, err, codec.ErrVarintOverflow, "input %q", hexData)
		assert.Equal(t, 0, r.Offset(), "input %q", hexData)
	}
}

func TestAppendUvarint(t *testing.T) {
	assert.Equal(t, []byte{0xaa, 0x01}, codec.AppendUvarint([]byte{0xaa}, 1))
	assert.Equal(t, []byte{0xac, 0x02}, codec.AppendUvarint(nil, 300))
}

func TestUvarintAdvancesCursor(t *testing.T) {
	r := buffer.NewReader([]byte{0xac, 0x02, 0x7f})
	v, err := codec.Uvarint(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 2, r.Offset())
	v, err = codec.Uvarint(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(127), v)
	assert.Equal(t, 0, r.Remaining())
}
