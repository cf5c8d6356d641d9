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

type testPoint struct {
	X int32
	Y int32
}

func (p *testPoint) EncodeTo(w *buffer.Writer) {
	codec.PutInt32(w, p.X)
	codec.PutInt32(w, p.Y)
}

func (p *testPoint) DecodeFrom(r *buffer.Reader) error {
	var err error
	if p.X, err = codec.Int32(r); err != nil {
		return err
	}
	p.Y, err = codec.Int32(r)
	return err
}

func (p *testPoint) EncodedSize() int {
	return codec.SizeInt32(p.X) + codec.SizeInt32(p.Y)
}

type testPath struct {
	Name   string
	Points []testPoint
	Tags   []string
}

func (p *testPath) EncodeTo(w *buffer.Writer) {
	codec.PutString(w, p.Name)
	codec.PutMessages(w, p.Points)
	codec.PutArray(w, p.Tags, codec.PutString)
}

func (p *testPath) DecodeFrom(r *buffer.Reader) error {
	var err error
	if p.Name, err = codec.String(r); err != nil {
		return err
	}
	if p.Points, err = codec.Messages[testPoint](r); err != nil {
		return err
	}
	p.Tags, err = codec.Array(r, codec.String)
	return err
}

func (p *testPath) EncodedSize() int {
	return codec.SizeString(p.Name) +
		codec.SizeMessages(p.Points) +
		codec.SizeArray(p.Tags, codec.SizeString)
}

// Empty message, which takes no space on the wire
type testEmpty struct{}

func (*testEmpty) EncodeTo(*buffer.Writer)          {}
func (*testEmpty) DecodeFrom(*buffer.Reader) error { return nil }

func TestCompositeEncode(t *testing.T) {
	p := &testPath{
		Name:   "ab",
		Points: []testPoint{{X: 1, Y: -1}, {X: 64, Y: 0}},
		Tags:   []string{"x"},
	}
	w := buffer.NewWriter(0)
	p.EncodeTo(w)
	// name, 2 points (no separators or length prefixes), 1 tag
	assert.Equal(t, "046162"+"04"+"0201"+"800100"+"02"+"0278", hex.EncodeToString(w.Bytes()))
	assert.Equal(t, w.Len(), p.EncodedSize())
	var decoded testPath
	r := buffer.NewReader(w.Bytes())
	require.NoError(t, decoded.DecodeFrom(r))
	assert.Equal(t, *p, decoded)
	assert.Equal(t, 0, r.Remaining())
}

func TestCompositeEmptyArraysDecodeNil(t *testing.T) {
	w := buffer.NewWriter(0)
	(&testPath{}).EncodeTo(w)
	assert.Equal(t, []byte{0x00, 0x00, 0x00}, w.Bytes())
	var decoded testPath
	require.NoError(t, decoded.DecodeFrom(buffer.NewReader(w.Bytes())))
	assert.Nil(t, decoded.Points)
	assert.Nil(t, decoded.Tags)
}

func TestCompositeTruncated(t *testing.T) {
	p := &testPath{
		Name:   "path",
		Points: []testPoint{{X: 100, Y: 200}, {X: -300, Y: 400}},
		Tags:   []string{"one", "two"},
	}
	w := buffer.NewWriter(0)
	p.EncodeTo(w)
	full := w.Bytes()
	for i := range len(full) {
		var decoded testPath
		err := decoded.DecodeFrom(buffer.NewReader(full[:i]))
		assert.ErrorIs(t, err, codec.ErrBufferUnderflow, "prefix length %d", i)
	}
}

func TestCountErrors(t *testing.T) {
	// Negative count
	_, err := codec.Array(buffer.NewReader([]byte{0x01}), codec.Int32)
	assert.ErrorIs(t, err, codec.ErrInvalidLength)
	// Count beyond int32
	w := buffer.NewWriter(0)
	codec.PutInt64(w, 1<<40)
	_, err = codec.Messages[testPoint](buffer.NewReader(w.Bytes()))
	assert.ErrorIs(t, err, codec.ErrIntegerOverflow)
	// Huge count with no elements behind it
	w = buffer.NewWriter(0)
	codec.PutCount(w, 1<<30)
	_, err = codec.Array(buffer.NewReader(w.Bytes()), codec.Int64)
	assert.ErrorIs(t, err, codec.ErrBufferUnderflow)
}

func TestMessagesWithoutFields(t *testing.T) {
	items := make([]testEmpty, 1000)
	w := buffer.NewWriter(0)
	codec.PutMessages(w, items)
	assert.Equal(t, codec.SizeCount(1000), w.Len())
	decoded, err := codec.Messages[testEmpty](buffer.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Len(t, decoded, 1000)
}

func TestArrayScalars(t *testing.T) {
	w := buffer.NewWriter(0)
	codec.PutArray(w, []bool{true, false, true}, codec.PutBool)
	codec.PutArray(w, []float64{1.5, -0.25}, codec.PutFloat64)
	codec.PutArray(w, []int64{-1, 1 << 50}, codec.PutInt64)
	r := buffer.NewReader(w.Bytes())
	bools, err := codec.Array(r, codec.Bool)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, bools)
	floats, err := codec.Array(r, codec.Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -0.25}, floats)
	ints, err := codec.Array(r, codec.Int64)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 1 << 50}, ints)
	assert.Equal(t, 0, r.Remaining())
}

func TestCountBeyondInputForEmptyMessages(t *testing.T) {
	// A count near the int32 limit with nothing behind it
	w := buffer.NewWriter(0)
	codec.PutCount(w, math.MaxInt32)
	assert.Equal(t, "feffffff0f", hex.EncodeToString(w.Bytes()))
	_, err := codec.Messages[testEmpty](buffer.NewReader(w.Bytes()))
	assert.ErrorIs(t, err, codec.ErrBufferUnderflow)
	// Up to MaxEmptyMessages is still allowed
	w = buffer.NewWriter(0)
	codec.PutMessages(w, make([]testEmpty, codec.MaxEmptyMessages))
	decoded, err := codec.Messages[testEmpty](buffer.NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Len(t, decoded, codec.MaxEmptyMessages)
	w = buffer.NewWriter(0)
	codec.PutMessages(w, make([]testEmpty, codec.MaxEmptyMessages+1))
	_, err = codec.Messages[testEmpty](buffer.NewReader(w.Bytes()))
	assert.ErrorIs(t, err, codec.ErrBufferUnderflow)
}
