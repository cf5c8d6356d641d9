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

package bitpacker_test

import (
	"bytes"
	"log/slog"
	"testing"

	bitpacker "github.com/byte-mods/bit-packer"
	"github.com/byte-mods/bit-packer/buffer"
	"github.com/byte-mods/bit-packer/codec"
	"github.com/byte-mods/bit-packer/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testScore struct {
	Player string
	Points int64
	Ratio  float64
}

func (s *testScore) EncodeTo(w *buffer.Writer) {
	codec.PutString(w, s.Player)
	codec.PutInt64(w, s.Points)
	codec.PutFloat64(w, s.Ratio)
}

func (s *testScore) DecodeFrom(r *buffer.Reader) error {
	var err error
	if s.Player, err = codec.String(r); err != nil {
		return err
	}
	if s.Points, err = codec.Int64(r); err != nil {
		return err
	}
	s.Ratio, err = codec.Float64(r)
	return err
}

// Counts calls to DecodeFrom and reads nothing
type callCounter struct {
	calls int
}

func (p *callCounter) DecodeFrom(r *buffer.Reader) error {
	p.calls++
	return nil
}

func TestEnvelopeEncode(t *testing.T) {
	e := bitpacker.NewEnvelope("2.1")
	assert.Equal(t, "2.1", e.Version())
	data := e.Encode(&testScore{Player: "ab", Points: -3, Ratio: 0.5})
	// "2.1", "ab", -3, 5000
	assert.Equal(t, test.DecodeHexString("06322e31 046162 05 90 4e"), data)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	e := bitpacker.NewEnvelope("2.1", bitpacker.WithInitialCapacity(1))
	score := &testScore{Player: "player one", Points: 1 << 50, Ratio: -2.25}
	decoded, err := bitpacker.Decode[testScore](e, e.Encode(score))
	require.NoError(t, err)
	assert.Equal(t, score, decoded)
}

func TestEnvelopeEmptyVersion(t *testing.T) {
	e := bitpacker.NewEnvelope("")
	data := e.Encode(&testScore{})
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, data)
	_, err := bitpacker.Decode[testScore](e, data)
	assert.NoError(t, err)
}

func TestEnvelopeVersionMismatch(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(
		slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	data := bitpacker.NewEnvelope("1.0.0").Encode(&testScore{Player: "x"})
	e := bitpacker.NewEnvelope("1.0.1", bitpacker.WithLogger(logger))
	counter := &callCounter{}
	err := e.DecodeInto(data, counter)
	require.ErrorIs(t, err, bitpacker.ErrVersionMismatch)
	assert.Equal(t, `bitpacker: version mismatch: expected "1.0.1", got "1.0.0"`, err.Error())
	assert.Zero(t, counter.calls, "nothing should be read after a version mismatch")
	assert.Contains(t, logBuf.String(), "expected=1.0.1")
	assert.Contains(t, logBuf.String(), "actual=1.0.0")
}

func TestEnvelopeCheckVersion(t *testing.T) {
	e := bitpacker.NewEnvelope("1.0.0")
	r := buffer.NewReader(test.DecodeHexString("0a312e302e30 ff"))
	require.NoError(t, e.CheckVersion(r))
	assert.Equal(t, 6, r.Offset())

	_, err := bitpacker.Decode[testScore](e, nil)
	assert.ErrorIs(t, err, bitpacker.ErrBufferUnderflow)
	// Version string that claims more bytes than are present
	_, err = bitpacker.Decode[testScore](e, test.DecodeHexString("0a312e"))
	assert.ErrorIs(t, err, bitpacker.ErrBufferUnderflow)
	// Version string that isn't UTF-8
	_, err = bitpacker.Decode[testScore](e, test.DecodeHexString("02ff"))
	assert.ErrorIs(t, err, bitpacker.ErrInvalidUtf8)
}

func TestEnvelopeTrailingData(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(
		slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	data := bitpacker.NewEnvelope("1").Encode(&testScore{Player: "x", Points: 1})
	data = append(data, 0xde, 0xad)

	lenient := bitpacker.NewEnvelope("1", bitpacker.WithLogger(logger))
	score, err := bitpacker.Decode[testScore](lenient, data)
	require.NoError(t, err)
	assert.Equal(t, &testScore{Player: "x", Points: 1}, score)
	assert.Contains(t, logBuf.String(), "ignoring trailing data")
	assert.Contains(t, logBuf.String(), "length=2")

	strict := bitpacker.NewEnvelope("1", bitpacker.WithRejectTrailingData(true))
	score, err = bitpacker.Decode[testScore](strict, data)
	assert.Nil(t, score)
	assert.ErrorIs(t, err, bitpacker.ErrTrailingData)
}

func TestEnvelopeNilLogger(t *testing.T) {
	e := bitpacker.NewEnvelope("1", bitpacker.WithLogger(nil))
	_, err := bitpacker.Decode[testScore](e, bitpacker.NewEnvelope("2").Encode(&testScore{}))
	assert.ErrorIs(t, err, bitpacker.ErrVersionMismatch)
}
