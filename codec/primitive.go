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

package codec

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/byte-mods/bit-packer/buffer"
)

const (
	// Scale is the fixed point multiplier applied to float values
	Scale = 10000
	// Quantum is the smallest non-zero magnitude that survives the fixed point encoding
	Quantum = 1.0 / Scale
)

// PutInt32 writes a signed 32-bit value
func PutInt32(w *buffer.Writer, v int32) {
	PutUvarint(w, uint64(ZigZag32(v)))
}

// Int32 reads a signed 32-bit value. Values outside the int32 range fail with
// ErrIntegerOverflow
func Int32(r *buffer.Reader) (int32, error) {
	v, err := Int64(r)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrIntegerOverflow
	}
	return int32(v), nil
}

// PutInt64 writes a signed 64-bit value
func PutInt64(w *buffer.Writer, v int64) {
	PutUvarint(w, ZigZag64(v))
}

// Int64 reads a signed 64-bit value
func Int64(r *buffer.Reader) (int64, error) {
	u, err := Uvarint(r)
	if err != nil {
		return 0, err
	}
	return UnZigZag64(u), nil
}

// FixedFromFloat64 converts v to its scaled integer representation. The
// conversion truncates toward zero. NaN maps to 0 and out of range values
// saturate
func FixedFromFloat64(v float64) int64 {
	return truncate(v * Scale)
}

// FixedFromFloat32 is like FixedFromFloat64, but scales in single precision
// like the other BitPacker runtimes do for 32-bit floats
func FixedFromFloat32(v float32) int64 {
	scaled := float32(v * Scale)
	return truncate(float64(scaled))
}

func truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// PutFloat32 writes v using the fixed point encoding
func PutFloat32(w *buffer.Writer, v float32) {
	PutInt64(w, FixedFromFloat32(v))
}

// Float32 reads a fixed point value into a float32
func Float32(r *buffer.Reader) (float32, error) {
	v, err := Int64(r)
	if err != nil {
		return 0, err
	}
	return float32(float64(v) / Scale), nil
}

// PutFloat64 writes v using the fixed point encoding
func PutFloat64(w *buffer.Writer, v float64) {
	PutInt64(w, FixedFromFloat64(v))
}

// Float64 reads a fixed point value into a float64
func Float64(r *buffer.Reader) (float64, error) {
	v, err := Int64(r)
	if err != nil {
		return 0, err
	}
	return float64(v) / Scale, nil
}

// PutBool writes a single 0x00 or 0x01 byte
func PutBool(w *buffer.Writer, v bool) {
	if v {
		_ = w.WriteByte(1)
	} else {
		_ = w.WriteByte(0)
	}
}

// Bool reads a single byte. Any non-zero value is true
func Bool(r *buffer.Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// PutString writes the UTF-8 byte length of v followed by its bytes
func PutString(w *buffer.Writer, v string) {
	PutInt64(w, int64(len(v)))
	_, _ = w.WriteString(v)
}

// String reads a length-prefixed UTF-8 string
func String(r *buffer.Reader) (string, error) {
	b, err := rawBytes(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUtf8
	}
	return string(b), nil
}

// PutBytes writes the length of v followed by its bytes
func PutBytes(w *buffer.Writer, v []byte) {
	PutInt64(w, int64(len(v)))
	_, _ = w.Write(v)
}

// Bytes reads a length-prefixed byte string. The result is a copy and does not
// alias the input
func Bytes(r *buffer.Reader) ([]byte, error) {
	b, err := rawBytes(r)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, len(b))
	copy(ret, b)
	return ret, nil
}

func rawBytes(r *buffer.Reader) ([]byte, error) {
	l, err := Int64(r)
	if err != nil {
		return nil, err
	}
	if l < 0 {
		return nil, ErrInvalidLength
	}
	// Compare before converting so that huge lengths can't wrap on 32-bit platforms
	if l > int64(r.Remaining()) {
		return nil, fmt.Errorf(
			"%w: length %d at offset %d exceeds %d remaining byte(s)",
			ErrBufferUnderflow,
			l,
			r.Offset(),
			r.Remaining(),
		)
	}
	return r.Next(int(l))
}

// SizeInt32 returns the encoded size of v
func SizeInt32(v int32) int {
	return SizeUvarint(uint64(ZigZag32(v)))
}

// SizeInt64 returns the encoded size of v
func SizeInt64(v int64) int {
	return SizeUvarint(ZigZag64(v))
}

// SizeFloat32 returns the encoded size of v
func SizeFloat32(v float32) int {
	return SizeInt64(FixedFromFloat32(v))
}

// SizeFloat64 returns the encoded size of v
func SizeFloat64(v float64) int {
	return SizeInt64(FixedFromFloat64(v))
}

// SizeBool returns the encoded size of a bool
func SizeBool(bool) int {
	return 1
}

// SizeString returns the encoded size of v
func SizeString(v string) int {
	return SizeInt64(int64(len(v))) + len(v)
}
