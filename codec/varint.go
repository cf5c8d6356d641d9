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
	"errors"
	"fmt"
	"io"

	"github.com/byte-mods/bit-packer/buffer"
	"google.golang.org/protobuf/encoding/protowire"
)

// MaxVarintLen64 is the maximum length of a varint-encoded 64-bit value
const MaxVarintLen64 = 10

// AppendUvarint appends the varint encoding of v to dst. Values below 128 take
// 1 byte and values below 16384 take 2
func AppendUvarint(dst []byte, v uint64) []byte {
	return protowire.AppendVarint(dst, v)
}

// PutUvarint writes v as an unsigned varint
func PutUvarint(w *buffer.Writer, v uint64) {
	if v < 0x80 {
		_ = w.WriteByte(byte(v))
		return
	}
	var tmp [MaxVarintLen64]byte
	_, _ = w.Write(AppendUvarint(tmp[:0], v))
}

// Uvarint reads an unsigned varint. Input that ends inside the varint fails with
// ErrBufferUnderflow, and a varint that doesn't fit in 64 bits fails with
// ErrVarintOverflow. The cursor is left unchanged on error
func Uvarint(r *buffer.Reader) (uint64, error) {
	v, n := protowire.ConsumeVarint(r.Peek())
	if n < 0 {
		if errors.Is(protowire.ParseError(n), io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf(
				"%w: truncated varint at offset %d, %d remaining",
				ErrBufferUnderflow,
				r.Offset(),
				r.Remaining(),
			)
		}
		return 0, ErrVarintOverflow
	}
	if _, err := r.Next(n); err != nil {
		return 0, err
	}
	return v, nil
}

// SizeUvarint returns the number of bytes needed to encode v as a varint
func SizeUvarint(v uint64) int {
	return protowire.SizeVarint(v)
}
