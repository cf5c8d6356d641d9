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

	"github.com/byte-mods/bit-packer/buffer"
)

// Encoder is implemented by message types. EncodeTo writes the message fields in
// schema order
type Encoder interface {
	EncodeTo(w *buffer.Writer)
}

// Decoder is implemented by message types. DecodeFrom reads the message fields in
// the same order that EncodeTo writes them
type Decoder interface {
	DecodeFrom(r *buffer.Reader) error
}

// Sizer is an optional interface for messages that can compute their encoded size
// up front
type Sizer interface {
	EncodedSize() int
}

// MaxEmptyMessages is the largest array count accepted when the count exceeds the
// remaining input. Only messages without fields take no space on the wire, so a
// larger count can't be satisfied by anything else
const MaxEmptyMessages = 1 << 16

// PutCount writes an array element count
func PutCount(w *buffer.Writer, n int) {
	PutInt64(w, int64(n))
}

// Count reads an array element count. Counts are limited to the int32 range for
// compatibility with the runtimes that use 32-bit lengths
func Count(r *buffer.Reader) (int, error) {
	n, err := Int32(r)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrInvalidLength
	}
	return int(n), nil
}

// CheckCount rejects a message array count that the remaining input can't hold,
// allowing up to MaxEmptyMessages elements of messages without fields
func CheckCount(r *buffer.Reader, n int) error {
	if n > r.Remaining() && n > MaxEmptyMessages {
		return countUnderflow(r, n)
	}
	return nil
}

func countUnderflow(r *buffer.Reader, n int) error {
	return fmt.Errorf(
		"%w: count %d at offset %d exceeds %d remaining byte(s)",
		ErrBufferUnderflow,
		n,
		r.Offset(),
		r.Remaining(),
	)
}

// SizeCount returns the encoded size of an array element count
func SizeCount(n int) int {
	return SizeInt64(int64(n))
}

// PutArray writes the element count of items followed by each element using put
func PutArray[T any](w *buffer.Writer, items []T, put func(*buffer.Writer, T)) {
	PutCount(w, len(items))
	for _, item := range items {
		put(w, item)
	}
}

// Array reads an element count followed by that many elements using get. An
// empty array decodes to a nil slice
func Array[T any](r *buffer.Reader, get func(*buffer.Reader) (T, error)) ([]T, error) {
	n, err := Count(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	// Every scalar element takes at least one byte
	if n > r.Remaining() {
		return nil, countUnderflow(r, n)
	}
	items := make([]T, 0, n)
	for range n {
		item, err := get(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// PutMessages writes the element count of items followed by each nested message
func PutMessages[T any, PT interface {
	*T
	Encoder
}](w *buffer.Writer, items []T) {
	PutCount(w, len(items))
	for i := range items {
		PT(&items[i]).EncodeTo(w)
	}
}

// Messages reads an element count followed by that many nested messages. An
// empty array decodes to a nil slice
func Messages[T any, PT interface {
	*T
	Decoder
}](r *buffer.Reader) ([]T, error) {
	n, err := Count(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if err := CheckCount(r, n); err != nil {
		return nil, err
	}
	// Messages without fields take no space, so the remaining input only bounds
	// the initial allocation
	items := make([]T, 0, min(n, r.Remaining()))
	for range n {
		var item T
		if err := PT(&item).DecodeFrom(r); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// SizeArray returns the encoded size of items using size for each element
func SizeArray[T any](items []T, size func(T) int) int {
	ret := SizeCount(len(items))
	for _, item := range items {
		ret += size(item)
	}
	return ret
}

// SizeMessages returns the encoded size of an array of nested messages
func SizeMessages[T any, PT interface {
	*T
	Sizer
}](items []T) int {
	ret := SizeCount(len(items))
	for i := range items {
		ret += PT(&items[i]).EncodedSize()
	}
	return ret
}
