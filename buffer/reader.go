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

package buffer

import (
	"errors"
	"fmt"
)

// ErrUnderflow is returned when a read needs more bytes than remain in the input
var ErrUnderflow = errors.New("buffer: underflow")

// Reader reads from a borrowed byte slice. The slice is never modified
type Reader struct {
	data   []byte
	offset int
}

// NewReader returns a Reader positioned at the start of data
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
	}
}

func (r *Reader) underflow(need int) error {
	return fmt.Errorf(
		"%w: need %d byte(s) at offset %d, %d remaining",
		ErrUnderflow,
		need,
		r.offset,
		r.Remaining(),
	)
}

// Next returns the next n bytes and advances the cursor. The returned slice
// aliases the input. The cursor is left unchanged on error
func (r *Reader) Next(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, r.underflow(n)
	}
	ret := r.data[r.offset : r.offset+n : r.offset+n]
	r.offset += n
	return ret, nil
}

// Peek returns the unread bytes without advancing the cursor. The returned slice
// aliases the input
func (r *Reader) Peek() []byte {
	return r.data[r.offset:len(r.data):len(r.data)]
}

// ReadByte returns the next byte and advances the cursor
func (r *Reader) ReadByte() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, r.underflow(1)
	}
	b := r.data[r.offset]
	r.offset++
	return b, nil
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Offset returns the number of bytes consumed so far
func (r *Reader) Offset() int {
	return r.offset
}
