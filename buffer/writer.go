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

// Package buffer provides the byte buffers used by the codec: an append-only
// Writer that grows by doubling, and a Reader that walks a borrowed byte slice
// with a cursor.
//
// Neither type is safe for concurrent use. Each encode or decode call owns its
// own buffer for the duration of the call.
package buffer

// DefaultCapacity is the initial capacity used for envelope writers
const DefaultCapacity = 65536

// Writer is an append-only growable byte buffer
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with the specified initial capacity. A non-positive
// capacity is allowed and results in a Writer that allocates on first write
func NewWriter(capacity int) *Writer {
	if capacity < 0 {
		capacity = 0
	}
	return &Writer{
		buf: make([]byte, 0, capacity),
	}
}

// grow makes sure that at least n more bytes can be appended without reallocation.
// New capacity is max(2*cap, len+n)
func (w *Writer) grow(n int) {
	need := len(w.buf) + n
	if need <= cap(w.buf) {
		return
	}
	newCap := max(2*cap(w.buf), need)
	tmp := make([]byte, len(w.buf), newCap)
	copy(tmp, w.buf)
	w.buf = tmp
}

// Write appends p to the buffer. It always returns len(p) and a nil error, and
// exists so that a Writer can be used as an io.Writer
func (w *Writer) Write(p []byte) (int, error) {
	w.grow(len(p))
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// WriteString appends the bytes of s to the buffer
func (w *Writer) WriteString(s string) (int, error) {
	w.grow(len(s))
	w.buf = append(w.buf, s...)
	return len(s), nil
}

// WriteByte appends a single byte to the buffer
func (w *Writer) WriteByte(b byte) error {
	w.grow(1)
	w.buf = append(w.buf, b)
	return nil
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

// Cap returns the current capacity of the buffer
func (w *Writer) Cap() int {
	return cap(w.buf)
}

// Bytes returns exactly the bytes written so far. The returned slice aliases the
// buffer contents and is only valid until the next write
func (w *Writer) Bytes() []byte {
	return w.buf[:len(w.buf):len(w.buf)]
}
