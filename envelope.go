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

package bitpacker

import (
	"fmt"
	"log/slog"

	"github.com/byte-mods/bit-packer/buffer"
	"github.com/byte-mods/bit-packer/codec"
)

// Envelope encodes and decodes root messages for a single schema version
type Envelope struct {
	version        string
	capacity       int
	rejectTrailing bool
	logger         *slog.Logger
}

// NewEnvelope returns an Envelope for the specified schema version
func NewEnvelope(version string, opts ...EnvelopeOptionFunc) *Envelope {
	e := &Envelope{
		version:  version,
		capacity: buffer.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Version returns the schema version written by the envelope
func (e *Envelope) Version() string {
	return e.version
}

// Encode writes the version tag followed by the fields of m and returns the
// result. Encoding can't fail
func (e *Envelope) Encode(m codec.Encoder) []byte {
	capacity := e.capacity
	if sizer, ok := m.(codec.Sizer); ok {
		capacity = codec.SizeString(e.version) + sizer.EncodedSize()
	}
	w := buffer.NewWriter(capacity)
	codec.PutString(w, e.version)
	m.EncodeTo(w)
	return w.Bytes()
}

// CheckVersion reads the version tag from r and compares it with the expected
// version. Nothing else is read on a mismatch
func (e *Envelope) CheckVersion(r *buffer.Reader) error {
	version, err := codec.String(r)
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	if version != e.version {
		e.logger.Debug(
			"rejecting message with unexpected version",
			"component", "bitpacker",
			"expected", e.version,
			"actual", version,
		)
		return &VersionMismatchError{
			Expected: e.version,
			Actual:   version,
		}
	}
	return nil
}

// DecodeInto checks the version tag of data and decodes the root message into
// dest. The contents of dest are unspecified when an error is returned, so most
// callers should use Decode instead
func (e *Envelope) DecodeInto(data []byte, dest codec.Decoder) error {
	r := buffer.NewReader(data)
	if err := e.CheckVersion(r); err != nil {
		return err
	}
	if err := dest.DecodeFrom(r); err != nil {
		return err
	}
	if r.Remaining() > 0 {
		if e.rejectTrailing {
			return fmt.Errorf(
				"%w: %d byte(s) at offset %d",
				ErrTrailingData,
				r.Remaining(),
				r.Offset(),
			)
		}
		e.logger.Debug(
			"ignoring trailing data after message",
			"component", "bitpacker",
			"version", e.version,
			"length", r.Remaining(),
		)
	}
	return nil
}

// Decode decodes a root message of type T from data. It returns either a fully
// decoded message or an error, never a partial message
func Decode[T any, PT interface {
	*T
	codec.Decoder
}](e *Envelope, data []byte) (*T, error) {
	ret := new(T)
	if err := e.DecodeInto(data, PT(ret)); err != nil {
		return nil, err
	}
	return ret, nil
}
