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

// Package codec implements the BitPacker wire encoding for scalar values and the
// composite encode/decode contract shared by all message types.
//
// # Wire Format
//
// All integral values are zigzag-transformed and written as base-128 varints,
// least significant group first. Floating point values are multiplied by Scale,
// truncated toward zero and written as signed integers. Booleans are one byte.
// Strings and byte strings are a signed varint byte length followed by the raw
// bytes. Arrays are a signed varint element count followed by the elements.
// Nested messages are written inline with no length prefix or field tags, so the
// field order of a message is the only thing that determines its layout.
//
// # Float Precision
//
// The fixed point float encoding is lossy by contract: the decoded value differs
// from the encoded one by less than Quantum (plus normal floating point rounding).
// The scaled value is truncated, not rounded; every implementation of the format
// does the same, so changing it would break byte compatibility.
//
// # Message Types
//
// A message type implements Encoder and Decoder:
//
//	func (v *Vec3) EncodeTo(w *buffer.Writer) {
//	    codec.PutInt32(w, v.X)
//	    codec.PutInt32(w, v.Y)
//	}
//
//	func (v *Vec3) DecodeFrom(r *buffer.Reader) error {
//	    var err error
//	    if v.X, err = codec.Int32(r); err != nil {
//	        return err
//	    }
//	    v.Y, err = codec.Int32(r)
//	    return err
//	}
package codec
