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

// Package bitpacker implements the BitPacker envelope: the version-tagged outer
// wrapper around an encoded root message.
//
// # Wire Format
//
//	[varint-zigzag version length][version bytes][root message fields]
//
// The field encodings are implemented by the codec package, and the buffers used
// for reading and writing by the buffer package. Message types implement
// codec.Encoder and codec.Decoder, usually via generated code.
//
// # Usage
//
//	env := bitpacker.NewEnvelope("1.0.0")
//	data := env.Encode(&world)
//	decoded, err := bitpacker.Decode[WorldState](env, data)
//
// Decoding checks the version tag for exact equality before reading anything
// else. A mismatch fails with a *VersionMismatchError, which matches
// ErrVersionMismatch with errors.Is. There is no schema evolution: any change to
// a schema's fields requires a new version string.
//
// An Envelope has no mutable state and may be shared between goroutines. Each
// Encode and Decode call uses its own buffer.
package bitpacker
