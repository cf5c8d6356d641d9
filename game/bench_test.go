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

package game_test

import (
	"testing"

	"github.com/byte-mods/bit-packer/game"
	"github.com/byte-mods/bit-packer/inspect"
	"github.com/byte-mods/bit-packer/internal/testdata"
)

// benchMessage pairs a message with a decoder for its encoding
type benchMessage struct {
	name   string
	encode func() []byte
	decode func([]byte) error
}

func benchMessages() []benchMessage {
	fixture := game.CrossLanguageFixture()
	large := largeWorld(1000)
	telemetry, err := game.DecodeTelemetry(testdata.MustDecodeHex(testdata.TelemetryHex))
	if err != nil {
		panic("failed to load telemetry: " + err.Error())
	}
	decodeWorld := func(data []byte) error {
		_, err := game.DecodeWorldState(data)
		return err
	}
	return []benchMessage{
		{name: "Fixture", encode: fixture.Encode, decode: decodeWorld},
		{name: "LargeWorld", encode: large.Encode, decode: decodeWorld},
		{
			name:   "Telemetry",
			encode: telemetry.Encode,
			decode: func(data []byte) error {
				_, err := game.DecodeTelemetry(data)
				return err
			},
		},
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, bm := range benchMessages() {
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.encode())))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_ = bm.encode()
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, bm := range benchMessages() {
		b.Run(bm.name, func(b *testing.B) {
			data := bm.encode()
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if err := bm.decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Schema-directed decoding, for comparison with the generated decoders
func BenchmarkInspectDecode(b *testing.B) {
	desc := game.Schema()
	data := game.CrossLanguageFixture().Encode()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := inspect.Decode(desc, data); err != nil {
			b.Fatal(err)
		}
	}
}
