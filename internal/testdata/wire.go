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

// Package testdata provides golden wire encodings shared by tests.
package testdata

import (
	_ "embed"
	"encoding/hex"
	"strings"
)

// Cross-language fixture world state, version 1.0.0. Every BitPacker runtime
// produces exactly these bytes
//
//go:embed world_state.hex
var WorldStateHex string

// Telemetry sample, version 1.1.0:
// tick 1234567890123, entity "npc-7", heading 90.5, speed 12.25, grounded,
// path [{1 2 3}], samples [0.5 -1.25], weights [0.75], flags [true false],
// counters [-1 1<<40], labels ["a" "bc"]
//
//go:embed telemetry.hex
var TelemetryHex string

// Vec3{10, -20, 30}, version 1.0.0
const Vec3Hex = "0a312e302e3014273c"

// Item{2, "HealthPotion", 50, 1, "Common"}, version 1.0.0
const ItemHex = "0a312e302e3004184865616c7468506f74696f6e64020c436f6d6d6f6e"

// WireVector is a named golden encoding
type WireVector struct {
	Name string
	Data []byte
}

// GetWireVectors returns all golden encodings
func GetWireVectors() []WireVector {
	return []WireVector{
		{Name: "WorldState", Data: MustDecodeHex(WorldStateHex)},
		{Name: "Telemetry", Data: MustDecodeHex(TelemetryHex)},
		{Name: "Vec3", Data: MustDecodeHex(Vec3Hex)},
		{Name: "Item", Data: MustDecodeHex(ItemHex)},
	}
}

// MustDecodeHex decodes a hex string to bytes, panicking on error.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return b
}
