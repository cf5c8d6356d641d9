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

package schema

import (
	"encoding/hex"
	"fmt"

	"github.com/byte-mods/bit-packer/internal/cbor"
	"golang.org/x/crypto/blake2b"
)

const FingerprintSize = blake2b.Size256

// Fingerprint identifies a schema. Two descriptors have the same fingerprint
// only if they have the same version, messages, field names, field kinds and
// field order
type Fingerprint [FingerprintSize]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Snapshot returns the descriptor as deterministic CBOR
func (d *Descriptor) Snapshot() ([]byte, error) {
	data, err := cbor.Encode(d)
	if err != nil {
		return nil, fmt.Errorf("schema snapshot: %w", err)
	}
	return data, nil
}

// Fingerprint returns the BLAKE2b-256 hash of the descriptor snapshot
func (d *Descriptor) Fingerprint() (Fingerprint, error) {
	data, err := d.Snapshot()
	if err != nil {
		return Fingerprint{}, err
	}
	return blake2b.Sum256(data), nil
}

// Load decodes a descriptor snapshot and validates it
func Load(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := cbor.Decode(data, &d); err != nil {
		return nil, fmt.Errorf("schema load: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
