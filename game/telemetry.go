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

package game

import (
	bitpacker "github.com/byte-mods/bit-packer"
	"github.com/byte-mods/bit-packer/buffer"
	"github.com/byte-mods/bit-packer/codec"
)

// TelemetryVersion is the schema version of the telemetry messages
const TelemetryVersion = "1.1.0"

var telemetryEnvelope = bitpacker.NewEnvelope(TelemetryVersion)

// Telemetry is a periodic sample of an entity's movement. Its float fields use
// the lossy fixed point encoding
type Telemetry struct {
	Tick     int64
	Entity   string
	Heading  float32
	Speed    float64
	Grounded bool
	Path     []Vec3
	Samples  []float64
	Weights  []float32
	Flags    []bool
	Counters []int64
	Labels   []string
}

func (v *Telemetry) EncodeTo(w *buffer.Writer) {
	codec.PutInt64(w, v.Tick)
	codec.PutString(w, v.Entity)
	codec.PutFloat32(w, v.Heading)
	codec.PutFloat64(w, v.Speed)
	codec.PutBool(w, v.Grounded)
	codec.PutMessages(w, v.Path)
	codec.PutArray(w, v.Samples, codec.PutFloat64)
	codec.PutArray(w, v.Weights, codec.PutFloat32)
	codec.PutArray(w, v.Flags, codec.PutBool)
	codec.PutArray(w, v.Counters, codec.PutInt64)
	codec.PutArray(w, v.Labels, codec.PutString)
}

func (v *Telemetry) DecodeFrom(r *buffer.Reader) error {
	var err error
	if v.Tick, err = codec.Int64(r); err != nil {
		return err
	}
	if v.Entity, err = codec.String(r); err != nil {
		return err
	}
	if v.Heading, err = codec.Float32(r); err != nil {
		return err
	}
	if v.Speed, err = codec.Float64(r); err != nil {
		return err
	}
	if v.Grounded, err = codec.Bool(r); err != nil {
		return err
	}
	if v.Path, err = codec.Messages[Vec3](r); err != nil {
		return err
	}
	if v.Samples, err = codec.Array(r, codec.Float64); err != nil {
		return err
	}
	if v.Weights, err = codec.Array(r, codec.Float32); err != nil {
		return err
	}
	if v.Flags, err = codec.Array(r, codec.Bool); err != nil {
		return err
	}
	if v.Counters, err = codec.Array(r, codec.Int64); err != nil {
		return err
	}
	if v.Labels, err = codec.Array(r, codec.String); err != nil {
		return err
	}
	return nil
}

func (v *Telemetry) EncodedSize() int {
	return codec.SizeInt64(v.Tick) +
		codec.SizeString(v.Entity) +
		codec.SizeFloat32(v.Heading) +
		codec.SizeFloat64(v.Speed) +
		codec.SizeBool(v.Grounded) +
		codec.SizeMessages(v.Path) +
		codec.SizeArray(v.Samples, codec.SizeFloat64) +
		codec.SizeArray(v.Weights, codec.SizeFloat32) +
		codec.SizeArray(v.Flags, codec.SizeBool) +
		codec.SizeArray(v.Counters, codec.SizeInt64) +
		codec.SizeArray(v.Labels, codec.SizeString)
}

// Encode returns the enveloped encoding of the telemetry sample
func (v *Telemetry) Encode() []byte {
	return telemetryEnvelope.Encode(v)
}

// DecodeTelemetry decodes an enveloped telemetry sample
func DecodeTelemetry(data []byte) (*Telemetry, error) {
	return bitpacker.Decode[Telemetry](telemetryEnvelope, data)
}
