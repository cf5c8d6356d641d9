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

// Package game contains the representative BitPacker message set: the world
// state schema used for cross-language compatibility checks, and a telemetry
// schema that covers the remaining field types.
//
// The types in this package are written the way the schema compiler generates
// them. Field order in each EncodeTo/DecodeFrom pair is the wire order.
package game

import (
	bitpacker "github.com/byte-mods/bit-packer"
	"github.com/byte-mods/bit-packer/buffer"
	"github.com/byte-mods/bit-packer/codec"
)

// Version is the schema version of the world state messages
const Version = "1.0.0"

var worldEnvelope = bitpacker.NewEnvelope(Version)

type Vec3 struct {
	X int32 `bitpack:"x"`
	Y int32 `bitpack:"y"`
	Z int32 `bitpack:"z"`
}

func (v *Vec3) EncodeTo(w *buffer.Writer) {
	codec.PutInt32(w, v.X)
	codec.PutInt32(w, v.Y)
	codec.PutInt32(w, v.Z)
}

func (v *Vec3) DecodeFrom(r *buffer.Reader) error {
	var err error
	if v.X, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Y, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Z, err = codec.Int32(r); err != nil {
		return err
	}
	return nil
}

func (v *Vec3) EncodedSize() int {
	return codec.SizeInt32(v.X) + codec.SizeInt32(v.Y) + codec.SizeInt32(v.Z)
}

type Item struct {
	ID     int32 `bitpack:"id"`
	Name   string
	Value  int32
	Weight int32
	Rarity string
}

func (v *Item) EncodeTo(w *buffer.Writer) {
	codec.PutInt32(w, v.ID)
	codec.PutString(w, v.Name)
	codec.PutInt32(w, v.Value)
	codec.PutInt32(w, v.Weight)
	codec.PutString(w, v.Rarity)
}

func (v *Item) DecodeFrom(r *buffer.Reader) error {
	var err error
	if v.ID, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Name, err = codec.String(r); err != nil {
		return err
	}
	if v.Value, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Weight, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Rarity, err = codec.String(r); err != nil {
		return err
	}
	return nil
}

func (v *Item) EncodedSize() int {
	return codec.SizeInt32(v.ID) +
		codec.SizeString(v.Name) +
		codec.SizeInt32(v.Value) +
		codec.SizeInt32(v.Weight) +
		codec.SizeString(v.Rarity)
}

type Character struct {
	Name      string
	Level     int32
	Hp        int32
	Mp        int32
	IsAlive   bool
	Position  Vec3
	Skills    []int32
	Inventory []Item
}

func (v *Character) EncodeTo(w *buffer.Writer) {
	codec.PutString(w, v.Name)
	codec.PutInt32(w, v.Level)
	codec.PutInt32(w, v.Hp)
	codec.PutInt32(w, v.Mp)
	codec.PutBool(w, v.IsAlive)
	v.Position.EncodeTo(w)
	codec.PutArray(w, v.Skills, codec.PutInt32)
	codec.PutMessages(w, v.Inventory)
}

func (v *Character) DecodeFrom(r *buffer.Reader) error {
	var err error
	if v.Name, err = codec.String(r); err != nil {
		return err
	}
	if v.Level, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Hp, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Mp, err = codec.Int32(r); err != nil {
		return err
	}
	if v.IsAlive, err = codec.Bool(r); err != nil {
		return err
	}
	if err = v.Position.DecodeFrom(r); err != nil {
		return err
	}
	if v.Skills, err = codec.Array(r, codec.Int32); err != nil {
		return err
	}
	if v.Inventory, err = codec.Messages[Item](r); err != nil {
		return err
	}
	return nil
}

func (v *Character) EncodedSize() int {
	return codec.SizeString(v.Name) +
		codec.SizeInt32(v.Level) +
		codec.SizeInt32(v.Hp) +
		codec.SizeInt32(v.Mp) +
		codec.SizeBool(v.IsAlive) +
		v.Position.EncodedSize() +
		codec.SizeArray(v.Skills, codec.SizeInt32) +
		codec.SizeMessages(v.Inventory)
}

type Guild struct {
	Name        string
	Description string
	Members     []Character
}

func (v *Guild) EncodeTo(w *buffer.Writer) {
	codec.PutString(w, v.Name)
	codec.PutString(w, v.Description)
	codec.PutMessages(w, v.Members)
}

func (v *Guild) DecodeFrom(r *buffer.Reader) error {
	var err error
	if v.Name, err = codec.String(r); err != nil {
		return err
	}
	if v.Description, err = codec.String(r); err != nil {
		return err
	}
	if v.Members, err = codec.Messages[Character](r); err != nil {
		return err
	}
	return nil
}

func (v *Guild) EncodedSize() int {
	return codec.SizeString(v.Name) +
		codec.SizeString(v.Description) +
		codec.SizeMessages(v.Members)
}

// WorldState is the root message of the world schema
type WorldState struct {
	WorldID   int32 `bitpack:"world_id"`
	Seed      string
	Guilds    []Guild
	LootTable []Item
}

func (v *WorldState) EncodeTo(w *buffer.Writer) {
	codec.PutInt32(w, v.WorldID)
	codec.PutString(w, v.Seed)
	codec.PutMessages(w, v.Guilds)
	codec.PutMessages(w, v.LootTable)
}

func (v *WorldState) DecodeFrom(r *buffer.Reader) error {
	var err error
	if v.WorldID, err = codec.Int32(r); err != nil {
		return err
	}
	if v.Seed, err = codec.String(r); err != nil {
		return err
	}
	if v.Guilds, err = codec.Messages[Guild](r); err != nil {
		return err
	}
	if v.LootTable, err = codec.Messages[Item](r); err != nil {
		return err
	}
	return nil
}

func (v *WorldState) EncodedSize() int {
	return codec.SizeInt32(v.WorldID) +
		codec.SizeString(v.Seed) +
		codec.SizeMessages(v.Guilds) +
		codec.SizeMessages(v.LootTable)
}

// Encode returns the enveloped encoding of the world state
func (v *WorldState) Encode() []byte {
	return worldEnvelope.Encode(v)
}

// DecodeWorldState decodes an enveloped world state
func DecodeWorldState(data []byte) (*WorldState, error) {
	return bitpacker.Decode[WorldState](worldEnvelope, data)
}

// Encode returns the enveloped encoding of the item
func (v *Item) Encode() []byte {
	return worldEnvelope.Encode(v)
}

// DecodeItem decodes an enveloped item
func DecodeItem(data []byte) (*Item, error) {
	return bitpacker.Decode[Item](worldEnvelope, data)
}

// Encode returns the enveloped encoding of the vector
func (v *Vec3) Encode() []byte {
	return worldEnvelope.Encode(v)
}

// DecodeVec3 decodes an enveloped vector
func DecodeVec3(data []byte) (*Vec3, error) {
	return bitpacker.Decode[Vec3](worldEnvelope, data)
}
