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
	"errors"
	"fmt"
	"slices"
)

// ErrFixtureMismatch is returned by VerifyCrossLanguageFixture
var ErrFixtureMismatch = errors.New("game: cross-language fixture mismatch")

// CrossLanguageFixture returns the world state that every BitPacker
// implementation encodes and decodes to check wire compatibility
func CrossLanguageFixture() *WorldState {
	return &WorldState{
		WorldID: 42,
		Seed:    "cross_lang_test",
		Guilds: []Guild{
			{
				Name:        "TestGuild",
				Description: "A test guild for cross-language",
				Members: []Character{
					{
						Name:     "TestHero",
						Level:    99,
						Hp:       1000,
						Mp:       500,
						IsAlive:  true,
						Position: Vec3{X: 10, Y: -20, Z: 30},
						Skills:   []int32{1, 2, 3, 100},
						Inventory: []Item{
							{
								ID:     1,
								Name:   "Excalibur",
								Value:  9999,
								Weight: 15,
								Rarity: "Legendary",
							},
						},
					},
				},
			},
		},
		LootTable: []Item{
			{
				ID:     2,
				Name:   "HealthPotion",
				Value:  50,
				Weight: 1,
				Rarity: "Common",
			},
		},
	}
}

// VerifyCrossLanguageFixture checks a decoded world state against the
// cross-language fixture and reports the first field that differs
func VerifyCrossLanguageFixture(w *WorldState) error {
	if w == nil {
		return fmt.Errorf("%w: nil world state", ErrFixtureMismatch)
	}
	mismatch := func(field string, got, want any) error {
		return fmt.Errorf("%w: %s: got %v, wanted %v", ErrFixtureMismatch, field, got, want)
	}
	expected := CrossLanguageFixture()
	if w.WorldID != expected.WorldID {
		return mismatch("world_id", w.WorldID, expected.WorldID)
	}
	if w.Seed != expected.Seed {
		return mismatch("seed", w.Seed, expected.Seed)
	}
	if len(w.Guilds) != len(expected.Guilds) {
		return mismatch("len(guilds)", len(w.Guilds), len(expected.Guilds))
	}
	g, eg := w.Guilds[0], expected.Guilds[0]
	if g.Name != eg.Name {
		return mismatch("guilds[0].name", g.Name, eg.Name)
	}
	if g.Description != eg.Description {
		return mismatch("guilds[0].description", g.Description, eg.Description)
	}
	if len(g.Members) != len(eg.Members) {
		return mismatch("len(guilds[0].members)", len(g.Members), len(eg.Members))
	}
	h, eh := g.Members[0], eg.Members[0]
	if h.Name != eh.Name {
		return mismatch("hero.name", h.Name, eh.Name)
	}
	if h.Level != eh.Level {
		return mismatch("hero.level", h.Level, eh.Level)
	}
	if h.Hp != eh.Hp {
		return mismatch("hero.hp", h.Hp, eh.Hp)
	}
	if h.Mp != eh.Mp {
		return mismatch("hero.mp", h.Mp, eh.Mp)
	}
	if h.IsAlive != eh.IsAlive {
		return mismatch("hero.is_alive", h.IsAlive, eh.IsAlive)
	}
	if h.Position != eh.Position {
		return mismatch("hero.position", h.Position, eh.Position)
	}
	if !slices.Equal(h.Skills, eh.Skills) {
		return mismatch("hero.skills", h.Skills, eh.Skills)
	}
	if !slices.Equal(h.Inventory, eh.Inventory) {
		return mismatch("hero.inventory", h.Inventory, eh.Inventory)
	}
	if !slices.Equal(w.LootTable, expected.LootTable) {
		return mismatch("loot_table", w.LootTable, expected.LootTable)
	}
	return nil
}
