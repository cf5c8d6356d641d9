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
	"github.com/byte-mods/bit-packer/schema"
)

// Schema returns the descriptor of the world message set. WorldState is the
// root message
func Schema() *schema.Descriptor {
	return &schema.Descriptor{
		Version: Version,
		Messages: []schema.Message{
			{
				Name: "WorldState",
				Fields: []schema.Field{
					schema.NewField("world_id", "int", false),
					schema.NewField("seed", "string", false),
					schema.NewField("guilds", "Guild", true),
					schema.NewField("loot_table", "Item", true),
				},
			},
			{
				Name: "Guild",
				Fields: []schema.Field{
					schema.NewField("name", "string", false),
					schema.NewField("description", "string", false),
					schema.NewField("members", "Character", true),
				},
			},
			{
				Name: "Character",
				Fields: []schema.Field{
					schema.NewField("name", "string", false),
					schema.NewField("level", "int", false),
					schema.NewField("hp", "int", false),
					schema.NewField("mp", "int", false),
					schema.NewField("is_alive", "bool", false),
					schema.NewField("position", "Vec3", false),
					schema.NewField("skills", "int", true),
					schema.NewField("inventory", "Item", true),
				},
			},
			vec3Message(),
			{
				Name: "Item",
				Fields: []schema.Field{
					schema.NewField("id", "int", false),
					schema.NewField("name", "string", false),
					schema.NewField("value", "int", false),
					schema.NewField("weight", "int", false),
					schema.NewField("rarity", "string", false),
				},
			},
		},
	}
}

// TelemetrySchema returns the descriptor of the telemetry message set
func TelemetrySchema() *schema.Descriptor {
	return &schema.Descriptor{
		Version: TelemetryVersion,
		Messages: []schema.Message{
			{
				Name: "Telemetry",
				Fields: []schema.Field{
					schema.NewField("tick", "long", false),
					schema.NewField("entity", "string", false),
					schema.NewField("heading", "float", false),
					schema.NewField("speed", "double", false),
					schema.NewField("grounded", "bool", false),
					schema.NewField("path", "Vec3", true),
					schema.NewField("samples", "double", true),
					schema.NewField("weights", "float", true),
					schema.NewField("flags", "bool", true),
					schema.NewField("counters", "long", true),
					schema.NewField("labels", "string", true),
				},
			},
			vec3Message(),
		},
	}
}

func vec3Message() schema.Message {
	return schema.Message{
		Name: "Vec3",
		Fields: []schema.Field{
			schema.NewField("x", "int", false),
			schema.NewField("y", "int", false),
			schema.NewField("z", "int", false),
		},
	}
}
