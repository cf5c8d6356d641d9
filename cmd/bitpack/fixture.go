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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/byte-mods/bit-packer/cmd/common"
	"github.com/byte-mods/bit-packer/game"
)

type fixtureFlags struct {
	flagset *flag.FlagSet
	out     string
}

func newFixtureFlags() *fixtureFlags {
	f := &fixtureFlags{
		flagset: flag.NewFlagSet("fixture", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.out,
		"out",
		"-",
		"file to write the encoded fixture to",
	)
	return f
}

func runFixture(f *common.GlobalFlags) {
	fixtureFlags := newFixtureFlags()
	err := fixtureFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	data := game.CrossLanguageFixture().Encode()
	if err := common.WriteOutput(f, fixtureFlags.out, data); err != nil {
		fmt.Printf("ERROR: failed to write fixture: %s\n", err)
		os.Exit(1)
	}
	f.Logger.Debug(
		"wrote cross-language fixture",
		"version", game.Version,
		"length", len(data),
		"out", fixtureFlags.out,
	)
}

func runVerify(f *common.GlobalFlags) {
	args := f.Flagset.Args()[1:]
	if len(args) != 1 {
		fmt.Printf("ERROR: you must specify a file to verify\n")
		os.Exit(1)
	}
	data, err := common.ReadInput(f, args[0])
	if err != nil {
		fmt.Printf("ERROR: failed to read input: %s\n", err)
		os.Exit(1)
	}
	w, err := game.DecodeWorldState(data)
	if err != nil {
		fmt.Printf("ERROR: failed to decode world state: %s\n", err)
		os.Exit(1)
	}
	if err := game.VerifyCrossLanguageFixture(w); err != nil {
		fmt.Printf("FAIL: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d byte(s) match the cross-language fixture\n", len(data))
}
