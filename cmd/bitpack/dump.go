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
	"github.com/byte-mods/bit-packer/inspect"
	"github.com/byte-mods/bit-packer/schema"
)

type dumpFlags struct {
	flagset       *flag.FlagSet
	message       string
	telemetry     bool
	ignoreVersion bool
}

func newDumpFlags() *dumpFlags {
	f := &dumpFlags{
		flagset: flag.NewFlagSet("dump", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.message,
		"message",
		"",
		"message to decode (defaults to the root message of the schema)",
	)
	f.flagset.BoolVar(
		&f.telemetry,
		"telemetry",
		false,
		"use the telemetry schema instead of the world schema",
	)
	f.flagset.BoolVar(
		&f.ignoreVersion,
		"ignore-version",
		false,
		"decode even if the version tag doesn't match the schema",
	)
	return f
}

func runDump(f *common.GlobalFlags) {
	dumpFlags := newDumpFlags()
	err := dumpFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(dumpFlags.flagset.Args()) != 1 {
		fmt.Printf("ERROR: you must specify a file to dump\n")
		os.Exit(1)
	}
	data, err := common.ReadInput(f, dumpFlags.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: failed to read input: %s\n", err)
		os.Exit(1)
	}
	desc := game.Schema()
	if dumpFlags.telemetry {
		desc = game.TelemetrySchema()
	}
	opts := []inspect.Option{
		inspect.WithLogger(f.Logger),
	}
	if dumpFlags.message != "" {
		opts = append(opts, inspect.WithMessage(dumpFlags.message))
	}
	if dumpFlags.ignoreVersion {
		opts = append(opts, inspect.WithIgnoreVersion())
	}
	rec, err := inspect.Decode(desc, data, opts...)
	if err != nil {
		fmt.Printf("ERROR: failed to decode message: %s\n", err)
		os.Exit(1)
	}
	fmt.Print(inspect.Dump(rec, ""))
}

func runFingerprint(f *common.GlobalFlags) {
	for _, desc := range []*schema.Descriptor{game.Schema(), game.TelemetrySchema()} {
		fp, err := desc.Fingerprint()
		if err != nil {
			fmt.Printf("ERROR: failed to fingerprint schema: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s %s %s\n", desc.Root().Name, desc.Version, fp)
		f.Logger.Debug("schema", "source", desc.String())
	}
}
