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
	"fmt"
	"os"

	"github.com/byte-mods/bit-packer/cmd/common"
)

func main() {
	f := common.NewGlobalFlags()
	f.Parse()

	if len(f.Flagset.Args()) > 0 {
		switch f.Flagset.Arg(0) {
		case "fixture":
			runFixture(f)
		case "verify":
			runVerify(f)
		case "dump":
			runDump(f)
		case "fingerprint":
			runFingerprint(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.Flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (fixture, verify, dump, or fingerprint)\n")
		os.Exit(1)
	}
}
