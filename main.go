// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments
//
// Midiscope - MIDI Wire Protocol Analyzer
//
// A CLI tool for monitoring, decoding and generating MIDI 1.0 wire
// protocol streams.

package main

import (
	"os"

	"github.com/auralux/midiscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
