// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/auralux/midiscope/pkg/midiwire"
	"github.com/spf13/cobra"
)

var decodeFile string

var decodeCmd = &cobra.Command{
	Use:   "decode [hex bytes...]",
	Short: "Decode MIDI wire bytes from hex arguments or a file",
	Long: `Decode raw MIDI wire bytes offline and print each message.

Bytes are given as hex arguments ("90 40 7F", with or without spaces and
0x prefixes), or read as raw binary from a file with --file. The stream is
fed through the same parser used for live monitoring, so running status,
interruption and orphan bytes behave identically.

Examples:
  midiscope decode 90 40 7F 41 7F
  midiscope decode 0xE0 0x00 0x40
  midiscope decode --file dump.bin`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&decodeFile, "file", "f", "", "Read raw wire bytes from file instead of arguments")
}

// parseHexArgs accepts "90 40 7F", "90407F" and "0x90 0x40 0x7F" alike.
func parseHexArgs(args []string) ([]byte, error) {
	cleaned := strings.Builder{}
	for _, arg := range args {
		arg = strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
		cleaned.WriteString(arg)
	}
	s := cleaned.String()
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits")
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %v", err)
	}
	return data, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	switch {
	case decodeFile != "":
		data, err = os.ReadFile(decodeFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %v", decodeFile, err)
		}
	case len(args) > 0:
		data, err = parseHexArgs(args)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either hex byte arguments or --file must be given")
	}

	parser := midiwire.NewParser()
	count := 0
	for _, b := range data {
		if msg := parser.Feed(b); msg != nil {
			fmt.Println(midiwire.FormatMessage(msg))
			count++
		}
	}

	fmt.Printf("\n%d bytes in, %d messages out", len(data), count)
	if n := parser.OrphanBytes(); n > 0 {
		fmt.Printf(", %d orphan bytes dropped", n)
	}
	if n := parser.Interrupted(); n > 0 {
		fmt.Printf(", %d messages interrupted", n)
	}
	if n := parser.IgnoredBytes(); n > 0 {
		fmt.Printf(", %d reserved bytes ignored", n)
	}
	fmt.Println()

	if status, ok := parser.RunningStatus(); ok {
		fmt.Printf("Running status at end of stream: 0x%02X\n", status)
	}

	return nil
}
