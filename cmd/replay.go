// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/auralux/midiscope/pkg/capture"
	"github.com/auralux/midiscope/pkg/midiwire"
	"github.com/spf13/cobra"
)

var (
	replaySpeed  float64
	replayDryRun bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a capture file to the connection",
	Long: `Read a capture file and write its wire bytes to the connection,
honoring the recorded timing.

--speed scales the pacing: 2.0 plays twice as fast, 0.5 at half speed.
With --dry-run the capture is decoded and printed with its offsets instead
of being written anywhere, which needs no connection.

Supports both serial and WebSocket connections.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed factor")
	replayCmd.Flags().BoolVar(&replayDryRun, "dry-run", false, "Print the capture instead of sending it")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if replaySpeed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", replaySpeed)
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", args[0], err)
	}
	defer in.Close()

	var conn Connection
	if !replayDryRun {
		var connInfo string
		conn, connInfo, err = OpenConnection()
		if err != nil {
			return err
		}
		defer conn.Close()
		fmt.Printf("Midiscope - Replay\n")
		fmt.Printf("Connection: %s\n", connInfo)
		fmt.Printf("Speed: %gx\n\n", replaySpeed)
	}

	reader := capture.NewReader(in)
	parser := midiwire.NewParser()
	start := time.Now()
	records := 0
	totalBytes := 0

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("capture read failed: %v", err)
		}

		if replayDryRun {
			for _, b := range rec.Data {
				if msg := parser.Feed(b); msg != nil {
					fmt.Printf("[+%.3fs] %s\n",
						float64(rec.Offset)/1e6, midiwire.FormatMessage(msg))
				}
			}
		} else {
			// Sleep until this record is due at the scaled pace.
			due := time.Duration(float64(rec.Offset)*1000/replaySpeed) * time.Nanosecond
			if wait := due - time.Since(start); wait > 0 {
				time.Sleep(wait)
			}
			if _, err := conn.Write(rec.Data); err != nil {
				return fmt.Errorf("write failed: %v", err)
			}
		}

		records++
		totalBytes += len(rec.Data)
	}

	fmt.Printf("\nReplayed %d records, %d bytes\n", records, totalBytes)
	return nil
}
