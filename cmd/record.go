// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/auralux/midiscope/pkg/capture"
	"github.com/auralux/midiscope/pkg/midiwire"
	"github.com/spf13/cobra"
)

var recordQuiet bool

var recordCmd = &cobra.Command{
	Use:   "record <file>",
	Short: "Record a MIDI wire stream to a capture file",
	Long: `Read MIDI wire bytes from the connection and save them to a capture file.

The capture stores the raw bytes exactly as they arrived, together with
microsecond offsets, so replay reproduces both the data and the pacing.
Decoded messages are printed while recording unless --quiet is given.

Stop with Ctrl+C; the capture file is complete up to the last chunk.

Supports both serial and WebSocket connections.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().BoolVarP(&recordQuiet, "quiet", "q", false, "Do not print decoded messages while recording")
}

func runRecord(cmd *cobra.Command, args []string) error {
	outPath := args[0]

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", outPath, err)
	}
	defer out.Close()

	fmt.Printf("Midiscope - Record\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Capture: %s\n", outPath)
	fmt.Printf("Press Ctrl+C to stop\n\n")

	// Close the connection on Ctrl+C so the blocked Read returns and the
	// deferred file close flushes a complete capture.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		conn.Close()
	}()

	writer := capture.NewWriter(out)
	parser := midiwire.NewParser()
	stats := midiwire.NewStatistics()
	buf := make([]byte, 128)
	totalBytes := 0

	for {
		n, err := conn.Read(buf)
		if err != nil {
			// Read errors after Ctrl+C just mean the connection was
			// closed under us; finish cleanly either way.
			break
		}
		if n == 0 {
			continue
		}

		if err := writer.Write(buf[:n]); err != nil {
			return fmt.Errorf("capture write failed: %v", err)
		}
		totalBytes += n

		for i := 0; i < n; i++ {
			msg := parser.Feed(buf[i])
			if msg == nil {
				continue
			}
			stats.Update(msg)
			if !recordQuiet && !isRealtime(msg) {
				fmt.Printf("[%s] %s\n",
					time.Now().Format("15:04:05.000"), midiwire.FormatMessage(msg))
			}
		}
	}

	log.Printf("Recorded %d bytes, %d messages to %s", totalBytes, stats.TotalMessages, outPath)
	fmt.Print(stats.String())
	return nil
}
