// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/auralux/midiscope/pkg/midiwire"
	"github.com/spf13/cobra"
)

var (
	monitorStatsInterval int
	monitorShowRealtime  bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Display decoded MIDI messages in human-readable format",
	Long: `Continuously decode and display MIDI messages as they arrive.

Each message is printed with a timestamp, its type and its decoded fields.
Running status is resolved, so streams from hardware that omits repeated
status bytes decode the same as fully explicit streams. Orphan data bytes
and interrupted messages are dropped silently and show up only in the
periodic statistics summary.

Realtime messages (clock, start/stop, active sensing) are hidden by default
because they flood the log; pass --realtime to see them.

Supports both serial and WebSocket connections.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().IntVar(&monitorStatsInterval, "stats-interval", 10, "Statistics summary interval in seconds (0 disables)")
	monitorCmd.Flags().BoolVar(&monitorShowRealtime, "realtime", false, "Show realtime messages (clock, active sensing)")
}

func isRealtime(m midiwire.Message) bool {
	switch m.(type) {
	case midiwire.TimingClock, midiwire.Start, midiwire.Continue,
		midiwire.Stop, midiwire.ActiveSensing, midiwire.Reset:
		return true
	}
	return false
}

func runMonitor(cmd *cobra.Command, args []string) error {
	// Open connection (serial or WebSocket)
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Midiscope - Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	parser := midiwire.NewParser()
	stats := midiwire.NewStatistics()
	buf := make([]byte, 128)

	var nextStats time.Time
	if monitorStatsInterval > 0 {
		nextStats = time.Now().Add(time.Duration(monitorStatsInterval) * time.Second)
	}
	lastDropped := uint64(0)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			// For WebSocket connections, a read error usually means
			// the connection is permanently closed - exit gracefully
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for i := 0; i < n; i++ {
			msg := parser.Feed(buf[i])
			if msg == nil {
				continue
			}
			stats.Update(msg)
			if isRealtime(msg) && !monitorShowRealtime {
				continue
			}
			fmt.Printf("[%s] %s\n",
				time.Now().Format("15:04:05.000"), midiwire.FormatMessage(msg))
		}

		dropped := parser.OrphanBytes() + parser.IgnoredBytes()
		if dropped > lastDropped {
			stats.AddDropped(dropped - lastDropped)
			lastDropped = dropped
		}

		if monitorStatsInterval > 0 && time.Now().After(nextStats) {
			fmt.Print(stats.String())
			nextStats = time.Now().Add(time.Duration(monitorStatsInterval) * time.Second)
		}
	}
}
