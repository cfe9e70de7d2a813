// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"fmt"
	"time"

	"github.com/auralux/midiscope/pkg/midiwire"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiShowRealtime bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive TUI for monitoring a MIDI stream",
	Long: `Monitor a MIDI stream in an interactive terminal UI.

The TUI shows live statistics, per-channel activity (held notes, last
program, controller and pitch bend) and a scrolling event log.

Keys:
  q / ctrl+c   quit
  r            reset statistics
  up/down      scroll the event log

Realtime messages are counted but kept out of the event log unless
--realtime is given.

Supports both serial and WebSocket connections.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVar(&tuiShowRealtime, "realtime", false, "Show realtime messages in the event log")
}

// Batched stream updates sent to the TUI at a fixed rate so a dense
// stream does not overwhelm the render loop.
type streamBatchMsg struct {
	messages []midiwire.Message
	dropped  uint64
}

type connectionLostMsg struct{}

func runTUI(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	m := initialTUIModel(connInfo, tuiShowRealtime)
	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan struct{})
	go readerLoop(p, conn, done)

	if _, err := p.Run(); err != nil {
		close(done)
		return fmt.Errorf("TUI error: %v", err)
	}

	close(done)
	return nil
}

// readerLoop decodes the stream and forwards batched updates to the TUI
func readerLoop(p *tea.Program, conn Connection, done chan struct{}) {
	parser := midiwire.NewParser()
	batchChan := make(chan midiwire.Message, 256)
	droppedChan := make(chan uint64, 64)
	readerDone := make(chan struct{})

	// Reader goroutine - feeds the parser and queues decoded messages
	go func() {
		defer close(readerDone)
		buf := make([]byte, 128)
		for {
			select {
			case <-done:
				return
			default:
			}

			n, err := conn.Read(buf)
			if err != nil {
				select {
				case <-done:
					return
				default:
					if err == ErrConnectionClosed {
						p.Send(connectionLostMsg{})
						return
					}
					// Brief pause before retry on transient errors (e.g., serial)
					time.Sleep(10 * time.Millisecond)
					continue
				}
			}

			before := parser.OrphanBytes() + parser.IgnoredBytes()
			for i := 0; i < n; i++ {
				if msg := parser.Feed(buf[i]); msg != nil {
					select {
					case batchChan <- msg:
					default:
					}
				}
			}
			if d := parser.OrphanBytes() + parser.IgnoredBytes() - before; d > 0 {
				select {
				case droppedChan <- d:
				default:
				}
			}
		}
	}()

	// Batch sender - drains queued messages to the TUI at a fixed rate
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-readerDone:
			return
		case <-ticker.C:
			var batch streamBatchMsg

		drainLoop:
			for {
				select {
				case msg := <-batchChan:
					batch.messages = append(batch.messages, msg)
				case d := <-droppedChan:
					batch.dropped += d
				default:
					break drainLoop
				}
			}

			if len(batch.messages) > 0 || batch.dropped > 0 {
				p.Send(batch)
			}
		}
	}
}
