// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"fmt"

	"github.com/auralux/midiscope/pkg/midiwire"
	"github.com/spf13/cobra"
)

var (
	sendChannel    int
	sendNote       int
	sendVelocity   int
	sendController int
	sendValue      int
	sendProgram    int
	sendBend       int
	sendDryRun     bool
)

var sendCmd = &cobra.Command{
	Use:   "send <type>",
	Short: "Encode and transmit a single MIDI message",
	Long: `Build a MIDI message from flags, encode it and write it to the connection.

Message types:
  note-on          --note --velocity
  note-off         --note --velocity
  poly-pressure    --note --value
  control-change   --controller --value
  program-change   --program
  channel-pressure --value
  pitch-bend       --bend (-8192 to 8191, 0 is center)
  tune-request, clock, start, continue, stop, reset

Channels are 1-based (1-16) the way hardware labels them. Out of range
values are rejected before anything touches the wire.

With --dry-run the encoded bytes are printed as hex instead of being sent,
which needs no connection.

Examples:
  midiscope send note-on --port /dev/ttyUSB0 --channel 1 --note 60 --velocity 100
  midiscope send pitch-bend --channel 1 --bend 0 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().IntVarP(&sendChannel, "channel", "c", 1, "MIDI channel (1-16)")
	sendCmd.Flags().IntVarP(&sendNote, "note", "n", 60, "Note number (0-127)")
	sendCmd.Flags().IntVar(&sendVelocity, "velocity", 64, "Velocity (0-127)")
	sendCmd.Flags().IntVar(&sendController, "controller", 0, "Controller number (0-127)")
	sendCmd.Flags().IntVar(&sendValue, "value", 0, "Data value (0-127)")
	sendCmd.Flags().IntVar(&sendProgram, "program", 0, "Program number (0-127)")
	sendCmd.Flags().IntVar(&sendBend, "bend", 0, "Pitch bend (-8192 to 8191)")
	sendCmd.Flags().BoolVar(&sendDryRun, "dry-run", false, "Print encoded bytes instead of sending")
}

// buildMessage validates the flag values and assembles the message
func buildMessage(kind string) (midiwire.Message, error) {
	if sendChannel < 1 || sendChannel > 16 {
		return nil, fmt.Errorf("channel must be 1-16, got %d", sendChannel)
	}
	ch, err := midiwire.NewChannel(uint8(sendChannel - 1))
	if err != nil {
		return nil, err
	}

	switch kind {
	case "note-on", "note-off":
		note, err := midiwire.NewValue7(uint8(sendNote))
		if err != nil {
			return nil, fmt.Errorf("note: %v", err)
		}
		vel, err := midiwire.NewValue7(uint8(sendVelocity))
		if err != nil {
			return nil, fmt.Errorf("velocity: %v", err)
		}
		if kind == "note-on" {
			return midiwire.NoteOn{Channel: ch, Note: note, Velocity: vel}, nil
		}
		return midiwire.NoteOff{Channel: ch, Note: note, Velocity: vel}, nil

	case "poly-pressure":
		note, err := midiwire.NewValue7(uint8(sendNote))
		if err != nil {
			return nil, fmt.Errorf("note: %v", err)
		}
		pressure, err := midiwire.NewValue7(uint8(sendValue))
		if err != nil {
			return nil, fmt.Errorf("value: %v", err)
		}
		return midiwire.PolyPressure{Channel: ch, Note: note, Pressure: pressure}, nil

	case "control-change":
		cc, err := midiwire.NewControl(uint8(sendController))
		if err != nil {
			return nil, fmt.Errorf("controller: %v", err)
		}
		val, err := midiwire.NewValue7(uint8(sendValue))
		if err != nil {
			return nil, fmt.Errorf("value: %v", err)
		}
		return midiwire.ControlChange{Channel: ch, Controller: cc, Value: val}, nil

	case "program-change":
		prog, err := midiwire.NewProgram(uint8(sendProgram))
		if err != nil {
			return nil, fmt.Errorf("program: %v", err)
		}
		return midiwire.ProgramChange{Channel: ch, Program: prog}, nil

	case "channel-pressure":
		pressure, err := midiwire.NewValue7(uint8(sendValue))
		if err != nil {
			return nil, fmt.Errorf("value: %v", err)
		}
		return midiwire.ChannelPressure{Channel: ch, Pressure: pressure}, nil

	case "pitch-bend":
		if sendBend < -8192 || sendBend > 8191 {
			return nil, fmt.Errorf("bend must be -8192 to 8191, got %d", sendBend)
		}
		return midiwire.PitchBend{Channel: ch, Value: midiwire.Value14FromBend(int16(sendBend))}, nil

	case "tune-request":
		return midiwire.TuneRequest{}, nil
	case "clock":
		return midiwire.TimingClock{}, nil
	case "start":
		return midiwire.Start{}, nil
	case "continue":
		return midiwire.Continue{}, nil
	case "stop":
		return midiwire.Stop{}, nil
	case "reset":
		return midiwire.Reset{}, nil
	}

	return nil, fmt.Errorf("unknown message type: %s", kind)
}

func runSend(cmd *cobra.Command, args []string) error {
	msg, err := buildMessage(args[0])
	if err != nil {
		return err
	}

	wireBytes := midiwire.Encode(msg)

	if sendDryRun {
		fmt.Printf("%s\n", midiwire.FormatMessage(msg))
		fmt.Print("Wire bytes:")
		for _, b := range wireBytes {
			fmt.Printf(" %02X", b)
		}
		fmt.Println()
		return nil
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Write(wireBytes); err != nil {
		return fmt.Errorf("write failed: %v", err)
	}

	fmt.Printf("Sent %s via %s\n", midiwire.FormatMessage(msg), connInfo)
	return nil
}
