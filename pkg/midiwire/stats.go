// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

import (
	"fmt"
	"time"
)

// Statistics tracks decoded message counts and stream health for monitors.
// It lives outside the Parser so the codec core stays fixed-size; feed it
// from the loop that drives the parser.
type Statistics struct {
	StartTime time.Time

	// Counters
	TotalMessages    uint64
	NoteOns          uint64
	NoteOffs         uint64
	ControlChanges   uint64
	ProgramChanges   uint64
	PitchBends       uint64
	PressureMessages uint64
	SystemCommon     uint64
	Realtime         uint64
	TotalBytes       uint64
	DroppedBytes     uint64

	// Rates (calculated)
	MessageRate float64 // messages/sec
	ByteRate    float64 // bytes/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	return &Statistics{StartTime: time.Now()}
}

// Update counts one decoded message
func (s *Statistics) Update(m Message) {
	s.TotalMessages++
	s.TotalBytes += uint64(m.Len())

	switch m.(type) {
	case NoteOn:
		s.NoteOns++
	case NoteOff:
		s.NoteOffs++
	case ControlChange:
		s.ControlChanges++
	case ProgramChange:
		s.ProgramChanges++
	case PitchBend:
		s.PitchBends++
	case PolyPressure, ChannelPressure:
		s.PressureMessages++
	case QuarterFrame, SongPositionPointer, SongSelect, TuneRequest:
		s.SystemCommon++
	case TimingClock, Start, Continue, Stop, ActiveSensing, Reset:
		s.Realtime++
	}
}

// AddDropped records bytes the parser discarded (orphans, interruptions,
// reserved status bytes).
func (s *Statistics) AddDropped(n uint64) {
	s.DroppedBytes += n
	s.TotalBytes += n
}

// CalculateRates refreshes the message and byte rates
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.MessageRate = float64(s.TotalMessages) / elapsed
		s.ByteRate = float64(s.TotalBytes) / elapsed
	}
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	s.CalculateRates()

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Total Messages:  %8d\n", s.TotalMessages)
	if s.NoteOns > 0 || s.NoteOffs > 0 {
		result += fmt.Sprintf("Notes:           %8d on / %d off\n", s.NoteOns, s.NoteOffs)
	}
	if s.ControlChanges > 0 {
		result += fmt.Sprintf("Control Changes: %8d\n", s.ControlChanges)
	}
	if s.ProgramChanges > 0 {
		result += fmt.Sprintf("Program Changes: %8d\n", s.ProgramChanges)
	}
	if s.PitchBends > 0 {
		result += fmt.Sprintf("Pitch Bends:     %8d\n", s.PitchBends)
	}
	if s.PressureMessages > 0 {
		result += fmt.Sprintf("Pressure:        %8d\n", s.PressureMessages)
	}
	if s.SystemCommon > 0 {
		result += fmt.Sprintf("System Common:   %8d\n", s.SystemCommon)
	}
	if s.Realtime > 0 {
		result += fmt.Sprintf("Realtime:        %8d\n", s.Realtime)
	}
	if s.DroppedBytes > 0 {
		result += fmt.Sprintf("Dropped Bytes:   %8d\n", s.DroppedBytes)
	}
	result += fmt.Sprintf("Message Rate:    %8.1f msgs/sec\n", s.MessageRate)
	result += fmt.Sprintf("Byte Rate:       %8.1f bytes/sec\n", s.ByteRate)
	result += "================================\n"

	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	*s = Statistics{StartTime: time.Now()}
}
