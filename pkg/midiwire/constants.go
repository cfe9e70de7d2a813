// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

// Package midiwire implements the MIDI 1.0 wire protocol for byte streams.
//
// The package turns raw bytes arriving from a UART-like source into typed,
// validated MIDI messages and typed messages back into canonical wire bytes.
// It is written for embedded-adjacent use: the per-byte parse path performs
// no heap allocation, and every value type enforces its bit-width invariant
// at construction time.
package midiwire

// Channel voice status bytes. The high nibble selects the message kind, the
// low nibble carries the channel number.
const (
	StatusNoteOff         = 0x80
	StatusNoteOn          = 0x90
	StatusPolyPressure    = 0xA0
	StatusControlChange   = 0xB0
	StatusProgramChange   = 0xC0
	StatusChannelPressure = 0xD0
	StatusPitchBend       = 0xE0
)

// System common status bytes
const (
	StatusSysExStart   = 0xF0
	StatusQuarterFrame = 0xF1
	StatusSongPosition = 0xF2
	StatusSongSelect   = 0xF3
	StatusTuneRequest  = 0xF6
	StatusSysExEnd     = 0xF7
)

// System realtime status bytes. Realtime bytes may appear between the bytes
// of another message without interrupting it.
const (
	StatusTimingClock   = 0xF8
	StatusStart         = 0xFA
	StatusContinue      = 0xFB
	StatusStop          = 0xFC
	StatusActiveSensing = 0xFE
	StatusReset         = 0xFF
)

// Value limits
const (
	MaxValue7  = 0x7F
	MaxValue14 = 0x3FFF
	MaxChannel = 0x0F
	MaxProgram = 0x7F
)
