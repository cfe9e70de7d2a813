// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

// Message is a decoded MIDI message. The set of implementations is closed:
// every variant lives in this package, so encoders and consumers can type
// switch exhaustively with no default branch swallowing unknown kinds.
type Message interface {
	// Len returns the message's wire length in bytes, status byte included.
	Len() int

	midiMessage()
}

// NoteOff releases a sounding note
type NoteOff struct {
	Channel  Channel
	Note     Value7
	Velocity Value7
}

// NoteOn starts a note. Velocity 0 is commonly interpreted as a note off.
type NoteOn struct {
	Channel  Channel
	Note     Value7
	Velocity Value7
}

// PolyPressure is polyphonic key aftertouch for a single note
type PolyPressure struct {
	Channel  Channel
	Note     Value7
	Pressure Value7
}

// ControlChange sets a controller to a new value
type ControlChange struct {
	Channel    Channel
	Controller Control
	Value      Value7
}

// ProgramChange selects a program/patch on a channel
type ProgramChange struct {
	Channel Channel
	Program Program
}

// ChannelPressure is channel-wide aftertouch
type ChannelPressure struct {
	Channel  Channel
	Pressure Value7
}

// PitchBend moves the pitch wheel; the center (no bend) value is 8192
type PitchBend struct {
	Channel Channel
	Value   Value14
}

// QuarterFrame carries one nibble of MIDI time code
type QuarterFrame struct {
	Value Value7
}

// SongPositionPointer sets the playback position in MIDI beats
type SongPositionPointer struct {
	Position Value14
}

// SongSelect chooses the sequence or song to play
type SongSelect struct {
	Song Value7
}

// TuneRequest asks analog synthesizers to tune their oscillators
type TuneRequest struct{}

// TimingClock is the 24-per-quarter-note sync tick
type TimingClock struct{}

// Start begins playback from the top
type Start struct{}

// Continue resumes playback from the current position
type Continue struct{}

// Stop halts playback
type Stop struct{}

// ActiveSensing is the periodic keep-alive some devices emit
type ActiveSensing struct{}

// Reset returns the receiver to its power-up state
type Reset struct{}

func (NoteOff) Len() int             { return 3 }
func (NoteOn) Len() int              { return 3 }
func (PolyPressure) Len() int        { return 3 }
func (ControlChange) Len() int       { return 3 }
func (ProgramChange) Len() int       { return 2 }
func (ChannelPressure) Len() int     { return 2 }
func (PitchBend) Len() int           { return 3 }
func (QuarterFrame) Len() int        { return 2 }
func (SongPositionPointer) Len() int { return 3 }
func (SongSelect) Len() int          { return 2 }
func (TuneRequest) Len() int         { return 1 }
func (TimingClock) Len() int         { return 1 }
func (Start) Len() int               { return 1 }
func (Continue) Len() int            { return 1 }
func (Stop) Len() int                { return 1 }
func (ActiveSensing) Len() int       { return 1 }
func (Reset) Len() int               { return 1 }

func (NoteOff) midiMessage()             {}
func (NoteOn) midiMessage()              {}
func (PolyPressure) midiMessage()        {}
func (ControlChange) midiMessage()       {}
func (ProgramChange) midiMessage()       {}
func (ChannelPressure) midiMessage()     {}
func (PitchBend) midiMessage()           {}
func (QuarterFrame) midiMessage()        {}
func (SongPositionPointer) midiMessage() {}
func (SongSelect) midiMessage()          {}
func (TuneRequest) midiMessage()         {}
func (TimingClock) midiMessage()         {}
func (Start) midiMessage()               {}
func (Continue) midiMessage()            {}
func (Stop) midiMessage()                {}
func (ActiveSensing) midiMessage()       {}
func (Reset) midiMessage()               {}
