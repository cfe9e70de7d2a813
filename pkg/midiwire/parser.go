// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

// Parser implements the MIDI byte stream parser state machine.
//
// Feed it one byte at a time; completed messages come back as they finish.
// The parser tracks running status, so a stream of data bytes with no
// repeated status byte decodes as repeated messages of the same kind and
// channel. Malformed input is never fatal: out-of-place bytes are dropped
// and the next valid status byte resynchronizes the stream.
//
// A Parser holds a fixed-size state and the Feed path does not allocate.
// It is not safe for concurrent use; give each input stream its own Parser.
type Parser struct {
	status byte // running status byte, 0 when idle
	data   [2]byte
	have   uint8
	need   uint8

	orphanBytes  uint64
	interrupted  uint64
	ignoredBytes uint64
}

// NewParser creates a parser in the idle state
func NewParser() *Parser {
	return &Parser{}
}

// Reset returns the parser to idle, clearing the running status and any
// partially accumulated message.
func (p *Parser) Reset() {
	p.status = 0
	p.have = 0
	p.need = 0
}

// RunningStatus returns the current running status byte, or false when the
// parser is idle.
func (p *Parser) RunningStatus() (byte, bool) {
	return p.status, p.status != 0
}

// OrphanBytes returns the count of data bytes dropped because no running
// status was active. Devices can emit stray bytes on power-up; these are
// discarded without desynchronizing the stream.
func (p *Parser) OrphanBytes() uint64 {
	return p.orphanBytes
}

// Interrupted returns the count of partially accumulated messages discarded
// because a new status byte arrived mid-message.
func (p *Parser) Interrupted() uint64 {
	return p.interrupted
}

// IgnoredBytes returns the count of undefined or reserved status bytes that
// were dropped.
func (p *Parser) IgnoredBytes() uint64 {
	return p.ignoredBytes
}

// Feed advances the state machine by one input byte. It returns a completed
// message, or nil while a message is still accumulating. Feed never fails:
// protocol violations are handled by dropping bytes or partial state.
func (p *Parser) Feed(b byte) Message {
	// Realtime bytes are a single-byte message wherever they appear, even
	// between the data bytes of another message in progress.
	if b >= StatusTimingClock {
		switch b {
		case StatusTimingClock:
			return TimingClock{}
		case StatusStart:
			return Start{}
		case StatusContinue:
			return Continue{}
		case StatusStop:
			return Stop{}
		case StatusActiveSensing:
			return ActiveSensing{}
		case StatusReset:
			return Reset{}
		}
		// 0xF9 and 0xFD are reserved
		p.ignoredBytes++
		return nil
	}

	if b&0x80 != 0 {
		// A status byte supersedes any prior accumulation; an in-progress
		// message is abandoned with no output.
		if p.have > 0 {
			p.interrupted++
		}

		if b < StatusSysExStart {
			// Channel voice: becomes the new running status.
			p.status = b
			p.have = 0
			if k := b & 0xF0; k == StatusProgramChange || k == StatusChannelPressure {
				p.need = 1
			} else {
				p.need = 2
			}
			return nil
		}

		switch b {
		case StatusQuarterFrame, StatusSongSelect:
			p.status = b
			p.have = 0
			p.need = 1
			return nil
		case StatusSongPosition:
			p.status = b
			p.have = 0
			p.need = 2
			return nil
		case StatusTuneRequest:
			p.Reset()
			return TuneRequest{}
		default:
			// SysEx framing and the undefined 0xF4/0xF5 clear the stream
			// state; SysEx payloads are not interpreted here.
			p.Reset()
			return nil
		}
	}

	// Data byte. With no running status it is an orphan and is dropped.
	if p.status == 0 {
		p.orphanBytes++
		return nil
	}

	p.data[p.have] = b
	p.have++
	if p.have < p.need {
		return nil
	}

	// Message complete. The running status is retained, so the next data
	// bytes start the next message of the same kind.
	p.have = 0
	return p.assemble()
}

// FeedAll feeds every byte of data and collects the completed messages.
// Unlike Feed, it allocates for the result; it exists for offline decoding
// and tests, not for the interrupt-driven path.
func (p *Parser) FeedAll(data []byte) []Message {
	var msgs []Message
	for _, b := range data {
		if m := p.Feed(b); m != nil {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// assemble builds the message for the full data buffer. Every byte in the
// buffer was accepted by Feed with its high bit clear, so the bounded value
// wrapping cannot fail.
func (p *Parser) assemble() Message {
	switch p.status {
	case StatusQuarterFrame:
		return QuarterFrame{Value: value7(p.data[0])}
	case StatusSongPosition:
		return SongPositionPointer{Position: value14(p.data[0], p.data[1])}
	case StatusSongSelect:
		return SongSelect{Song: value7(p.data[0])}
	}

	ch := channel(p.status & 0x0F)
	switch p.status & 0xF0 {
	case StatusNoteOff:
		return NoteOff{Channel: ch, Note: value7(p.data[0]), Velocity: value7(p.data[1])}
	case StatusNoteOn:
		return NoteOn{Channel: ch, Note: value7(p.data[0]), Velocity: value7(p.data[1])}
	case StatusPolyPressure:
		return PolyPressure{Channel: ch, Note: value7(p.data[0]), Pressure: value7(p.data[1])}
	case StatusControlChange:
		return ControlChange{Channel: ch, Controller: control(p.data[0]), Value: value7(p.data[1])}
	case StatusProgramChange:
		return ProgramChange{Channel: ch, Program: program(p.data[0])}
	case StatusChannelPressure:
		return ChannelPressure{Channel: ch, Pressure: value7(p.data[0])}
	case StatusPitchBend:
		return PitchBend{Channel: ch, Value: value14(p.data[0], p.data[1])}
	}
	return nil
}
