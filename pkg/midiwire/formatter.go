// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

import "fmt"

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the english name for a note number, with note 0 being C-2
// and note 127 G8. Middle C (60) prints as C3.
func NoteName(n Value7) string {
	return fmt.Sprintf("%s%d", noteNames[n.Byte()%12], int(n.Byte())/12-2)
}

// MessageName returns the wire-protocol name for a message kind
func MessageName(m Message) string {
	switch m.(type) {
	case NoteOff:
		return "NOTE_OFF"
	case NoteOn:
		return "NOTE_ON"
	case PolyPressure:
		return "POLY_PRESSURE"
	case ControlChange:
		return "CONTROL_CHANGE"
	case ProgramChange:
		return "PROGRAM_CHANGE"
	case ChannelPressure:
		return "CHANNEL_PRESSURE"
	case PitchBend:
		return "PITCH_BEND"
	case QuarterFrame:
		return "QUARTER_FRAME"
	case SongPositionPointer:
		return "SONG_POSITION"
	case SongSelect:
		return "SONG_SELECT"
	case TuneRequest:
		return "TUNE_REQUEST"
	case TimingClock:
		return "TIMING_CLOCK"
	case Start:
		return "START"
	case Continue:
		return "CONTINUE"
	case Stop:
		return "STOP"
	case ActiveSensing:
		return "ACTIVE_SENSING"
	case Reset:
		return "RESET"
	}
	return "UNKNOWN"
}

// FormatMessage formats a message into a single human-readable line.
// Channels print 1-based (ch1-ch16) the way MIDI hardware labels them.
func FormatMessage(m Message) string {
	switch msg := m.(type) {
	case NoteOff:
		return fmt.Sprintf("NOTE_OFF ch%d %s (%d) vel=%d",
			msg.Channel.Num()+1, NoteName(msg.Note), msg.Note.Byte(), msg.Velocity.Byte())
	case NoteOn:
		return fmt.Sprintf("NOTE_ON ch%d %s (%d) vel=%d",
			msg.Channel.Num()+1, NoteName(msg.Note), msg.Note.Byte(), msg.Velocity.Byte())
	case PolyPressure:
		return fmt.Sprintf("POLY_PRESSURE ch%d %s (%d) pressure=%d",
			msg.Channel.Num()+1, NoteName(msg.Note), msg.Note.Byte(), msg.Pressure.Byte())
	case ControlChange:
		return fmt.Sprintf("CONTROL_CHANGE ch%d cc=%d value=%d",
			msg.Channel.Num()+1, msg.Controller.Byte(), msg.Value.Byte())
	case ProgramChange:
		return fmt.Sprintf("PROGRAM_CHANGE ch%d program=%d",
			msg.Channel.Num()+1, msg.Program.Byte())
	case ChannelPressure:
		return fmt.Sprintf("CHANNEL_PRESSURE ch%d pressure=%d",
			msg.Channel.Num()+1, msg.Pressure.Byte())
	case PitchBend:
		return fmt.Sprintf("PITCH_BEND ch%d value=%d bend=%+d",
			msg.Channel.Num()+1, msg.Value.Uint16(), msg.Value.Bend())
	case QuarterFrame:
		return fmt.Sprintf("QUARTER_FRAME value=0x%02X", msg.Value.Byte())
	case SongPositionPointer:
		return fmt.Sprintf("SONG_POSITION beats=%d", msg.Position.Uint16())
	case SongSelect:
		return fmt.Sprintf("SONG_SELECT song=%d", msg.Song.Byte())
	default:
		return MessageName(m)
	}
}
