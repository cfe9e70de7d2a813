package midiwire

import "fmt"

// Append appends the canonical wire bytes for m to dst and returns the
// extended slice. With a dst of sufficient capacity the call does not
// allocate, so callers on a transmit path can reuse one buffer.
//
// Encoding cannot fail: every field of every variant was validated at
// construction, so the emitted data bytes never have their high bit set.
func Append(dst []byte, m Message) []byte {
	switch msg := m.(type) {
	case NoteOff:
		return append(dst, StatusNoteOff|msg.Channel.Num(), msg.Note.Byte(), msg.Velocity.Byte())
	case NoteOn:
		return append(dst, StatusNoteOn|msg.Channel.Num(), msg.Note.Byte(), msg.Velocity.Byte())
	case PolyPressure:
		return append(dst, StatusPolyPressure|msg.Channel.Num(), msg.Note.Byte(), msg.Pressure.Byte())
	case ControlChange:
		return append(dst, StatusControlChange|msg.Channel.Num(), msg.Controller.Byte(), msg.Value.Byte())
	case ProgramChange:
		return append(dst, StatusProgramChange|msg.Channel.Num(), msg.Program.Byte())
	case ChannelPressure:
		return append(dst, StatusChannelPressure|msg.Channel.Num(), msg.Pressure.Byte())
	case PitchBend:
		return append(dst, StatusPitchBend|msg.Channel.Num(), msg.Value.Lsb().Byte(), msg.Value.Msb().Byte())
	case QuarterFrame:
		return append(dst, StatusQuarterFrame, msg.Value.Byte())
	case SongPositionPointer:
		return append(dst, StatusSongPosition, msg.Position.Lsb().Byte(), msg.Position.Msb().Byte())
	case SongSelect:
		return append(dst, StatusSongSelect, msg.Song.Byte())
	case TuneRequest:
		return append(dst, StatusTuneRequest)
	case TimingClock:
		return append(dst, StatusTimingClock)
	case Start:
		return append(dst, StatusStart)
	case Continue:
		return append(dst, StatusContinue)
	case Stop:
		return append(dst, StatusStop)
	case ActiveSensing:
		return append(dst, StatusActiveSensing)
	case Reset:
		return append(dst, StatusReset)
	}
	// The Message set is sealed; reaching here means a variant was added
	// without an encoder case.
	panic(fmt.Sprintf("midiwire: no encoding for %T", m))
}

// Encode returns the canonical wire bytes for m.
func Encode(m Message) []byte {
	return Append(make([]byte, 0, 3), m)
}
