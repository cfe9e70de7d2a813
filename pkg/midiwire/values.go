// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

// Value7 is a 7 bit MIDI data byte. The high bit is never set.
// Constructed values are immutable; NewValue7 is the only validation point.
type Value7 struct {
	v uint8
}

// NewValue7 validates v and returns it as a Value7.
// Returns *OutOfRangeError if v exceeds 127.
func NewValue7(v uint8) (Value7, error) {
	if v > MaxValue7 {
		return Value7{}, &OutOfRangeError{Kind: "Value7", Value: int(v), Max: MaxValue7}
	}
	return Value7{v: v}, nil
}

// value7 wraps a byte whose high bit is structurally clear (parser-internal).
func value7(v uint8) Value7 {
	return Value7{v: v}
}

// Byte returns the raw data byte
func (v Value7) Byte() uint8 {
	return v.v
}

// Channel is one of the 16 logical MIDI channels, numbered 0-15.
type Channel struct {
	v uint8
}

// NewChannel validates ch and returns it as a Channel.
// Returns *OutOfRangeError if ch exceeds 15.
func NewChannel(ch uint8) (Channel, error) {
	if ch > MaxChannel {
		return Channel{}, &OutOfRangeError{Kind: "Channel", Value: int(ch), Max: MaxChannel}
	}
	return Channel{v: ch}, nil
}

func channel(ch uint8) Channel {
	return Channel{v: ch}
}

// Num returns the zero-based channel number (0-15)
func (c Channel) Num() uint8 {
	return c.v
}

// Program identifies a program/patch number (0-127). It shares Value7's bit
// width but is a distinct type so program numbers cannot be mixed up with
// arbitrary data bytes.
type Program struct {
	v uint8
}

// NewProgram validates p and returns it as a Program.
// Returns *OutOfRangeError if p exceeds 127.
func NewProgram(p uint8) (Program, error) {
	if p > MaxProgram {
		return Program{}, &OutOfRangeError{Kind: "Program", Value: int(p), Max: MaxProgram}
	}
	return Program{v: p}, nil
}

func program(p uint8) Program {
	return Program{v: p}
}

// Byte returns the raw program number
func (p Program) Byte() uint8 {
	return p.v
}

// Control is a MIDI controller number (0-127), distinct from the controller's
// value for the same reason Program is distinct from Value7.
type Control struct {
	v uint8
}

// NewControl validates c and returns it as a Control.
// Returns *OutOfRangeError if c exceeds 127.
func NewControl(c uint8) (Control, error) {
	if c > MaxValue7 {
		return Control{}, &OutOfRangeError{Kind: "Control", Value: int(c), Max: MaxValue7}
	}
	return Control{v: c}, nil
}

func control(c uint8) Control {
	return Control{v: c}
}

// Byte returns the raw controller number
func (c Control) Byte() uint8 {
	return c.v
}

// Value14 is a 14 bit MIDI value stored as two 7 bit data bytes, used for
// pitch bend and the song position pointer.
type Value14 struct {
	lsb uint8
	msb uint8
}

// NewValue14 validates v and returns it as a Value14.
// Returns *OutOfRangeError if v exceeds 16383.
func NewValue14(v uint16) (Value14, error) {
	if v > MaxValue14 {
		return Value14{}, &OutOfRangeError{Kind: "Value14", Value: int(v), Max: MaxValue14}
	}
	return Value14{lsb: uint8(v & 0x7F), msb: uint8(v >> 7)}, nil
}

// Value14FromParts combines a least and most significant 7 bit half into a
// Value14. Both halves are already validated, so this cannot fail.
func Value14FromParts(lsb, msb Value7) Value14 {
	return Value14{lsb: lsb.v, msb: msb.v}
}

func value14(lsb, msb uint8) Value14 {
	return Value14{lsb: lsb, msb: msb}
}

// Lsb returns the least significant 7 bits
func (v Value14) Lsb() Value7 {
	return Value7{v: v.lsb}
}

// Msb returns the most significant 7 bits
func (v Value14) Msb() Value7 {
	return Value7{v: v.msb}
}

// Uint16 returns the exact 14 bit value as an unsigned 16 bit integer.
// The invariant on both halves makes masking unnecessary: the result is
// always msb*128 + lsb, in 0-16383.
func (v Value14) Uint16() uint16 {
	return uint16(v.msb)*128 + uint16(v.lsb)
}

// Value14FromBend converts a signed pitch bend amount in -8192..8191 to its
// wire representation, with 0 mapping to the center value 8192 (msb 64,
// lsb 0). Out of range amounts are clamped.
func Value14FromBend(bend int16) Value14 {
	if bend < -8192 {
		bend = -8192
	} else if bend > 8191 {
		bend = 8191
	}
	v := uint16(int32(bend) + 8192)
	return Value14{lsb: uint8(v & 0x7F), msb: uint8(v >> 7)}
}

// Bend returns the value as a signed pitch bend amount in -8192..8191
func (v Value14) Bend() int16 {
	return int16(v.Uint16()) - 8192
}
