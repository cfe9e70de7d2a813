// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

import (
	"bytes"
	"reflect"
	"testing"
)

func TestEncode_CanonicalBytes(t *testing.T) {
	bend, _ := NewValue14(8192)

	tests := []struct {
		name string
		msg  Message
		want []byte
	}{
		{"note off", NoteOff{Channel: channel(2), Note: value7(0x76), Velocity: value7(0x34)}, []byte{0x82, 0x76, 0x34}},
		{"note on", NoteOn{Channel: channel(0), Note: value7(0x40), Velocity: value7(0x7F)}, []byte{0x90, 0x40, 0x7F}},
		{"poly pressure", PolyPressure{Channel: channel(10), Note: value7(0x13), Pressure: value7(0x34)}, []byte{0xAA, 0x13, 0x34}},
		{"control change", ControlChange{Channel: channel(0), Controller: control(7), Value: value7(0x7F)}, []byte{0xB0, 0x07, 0x7F}},
		{"program change", ProgramChange{Channel: channel(9), Program: program(0x15)}, []byte{0xC9, 0x15}},
		{"channel pressure", ChannelPressure{Channel: channel(13), Pressure: value7(0x37)}, []byte{0xDD, 0x37}},
		{"pitch bend center", PitchBend{Channel: channel(2), Value: bend}, []byte{0xE2, 0x00, 0x40}},
		{"quarter frame", QuarterFrame{Value: value7(0x7F)}, []byte{0xF1, 0x7F}},
		{"song position", SongPositionPointer{Position: value14(0x7F, 0x68)}, []byte{0xF2, 0x7F, 0x68}},
		{"song select", SongSelect{Song: value7(0x3F)}, []byte{0xF3, 0x3F}},
		{"tune request", TuneRequest{}, []byte{0xF6}},
		{"timing clock", TimingClock{}, []byte{0xF8}},
		{"start", Start{}, []byte{0xFA}},
		{"continue", Continue{}, []byte{0xFB}},
		{"stop", Stop{}, []byte{0xFC}},
		{"active sensing", ActiveSensing{}, []byte{0xFE}},
		{"reset", Reset{}, []byte{0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.msg)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%v) = % 02X, want % 02X", tt.msg, got, tt.want)
			}
			if len(got) != tt.msg.Len() {
				t.Errorf("encoded length %d != Len() %d", len(got), tt.msg.Len())
			}
		})
	}
}

func TestEncode_DecodeRoundTrip(t *testing.T) {
	// Encode(Decode(bytes)) == bytes for a well-formed message of each kind
	wires := [][]byte{
		{0x82, 0x76, 0x34},
		{0x9F, 0x00, 0x01},
		{0xA5, 0x13, 0x34},
		{0xB2, 0x76, 0x34},
		{0xC9, 0x15},
		{0xD6, 0x77},
		{0xE8, 0x14, 0x56},
		{0xF1, 0x23},
		{0xF2, 0x7F, 0x68},
		{0xF3, 0x3F},
		{0xF6},
		{0xF8},
		{0xFA},
		{0xFB},
		{0xFC},
		{0xFE},
		{0xFF},
	}

	for _, wire := range wires {
		msgs := NewParser().FeedAll(wire)
		if len(msgs) != 1 {
			t.Fatalf("parsing % 02X yielded %d messages", wire, len(msgs))
		}
		if got := Encode(msgs[0]); !bytes.Equal(got, wire) {
			t.Errorf("round trip of % 02X produced % 02X", wire, got)
		}
	}
}

func TestAppend_ReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 8)
	buf = Append(buf, ProgramChange{Channel: channel(1), Program: program(5)})
	buf = Append(buf, TimingClock{})

	want := []byte{0xC1, 0x05, 0xF8}
	if !bytes.Equal(buf, want) {
		t.Errorf("appended buffer = % 02X, want % 02X", buf, want)
	}
}

func TestEncode_ParserRoundTrip(t *testing.T) {
	// A back-to-back stream of every channel-voice kind survives a full
	// encode -> parse cycle.
	msgs := []Message{
		NoteOn{Channel: channel(3), Note: value7(60), Velocity: value7(100)},
		NoteOff{Channel: channel(3), Note: value7(60), Velocity: value7(0)},
		PolyPressure{Channel: channel(15), Note: value7(1), Pressure: value7(2)},
		ControlChange{Channel: channel(0), Controller: control(64), Value: value7(127)},
		ProgramChange{Channel: channel(7), Program: program(42)},
		ChannelPressure{Channel: channel(11), Pressure: value7(88)},
		PitchBend{Channel: channel(5), Value: value14(0x12, 0x34)},
	}

	var wire []byte
	for _, m := range msgs {
		wire = Append(wire, m)
	}

	got := NewParser().FeedAll(wire)
	if !reflect.DeepEqual(got, msgs) {
		t.Errorf("round trip mismatch\n  got:  %v\n  want: %v", got, msgs)
	}
}
