// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package midiwire

import (
	"strings"
	"testing"
)

func TestNoteName(t *testing.T) {
	tests := []struct {
		note uint8
		want string
	}{
		{0, "C-2"},
		{60, "C3"},
		{72, "C4"},
		{69, "A3"},
		{127, "G8"},
	}

	for _, tt := range tests {
		if got := NoteName(value7(tt.note)); got != tt.want {
			t.Errorf("NoteName(%d) = %q, want %q", tt.note, got, tt.want)
		}
	}
}

func TestFormatMessage(t *testing.T) {
	m := NoteOn{Channel: channel(0), Note: value7(72), Velocity: value7(100)}
	got := FormatMessage(m)
	for _, sub := range []string{"NOTE_ON", "ch1", "C4", "vel=100"} {
		if !strings.Contains(got, sub) {
			t.Errorf("FormatMessage(%v) = %q, missing %q", m, got, sub)
		}
	}

	pb := PitchBend{Channel: channel(4), Value: Value14FromBend(0)}
	got = FormatMessage(pb)
	for _, sub := range []string{"PITCH_BEND", "ch5", "value=8192", "bend=+0"} {
		if !strings.Contains(got, sub) {
			t.Errorf("FormatMessage(%v) = %q, missing %q", pb, got, sub)
		}
	}
}

func TestMessageName_CoversAllKinds(t *testing.T) {
	msgs := []Message{
		NoteOff{}, NoteOn{}, PolyPressure{}, ControlChange{}, ProgramChange{},
		ChannelPressure{}, PitchBend{}, QuarterFrame{}, SongPositionPointer{},
		SongSelect{}, TuneRequest{}, TimingClock{}, Start{}, Continue{},
		Stop{}, ActiveSensing{}, Reset{},
	}

	seen := map[string]bool{}
	for _, m := range msgs {
		name := MessageName(m)
		if name == "UNKNOWN" {
			t.Errorf("MessageName(%T) = UNKNOWN", m)
		}
		if seen[name] {
			t.Errorf("duplicate message name %q", name)
		}
		seen[name] = true
	}
}

func TestStatistics_Update(t *testing.T) {
	s := NewStatistics()
	s.Update(NoteOn{Channel: channel(0), Note: value7(60), Velocity: value7(1)})
	s.Update(NoteOff{Channel: channel(0), Note: value7(60), Velocity: value7(0)})
	s.Update(TimingClock{})
	s.AddDropped(3)

	if s.TotalMessages != 3 {
		t.Errorf("TotalMessages = %d, want 3", s.TotalMessages)
	}
	if s.NoteOns != 1 || s.NoteOffs != 1 || s.Realtime != 1 {
		t.Errorf("kind counters wrong: %+v", s)
	}
	if s.TotalBytes != 3+3+1+3 {
		t.Errorf("TotalBytes = %d, want 10", s.TotalBytes)
	}
	if s.DroppedBytes != 3 {
		t.Errorf("DroppedBytes = %d, want 3", s.DroppedBytes)
	}

	s.Reset()
	if s.TotalMessages != 0 || s.DroppedBytes != 0 {
		t.Error("Reset should zero all counters")
	}
}
