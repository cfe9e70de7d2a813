// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Auralux Instruments

package cmd

import (
	"bytes"
	"testing"

	"github.com/auralux/midiscope/pkg/midiwire"
)

func TestParseHexArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []byte
		wantErr bool
	}{
		{"spaced", []string{"90", "40", "7F"}, []byte{0x90, 0x40, 0x7F}, false},
		{"joined", []string{"90407F"}, []byte{0x90, 0x40, 0x7F}, false},
		{"prefixed", []string{"0x90", "0x40", "0x7F"}, []byte{0x90, 0x40, 0x7F}, false},
		{"odd digits", []string{"90", "4"}, nil, true},
		{"not hex", []string{"zz"}, nil, true},
	}

	for _, tt := range tests {
		got, err := parseHexArgs(tt.args)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", tt.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%s: got % X, want % X", tt.name, got, tt.want)
		}
	}
}

func TestBuildMessage(t *testing.T) {
	sendChannel, sendNote, sendVelocity = 1, 60, 100
	msg, err := buildMessage("note-on")
	if err != nil {
		t.Fatalf("buildMessage failed: %v", err)
	}
	wire := midiwire.Encode(msg)
	if !bytes.Equal(wire, []byte{0x90, 60, 100}) {
		t.Errorf("note-on wire = % X, want 90 3C 64", wire)
	}

	sendChannel = 16
	sendBend = 0
	msg, err = buildMessage("pitch-bend")
	if err != nil {
		t.Fatalf("buildMessage failed: %v", err)
	}
	wire = midiwire.Encode(msg)
	if !bytes.Equal(wire, []byte{0xEF, 0x00, 0x40}) {
		t.Errorf("centered pitch-bend wire = % X, want EF 00 40", wire)
	}

	sendChannel = 17
	if _, err := buildMessage("note-on"); err == nil {
		t.Error("expected error for channel 17")
	}

	sendChannel, sendNote = 1, 200
	if _, err := buildMessage("note-on"); err == nil {
		t.Error("expected error for note 200")
	}

	sendNote = 60
	if _, err := buildMessage("flanger"); err == nil {
		t.Error("expected error for unknown message type")
	}
}
