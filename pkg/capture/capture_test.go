// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

package capture

import (
	"bytes"
	"io"
	"reflect"
	"testing"
)

// ============================================================================
// Round Trip Tests
// ============================================================================

func TestCapture_RoundTrip(t *testing.T) {
	records := []Record{
		{Offset: 0, Data: []byte{0x90, 0x40, 0x7F}},
		{Offset: 1500, Data: []byte{0x41, 0x7F}},
		{Offset: 250000, Data: []byte{0x80, 0x40, 0x00, 0x80, 0x41, 0x00}},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range records {
		if err := w.WriteRecord(rec); err != nil {
			t.Fatalf("WriteRecord failed: %v", err)
		}
	}

	r := NewReader(&buf)
	for i, want := range records {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next record %d failed: %v", i, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("record %d = %+v, want %+v", i, got, want)
		}
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last record, got %v", err)
	}
}

func TestCapture_WriteStampsOffsets(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Write([]byte{0xF8}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Write([]byte{0xFA}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	r := NewReader(&buf)
	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	second, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	if first.Offset < 0 {
		t.Errorf("first offset negative: %d", first.Offset)
	}
	if second.Offset < first.Offset {
		t.Errorf("offsets not monotonic: %d then %d", first.Offset, second.Offset)
	}
	if !bytes.Equal(first.Data, []byte{0xF8}) || !bytes.Equal(second.Data, []byte{0xFA}) {
		t.Error("record data does not match written bytes")
	}
}

func TestCapture_EmptyStream(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF on empty stream, got %v", err)
	}
}

func TestCapture_TruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRecord(Record{Offset: 10, Data: []byte{0x90, 0x40, 0x7F}}); err != nil {
		t.Fatalf("WriteRecord failed: %v", err)
	}
	if err := w.WriteRecord(Record{Offset: 20, Data: []byte{0x80, 0x40, 0x00}}); err != nil {
		t.Fatalf("WriteRecord failed: %v", err)
	}

	// Cut the stream mid-record.
	truncated := buf.Bytes()[:buf.Len()-2]

	r := NewReader(bytes.NewReader(truncated))
	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if first.Offset != 10 {
		t.Errorf("first offset = %d, want 10", first.Offset)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF on truncated record, got %v", err)
	}
}
