// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Auralux Instruments

// Package capture reads and writes wire capture files. A capture is a
// CBOR stream of timestamped records, each holding the raw bytes read
// from the port and the elapsed time since the capture started. Replay
// tools use the offsets to reproduce the original pacing.
package capture

import (
	"errors"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Record is one timestamped chunk of wire bytes. Offset is microseconds
// since the start of the capture. Integer keys keep records small on disk.
type Record struct {
	Offset int64  `cbor:"1,keyasint"`
	Data   []byte `cbor:"2,keyasint"`
}

// Writer appends records to a capture stream.
type Writer struct {
	enc   *cbor.Encoder
	start time.Time
}

// NewWriter wraps w in a capture writer. The capture clock starts now;
// Write stamps records against it, WriteRecord takes explicit offsets.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		enc:   cbor.NewEncoder(w),
		start: time.Now(),
	}
}

// Write appends data stamped with the elapsed time since the writer
// was created. The byte slice may be reused by the caller afterwards.
func (w *Writer) Write(data []byte) error {
	return w.WriteRecord(Record{
		Offset: time.Since(w.start).Microseconds(),
		Data:   data,
	})
}

// WriteRecord appends a record with a caller-supplied offset.
func (w *Writer) WriteRecord(rec Record) error {
	return w.enc.Encode(rec)
}

// Reader decodes records from a capture stream.
type Reader struct {
	dec *cbor.Decoder
}

// NewReader wraps r in a capture reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: cbor.NewDecoder(r)}
}

// Next returns the next record, or io.EOF at the end of the stream.
func (r *Reader) Next() (Record, error) {
	var rec Record
	err := r.dec.Decode(&rec)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		// Truncated trailing record, e.g. a recorder killed mid-write.
		return Record{}, io.EOF
	}
	return rec, err
}
