// Package parse implements the push-style binary parser for AccurateRip
// disc responses: a concatenation of fixed-layout blocks, little-endian,
// with no length prefix or framing.
package parse

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arcstk/arcstk/meta"
)

// ARTriplet is one track's reference record from an AccurateRip block: its
// checksum, the number of submitters that agreed on it, and the checksum
// of frame 450 alone (used by some verification tools as a secondary
// check). The *Valid flags say whether the corresponding field was read in
// full before the stream ended or errored.
type ARTriplet struct {
	Arcs            uint32
	Confidence      uint8
	Frame450Arcs    uint32
	ArcsValid       bool
	ConfidenceValid bool
	Frame450Valid   bool
}

// ARBlock is one pressing's worth of reference data: a disc identifier and
// one ARTriplet per track, in track order.
type ARBlock struct {
	ID       meta.ARId
	Triplets []ARTriplet
}

// ARResponse is an ordered sequence of ARBlock, the full content of one
// AccurateRip HTTP response body.
type ARResponse []ARBlock

// WriteTo serializes resp back into the wire format Parse consumes. It
// exists so the round-trip property (serialize, then reparse, yields an
// equal ARResponse) can be stated and tested; AccurateRip responses are
// otherwise only ever consumed, never produced, by this package.
func (resp ARResponse) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, b := range resp {
		header := make([]byte, 13)
		header[0] = byte(b.ID.TrackCount)
		binary.LittleEndian.PutUint32(header[1:5], b.ID.DiscID1)
		binary.LittleEndian.PutUint32(header[5:9], b.ID.DiscID2)
		binary.LittleEndian.PutUint32(header[9:13], b.ID.CDDBID)
		n, err := w.Write(header)
		total += int64(n)
		if err != nil {
			return total, err
		}

		for _, t := range b.Triplets {
			rec := make([]byte, 9)
			rec[0] = t.Confidence
			binary.LittleEndian.PutUint32(rec[1:5], t.Arcs)
			binary.LittleEndian.PutUint32(rec[5:9], t.Frame450Arcs)
			n, err := w.Write(rec)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// StreamReadError is raised on premature EOF or I/O error while parsing a
// response. All three positions are 1-based byte counts: BytePosition
// counts from the start of the input, BlockBytePosition from the start of
// the block being read when the error occurred.
type StreamReadError struct {
	BytePosition      int64
	BlockNumber       int
	BlockBytePosition int64
	Cause             error
}

func (e *StreamReadError) Error() string {
	return fmt.Sprintf("parse: read error at byte %d (block %d, block offset %d): %v",
		e.BytePosition, e.BlockNumber, e.BlockBytePosition, e.Cause)
}

// Unwrap exposes the underlying read error (io.EOF for truncated input, or
// the error reported by the source) to errors.Is/errors.As.
func (e *StreamReadError) Unwrap() error { return e.Cause }
