package parse

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Parse drives h over the blocks in r until EOF or a read error. It is
// equivalent to ParseWithErrorHandler(r, h, nil).
func Parse(r io.Reader, h Handler) error {
	return ParseWithErrorHandler(r, h, nil)
}

// ParseResponse parses r into a freshly built ARResponse, the convenience
// entry point for callers that don't need push-style events.
func ParseResponse(r io.Reader) (ARResponse, error) {
	h := NewCollectingHandler()
	err := Parse(r, h)
	return h.Response, err
}

// ParseWithErrorHandler drives h over the blocks in r. If eh is non-nil, it
// is invoked with the StreamReadError before Parse returns it.
//
// Positions are tracked independently of bitio's own internal buffering:
// BytePosition is the count of bytes successfully consumed from r at the
// moment the error was detected, not the index of the byte that failed to
// be read. Reaching EOF on the very first byte of a block (zero bytes of
// that block consumed) is indistinguishable from the input simply ending
// between two blocks, and is reported as a clean end of input rather than
// an error — matching the wire format's lack of any response-level
// terminator. Any other read error on that byte is returned as a
// StreamReadError.
func ParseWithErrorHandler(r io.Reader, h Handler, eh ErrorHandler) error {
	br := bitio.NewReader(r)

	h.StartInput()
	defer h.EndInput()

	var bytePos int64
	blockNum := 0

	fail := func(err error, blockStart int64) error {
		sre := &StreamReadError{
			BytePosition:      bytePos,
			BlockNumber:       blockNum,
			BlockBytePosition: bytePos - blockStart,
			Cause:             err,
		}
		if eh != nil {
			eh.OnError(sre)
		}
		return sre
	}

	for {
		blockStart := bytePos

		trackCount, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			blockNum++
			return fail(err, blockStart)
		}
		bytePos++
		blockNum++

		h.StartBlock()

		id1, n, err := readU32LE(br)
		bytePos += int64(n)
		if err != nil {
			h.EndBlock()
			return fail(err, blockStart)
		}
		id2, n, err := readU32LE(br)
		bytePos += int64(n)
		if err != nil {
			h.EndBlock()
			return fail(err, blockStart)
		}
		cddbID, n, err := readU32LE(br)
		bytePos += int64(n)
		if err != nil {
			h.EndBlock()
			return fail(err, blockStart)
		}

		h.ID(trackCount, id1, id2, cddbID)

		for t := uint8(0); t < trackCount; t++ {
			confidence, n, err := readU8(br)
			bytePos += int64(n)
			confValid := err == nil
			if err != nil {
				h.Triplet(0, confidence, 0, false, confValid, false)
				h.EndBlock()
				return fail(err, blockStart)
			}

			arcs, n, err := readU32LE(br)
			bytePos += int64(n)
			arcsValid := err == nil
			if err != nil {
				h.Triplet(arcs, confidence, 0, arcsValid, confValid, false)
				h.EndBlock()
				return fail(err, blockStart)
			}

			frame450, n, err := readU32LE(br)
			bytePos += int64(n)
			f450Valid := err == nil
			h.Triplet(arcs, confidence, frame450, arcsValid, confValid, f450Valid)
			if err != nil {
				h.EndBlock()
				return fail(err, blockStart)
			}
		}

		h.EndBlock()
	}
}

func readU8(br *bitio.Reader) (uint8, int, error) {
	b, err := br.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	return b, 1, nil
}

func readU32LE(br *bitio.Reader) (uint32, int, error) {
	var buf [4]byte
	for i := 0; i < 4; i++ {
		b, err := br.ReadByte()
		if err != nil {
			return 0, i, err
		}
		buf[i] = b
	}
	return binary.LittleEndian.Uint32(buf[:]), 4, nil
}
