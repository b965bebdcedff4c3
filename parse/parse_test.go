package parse_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arcstk/arcstk/meta"
	"github.com/arcstk/arcstk/parse"
)

func sampleResponse() parse.ARResponse {
	mkTriplets := func(n int, seed uint32) []parse.ARTriplet {
		out := make([]parse.ARTriplet, n)
		for i := range out {
			out[i] = parse.ARTriplet{
				Arcs:            seed + uint32(i),
				Confidence:      uint8(i + 1),
				Frame450Arcs:    seed + uint32(i) + 1000,
				ArcsValid:       true,
				ConfidenceValid: true,
				Frame450Valid:   true,
			}
		}
		return out
	}

	return parse.ARResponse{
		{
			ID:       meta.ARId{TrackCount: 15, DiscID1: 0x001b9178, DiscID2: 0x014be24e, CDDBID: 0xb40d2d0f},
			Triplets: mkTriplets(15, 0x1000),
		},
		{
			ID:       meta.ARId{TrackCount: 15, DiscID1: 0xaaaaaaaa, DiscID2: 0xbbbbbbbb, CDDBID: 0xcccccccc},
			Triplets: mkTriplets(15, 0x2000),
		},
	}
}

func TestRoundTrip(t *testing.T) {
	want := sampleResponse()

	var buf bytes.Buffer
	if _, err := want.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := parse.ParseResponse(&buf)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("block %d: ID = %+v, want %+v", i, got[i].ID, want[i].ID)
		}
		if len(got[i].Triplets) != len(want[i].Triplets) {
			t.Fatalf("block %d: %d triplets, want %d", i, len(got[i].Triplets), len(want[i].Triplets))
		}
		for j := range want[i].Triplets {
			if got[i].Triplets[j] != want[i].Triplets[j] {
				t.Errorf("block %d triplet %d: got %+v, want %+v", i, j, got[i].Triplets[j], want[i].Triplets[j])
			}
		}
	}
}

func TestEmptyInputIsNotAnError(t *testing.T) {
	got, err := parse.ParseResponse(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ParseResponse(empty) = %v, want nil error", err)
	}
	if len(got) != 0 {
		t.Fatalf("len(got) = %d, want 0", len(got))
	}
}

// TestTruncationReportsExactBytePosition reproduces the worked example: a
// response whose first block has 15 tracks (148 bytes) is truncated one
// byte into its second block, right after that block's track_count byte.
// The reported position must be byte 149 overall, block 2, block-relative
// offset 1.
func TestTruncationReportsExactBytePosition(t *testing.T) {
	resp := sampleResponse() // two 15-track blocks

	var full bytes.Buffer
	if _, err := resp.WriteTo(&full); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	// Block 1 is 13 + 15*9 = 148 bytes. Keep that block whole, plus the
	// first byte (track_count) of block 2.
	truncated := full.Bytes()[:148+1]

	_, err := parse.ParseResponse(bytes.NewReader(truncated))
	if err == nil {
		t.Fatal("ParseResponse(truncated) succeeded, want a StreamReadError")
	}

	var sre *parse.StreamReadError
	if !errors.As(err, &sre) {
		t.Fatalf("error is %T, want *parse.StreamReadError", err)
	}
	if sre.BytePosition != 149 {
		t.Errorf("BytePosition = %d, want 149", sre.BytePosition)
	}
	if sre.BlockNumber != 2 {
		t.Errorf("BlockNumber = %d, want 2", sre.BlockNumber)
	}
	if sre.BlockBytePosition != 1 {
		t.Errorf("BlockBytePosition = %d, want 1", sre.BlockBytePosition)
	}
	if sre.Unwrap() == nil {
		t.Error("Unwrap() = nil, want the underlying read error")
	}
}

// TestTruncationExactlyAtBlockBoundaryIsClean checks that cutting the input
// exactly between two blocks (zero bytes consumed into the new block) is
// reported as a clean end of input, not an error.
func TestTruncationExactlyAtBlockBoundaryIsClean(t *testing.T) {
	resp := sampleResponse()

	var full bytes.Buffer
	if _, err := resp.WriteTo(&full); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	truncated := full.Bytes()[:148] // exactly block 1, nothing of block 2

	got, err := parse.ParseResponse(bytes.NewReader(truncated))
	if err != nil {
		t.Fatalf("ParseResponse(truncated at block boundary) = %v, want nil", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
}

func TestTriplectFieldsMarkedInvalidOnTruncationMidTriplet(t *testing.T) {
	resp := sampleResponse()
	var full bytes.Buffer
	if _, err := resp.WriteTo(&full); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	// Cut 2 bytes into the first triplet of block 1 (13-byte header + 1
	// confidence byte + 1 byte of the arcs field).
	truncated := full.Bytes()[:13+2]

	h := parse.NewCollectingHandler()
	err := parse.Parse(bytes.NewReader(truncated), h)
	if err == nil {
		t.Fatal("Parse(truncated mid-triplet) succeeded, want error")
	}
	if len(h.Response) != 1 {
		t.Fatalf("len(h.Response) = %d, want 1 (the in-progress block is still reported)", len(h.Response))
	}
	triplets := h.Response[0].Triplets
	if len(triplets) != 1 {
		t.Fatalf("len(triplets) = %d, want 1", len(triplets))
	}
	first := triplets[0]
	if !first.ConfidenceValid {
		t.Error("ConfidenceValid = false, want true (confidence byte was fully read)")
	}
	if first.ArcsValid {
		t.Error("ArcsValid = true, want false (arcs field was cut short)")
	}
}
