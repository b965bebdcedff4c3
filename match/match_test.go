package match_test

import (
	"testing"

	"github.com/arcstk/arcstk/checksum"
	"github.com/arcstk/arcstk/match"
	"github.com/arcstk/arcstk/meta"
	"github.com/arcstk/arcstk/parse"
)

func localChecksums(v1a, v2a, v1b, v2b uint32) checksum.Checksums {
	cs := checksum.NewChecksums(2)
	cs[0].Set(checksum.ARCSv1, checksum.Checksum(v1a))
	cs[0].Set(checksum.ARCSv2, checksum.Checksum(v2a))
	cs[1].Set(checksum.ARCSv1, checksum.Checksum(v1b))
	cs[1].Set(checksum.ARCSv2, checksum.Checksum(v2b))
	return cs
}

// TestAlbumMatcherPrefersLowerBlockOnTie: both blocks achieve a perfect
// match (difference 0, one via v1 only, the other via v2 only). The
// lower-numbered block must win.
func TestAlbumMatcherPrefersLowerBlockOnTie(t *testing.T) {
	id := meta.ARId{TrackCount: 2, DiscID1: 1, DiscID2: 2, CDDBID: 3}
	local := localChecksums(0x1, 0x2, 0x3, 0x4)

	resp := parse.ARResponse{
		{ // block 0: matches via ARCSv2 only
			ID: id,
			Triplets: []parse.ARTriplet{
				{Arcs: 0x2, ArcsValid: true},
				{Arcs: 0x4, ArcsValid: true},
			},
		},
		{ // block 1: matches via ARCSv1 only
			ID: id,
			Triplets: []parse.ARTriplet{
				{Arcs: 0x1, ArcsValid: true},
				{Arcs: 0x3, ArcsValid: true},
			},
		},
	}

	m, err := match.NewAlbumMatcher(local, id, resp)
	if err != nil {
		t.Fatalf("NewAlbumMatcher: %v", err)
	}
	if !m.Matches() {
		t.Fatal("Matches() = false, want true")
	}
	if got, _ := m.BestMatch(); got != 0 {
		t.Errorf("BestMatch() = %d, want 0 (lower block wins a tie)", got)
	}
	if got := m.BestDifference(); got != 0 {
		t.Errorf("BestDifference() = %d, want 0", got)
	}
	if !m.MatchesV2() {
		t.Error("MatchesV2() = false, want true (block 0 matched via v2)")
	}
}

// TestAlbumMatcherPrefersV2OverV1InSameBlock: within a single block, a
// track whose local ARCSv1 and ARCSv2 are both equal to the same reference
// value ties at difference 0 on both columns. v2 must win.
func TestAlbumMatcherPrefersV2OverV1InSameBlock(t *testing.T) {
	id := meta.ARId{TrackCount: 1, DiscID1: 1, DiscID2: 2, CDDBID: 3}
	local := checksum.NewChecksums(1)
	local[0].Set(checksum.ARCSv1, checksum.Checksum(0x42))
	local[0].Set(checksum.ARCSv2, checksum.Checksum(0x42))

	resp := parse.ARResponse{
		{ID: id, Triplets: []parse.ARTriplet{{Arcs: 0x42, ArcsValid: true}}},
	}

	m, err := match.NewAlbumMatcher(local, id, resp)
	if err != nil {
		t.Fatalf("NewAlbumMatcher: %v", err)
	}
	if !m.MatchesV2() {
		t.Error("MatchesV2() = false, want true")
	}
}

func TestAlbumMatcherNoMatch(t *testing.T) {
	id := meta.ARId{TrackCount: 1, DiscID1: 1, DiscID2: 2, CDDBID: 3}
	local := checksum.NewChecksums(1)
	local[0].Set(checksum.ARCSv1, checksum.Checksum(0x1))

	resp := parse.ARResponse{
		{ID: meta.ARId{TrackCount: 1, DiscID1: 9, DiscID2: 9, CDDBID: 9},
			Triplets: []parse.ARTriplet{{Arcs: 0x99, ArcsValid: true}}},
	}

	m, err := match.NewAlbumMatcher(local, id, resp)
	if err != nil {
		t.Fatalf("NewAlbumMatcher: %v", err)
	}
	if m.Matches() {
		t.Error("Matches() = true, want false")
	}
	if got := m.BestDifference(); got != 2 { // id mismatch + track mismatch
		t.Errorf("BestDifference() = %d, want 2", got)
	}
}

func TestAlbumMatcherRejectsTripletCountMismatch(t *testing.T) {
	id := meta.ARId{TrackCount: 2}
	local := checksum.NewChecksums(2)
	resp := parse.ARResponse{
		{ID: id, Triplets: []parse.ARTriplet{{Arcs: 1}}}, // 1 triplet, 2 tracks
	}
	if _, err := match.NewAlbumMatcher(local, id, resp); err == nil {
		t.Fatal("NewAlbumMatcher succeeded on mismatched triplet count, want error")
	}
}

func TestAlbumMatcherNoBlocks(t *testing.T) {
	id := meta.ARId{TrackCount: 1}
	local := checksum.NewChecksums(1)
	m, err := match.NewAlbumMatcher(local, id, nil)
	if err != nil {
		t.Fatalf("NewAlbumMatcher: %v", err)
	}
	if _, ok := m.BestMatch(); ok {
		t.Error("BestMatch() ok = true on an empty response, want false")
	}
	if m.Matches() {
		t.Error("Matches() = true on an empty response, want false")
	}
}

// TestTracksetMatcherMatchesAnyPosition checks that a local checksum
// matching a triplet at a different track position than its own index
// still counts, unlike AlbumMatcher.
func TestTracksetMatcherMatchesAnyPosition(t *testing.T) {
	id := meta.ARId{TrackCount: 2, DiscID1: 1, DiscID2: 2, CDDBID: 3}
	local := localChecksums(0x1, 0x2, 0x3, 0x4)

	resp := parse.ARResponse{
		{ // both positions carry local track 0's v1 value
			ID: id,
			Triplets: []parse.ARTriplet{
				{Arcs: 0x1, ArcsValid: true}, // matches local track 0's v1
				{Arcs: 0x1, ArcsValid: true}, // also matches local track 0's v1 (any-position)
			},
		},
	}

	tm := match.NewTracksetMatcher(local, id, resp)
	ok0, _ := tm.Match().Track(0, 0, false)
	ok1, _ := tm.Match().Track(0, 1, false)
	if !ok0 || !ok1 {
		t.Errorf("Track(0,0,v1)=%v Track(0,1,v1)=%v, want both true", ok0, ok1)
	}
}

func TestTracksetMatcherNoLocalIDNeverInflatesDifference(t *testing.T) {
	local := localChecksums(0x1, 0x2, 0x3, 0x4)
	resp := parse.ARResponse{
		{
			ID: meta.ARId{TrackCount: 2, DiscID1: 9, DiscID2: 9, CDDBID: 9}, // arbitrary, unrelated id
			Triplets: []parse.ARTriplet{
				{Arcs: 0x1, ArcsValid: true},
				{Arcs: 0x3, ArcsValid: true},
			},
		},
	}

	tm := match.NewTracksetMatcher(local, meta.ARId{}, resp)
	if !tm.Matches() {
		t.Error("Matches() = false, want true (no local id supplied, so id flag is vacuous)")
	}
}

func TestMatchOutOfRangeErrors(t *testing.T) {
	id := meta.ARId{TrackCount: 1}
	local := checksum.NewChecksums(1)
	m, err := match.NewAlbumMatcher(local, id, nil)
	if err != nil {
		t.Fatalf("NewAlbumMatcher: %v", err)
	}
	if _, err := m.Match().VerifyID(0); err == nil {
		t.Fatal("VerifyID(0) on a zero-block Match succeeded, want error")
	}
	if _, err := m.Match().Track(0, 0, false); err == nil {
		t.Fatal("Track(0,0,false) on a zero-block Match succeeded, want error")
	}
}
