// Package match scores locally computed checksums against a parsed
// AccurateRip response, to decide whether a rip matches the community's
// reference data and, if so, how closely.
package match

import (
	"github.com/arcstk/arcstk/checksum"
	"github.com/arcstk/arcstk/meta"
	"github.com/arcstk/arcstk/parse"
)

// Match is the flat verification grid for one (response, local checksums)
// pair: one id flag and two version flags (v1, v2) per track, for every
// block in the response. Index layout per block is
// [id, v1_t0, v2_t0, v1_t1, v2_t1, ..., v1_t(n-1), v2_t(n-1)].
type Match struct {
	blocks int
	tracks int
	flags  []bool
}

func newMatch(blocks, tracks int) *Match {
	return &Match{blocks: blocks, tracks: tracks, flags: make([]bool, blocks*(2*tracks+1))}
}

// Blocks returns the number of blocks this Match covers.
func (m *Match) Blocks() int { return m.blocks }

// Tracks returns the number of tracks per block this Match covers.
func (m *Match) Tracks() int { return m.tracks }

func (m *Match) idIndex(block int) (int, error) {
	if block < 0 || block >= m.blocks {
		return 0, newError("block %d out of range [0,%d)", block, m.blocks)
	}
	return block * (2*m.tracks + 1), nil
}

func (m *Match) trackIndex(block, track int, isV2 bool) (int, error) {
	if block < 0 || block >= m.blocks {
		return 0, newError("block %d out of range [0,%d)", block, m.blocks)
	}
	if track < 0 || track >= m.tracks {
		return 0, newError("track %d out of range [0,%d)", track, m.tracks)
	}
	base := block*(2*m.tracks+1) + 1 + 2*track
	if isV2 {
		return base + 1, nil
	}
	return base, nil
}

// VerifyID sets the id flag for block and returns its flat index.
func (m *Match) VerifyID(block int) (int, error) {
	i, err := m.idIndex(block)
	if err != nil {
		return 0, err
	}
	m.flags[i] = true
	return i, nil
}

// ID reports the id flag for block.
func (m *Match) ID(block int) (bool, error) {
	i, err := m.idIndex(block)
	if err != nil {
		return false, err
	}
	return m.flags[i], nil
}

// VerifyTrack sets the flag for (block, track, isV2).
func (m *Match) VerifyTrack(block, track int, isV2 bool) (int, error) {
	i, err := m.trackIndex(block, track, isV2)
	if err != nil {
		return 0, err
	}
	m.flags[i] = true
	return i, nil
}

// Track reports the flag for (block, track, isV2).
func (m *Match) Track(block, track int, isV2 bool) (bool, error) {
	i, err := m.trackIndex(block, track, isV2)
	if err != nil {
		return false, err
	}
	return m.flags[i], nil
}

// Difference counts, for one block and one algorithm version, the number
// of tracks that did NOT match plus 1 if the block's id did not match.
func (m *Match) Difference(block int, isV2 bool) (int, error) {
	if block < 0 || block >= m.blocks {
		return 0, newError("block %d out of range [0,%d)", block, m.blocks)
	}
	mismatches := 0
	for t := 0; t < m.tracks; t++ {
		ok, err := m.Track(block, t, isV2)
		if err != nil {
			return 0, err
		}
		if !ok {
			mismatches++
		}
	}
	idOK, err := m.ID(block)
	if err != nil {
		return 0, err
	}
	if !idOK {
		mismatches++
	}
	return mismatches, nil
}

// Matcher scores local checksums against a parsed AccurateRip response.
type Matcher interface {
	// Matches reports whether any block achieves a difference of 0.
	Matches() bool
	// BestMatch returns the index of the block with the lowest
	// difference, and false if the response has no blocks.
	BestMatch() (block int, ok bool)
	// BestDifference returns the lowest difference found across all
	// blocks and both algorithm versions.
	BestDifference() int
	// MatchesV2 reports whether the best match was found on the ARCSv2
	// column.
	MatchesV2() bool
	// Match returns the underlying verification grid.
	Match() *Match
}

// bestOf scans every block's v1 and v2 difference and returns the winning
// block, its difference, and whether v2 was the winning column. Ties are
// broken by preferring the lower block index, then v2 over v1, matching
// the order checked below: for each block, v2 is checked before v1, and
// the first strictly-lower difference replaces the incumbent.
func bestOf(m *Match) (block int, diff int, isV2 bool, ok bool) {
	if m.blocks == 0 {
		return 0, 0, false, false
	}
	best := -1
	bestDiff := 0
	bestV2 := false
	for b := 0; b < m.blocks; b++ {
		for _, v2 := range [2]bool{true, false} {
			d, err := m.Difference(b, v2)
			if err != nil {
				continue
			}
			if best == -1 || d < bestDiff {
				best, bestDiff, bestV2 = b, d, v2
			}
		}
	}
	return best, bestDiff, bestV2, best != -1
}

// AlbumMatcher compares one set of per-track local checksums against a
// response under the assumption that track order is known and fixed: for
// each block, local checksum t is compared against response[b].Triplets[t]
// at the same position.
type AlbumMatcher struct {
	local []checksum.ChecksumSet
	id    meta.ARId
	resp  parse.ARResponse
	m     *Match
}

// NewAlbumMatcher builds an AlbumMatcher for the given local checksums, the
// local disc's ARId, and the parsed response. Every block in resp must have
// as many triplets as local has tracks.
func NewAlbumMatcher(local checksum.Checksums, id meta.ARId, resp parse.ARResponse) (*AlbumMatcher, error) {
	tracks := len(local)
	for i, b := range resp {
		if len(b.Triplets) != tracks {
			return nil, newError("block %d has %d triplets, want %d", i, len(b.Triplets), tracks)
		}
	}

	am := &AlbumMatcher{
		local: local,
		id:    id,
		resp:  resp,
		m:     newMatch(len(resp), tracks),
	}
	am.run()
	return am, nil
}

func (a *AlbumMatcher) run() {
	for b, block := range a.resp {
		if block.ID == a.id {
			a.m.VerifyID(b)
		}
		for t, triplet := range block.Triplets {
			set := a.local[t]
			if v1, ok := set.Get(checksum.ARCSv1); ok && uint32(v1) == triplet.Arcs {
				a.m.VerifyTrack(b, t, false)
			}
			if v2, ok := set.Get(checksum.ARCSv2); ok && uint32(v2) == triplet.Arcs {
				a.m.VerifyTrack(b, t, true)
			}
		}
	}
}

func (a *AlbumMatcher) Matches() bool {
	_, diff, _, ok := bestOf(a.m)
	return ok && diff == 0
}

func (a *AlbumMatcher) BestMatch() (int, bool) {
	block, _, _, ok := bestOf(a.m)
	return block, ok
}

func (a *AlbumMatcher) BestDifference() int {
	_, diff, _, _ := bestOf(a.m)
	return diff
}

func (a *AlbumMatcher) MatchesV2() bool {
	_, _, v2, _ := bestOf(a.m)
	return v2
}

func (a *AlbumMatcher) Match() *Match { return a.m }

// TracksetMatcher compares local checksums against a response without
// assuming track order: track position t in a block matches if ANY of the
// local checksums equals response[b].Triplets[t].Arcs. Useful when ripping
// software may have files in a different order than the disc's ToC.
type TracksetMatcher struct {
	local   checksum.Checksums
	id      meta.ARId
	hasID   bool
	resp    parse.ARResponse
	m       *Match
}

// NewTracksetMatcher builds a TracksetMatcher. If id is the zero ARId
// (meta.ARId{}.Empty()), the id flag never contributes to any block's
// difference, since no local id was supplied to compare against.
func NewTracksetMatcher(local checksum.Checksums, id meta.ARId, resp parse.ARResponse) *TracksetMatcher {
	tracks := 0
	for _, b := range resp {
		if len(b.Triplets) > tracks {
			tracks = len(b.Triplets)
		}
	}
	tm := &TracksetMatcher{
		local: local,
		id:    id,
		hasID: !id.Empty(),
		resp:  resp,
		m:     newMatch(len(resp), tracks),
	}
	tm.run()
	return tm
}

func (t *TracksetMatcher) run() {
	for b, block := range t.resp {
		if t.hasID {
			if block.ID == t.id {
				t.m.VerifyID(b)
			}
		} else {
			// No local id to compare: the id flag is vacuously true so
			// it never inflates the difference count.
			t.m.VerifyID(b)
		}
		for pos, triplet := range block.Triplets {
			for _, set := range t.local {
				if v1, ok := set.Get(checksum.ARCSv1); ok && uint32(v1) == triplet.Arcs {
					t.m.VerifyTrack(b, pos, false)
				}
				if v2, ok := set.Get(checksum.ARCSv2); ok && uint32(v2) == triplet.Arcs {
					t.m.VerifyTrack(b, pos, true)
				}
			}
		}
	}
}

func (t *TracksetMatcher) Matches() bool {
	_, diff, _, ok := bestOf(t.m)
	return ok && diff == 0
}

func (t *TracksetMatcher) BestMatch() (int, bool) {
	block, _, _, ok := bestOf(t.m)
	return block, ok
}

func (t *TracksetMatcher) BestDifference() int {
	_, diff, _, _ := bestOf(t.m)
	return diff
}

func (t *TracksetMatcher) MatchesV2() bool {
	_, _, v2, _ := bestOf(t.m)
	return v2
}

func (t *TracksetMatcher) Match() *Match { return t.m }
