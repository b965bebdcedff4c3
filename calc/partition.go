package calc

import "github.com/arcstk/arcstk/meta"

// Skip amounts applied at the boundaries of the AccurateRip calculation:
// the pre-gap of the album's first track and the post-gap of its last
// track are excluded from the checksum.
const (
	// NumSkipFront is 5 CDDA frames minus one sample.
	NumSkipFront = 5*meta.SamplesPerFrame - 1
	// NumSkipBack is 5 CDDA frames.
	NumSkipBack = 5 * meta.SamplesPerFrame
)

// Partition describes one contiguous, single-track sub-range of a sample
// buffer, as produced by a Partitioner.
type Partition struct {
	// BeginOffset and EndOffset are offsets (exclusive end) into the
	// buffer that was partitioned.
	BeginOffset, EndOffset int
	// FirstGlobal and LastGlobal are the global sample indices (inclusive)
	// this partition covers.
	FirstGlobal, LastGlobal int
	// StartsTrack/EndsTrack report whether this partition begins/ends the
	// track it belongs to (after skip adjustment).
	StartsTrack, EndsTrack bool
	// Track is the 1-based track number this partition belongs to.
	Track int
}

// trackBound is a track's [first,last] global sample index range
// (inclusive), already adjusted for front/back skip.
type trackBound struct {
	first, last int64 // inclusive
}

// Partitioner splits a sample buffer's global index range into per-track
// Partitions according to a fixed set of track boundaries.
type Partitioner struct {
	bounds  []trackBound // skip-adjusted, used to place partitions
	nominal []trackBound // unadjusted, used for TrackLength
}

// NewMultitrackPartitioner builds a Partitioner from a ToC's track offsets
// and leadout, all in frames, applying front skip to track 1 and back skip
// to the last track according to skipFront/skipBack.
func NewMultitrackPartitioner(toc meta.ToCData, skipFront, skipBack bool) *Partitioner {
	n := toc.TrackCount()
	bounds := make([]trackBound, n)
	nominal := make([]trackBound, n)
	for i := 0; i < n; i++ {
		first := toc.Offset(i+1).Frames() * meta.SamplesPerFrame
		var last int64
		if i+1 < n {
			last = toc.Offset(i+2).Frames()*meta.SamplesPerFrame - 1
		} else {
			last = toc.Leadout().Frames()*meta.SamplesPerFrame - 1
		}
		nominal[i] = trackBound{first: first, last: last}

		if i == 0 && skipFront {
			first += NumSkipFront
		}
		if i == n-1 && skipBack {
			last -= NumSkipBack
		}
		bounds[i] = trackBound{first: first, last: last}
	}
	return &Partitioner{bounds: bounds, nominal: nominal}
}

// NewSingletrackPartitioner builds a Partitioner for a buffer holding
// exactly one track of totalSamples samples, optionally applying front
// and/or back skip (when that single file is, respectively, the first
// and/or last track of the album it belongs to).
func NewSingletrackPartitioner(totalSamples int64, skipFront, skipBack bool) *Partitioner {
	nominal := trackBound{first: 0, last: totalSamples - 1}
	first, last := nominal.first, nominal.last
	if skipFront {
		first += NumSkipFront
	}
	if skipBack {
		last -= NumSkipBack
	}
	return &Partitioner{
		bounds:  []trackBound{{first: first, last: last}},
		nominal: []trackBound{nominal},
	}
}

// Partitions returns the per-track partitions of the buffer range
// [globalOffset, globalOffset+size) implied by the Partitioner's track
// bounds.
func (p *Partitioner) Partitions(globalOffset int64, size int) []Partition {
	if size <= 0 {
		return nil
	}
	rangeFirst := globalOffset
	rangeLast := globalOffset + int64(size) - 1

	var out []Partition
	for i, b := range p.bounds {
		if b.last < b.first {
			continue // track fully consumed by skip (degenerate/empty track)
		}
		first := maxI64(b.first, rangeFirst)
		last := minI64(b.last, rangeLast)
		if first > last {
			continue // no intersection
		}
		out = append(out, Partition{
			BeginOffset: int(first - globalOffset),
			EndOffset:   int(last-globalOffset) + 1,
			FirstGlobal: int(first),
			LastGlobal:  int(last),
			StartsTrack: first == b.first,
			EndsTrack:   last == b.last,
			Track:       i + 1,
		})
	}
	return out
}

// TrackLength returns the nominal length, in samples, of the given 1-based
// track, i.e. before skip adjustment: a ChecksumSet always carries a
// track's full length in frames regardless of samples skipped from the
// checksum itself.
func (p *Partitioner) TrackLength(track int) int64 {
	b := p.nominal[track-1]
	return b.last - b.first + 1
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
