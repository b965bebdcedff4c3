package meta

// ToCData is the ordered sequence of track offsets plus leadout that
// describes a disc's table of contents, expressed in CDDA frames.
//
// Index 0 is the leadout; indices 1..n are the track offsets in ascending
// order. A ToCData is not guaranteed to satisfy the CDDA invariants until
// Validate succeeds.
type ToCData struct {
	// leadout is the frame address one past the last audio frame.
	leadout AudioSize
	// offsets holds one entry per track, offsets[i] is the first frame of
	// track i+1.
	offsets []AudioSize
}

// minTrackLenFrames is the minimum legal gap between two track offsets (4
// seconds), per the CDDA Redbook standard.
const minTrackLenFrames = 4 * 75 // 300 frames

// ConstructToCData builds a ToCData from a leadout and an ordered slice of
// track offsets, all in frames. It does not validate; call Validate to
// check CDDA invariants.
func ConstructToCData(leadout AudioSize, offsets []AudioSize) ToCData {
	cp := make([]AudioSize, len(offsets))
	copy(cp, offsets)
	return ToCData{leadout: leadout, offsets: cp}
}

// Leadout returns the leadout frame address.
func (t ToCData) Leadout() AudioSize { return t.leadout }

// TrackCount returns the number of tracks described by this ToC.
func (t ToCData) TrackCount() int { return len(t.offsets) }

// Offset returns the frame offset of the given 1-based track number.
func (t ToCData) Offset(track int) AudioSize {
	return t.offsets[track-1]
}

// Offsets returns a copy of the track offsets in track order.
func (t ToCData) Offsets() []AudioSize {
	cp := make([]AudioSize, len(t.offsets))
	copy(cp, t.offsets)
	return cp
}

// Complete reports whether this ToC has a positive leadout and at least one
// track, per spec: "A ToC is complete iff leadout > 0 and track count > 0."
func (t ToCData) Complete() bool {
	return !t.leadout.Zero() && len(t.offsets) > 0
}

// Validate checks all CDDA invariants on the ToC: track count bounds,
// strictly ascending offsets with a minimum 4-second gap, and a leadout
// that clears the last track by the same minimum gap. It returns a
// descriptive *Error naming the violated rule.
func (t ToCData) Validate() error {
	n := len(t.offsets)
	if n == 0 {
		return newError(KindInvalidToC, "table of contents must have at least one track")
	}
	if n > MaxTrackCount {
		return newError(KindInvalidToC,
			"track count exceeds CDDA maximum of %d, got %d", MaxTrackCount, n)
	}

	for i, off := range t.offsets {
		if off.Frames() < 0 {
			return newError(KindInvalidToC, "track %d offset must not be negative", i+1)
		}
		if i > 0 {
			prev := t.offsets[i-1]
			delta := off.Frames() - prev.Frames()
			if delta <= 0 {
				return newError(KindInvalidToC,
					"track offsets must be strictly ascending; track %d (%d) does not exceed track %d (%d)",
					i+1, off.Frames(), i, prev.Frames())
			}
			if delta < minTrackLenFrames {
				return newError(KindInvalidToC,
					"track %d is shorter than the minimum %d frames; delta to track %d is %d",
					i, minTrackLenFrames, i+1, delta)
			}
		}
	}

	last := t.offsets[n-1]
	if t.leadout.Frames()-last.Frames() < minTrackLenFrames {
		return newError(KindInvalidToC,
			"leadout (%d) must exceed the last track offset (%d) by at least %d frames",
			t.leadout.Frames(), last.Frames(), minTrackLenFrames)
	}
	if t.leadout.Frames() > MaxBlockAddress {
		return newError(KindInvalidToC,
			"leadout exceeds the CDDA maximum block address %d, got %d", MaxBlockAddress, t.leadout.Frames())
	}

	return nil
}

// ToC adds an optional per-track filename vector to ToCData, matching the
// original's notion of a ToC that may or may not already know which file
// backs each track (single-file rip vs. one file per track).
type ToC struct {
	ToCData
	// Filenames holds one entry per track when filenames are known. It is
	// either empty (unknown) or exactly len(offsets) long.
	Filenames []string
}

// NewToC builds a ToC from a ToCData and an optional filename vector.
func NewToC(data ToCData, filenames []string) ToC {
	var fn []string
	if len(filenames) > 0 {
		fn = make([]string, len(filenames))
		copy(fn, filenames)
	}
	return ToC{ToCData: data, Filenames: fn}
}

// IsSingleFile reports whether every track is known to originate from the
// same file. This is true both when no filenames were supplied (nothing to
// distinguish tracks by) and when every supplied filename is identical.
func (t ToC) IsSingleFile() bool {
	if len(t.Filenames) == 0 {
		return true
	}
	first := t.Filenames[0]
	for _, f := range t.Filenames[1:] {
		if f != first {
			return false
		}
	}
	return true
}
