package calc

import "github.com/arcstk/arcstk/meta"

// contextKind tags the two CalcContext variants: a flat struct with a kind
// field, rather than a Singletrack/Multitrack class hierarchy.
type contextKind int

const (
	singletrack contextKind = iota
	multitrack
)

// CalcContext carries everything a Calculation needs to know about the
// input besides the samples themselves: how the buffer is laid out into
// tracks, and whether the album's skip rules apply at either end.
type CalcContext struct {
	kind      contextKind
	toc       meta.ToC
	size      meta.AudioSize
	skipFront bool
	skipBack  bool
	filename  string
}

// NewSinglefileContext builds a context for a buffer holding exactly one
// track. skipFront/skipBack say whether that track is, respectively, the
// first and/or last track of the album it belongs to (and therefore
// whether the pre-gap/post-gap skip rules apply to it).
func NewSinglefileContext(size meta.AudioSize, skipFront, skipBack bool) CalcContext {
	return CalcContext{kind: singletrack, size: size, skipFront: skipFront, skipBack: skipBack}
}

// NewAlbumContext builds a context spanning an entire album in one buffer:
// multitrack, with both the front skip (on track 1) and back skip (on the
// last track) active, since the context owns both ends of the disc.
func NewAlbumContext(toc meta.ToC) CalcContext {
	return CalcContext{
		kind:      multitrack,
		toc:       toc,
		size:      meta.MustAudioSize(toc.Leadout().Frames(), meta.Frames),
		skipFront: true,
		skipBack:  true,
	}
}

// NewMultitrackContextNoSkip builds a multitrack context for a buffer whose
// gaps have already been excised by the ripping tool, so neither skip rule
// applies. This supplements the distilled spec: a rip tool that already
// trimmed the pre-gap/post-gap should not have it trimmed again.
func NewMultitrackContextNoSkip(toc meta.ToC) CalcContext {
	return CalcContext{
		kind: multitrack,
		toc:  toc,
		size: meta.MustAudioSize(toc.Leadout().Frames(), meta.Frames),
	}
}

// SetFilename attaches an informational filename to the context, used only
// for diagnostics (e.g. a CLI reporting which input produced a mismatch).
func (c *CalcContext) SetFilename(name string) { c.filename = name }

// Filename returns the context's informational filename, if any.
func (c CalcContext) Filename() string { return c.filename }

// TrackCount returns the number of tracks this context's results will
// have: the ToC's track count for multitrack, or 1 for singletrack.
func (c CalcContext) TrackCount() int {
	if c.kind == singletrack {
		return 1
	}
	return c.toc.TrackCount()
}

// TotalSamples returns the total number of samples this context expects,
// or -1 if that is not yet known (possible only for singletrack contexts
// before UpdateSize is called).
func (c CalcContext) TotalSamples() int64 {
	if c.size.Zero() && c.kind == singletrack {
		return -1
	}
	return c.size.Samples()
}

// UpdateSize updates the context's expected total size. Valid at any
// point before the owning Calculation completes.
func (c *CalcContext) UpdateSize(size meta.AudioSize) { c.size = size }

// partitioner builds the Partitioner implied by this context's current
// state. Singletrack contexts require a known size.
func (c CalcContext) partitioner() (*Partitioner, error) {
	switch c.kind {
	case multitrack:
		return NewMultitrackPartitioner(c.toc.ToCData, c.skipFront, c.skipBack), nil
	default:
		total := c.TotalSamples()
		if total < 0 {
			return nil, newError("audio size must be set before processing a singletrack context")
		}
		return NewSingletrackPartitioner(total, c.skipFront, c.skipBack), nil
	}
}
