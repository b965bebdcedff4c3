package calc

import (
	"github.com/arcstk/arcstk/checksum"
	"github.com/arcstk/arcstk/logging"
	"github.com/arcstk/arcstk/meta"
	"github.com/arcstk/arcstk/sample"
)

// driverState is the Calculation state machine's current state, per the
// state table: Init -> Ready -> Processing -> Complete.
type driverState int

const (
	stateInit driverState = iota
	stateReady
	stateProcessing
	stateComplete
)

// Calculation is the stateful, single-threaded driver that accumulates
// per-track ARCSv1/v2 checksums from a sequence of sample buffers. A
// Calculation is strictly sequential: Update calls must be issued in
// sample order, and there is no facility to reorder or retry.
type Calculation struct {
	ctx         CalcContext
	typ         Type
	partitioner *Partitioner

	st               driverState
	algo             algorithmState
	results          checksum.Checksums
	samplesProcessed int64
}

// NewCalculation creates a Calculation for the given context and algorithm
// type. A Calculation constructed with Both computes ARCSv1 and ARCSv2
// together; callers that want only one algorithm pass V1Only or V2Only.
func NewCalculation(ctx CalcContext, t Type) (*Calculation, error) {
	c := &Calculation{
		ctx:     ctx,
		typ:     t,
		results: checksum.NewChecksums(ctx.TrackCount()),
		st:      stateInit,
	}

	if ctx.kind == multitrack || ctx.TotalSamples() >= 0 {
		p, err := ctx.partitioner()
		if err != nil {
			return nil, err
		}
		c.partitioner = p
		c.algo = newAlgorithmState(startMultiplier(ctx.skipFront))
	}
	c.st = stateReady
	return c, nil
}

// startMultiplier returns the multiplier a track's algorithm state should
// begin with: NumSkipFront+1 if this track is the album's first track and
// front skip is active, otherwise 1. Every other track boundary resets the
// multiplier to 1, since each track's ARCS is computed independently with
// its own position-relative multiplier — see DESIGN.md for why this
// resolves the ambiguity in the distilled spec about multiplier
// continuity across tracks.
func startMultiplier(skipFrontActive bool) uint64 {
	if skipFrontActive {
		return NumSkipFront + 1
	}
	return 1
}

// UpdateAudioSize sets or updates the context's expected total size. Update
// returns an error while the size is unknown, so a singletrack context
// built without a size needs this call before its first Update call;
// samples cannot be fed ahead of the size.
func (c *Calculation) UpdateAudioSize(size meta.AudioSize) error {
	if c.st == stateComplete {
		return newError("cannot update audio size after calculation is complete")
	}
	c.ctx.UpdateSize(size)
	if c.partitioner == nil {
		p, err := c.ctx.partitioner()
		if err != nil {
			return err
		}
		c.partitioner = p
		c.algo = newAlgorithmState(startMultiplier(c.ctx.skipFront))
	}
	return nil
}

// Update processes the next chunk of samples. seq's samples are assumed to
// immediately follow every sample processed by prior calls to Update.
func (c *Calculation) Update(seq sample.Sequence) error {
	if c.st == stateComplete {
		return newError("calculation is already complete")
	}
	if c.partitioner == nil {
		return newError("audio size must be known before the first update")
	}

	n := seq.Len()
	parts := c.partitioner.Partitions(c.samplesProcessed, n)
	for _, p := range parts {
		c.algo.update(seq, p.BeginOffset, p.EndOffset, c.typ)
		if p.EndsTrack {
			c.save(p.Track)
		}
	}
	c.samplesProcessed += int64(n)

	total := c.ctx.TotalSamples()
	if total >= 0 && c.samplesProcessed >= total {
		c.st = stateComplete
		logging.Debugf("calc: calculation complete after %d samples", c.samplesProcessed)
	} else {
		c.st = stateProcessing
	}
	return nil
}

// save snapshots the current subtotals into the result slot for track and
// resets the algorithm state for the next track.
func (c *Calculation) save(track int) {
	set := c.algo.finalize(c.typ)
	set.SetLength(meta.MustAudioSize(c.partitioner.TrackLength(track)/meta.SamplesPerFrame, meta.Frames))
	c.results[track-1] = set
	c.algo = newAlgorithmState(1)
}

// Complete reports whether all expected samples have been processed.
func (c *Calculation) Complete() bool { return c.st == stateComplete }

// Result returns a snapshot of the checksums accumulated so far. Tracks
// whose last sample has not yet been processed remain empty ChecksumSets.
func (c *Calculation) Result() checksum.Checksums {
	out := make(checksum.Checksums, len(c.results))
	copy(out, c.results)
	return out
}

// SamplesProcessed returns the number of samples processed so far.
func (c *Calculation) SamplesProcessed() int64 { return c.samplesProcessed }
