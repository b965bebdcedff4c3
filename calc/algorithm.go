package calc

import (
	"github.com/arcstk/arcstk/checksum"
	"github.com/arcstk/arcstk/sample"
)

// Type selects which AccurateRip algorithm(s) a Calculation computes. A
// runtime tag dispatches the hot loop in update below: a small branch
// costs nothing a modern CPU's branch predictor can't absorb.
type Type int

// Supported algorithm combinations.
const (
	V1Only Type = iota
	V2Only
	Both
)

// algorithmState holds the running multiplier and subtotals of the
// ARCSv1/v2 recurrence for the track currently being accumulated.
type algorithmState struct {
	multiplier uint64
	subtotalV1 uint32
	subtotalV2 uint32
}

func newAlgorithmState(startMultiplier uint64) algorithmState {
	return algorithmState{multiplier: startMultiplier}
}

// update runs the ARCS recurrence over seq[begin:end], advancing the
// multiplier and accumulating into the subtotals as 32-bit wrapping adds.
func (s *algorithmState) update(seq sample.Sequence, begin, end int, t Type) {
	for i := begin; i < end; i++ {
		smp := uint64(seq.At(i))
		update := s.multiplier * smp

		switch t {
		case V1Only:
			s.subtotalV1 += uint32(update & 0xFFFFFFFF)
		case V2Only:
			s.subtotalV2 += uint32(update&0xFFFFFFFF) + uint32(update>>32)
		default: // Both
			s.subtotalV1 += uint32(update & 0xFFFFFFFF)
			s.subtotalV2 += uint32(update >> 32)
		}
		s.multiplier++
	}
}

// finalize produces the ChecksumSet for the track this state accumulated,
// per the finalization rule: ARCSv1 = subtotal_v1, ARCSv2 = subtotal_v1 +
// subtotal_v2 (dual-type path) or subtotal_v2 alone (v2-only path, which
// already folded both halves in).
func (s algorithmState) finalize(t Type) checksum.ChecksumSet {
	set := checksum.NewChecksumSet()
	switch t {
	case V1Only:
		set.Set(checksum.ARCSv1, checksum.Checksum(s.subtotalV1))
	case V2Only:
		set.Set(checksum.ARCSv2, checksum.Checksum(s.subtotalV2))
	default:
		set.Set(checksum.ARCSv1, checksum.Checksum(s.subtotalV1))
		set.Set(checksum.ARCSv2, checksum.Checksum(s.subtotalV1+s.subtotalV2))
	}
	return set
}
