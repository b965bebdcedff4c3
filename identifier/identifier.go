// Package identifier computes the AccurateRip disc identifier (ARId) from
// a table of contents, per the derivation rules in
// original_source/src/metadata.cpp.
package identifier

import (
	"github.com/pkg/errors"

	"github.com/arcstk/arcstk/meta"
)

// MakeARId validates the given offsets and leadout as a table of contents,
// then computes and returns the corresponding ARId.
//
//	disc_id_1 = (sum of offsets) + leadout                     (mod 2^32)
//	disc_id_2 = (sum of offset[i] * max(i,1)) + leadout*(n+1)  (mod 2^32)
//	cddb_id   = (digit_sum << 24) | (seconds << 8) | n         (mod 2^32)
func MakeARId(offsets []meta.AudioSize, leadout meta.AudioSize) (meta.ARId, error) {
	toc := meta.ConstructToCData(leadout, offsets)
	return FromToCData(toc)
}

// FromToCData validates toc and derives its ARId.
func FromToCData(toc meta.ToCData) (meta.ARId, error) {
	if err := toc.Validate(); err != nil {
		return meta.ARId{}, errors.Wrap(err, "identifier: invalid table of contents")
	}

	n := toc.TrackCount()
	leadout := uint32(toc.Leadout().Frames())

	var sum1 uint32
	var sum2 uint32
	var digitSum uint32
	for i := 1; i <= n; i++ {
		off := uint32(toc.Offset(i).Frames())
		sum1 += off
		mult := uint32(i)
		if mult < 1 {
			mult = 1
		}
		sum2 += off * mult
		digitSum += digitSumOf(off/75 + 2)
	}

	discID1 := sum1 + leadout
	discID2 := sum2 + leadout*uint32(n+1)

	firstOffset := uint32(toc.Offset(1).Frames())
	seconds := (leadout - firstOffset) / 75
	cddbID := (digitSum << 24) | (seconds << 8) | uint32(n)

	return meta.ARId{
		TrackCount: n,
		DiscID1:    discID1,
		DiscID2:    discID2,
		CDDBID:     cddbID,
	}, nil
}

// FromToC is a convenience wrapper deriving the ARId straight from a ToC,
// the entry point used by album-identification tools that already parsed a
// cuesheet into a ToC (cf. original_source/examples/albumid.cpp).
func FromToC(toc meta.ToC) (meta.ARId, error) {
	return FromToCData(toc.ToCData)
}

// MakeEmptyARId returns the all-zero ARId used when no identifier could be
// computed.
func MakeEmptyARId() meta.ARId {
	return meta.ARId{}
}

// digitSumOf returns the sum of the decimal digits of v.
func digitSumOf(v uint32) uint32 {
	var sum uint32
	for v > 0 {
		sum += v % 10
		v /= 10
	}
	return sum
}
