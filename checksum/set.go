package checksum

import (
	"fmt"

	"github.com/arcstk/arcstk/meta"
)

// ChecksumSet is the calculation result for a single track: at most one
// Checksum per Type, plus the track's length.
type ChecksumSet struct {
	values map[Type]Checksum
	length meta.AudioSize
}

// NewChecksumSet constructs an empty ChecksumSet with unknown (zero)
// length.
func NewChecksumSet() ChecksumSet {
	return ChecksumSet{values: make(map[Type]Checksum)}
}

// NewChecksumSetWithLength constructs an empty ChecksumSet for a track of
// the given length in frames.
func NewChecksumSetWithLength(length meta.AudioSize) ChecksumSet {
	return ChecksumSet{values: make(map[Type]Checksum), length: length}
}

// Set records the checksum value for the given type, overwriting any prior
// value for that type.
func (s *ChecksumSet) Set(t Type, c Checksum) {
	if s.values == nil {
		s.values = make(map[Type]Checksum)
	}
	s.values[t] = c
}

// Get returns the checksum stored for type t and whether it is present and
// non-empty. A type with no stored value, or a stored value of 0, both
// report ok == false, per the data model's empty-checksum semantics.
func (s ChecksumSet) Get(t Type) (c Checksum, ok bool) {
	c = s.values[t]
	return c, !c.Empty()
}

// Contains reports whether a non-empty checksum was stored for type t.
func (s ChecksumSet) Contains(t Type) bool {
	_, ok := s.Get(t)
	return ok
}

// Length returns the track length in frames.
func (s ChecksumSet) Length() meta.AudioSize { return s.length }

// SetLength overrides the track length.
func (s *ChecksumSet) SetLength(length meta.AudioSize) { s.length = length }

// Merge combines this set with rhs, returning a new set containing the
// union of both sets' checksums. It fails if both sets carry non-zero
// lengths that differ, since that indicates the two sets describe
// different tracks.
func (s ChecksumSet) Merge(rhs ChecksumSet) (ChecksumSet, error) {
	length := s.length
	if length.Zero() {
		length = rhs.length
	} else if !rhs.length.Zero() && !length.Equal(rhs.length) {
		return ChecksumSet{}, newError(KindDomainError,
			"cannot merge sets with conflicting lengths %d and %d frames",
			s.length.Frames(), rhs.length.Frames())
	}

	out := NewChecksumSetWithLength(length)
	for t, c := range s.values {
		out.Set(t, c)
	}
	for t, c := range rhs.values {
		out.Set(t, c)
	}
	return out, nil
}

func (s ChecksumSet) String() string {
	return fmt.Sprintf("ChecksumSet{length=%d, values=%v}", s.length.Frames(), s.values)
}

// Checksums is the ordered, per-track result of a Calculation: one
// ChecksumSet per track, in track order.
type Checksums []ChecksumSet

// NewChecksums constructs a Checksums of the given track count, each entry
// an empty ChecksumSet.
func NewChecksums(trackCount int) Checksums {
	cs := make(Checksums, trackCount)
	for i := range cs {
		cs[i] = NewChecksumSet()
	}
	return cs
}
