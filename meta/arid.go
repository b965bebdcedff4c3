package meta

import "fmt"

// ARId is the AccurateRip disc identifier: a 4-tuple of track count and
// three hash values derived from a disc's table of contents.
//
// ARId instances are small value types, copied freely per the lifecycle
// rules of the data model.
type ARId struct {
	TrackCount int
	DiscID1    uint32
	DiscID2    uint32
	CDDBID     uint32
}

// Empty reports whether this is the empty ARId (all fields zero), the
// value returned for a disc whose identifier could not be computed.
func (id ARId) Empty() bool {
	return id.TrackCount == 0 && id.DiscID1 == 0 && id.DiscID2 == 0 && id.CDDBID == 0
}

// String renders the ARId as "NNN-xxxxxxxx-yyyyyyyy-zzzzzzzz".
func (id ARId) String() string {
	return fmt.Sprintf("%03d-%08x-%08x-%08x", id.TrackCount, id.DiscID1, id.DiscID2, id.CDDBID)
}

// urlPrefixDigits returns the three hex digits used to shard the
// AccurateRip URL namespace: the last three hex characters of DiscID1,
// reversed (a, b, c = chars[7], chars[6], chars[5]).
func (id ARId) urlPrefixDigits() (a, b, c byte) {
	hex := fmt.Sprintf("%08x", id.DiscID1)
	return hex[7], hex[6], hex[5]
}

// Filename returns the canonical AccurateRip response filename for this
// ARId: "dBAR-NNN-xxxxxxxx-yyyyyyyy-zzzzzzzz.bin".
func (id ARId) Filename() string {
	return fmt.Sprintf("dBAR-%03d-%08x-%08x-%08x.bin", id.TrackCount, id.DiscID1, id.DiscID2, id.CDDBID)
}

// URL returns the canonical AccurateRip URL this ARId addresses:
//
//	http://www.accuraterip.com/accuraterip/<a>/<b>/<c>/dBAR-NNN-x-y-z.bin
func (id ARId) URL() string {
	a, b, c := id.urlPrefixDigits()
	return fmt.Sprintf("http://www.accuraterip.com/accuraterip/%c/%c/%c/%s", a, b, c, id.Filename())
}
