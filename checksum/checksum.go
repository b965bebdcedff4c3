// Package checksum defines the AccurateRip checksum value types: a single
// 32-bit Checksum, a per-track ChecksumSet keyed by algorithm version, and
// Checksums, the ordered per-track result of a Calculation.
package checksum

import "fmt"

// Type identifies which AccurateRip checksum algorithm a value was computed
// with.
type Type int

// Checksum algorithm versions.
const (
	ARCSv1 Type = iota
	ARCSv2
)

// Types lists all predefined checksum types in their canonical order.
var Types = [...]Type{ARCSv1, ARCSv2}

func (t Type) String() string {
	switch t {
	case ARCSv1:
		return "ARCSv1"
	case ARCSv2:
		return "ARCSv2"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Checksum is a 32-bit AccurateRip checksum value. The zero value is
// empty: a Checksum carries no computed value.
type Checksum uint32

// Empty reports whether this checksum carries no value. Per the data
// model, the value 0 is treated as empty.
func (c Checksum) Empty() bool { return c == 0 }

// String renders the checksum as 8-digit uppercase hex, matching the
// original implementation's stream-operator layout.
func (c Checksum) String() string {
	return fmt.Sprintf("%08X", uint32(c))
}
