package sample

import "unsafe"

// planar16 wraps two channel-separate buffers of 16-bit samples.
type planar16 struct {
	left, right []uint16
	leftFirst   bool
}

// WrapPlanar wraps two separate signed 16-bit channel buffers without
// copying. leftFirst selects whether the first argument is the left
// channel (true) or the right channel (false); either way the packed
// output always carries left in the high bits.
func WrapPlanar(a, b []int16, leftFirst bool) Sequence {
	return planar16{left: asU16(a), right: asU16(b), leftFirst: leftFirst}
}

// WrapPlanarU16 wraps two separate unsigned 16-bit channel buffers without
// copying.
func WrapPlanarU16(a, b []uint16, leftFirst bool) Sequence {
	return planar16{left: a, right: b, leftFirst: leftFirst}
}

func asU16(buf []int16) []uint16 {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&buf[0])), len(buf))
}

func (s planar16) Len() int {
	if len(s.left) < len(s.right) {
		return len(s.left)
	}
	return len(s.right)
}

func (s planar16) At(i int) uint32 {
	return pack(s.left[i], s.right[i], s.leftFirst)
}

func (s planar16) Iter() Iterator { return newIterator(s) }
