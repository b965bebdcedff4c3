package sample

import "unsafe"

// interleaved16 wraps a buffer of alternating 16-bit channel samples
// (signed or unsigned, the bit pattern is preserved either way).
type interleaved16 struct {
	buf       []uint16
	leftFirst bool
}

// WrapInterleaved wraps an interleaved buffer of signed 16-bit PCM samples
// without copying: the caller's backing array is reinterpreted in place,
// since signedness does not change the bit pattern. leftFirst selects
// whether buf[0] holds the left channel (true, the default layout) or the
// right channel (false).
func WrapInterleaved(buf []int16, leftFirst bool) Sequence {
	if len(buf) == 0 {
		return interleaved16{leftFirst: leftFirst}
	}
	u := unsafe.Slice((*uint16)(unsafe.Pointer(&buf[0])), len(buf))
	return interleaved16{buf: u, leftFirst: leftFirst}
}

// WrapInterleavedU16 wraps an interleaved buffer of unsigned 16-bit PCM
// samples without copying.
func WrapInterleavedU16(buf []uint16, leftFirst bool) Sequence {
	return interleaved16{buf: buf, leftFirst: leftFirst}
}

func (s interleaved16) Len() int { return len(s.buf) / 2 }

func (s interleaved16) At(i int) uint32 {
	return pack(s.buf[2*i], s.buf[2*i+1], s.leftFirst)
}

func (s interleaved16) Iter() Iterator { return newIterator(s) }

// interleaved32 wraps a buffer that is already packed into 32-bit stereo
// samples (L<<16|R), passed through unchanged per the conversion rule for
// 32-bit input.
type interleaved32 struct {
	buf []uint32
}

// WrapInterleaved32 wraps a buffer of already-packed 32-bit stereo samples
// without copying.
func WrapInterleaved32(buf []uint32) Sequence {
	return interleaved32{buf: buf}
}

func (s interleaved32) Len() int { return len(s.buf) }

func (s interleaved32) At(i int) uint32 { return s.buf[i] }

func (s interleaved32) Iter() Iterator { return newIterator(s) }
