package sample_test

import (
	"testing"

	"github.com/arcstk/arcstk/sample"
)

func TestWrapInterleavedPacksLeftHigh(t *testing.T) {
	buf := []int16{0x1111, 0x2222, int16(0x3333), int16(0x4444)}
	seq := sample.WrapInterleaved(buf, true)

	if got, want := seq.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := seq.At(0), uint32(0x11112222); got != want {
		t.Errorf("At(0) = %08X, want %08X", got, want)
	}
	if got, want := seq.At(1), uint32(0x33334444); got != want {
		t.Errorf("At(1) = %08X, want %08X", got, want)
	}
}

func TestWrapInterleavedRightFirstSwapsHalves(t *testing.T) {
	buf := []int16{0x1111, 0x2222} // right, left in storage order
	seq := sample.WrapInterleaved(buf, false)

	if got, want := seq.At(0), uint32(0x22221111); got != want {
		t.Errorf("At(0) = %08X, want %08X", got, want)
	}
}

func TestWrapInterleaved32PassesThrough(t *testing.T) {
	buf := []uint32{0xDEADBEEF, 0x12345678}
	seq := sample.WrapInterleaved32(buf)
	if got, want := seq.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i, want := range buf {
		if got := seq.At(i); got != want {
			t.Errorf("At(%d) = %08X, want %08X", i, got, want)
		}
	}
}

func TestWrapPlanarLeftFirst(t *testing.T) {
	left := []int16{0x1111, 0x3333}
	right := []int16{0x2222, 0x4444}
	seq := sample.WrapPlanar(left, right, true)

	if got, want := seq.At(0), uint32(0x11112222); got != want {
		t.Errorf("At(0) = %08X, want %08X", got, want)
	}
	if got, want := seq.At(1), uint32(0x33334444); got != want {
		t.Errorf("At(1) = %08X, want %08X", got, want)
	}
}

func TestWrapPlanarLenIsShorterChannel(t *testing.T) {
	left := []int16{1, 2, 3}
	right := []int16{10, 20}
	seq := sample.WrapPlanar(left, right, true)
	if got, want := seq.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestIteratorWalksWholeSequence(t *testing.T) {
	buf := []uint32{1, 2, 3}
	seq := sample.WrapInterleaved32(buf)
	it := seq.Iter()

	var got []uint32
	for it.HasNext() {
		got = append(got, it.Next())
	}
	if len(got) != len(buf) {
		t.Fatalf("iterated %d values, want %d", len(got), len(buf))
	}
	for i, v := range got {
		if v != buf[i] {
			t.Errorf("value %d = %d, want %d", i, v, buf[i])
		}
	}
	if it.HasNext() {
		t.Error("HasNext() after exhausting sequence = true, want false")
	}
	if got, want := it.Pos(), len(buf); got != want {
		t.Errorf("Pos() = %d, want %d", got, want)
	}
}

func TestWrapInterleavedEmpty(t *testing.T) {
	seq := sample.WrapInterleaved(nil, true)
	if got := seq.Len(); got != 0 {
		t.Errorf("Len() of empty sequence = %d, want 0", got)
	}
}
