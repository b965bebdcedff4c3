// Command arcalc computes per-track ARCSv1/v2 checksums for an album given
// its track offsets (in CDDA frames) and a single WAV file holding the
// whole album's audio.
//
// NOTE: this is example code, not a production ripping tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/arcstk/arcstk/calc"
	"github.com/arcstk/arcstk/checksum"
	"github.com/arcstk/arcstk/logging"
	"github.com/arcstk/arcstk/meta"
	"github.com/arcstk/arcstk/sample"
)

var flagOffsets string

// samplesPerBlock is the number of 32-bit PCM stereo samples decoded per
// Calculation.Update call.
const samplesPerBlock = 1 << 20

func init() {
	flag.StringVar(&flagOffsets, "offsets", "", "comma-separated track offsets in CDDA frames")
}

func main() {
	flag.Parse()
	logging.SetLevel(logging.LevelInfo)

	if flagOffsets == "" || flag.NArg() != 1 {
		fmt.Println("Usage: arcalc -offsets=0,17400,32932,... <audiofile.wav>")
		return
	}

	if err := run(flagOffsets, flag.Arg(0)); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(offsetsFlag, audioPath string) error {
	offsetFrames, err := parseOffsets(offsetsFlag)
	if err != nil {
		return err
	}

	offsets := make([]meta.AudioSize, len(offsetFrames))
	for i, fr := range offsetFrames {
		offsets[i], err = meta.NewAudioSize(fr, meta.Frames)
		if err != nil {
			return err
		}
	}

	for i, off := range offsets {
		fmt.Printf("Track %2d offset: %6d\n", i+1, off.Frames())
	}
	fmt.Printf("Track count: %d\n", len(offsets))

	// The leadout frame is derived from the WAV's total sample count, which
	// requires a first pass over the file (the album context needs the
	// complete ToC, leadout included, up front).
	totalSamples, err := countStereoSamples(audioPath)
	if err != nil {
		return err
	}
	leadoutFrames := totalSamples / meta.SamplesPerFrame
	if totalSamples%meta.SamplesPerFrame != 0 {
		leadoutFrames++
	}
	leadout, err := meta.NewAudioSize(leadoutFrames, meta.Frames)
	if err != nil {
		return err
	}
	fmt.Printf("Leadout: %d\n", leadout.Frames())

	toc := meta.NewToC(meta.ConstructToCData(leadout, offsets), nil)
	if err := toc.Validate(); err != nil {
		return err
	}
	ctx := calc.NewAlbumContext(toc)
	calculation, err := calc.NewCalculation(ctx, calc.Both)
	if err != nil {
		return err
	}

	f, err := os.Open(audioPath)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return fmt.Errorf("arcalc: %q is not a valid WAV file", audioPath)
	}
	if err := dec.FwdToPCM(); err != nil {
		return err
	}
	if int(dec.NumChans) != 2 {
		return fmt.Errorf("arcalc: expected stereo audio, got %d channels", dec.NumChans)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: int(dec.SampleRate)},
		Data:   make([]int, samplesPerBlock*2),
	}

	left := make([]int16, samplesPerBlock)
	right := make([]int16, samplesPerBlock)

	var sampleCount int64
	blockNum := 0
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		blockNum++
		nSamples := n / 2

		for i := 0; i < nSamples; i++ {
			left[i] = int16(buf.Data[2*i])
			right[i] = int16(buf.Data[2*i+1])
		}

		fmt.Printf("Read block %d (%d samples)\n", blockNum, nSamples)

		seq := sample.WrapPlanar(left[:nSamples], right[:nSamples], true)
		if err := calculation.Update(seq); err != nil {
			return err
		}
		sampleCount += int64(nSamples)
	}

	if calculation.Complete() {
		fmt.Println("Calculation complete")
	} else {
		fmt.Fprintln(os.Stderr, "Error, calculation incomplete")
	}

	printChecksums(calculation.Result())
	return nil
}

// countStereoSamples decodes path in full just to learn its total number
// of 32-bit stereo samples, needed before a multitrack context can be
// built. A real ripping tool would read this from the container's header
// instead of a full decode pass.
func countStereoSamples(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("arcalc: %q is not a valid WAV file", path)
	}
	if err := dec.FwdToPCM(); err != nil {
		return 0, err
	}
	nchannels := int(dec.NumChans)
	if nchannels == 0 {
		nchannels = 2
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: nchannels, SampleRate: int(dec.SampleRate)},
		Data:   make([]int, nchannels*samplesPerBlock),
	}

	var total int64
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		total += int64(n / nchannels)
	}
	return total, nil
}

func printChecksums(sums checksum.Checksums) {
	fmt.Println(" Track  ARCSv1    ARCSv2")
	fmt.Println("------------------------")
	for i, set := range sums {
		v1, _ := set.Get(checksum.ARCSv1)
		v2, _ := set.Get(checksum.ARCSv2)
		fmt.Printf("%6d  %s  %s\n", i+1, v1.String(), v2.String())
	}
}

func parseOffsets(s string) ([]int64, error) {
	fields := strings.Split(s, ",")
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("arcalc: invalid offset %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}
