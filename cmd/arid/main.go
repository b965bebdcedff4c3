// Command arid computes the AccurateRip disc identifier and query URL for
// an album, given its track offsets (in CDDA frames) and a WAV file to
// derive the leadout frame from.
//
// NOTE: this is example code, not a production ripping tool. A real tool
// would source offsets from a parsed cue sheet rather than a flag.
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

	"github.com/arcstk/arcstk/identifier"
	"github.com/arcstk/arcstk/logging"
	"github.com/arcstk/arcstk/meta"
)

var flagOffsets string

func init() {
	flag.StringVar(&flagOffsets, "offsets", "", "comma-separated track offsets in CDDA frames")
}

func main() {
	flag.Parse()
	logging.SetLevel(logging.LevelInfo)

	if flagOffsets == "" || flag.NArg() != 1 {
		fmt.Println("Usage: arid -offsets=0,17400,32932,... <audiofile.wav>")
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

	leadoutFrames, err := leadoutFromWAV(audioPath)
	if err != nil {
		return err
	}

	offsets := make([]meta.AudioSize, len(offsetFrames))
	for i, f := range offsetFrames {
		offsets[i], err = meta.NewAudioSize(f, meta.Frames)
		if err != nil {
			return err
		}
	}
	leadout, err := meta.NewAudioSize(leadoutFrames, meta.Frames)
	if err != nil {
		return err
	}

	for i, off := range offsets {
		fmt.Printf("Track %2d offset: %6d\n", i+1, off.Frames())
	}
	fmt.Printf("Track count: %d\n", len(offsets))
	fmt.Printf("Leadout: %d\n", leadout.Frames())

	id, err := identifier.MakeARId(offsets, leadout)
	if err != nil {
		return err
	}

	fmt.Printf("ID: %s\n", id.String())
	fmt.Printf("Filename: %s\n", id.Filename())
	fmt.Printf("Request-URL: %s\n", id.URL())
	return nil
}

func parseOffsets(s string) ([]int64, error) {
	fields := strings.Split(s, ",")
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("arid: invalid offset %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

// leadoutFromWAV opens a WAV file and returns the leadout frame address
// implied by its sample count, i.e. the CDDA frame one past the last frame
// of audio.
func leadoutFromWAV(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("arid: %q is not a valid WAV file", path)
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
		Data:   make([]int, nchannels*4096),
	}

	var totalValues int64
	for !dec.EOF() {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		totalValues += int64(n)
	}

	samplesPerChannel := totalValues / int64(nchannels)
	frames := samplesPerChannel / meta.SamplesPerFrame
	if samplesPerChannel%meta.SamplesPerFrame != 0 {
		frames++
	}
	return frames, nil
}
