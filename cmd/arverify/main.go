// Command arverify matches locally computed AccurateRip checksums against
// the reference checksums in a parsed AccurateRip response.
//
// Usage: arverify --id=<ARId> --arcs2=0xA,0xB,0xC,... <response.bin>
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/arcstk/arcstk/checksum"
	"github.com/arcstk/arcstk/logging"
	"github.com/arcstk/arcstk/match"
	"github.com/arcstk/arcstk/meta"
	"github.com/arcstk/arcstk/parse"
)

func main() {
	logging.SetLevel(logging.LevelInfo)

	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Println("Usage: arverify --id=<ARId> --arcs2=0xA,0xB,0xC,... <response.bin>")
		return
	}

	id, err := parseARId(strings.TrimPrefix(os.Args[1], "--id="))
	if err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Printf("Album ID: %s\n", id.String())

	arg2 := os.Args[2]
	var typ checksum.Type
	var list string
	switch {
	case strings.HasPrefix(arg2, "--arcs1="):
		typ, list = checksum.ARCSv1, strings.TrimPrefix(arg2, "--arcs1=")
	case strings.HasPrefix(arg2, "--arcs2="):
		typ, list = checksum.ARCSv2, strings.TrimPrefix(arg2, "--arcs2=")
	default:
		log.Fatalf("arverify: expected --arcs1=... or --arcs2=..., got %q", arg2)
	}

	local, err := parseLocalChecksums(list, typ)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	responsePath := ""
	if len(os.Args) == 4 {
		responsePath = os.Args[3]
	}
	response, err := readResponse(responsePath)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	matcher, err := match.NewAlbumMatcher(local, id, response)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	if matcher.Matches() {
		block, _ := matcher.BestMatch()
		fmt.Printf("MATCH: block %d, difference %d, v2=%v\n", block, matcher.BestDifference(), matcher.MatchesV2())
	} else {
		block, _ := matcher.BestMatch()
		fmt.Printf("NO EXACT MATCH: closest block %d, difference %d, v2=%v\n", block, matcher.BestDifference(), matcher.MatchesV2())
	}
}

// parseARId parses the "NNN-XXXXXXXX-XXXXXXXX-XXXXXXXX" textual form
// produced by ARId.String().
func parseARId(s string) (meta.ARId, error) {
	fields := strings.Split(s, "-")
	if len(fields) != 4 {
		return meta.ARId{}, fmt.Errorf("arverify: malformed ARId %q", s)
	}
	trackCount, err := strconv.Atoi(fields[0])
	if err != nil {
		return meta.ARId{}, fmt.Errorf("arverify: malformed track count in %q: %w", s, err)
	}
	id1, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return meta.ARId{}, fmt.Errorf("arverify: malformed disc id 1 in %q: %w", s, err)
	}
	id2, err := strconv.ParseUint(fields[2], 16, 32)
	if err != nil {
		return meta.ARId{}, fmt.Errorf("arverify: malformed disc id 2 in %q: %w", s, err)
	}
	cddbID, err := strconv.ParseUint(fields[3], 16, 32)
	if err != nil {
		return meta.ARId{}, fmt.Errorf("arverify: malformed cddb id in %q: %w", s, err)
	}
	return meta.ARId{TrackCount: trackCount, DiscID1: uint32(id1), DiscID2: uint32(id2), CDDBID: uint32(cddbID)}, nil
}

// parseLocalChecksums parses a comma-separated list of hexadecimal ARCS
// values, one per track in track order, all declared under typ.
func parseLocalChecksums(list string, typ checksum.Type) (checksum.Checksums, error) {
	fields := strings.Split(list, ",")
	out := checksum.NewChecksums(len(fields))
	fmt.Println("My checksums to match:")
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(f), "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("arverify: invalid checksum %q: %w", f, err)
		}
		fmt.Printf("Track %2d: %08X\n", i+1, v)
		out[i].Set(typ, checksum.Checksum(v))
	}
	return out, nil
}

func readResponse(path string) (parse.ARResponse, error) {
	if path == "" {
		return parse.ParseResponse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse.ParseResponse(f)
}
