// Command arparse parses a binary AccurateRip query response, from a file
// or stdin, and prints its contents as plain text.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mewkiz/pkg/readerutil"

	"github.com/arcstk/arcstk/logging"
	"github.com/arcstk/arcstk/parse"
)

func main() {
	logging.SetLevel(logging.LevelInfo)

	var r io.Reader
	switch len(os.Args) {
	case 1:
		r = os.Stdin
	case 2:
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatalf("%+v", err)
		}
		defer f.Close()
		r = f
	default:
		fmt.Println("Usage: arparse <response_file_name>")
		return
	}

	// Peek the first byte so an empty response can be reported plainly
	// instead of as a parse error.
	first, err := readerutil.ReadByte(r)
	if err != nil {
		if err == io.EOF {
			fmt.Println("(empty response)")
			return
		}
		log.Fatalf("%+v", err)
	}

	response, err := parse.ParseResponse(io.MultiReader(bytes.NewReader([]byte{first}), r))
	if err != nil {
		log.Fatalf("%+v", err)
	}

	fmt.Println("  ARCS   Conf. Frame450")
	fmt.Println("-----------------------")
	for i, block := range response {
		fmt.Printf("Block: %d/%d\n", i+1, len(response))
		fmt.Printf("ID: %s\n", block.ID.String())
		for _, t := range block.Triplets {
			fmt.Printf("%08X  %2d   %08X\n", t.Arcs, t.Confidence, t.Frame450Arcs)
		}
	}
}
