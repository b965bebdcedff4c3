package parse

import "github.com/arcstk/arcstk/meta"

// Handler receives push-style events as Parse reads a response. Parse
// calls StartInput once, then StartBlock/ID/Triplet*/EndBlock for each
// block in turn, then EndInput once — even when an error is about to be
// returned, so a Handler can see however much of the current block was
// read before the failure.
type Handler interface {
	StartInput()
	EndInput()
	StartBlock()
	EndBlock()
	// ID is called once per block, immediately after StartBlock.
	ID(trackCount uint8, id1, id2, cddbID uint32)
	// Triplet is called once per track in the block, in order. The
	// *Valid flags reflect whether each field was fully read before
	// EOF or an I/O error interrupted the block.
	Triplet(arcs uint32, confidence uint8, frame450Arcs uint32, arcsValid, confValid, f450Valid bool)
}

// ErrorHandler, if registered via ParseWithErrorHandler, is invoked with
// the StreamReadError before Parse returns it, so a caller can log the
// failure without having to unwrap Parse's return value.
type ErrorHandler interface {
	OnError(err *StreamReadError)
}

// CollectingHandler is the default Handler: it accumulates every block and
// triplet it sees into an ARResponse. The original parser implementation
// always drives such an in-memory handler even when the caller supplies no
// content handler of its own; CollectingHandler plays that role here and
// backs the ParseResponse convenience function.
type CollectingHandler struct {
	Response ARResponse

	block ARBlock
}

// NewCollectingHandler returns a ready-to-use CollectingHandler.
func NewCollectingHandler() *CollectingHandler {
	return &CollectingHandler{}
}

func (c *CollectingHandler) StartInput() {}
func (c *CollectingHandler) EndInput()   {}

func (c *CollectingHandler) StartBlock() {
	c.block = ARBlock{}
}

func (c *CollectingHandler) EndBlock() {
	c.Response = append(c.Response, c.block)
}

func (c *CollectingHandler) ID(trackCount uint8, id1, id2, cddbID uint32) {
	c.block.ID = meta.ARId{
		TrackCount: int(trackCount),
		DiscID1:    id1,
		DiscID2:    id2,
		CDDBID:     cddbID,
	}
}

func (c *CollectingHandler) Triplet(arcs uint32, confidence uint8, frame450Arcs uint32, arcsValid, confValid, f450Valid bool) {
	c.block.Triplets = append(c.block.Triplets, ARTriplet{
		Arcs:            arcs,
		Confidence:      confidence,
		Frame450Arcs:    frame450Arcs,
		ArcsValid:       arcsValid,
		ConfidenceValid: confValid,
		Frame450Valid:   f450Valid,
	})
}
