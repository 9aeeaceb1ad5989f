// writer.go implements EntryWriter, the symmetric counterpart to
// EntryReader: it accumulates entries into a pending chunk and flushes a
// chunk once it reaches a target size, writing the chunk header for real
// (see chunkfile.go's note on the original's commented-out writer).
//
// This package's own construction — original_source ships no writer
// orchestration layer, only the move-list writer (grounded separately in
// movelistcodec.go) and the (commented-out) chunk header writer. Built to
// the mirror image of EntryReader's contract in SPEC_FULL.md §4.10/§6.

package binpack

import (
	"encoding/binary"
	"io"
)

// DefaultChunkTargetSize is the suggested chunk size this package flushes
// at, matching the "typical 8 KiB" figure SPEC_FULL.md's resource-model
// section names — callers may override via WithChunkTargetSize.
const DefaultChunkTargetSize = 8 * 1024

// EntryWriter accumulates TrainingDataEntry values and flushes them as
// chunks to an underlying byte sink.
type EntryWriter struct {
	chunks     *ChunkWriter
	targetSize int
	pending    []byte
}

// EntryWriterOption configures an EntryWriter at construction.
type EntryWriterOption func(*EntryWriter)

// WithChunkTargetSize overrides DefaultChunkTargetSize.
func WithChunkTargetSize(n int) EntryWriterOption {
	return func(w *EntryWriter) { w.targetSize = n }
}

// NewEntryWriter constructs a writer over dst.
func NewEntryWriter(dst io.Writer, opts ...EntryWriterOption) *EntryWriter {
	w := &EntryWriter{chunks: NewChunkWriter(dst), targetSize: DefaultChunkTargetSize}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteEntry appends a base entry (no move-list tail: it is the caller's
// responsibility to write a whole game as one WriteEntry, possibly
// followed by WriteEntryWithMoveList for games carrying a replay tail).
// Exposed separately from WriteEntryWithMoveList because many training
// sets consist entirely of single-ply snapshots.
func (w *EntryWriter) WriteEntry(e TrainingDataEntry) error {
	return w.writeEntryBytes(e, nil, 0)
}

// WriteEntryWithMoveList appends a base entry plus its encoded move-list
// tail of numPlies plies.
func (w *EntryWriter) WriteEntryWithMoveList(e TrainingDataEntry, moveList []byte, numPlies uint16) error {
	return w.writeEntryBytes(e, moveList, numPlies)
}

func (w *EntryWriter) writeEntryBytes(e TrainingDataEntry, moveList []byte, numPlies uint16) error {
	pe := Pack(e)

	var plyCount [2]byte
	binary.BigEndian.PutUint16(plyCount[:], numPlies)

	w.pending = append(w.pending, pe[:]...)
	w.pending = append(w.pending, plyCount[:]...)
	w.pending = append(w.pending, moveList...)

	if len(w.pending) >= w.targetSize {
		return w.flushChunk()
	}
	return nil
}

// flushChunk writes the pending bytes as one chunk and clears them.
func (w *EntryWriter) flushChunk() error {
	if len(w.pending) == 0 {
		return nil
	}
	if err := w.chunks.WriteChunk(w.pending); err != nil {
		return err
	}
	w.pending = w.pending[:0]
	return nil
}

// Close flushes any partial chunk. The writer must not be used
// afterward.
func (w *EntryWriter) Close() error {
	return w.flushChunk()
}
