// reader.go implements EntryReader, which orchestrates chunk refill and
// hands out one TrainingDataEntry at a time: the fixed 34-byte header
// entry, then num_plies derived entries produced by replaying the
// move-list decoder against a working Position.
//
// Grounded on original_source/reader/training_data_reader.rs for the
// has_next/next contract, but not its implementation: that reader slices
// its chunk buffer with `unsafe { std::mem::transmute }` to launder a
// borrow's lifetime into 'static so the decoder can outlive the slicing
// call. SPEC_FULL.md §9 calls this out explicitly as something to avoid.
// This reader instead keeps the decoder's (offset, length) view as plain
// indices into the chunk buffer it owns — see DESIGN.md.

package binpack

import (
	"encoding/binary"
	"fmt"
	"io"
)

const packedEntrySize = 32

// EntryReader streams TrainingDataEntry values out of a chunked binpack
// file. It owns the underlying chunk reader, the current chunk buffer,
// and any in-progress move-list decoder. The entries of one move-list
// chain (the base entry and every entry replayed from it) share a single
// *Position, which each later Next call mutates in place.
type EntryReader struct {
	chunks *ChunkReader

	buf    []byte
	offset int

	decoder    *MoveListDecoder
	decoderPos *Position
	basePly    uint16
	baseResult int16

	done bool
	err  error
}

// NewEntryReader constructs a reader over src. It returns ErrEndOfFile if
// the source contains no chunk at all.
func NewEntryReader(src io.Reader) (*EntryReader, error) {
	r := &EntryReader{chunks: NewChunkReader(src)}
	if err := r.refill(); err != nil {
		if err == io.EOF {
			return nil, ErrEndOfFile
		}
		return nil, err
	}
	if r.done && r.chunks.ReadBytes() == 0 {
		return nil, ErrEndOfFile
	}
	return r, nil
}

// HasNext reports whether another entry is available.
func (r *EntryReader) HasNext() bool {
	return !r.done
}

// Next returns the next entry. The caller must have observed HasNext() ==
// true. Any codec error is fatal: the reader transitions to a terminal
// end state and subsequent HasNext() returns false.
func (r *EntryReader) Next() (TrainingDataEntry, error) {
	if r.done {
		return TrainingDataEntry{}, fmt.Errorf("binpack: Next called with no entries remaining")
	}

	if r.decoder != nil {
		entry, err := r.decoder.Next(r.decoderPos, r.basePly, r.baseResult)
		if err != nil {
			r.fail(err)
			return TrainingDataEntry{}, err
		}
		if r.decoder.Done() {
			r.offset += r.decoder.NumReadBytes()
			r.decoder = nil
			r.decoderPos = nil
			if err := r.ensureAvailable(); err != nil {
				r.fail(err)
				return TrainingDataEntry{}, err
			}
		}
		return entry, nil
	}

	entry, numPlies, err := r.readFixedEntry()
	if err != nil {
		r.fail(err)
		return TrainingDataEntry{}, err
	}

	if numPlies > 0 {
		moveListBytes := r.buf[r.offset:]
		r.decoder = NewMoveListDecoder(moveListBytes, numPlies, entry.Score)
		r.decoderPos = entry.Pos
		r.basePly = entry.Ply
		r.baseResult = entry.Result
	} else {
		if err := r.ensureAvailable(); err != nil {
			r.fail(err)
			return TrainingDataEntry{}, err
		}
	}

	return entry, nil
}

// readFixedEntry unpacks the 34-byte fixed header (32-byte packed entry +
// 2-byte big-endian ply count) at the current offset.
func (r *EntryReader) readFixedEntry() (TrainingDataEntry, uint16, error) {
	if len(r.buf)-r.offset < packedEntrySize+2 {
		return TrainingDataEntry{}, 0, invalidFormat("truncated entry header", nil)
	}

	var pe PackedEntry
	copy(pe[:], r.buf[r.offset:r.offset+packedEntrySize])
	entry := pe.Unpack()
	r.offset += packedEntrySize

	numPlies := binary.BigEndian.Uint16(r.buf[r.offset : r.offset+2])
	r.offset += 2

	return entry, numPlies, nil
}

// ensureAvailable advances to the next chunk if the current one is
// exhausted, and sets r.done if the container has no more chunks.
func (r *EntryReader) ensureAvailable() error {
	if r.offset < len(r.buf) {
		return nil
	}
	return r.refill()
}

// refill loads the next chunk, or marks the reader done on clean EOF.
func (r *EntryReader) refill() error {
	if !r.chunks.HasNextChunk() {
		r.done = true
		return nil
	}
	buf, err := r.chunks.ReadNextChunk()
	if err == io.EOF {
		r.done = true
		return nil
	}
	if err != nil {
		return err
	}
	r.buf = buf
	r.offset = 0
	if len(r.buf) == 0 {
		return r.refill()
	}
	return nil
}

func (r *EntryReader) fail(err error) {
	r.err = err
	r.done = true
	r.decoder = nil
}

// Err returns the first error encountered, if any.
func (r *EntryReader) Err() error { return r.err }
