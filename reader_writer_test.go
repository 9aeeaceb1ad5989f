package binpack

import (
	"bytes"
	"io"
	"testing"
)

func TestEntryWriterReaderRoundTripNoMoveList(t *testing.T) {
	entries := []TrainingDataEntry{
		{Pos: mustParseFEN(t, StartingFEN), Move: Move{From: SA1, To: SA1, Type: MoveNormal}, Score: 0, Ply: 0, Result: 0},
		{Pos: mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"), Move: Move{From: SE1, To: SG1, Type: MoveCastle}, Score: 12, Ply: 5, Result: 1},
	}

	var buf bytes.Buffer
	w := NewEntryWriter(&buf)
	for _, e := range entries {
		if err := w.WriteEntry(e); err != nil {
			t.Fatalf("WriteEntry: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewEntryReader(&buf)
	if err != nil {
		t.Fatalf("NewEntryReader: %v", err)
	}
	for i, want := range entries {
		if !r.HasNext() {
			t.Fatalf("entry %d: HasNext() = false, want true", i)
		}
		got, err := r.Next()
		if err != nil {
			t.Fatalf("entry %d: Next: %v", i, err)
		}
		assertSamePosition(t, got.Pos, want.Pos)
		if got.Move != want.Move || got.Score != want.Score || got.Ply != want.Ply || got.Result != want.Result {
			t.Fatalf("entry %d: got %+v, want %+v", i, got, want)
		}
	}
	if r.HasNext() {
		t.Fatalf("expected HasNext() == false once all entries are consumed")
	}
}

func TestEntryWriterReaderRoundTripWithMoveList(t *testing.T) {
	basePos := mustParseFEN(t, StartingFEN)
	baseEntry := TrainingDataEntry{Pos: basePos, Move: Move{From: SA1, To: SA1, Type: MoveNormal}, Score: 25, Ply: 0, Result: 0}

	plies := []struct {
		move  Move
		score int16
	}{
		{Move{From: SE2, To: SE4, Type: MoveNormal}, 30},
		{Move{From: SE7, To: SE5, Type: MoveNormal}, -10},
		{Move{From: SG1, To: SF3, Type: MoveNormal}, 35},
	}

	writePos := mustParseFEN(t, StartingFEN)
	mw := NewMoveListWriter(baseEntry.Score)
	for _, pl := range plies {
		mw.AddMove(writePos, pl.move, pl.score)
		writePos.MakeMove(pl.move)
	}
	moveList, numPlies := mw.Bytes()

	var buf bytes.Buffer
	w := NewEntryWriter(&buf)
	if err := w.WriteEntryWithMoveList(baseEntry, moveList, numPlies); err != nil {
		t.Fatalf("WriteEntryWithMoveList: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewEntryReader(&buf)
	if err != nil {
		t.Fatalf("NewEntryReader: %v", err)
	}

	if !r.HasNext() {
		t.Fatalf("expected a base entry")
	}
	gotBase, err := r.Next()
	if err != nil {
		t.Fatalf("base entry Next: %v", err)
	}
	assertSamePosition(t, gotBase.Pos, basePos)
	if gotBase.Score != baseEntry.Score {
		t.Fatalf("base entry Score = %d, want %d", gotBase.Score, baseEntry.Score)
	}

	for i, pl := range plies {
		if !r.HasNext() {
			t.Fatalf("ply %d: HasNext() = false, want true", i)
		}
		got, err := r.Next()
		if err != nil {
			t.Fatalf("ply %d: Next: %v", i, err)
		}
		if got.Move != pl.move {
			t.Errorf("ply %d: Move = %+v, want %+v", i, got.Move, pl.move)
		}
		if got.Score != pl.score {
			t.Errorf("ply %d: Score = %d, want %d", i, got.Score, pl.score)
		}
	}
	if r.HasNext() {
		t.Fatalf("expected HasNext() == false once all plies are consumed")
	}
	assertSamePosition(t, gotBase.Pos, writePos)
}

func TestEntryWriterFlushesAcrossMultipleChunks(t *testing.T) {
	var buf bytes.Buffer
	w := NewEntryWriter(&buf, WithChunkTargetSize(64))

	const n = 20
	entries := make([]TrainingDataEntry, n)
	for i := range n {
		entries[i] = TrainingDataEntry{
			Pos:    mustParseFEN(t, StartingFEN),
			Move:   Move{From: SA1, To: SA1, Type: MoveNormal},
			Score:  int16(i),
			Ply:    uint16(i),
			Result: 0,
		}
		if err := w.WriteEntry(entries[i]); err != nil {
			t.Fatalf("WriteEntry %d: %v", i, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	cr := NewChunkReader(bytes.NewReader(buf.Bytes()))
	numChunks := 0
	for cr.HasNextChunk() {
		if _, err := cr.ReadNextChunk(); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("ReadNextChunk: %v", err)
		}
		numChunks++
	}
	if numChunks < 2 {
		t.Fatalf("expected entries to span multiple chunks with a 64-byte target, got %d chunk(s)", numChunks)
	}

	r, err := NewEntryReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("NewEntryReader: %v", err)
	}
	for i, want := range entries {
		if !r.HasNext() {
			t.Fatalf("entry %d: HasNext() = false, want true", i)
		}
		got, err := r.Next()
		if err != nil {
			t.Fatalf("entry %d: Next: %v", i, err)
		}
		if got.Score != want.Score || got.Ply != want.Ply {
			t.Fatalf("entry %d: got Score=%d Ply=%d, want Score=%d Ply=%d", i, got.Score, got.Ply, want.Score, want.Ply)
		}
	}
	if r.HasNext() {
		t.Fatalf("expected all entries consumed")
	}
}

func TestNewEntryReaderRejectsEmptySource(t *testing.T) {
	_, err := NewEntryReader(bytes.NewReader(nil))
	if err != ErrEndOfFile {
		t.Fatalf("expected ErrEndOfFile, got %v", err)
	}
}
