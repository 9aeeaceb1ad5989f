package binpack

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestChunkWriterReaderRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("first chunk"),
		[]byte(""),
		bytes.Repeat([]byte{0xAB}, 1000),
	}

	var buf bytes.Buffer
	w := NewChunkWriter(&buf)
	for _, p := range payloads {
		if err := w.WriteChunk(p); err != nil {
			t.Fatalf("WriteChunk: %v", err)
		}
	}

	r := NewChunkReader(&buf)
	for i, want := range payloads {
		if !r.HasNextChunk() {
			t.Fatalf("chunk %d: HasNextChunk() = false, want true", i)
		}
		got, err := r.ReadNextChunk()
		if err != nil {
			t.Fatalf("chunk %d: ReadNextChunk: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("chunk %d: got %q, want %q", i, got, want)
		}
	}

	if _, err := r.ReadNextChunk(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF at end of stream, got %v", err)
	}
	if r.HasNextChunk() {
		t.Fatalf("HasNextChunk() should be false once EOF is observed")
	}
}

func TestChunkReaderRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer([]byte("XXXX\x00\x00\x00\x00"))
	r := NewChunkReader(buf)
	if _, err := r.ReadNextChunk(); !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestChunkReaderRejectsOversizedChunk(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(chunkMagic)
	buf.Write([]byte{0x01, 0x00, 0x00, 0x10}) // 0x10000001 > 100 MiB
	r := NewChunkReader(&buf)
	if _, err := r.ReadNextChunk(); !errors.Is(err, ErrChunkTooLarge) {
		t.Fatalf("expected ErrChunkTooLarge, got %v", err)
	}
}

func TestChunkReaderRejectsTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(chunkMagic)
	buf.Write([]byte{0x0A, 0x00, 0x00, 0x00}) // declares 10 bytes
	buf.Write([]byte{0x01, 0x02})             // only 2 present
	r := NewChunkReader(&buf)
	if _, err := r.ReadNextChunk(); err == nil {
		t.Fatalf("expected an error for a truncated payload")
	}
}

func TestChunkWriterRejectsOversizedPayload(t *testing.T) {
	var buf bytes.Buffer
	w := NewChunkWriter(&buf)
	err := w.WriteChunk(make([]byte, MaxChunkSize+1))
	if !errors.Is(err, ErrChunkTooLarge) {
		t.Fatalf("expected ErrChunkTooLarge, got %v", err)
	}
}
