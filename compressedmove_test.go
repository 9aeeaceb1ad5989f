package binpack

import "testing"

func TestCompressedMoveNullMove(t *testing.T) {
	var cm CompressedMove
	if cm != 0 {
		t.Fatalf("zero value should be 0x0000")
	}
	m := cm.Decompress()
	if !m.IsNull() {
		t.Fatalf("decompressing 0x0000 should yield the null move, got %+v", m)
	}
}

func TestCompressMoveRoundTrip(t *testing.T) {
	testcases := []Move{
		{From: SA1, To: SA1, Type: MoveNormal},
		{From: SE2, To: SE4, Type: MoveNormal},
		{From: SE1, To: SG1, Type: MoveCastle},
		{From: SE1, To: SC1, Type: MoveCastle},
		{From: SE5, To: SD6, Type: MoveEnPassant},
		{From: SA7, To: SA8, Type: MovePromotion, Promotion: Queen},
		{From: SA7, To: SA8, Type: MovePromotion, Promotion: Knight},
		{From: SH2, To: SH1, Type: MovePromotion, Promotion: Rook},
		{From: SH2, To: SH1, Type: MovePromotion, Promotion: Bishop},
	}

	for _, m := range testcases {
		cm := CompressMove(m)
		got := cm.Decompress()
		if got != m {
			t.Errorf("round trip: CompressMove(%+v).Decompress() = %+v", m, got)
		}
	}
}

func TestCompressedMoveBytesRoundTrip(t *testing.T) {
	m := Move{From: SE7, To: SE8, Type: MovePromotion, Promotion: Queen}
	cm := CompressMove(m)
	b := cm.Bytes()
	got := CompressedMoveFromBytes(b)
	if got != cm {
		t.Fatalf("Bytes/FromBytes round trip: got %#04x, want %#04x", uint16(got), uint16(cm))
	}
}

func TestPromotionColorInferredFromDestinationRank(t *testing.T) {
	white := Move{From: SA7, To: SA8, Type: MovePromotion, Promotion: Queen}
	if white.PromotionColor() != ColorWhite {
		t.Fatalf("promotion to rank 8 should infer White")
	}
	black := Move{From: SA2, To: SA1, Type: MovePromotion, Promotion: Queen}
	if black.PromotionColor() != ColorBlack {
		t.Fatalf("promotion to rank 1 should infer Black")
	}
}
