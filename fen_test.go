package binpack

import "testing"

func TestFENRoundTrip(t *testing.T) {
	testcases := []string{
		StartingFEN,
		"rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 5 10",
	}

	for _, fen := range testcases {
		t.Run(fen, func(t *testing.T) {
			p, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", fen, err)
			}
			got, err := p.FEN()
			if err != nil {
				t.Fatalf("p.FEN(): %v", err)
			}
			if got != fen {
				t.Fatalf("round trip mismatch:\n got:  %q\n want: %q", got, fen)
			}
		})
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	testcases := []string{
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - abc 1",
	}
	for _, fen := range testcases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should have failed", fen)
		}
	}
}
