package binpack

import "testing"

func TestPackUnpackStartingPositionNullMove(t *testing.T) {
	p := mustParseFEN(t, StartingFEN)
	e := TrainingDataEntry{
		Pos:    p,
		Move:   Move{From: SA1, To: SA1, Type: MoveNormal},
		Score:  0,
		Ply:    0,
		Result: 0,
	}
	pe := Pack(e)
	got := pe.Unpack()

	assertSamePosition(t, got.Pos, p)
	if !got.Move.IsNull() {
		t.Errorf("Move = %+v, want null move", got.Move)
	}
	if got.Score != 0 || got.Ply != 0 || got.Result != 0 {
		t.Errorf("got Score=%d Ply=%d Result=%d, want all zero", got.Score, got.Ply, got.Result)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	testcases := []TrainingDataEntry{
		{
			Pos:    mustParseFEN(t, "rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1"),
			Move:   Move{From: SD5, To: SE4, Type: MoveNormal},
			Score:  321,
			Ply:    42,
			Result: 1,
		},
		{
			Pos:    mustParseFEN(t, "rnbqkbnr/ppP1pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R w KQkq - 0 1"),
			Move:   Move{From: SC7, To: SB8, Type: MovePromotion, Promotion: Queen},
			Score:  -999,
			Ply:    16383,
			Result: -1,
		},
		{
			Pos:    mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"),
			Move:   Move{From: SE1, To: SG1, Type: MoveCastle},
			Score:  32767,
			Ply:    1,
			Result: 0,
		},
	}

	for i, tc := range testcases {
		tc.Pos.Rule50 = 7 * (i + 1)
		pe := Pack(tc)
		got := pe.Unpack()

		assertSamePosition(t, got.Pos, tc.Pos)
		if got.Move != tc.Move {
			t.Errorf("case %d: Move = %+v, want %+v", i, got.Move, tc.Move)
		}
		if got.Score != tc.Score {
			t.Errorf("case %d: Score = %d, want %d", i, got.Score, tc.Score)
		}
		if got.Ply != tc.Ply {
			t.Errorf("case %d: Ply = %d, want %d", i, got.Ply, tc.Ply)
		}
		if got.Result != tc.Result {
			t.Errorf("case %d: Result = %d, want %d", i, got.Result, tc.Result)
		}
		if got.Pos.Rule50 != tc.Pos.Rule50 {
			t.Errorf("case %d: Rule50 = %d, want %d", i, got.Pos.Rule50, tc.Pos.Rule50)
		}
	}
}
