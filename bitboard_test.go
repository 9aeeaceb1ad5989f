package binpack

import "testing"

func TestBitboardHasWithSquare(t *testing.T) {
	var bb Bitboard
	if HasSquare(bb, SE4) {
		t.Fatalf("empty bitboard should not have SE4")
	}
	bb = WithSquare(bb, SE4)
	if !HasSquare(bb, SE4) {
		t.Fatalf("bitboard should have SE4 after WithSquare")
	}
}

func TestSquaresAscendingOrder(t *testing.T) {
	var bb Bitboard
	bb = WithSquare(bb, SH8)
	bb = WithSquare(bb, SA1)
	bb = WithSquare(bb, SE4)

	got := Squares(bb)
	want := []Square{SA1, SE4, SH8}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
