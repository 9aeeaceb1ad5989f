// coords.go declares Square, File, Rank, and FlatSquareOffset with bounded
// integer semantics, grounded on original_source/chess/coords.rs and the
// teacher's square numbering (precalc.go).

package binpack

// Square is an alias type for a board square index in 0..63; 64 encodes
// SquareNone.
type Square = int

// SquareNone represents the absence of a square (e.g. no en passant
// target).
const SquareNone Square = 64

// FileOf returns the file (0=a .. 7=h) of a square.
func FileOf(sq Square) File { return sq & 7 }

// RankOf returns the rank (0=1st .. 7=8th) of a square.
func RankOf(sq Square) Rank { return sq >> 3 }

// File is an alias type for a board file, 0 (a-file) through 7 (h-file).
type File = int

// Rank is an alias type for a board rank, 0 (1st rank) through 7 (8th
// rank).
type Rank = int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// FlatSquareOffset is a signed (file, rank) displacement flattened into a
// single square-index delta, so that Square+FlatSquareOffset is plain
// integer addition.
type FlatSquareOffset = int

// NewFlatSquareOffset builds a flattened offset from file/rank deltas.
func NewFlatSquareOffset(files, ranks int) FlatSquareOffset { return files + ranks*8 }

// Square name constants, in the teacher's precalc.go numbering (a1=0,
// ascending by rank then file).
const (
	SA1 Square = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// squareNames maps each board square to its algebraic string
// representation.
var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// SquareName returns the algebraic name of a square, or "-" for
// SquareNone.
func SquareName(sq Square) string {
	if sq == SquareNone {
		return "-"
	}
	return squareNames[sq]
}

// ParseSquare parses an algebraic square name ("e4") or "-" into a
// Square. It panics on malformed input, matching the teacher's FEN
// parsing style (fen.go's string2Square).
func ParseSquare(s string) Square {
	if s == "-" {
		return SquareNone
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		panic("binpack: malformed square string " + s)
	}
	return int(s[1]-'1')*8 + int(s[0]-'a')
}
