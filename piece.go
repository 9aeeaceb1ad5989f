// piece.go declares the Color, PieceType, and Piece domain types.
//
// Piece ids follow the layout id = (piece_type << 1) | color, which matches
// both this package's Position.Bitboards index order and the nibble
// alphabet used by CompressedPosition (see compressedposition.go).

package binpack

// Color is an alias type to avoid bothersome conversion between int and
// Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Opponent flips the color.
func Opponent(c Color) Color { return c ^ 1 }

// PieceType is an alias type to avoid bothersome conversion between int
// and PieceType.
type PieceType = int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// Piece is an alias type to avoid bothersome conversion between int and
// Piece. Ids 0..11 enumerate real pieces; PieceNone is a distinguished
// value for empty squares.
type Piece = int

const (
	WhitePawn Piece = iota
	BlackPawn
	WhiteKnight
	BlackKnight
	WhiteBishop
	BlackBishop
	WhiteRook
	BlackRook
	WhiteQueen
	BlackQueen
	WhiteKing
	BlackKing
	PieceNone Piece = -1
)

// NewPiece builds the piece id from its type and color.
func NewPiece(pt PieceType, c Color) Piece { return (pt << 1) | c }

// PieceTypeOf returns the piece type component of a piece id.
func PieceTypeOf(p Piece) PieceType { return p >> 1 }

// ColorOf returns the color component of a piece id.
func ColorOf(p Piece) Color { return p & 1 }

// pieceSymbols maps each piece id to its FEN character.
var pieceSymbols = [12]byte{
	'P', 'p', 'N', 'n', 'B', 'b',
	'R', 'r', 'Q', 'q', 'K', 'k',
}

// pieceWeights maps each piece id to its material weight, carried over
// from the teacher's insufficient-material helper. Nothing in this
// package reads it; Position.String and FEN round-tripping do not use it.
var pieceWeights = [12]int{1, 1, 3, 3, 3, 3, 5, 5, 9, 9, 0, 0}

// CastlingRights is a 4-bit mask of castling availability.
type CastlingRights = int

const (
	CastlingWK CastlingRights = 1 << iota
	CastlingWQ
	CastlingBK
	CastlingBQ
	CastlingNone CastlingRights = 0
)

// MoveType enumerates the four kinds of move the codec and chess core
// distinguish.
type MoveType = int

const (
	MoveNormal MoveType = iota
	MovePromotion
	MoveEnPassant
	MoveCastle
)
