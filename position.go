// position.go defines Position and its make_move/is_attacked/FEN methods.
//
// Grounded on the teacher's position.go (Bitboards layout: indices 0..11
// are the twelve pieces, 12/13 are the white/black occupancy bitboards, 14
// is total occupancy; placePiece/removePiece) and on
// original_source/chess/position.rs's do_move, whose piece_at/captured
// bookkeeping, castling-rights revocation, and en-passant legality filter
// this follows step for step (see §4.3 of SPEC_FULL.md).

package binpack

import "fmt"

// bbWhite and bbBlack index the per-color occupancy bitboards within
// Position.Bitboards; bbAll indexes total occupancy.
const (
	bbWhite = 12
	bbBlack = 13
	bbAll   = 14
)

// Position represents a chessboard state.
type Position struct {
	Bitboards      [15]uint64
	ActiveColor    Color
	CastlingRights CastlingRights
	EPTarget       Square
	HalfmoveCnt    int
	FullmoveCnt    int
	Ply            int
	Rule50         int
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := ParseFEN(StartingFEN)
	if err != nil {
		panic("binpack: starting FEN failed to parse: " + err.Error())
	}
	return p
}

// PieceAt returns the piece occupying sq, or PieceNone if sq is empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := uint64(1) << uint(sq)
	for piece := WhitePawn; piece <= BlackKing; piece++ {
		if p.Bitboards[piece]&bb != 0 {
			return piece
		}
	}
	return PieceNone
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return bitScan(p.Bitboards[bbWhite+c] & p.Bitboards[WhiteKing+c])
}

// placePiece places piece on sq, updating its bitboard, the color
// occupancy bitboard, and total occupancy.
func (p *Position) placePiece(piece Piece, sq Square) {
	bb := uint64(1) << uint(sq)
	p.Bitboards[piece] |= bb
	p.Bitboards[bbWhite+ColorOf(piece)] |= bb
	p.Bitboards[bbAll] |= bb
}

// removePiece removes piece from sq. The caller must ensure piece
// currently occupies sq.
func (p *Position) removePiece(piece Piece, sq Square) {
	bb := uint64(1) << uint(sq)
	p.Bitboards[piece] &^= bb
	p.Bitboards[bbWhite+ColorOf(piece)] &^= bb
	p.Bitboards[bbAll] &^= bb
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.Bitboards[bbAll]

	if pawnAttacks[Opponent(by)][sq]&p.Bitboards[WhitePawn+by] != 0 {
		return true
	}
	if knightAttacks[sq]&p.Bitboards[WhiteKnight+by] != 0 {
		return true
	}
	if kingAttacks[sq]&p.Bitboards[WhiteKing+by] != 0 {
		return true
	}
	bishopsQueens := p.Bitboards[WhiteBishop+by] | p.Bitboards[WhiteQueen+by]
	if lookupBishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.Bitboards[WhiteRook+by] | p.Bitboards[WhiteQueen+by]
	if lookupRookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// MakeMove mutates p by applying m, which must be at least pseudo-legal for
// the side to move. It updates castling rights, en-passant target
// (subject to the legality filter below), halfmove/fullmove counters, and
// flips the active color.
func (p *Position) MakeMove(m Move) {
	us := p.ActiveColor
	them := Opponent(us)

	piece := p.PieceAt(m.From)
	captured := p.PieceAt(m.To)
	genuineCapture := captured != PieceNone && m.Type != MoveCastle

	p.removePiece(piece, m.From)
	if genuineCapture {
		p.removePiece(captured, m.To)
	}

	switch m.Type {
	case MoveNormal:
		p.placePiece(piece, m.To)

	case MovePromotion:
		p.placePiece(NewPiece(m.Promotion, us), m.To)

	case MoveEnPassant:
		p.placePiece(piece, m.To)
		p.removePiece(NewPiece(Pawn, them), m.To^8)

	case MoveCastle:
		isShort := FileOf(m.To) == FileOf(SH1)
		dest := castleDestinations[us][boolIndex(!isShort)]
		p.removePiece(NewPiece(Rook, us), m.To)
		p.placePiece(piece, dest.king)
		p.placePiece(NewPiece(Rook, us), dest.rook)
	}

	if piece == WhitePawn || piece == BlackPawn || genuineCapture {
		p.HalfmoveCnt = 0
	} else {
		p.HalfmoveCnt++
	}

	if us == ColorBlack {
		p.FullmoveCnt++
	}

	p.revokeCastlingRights(m.From)
	p.revokeCastlingRights(m.To)

	p.EPTarget = SquareNone
	if (piece == WhitePawn || piece == BlackPawn) && abs(m.To-m.From) == 16 {
		p.setEnPassantIfLegal((m.From+m.To)/2, us, them)
	}

	p.ActiveColor = them
	p.Ply++
}

// boolIndex converts a bool to 0/1, used to index castleDestinations by
// "is long castle".
func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// revokeCastlingRights clears the castling right(s) tied to sq whenever a
// move touches one of {E1,E8,A1,H1,A8,H8}.
func (p *Position) revokeCastlingRights(sq Square) {
	switch sq {
	case SE1:
		p.CastlingRights &^= CastlingWK | CastlingWQ
	case SE8:
		p.CastlingRights &^= CastlingBK | CastlingBQ
	case SA1:
		p.CastlingRights &^= CastlingWQ
	case SH1:
		p.CastlingRights &^= CastlingWK
	case SA8:
		p.CastlingRights &^= CastlingBQ
	case SH8:
		p.CastlingRights &^= CastlingBK
	}
}

// setEnPassantIfLegal sets p.EPTarget to ep only if at least one pawn of
// them can legally capture there: trial-play the capture (enemy pawn moves
// to ep, our pawn removed from its landing square), check whether that
// would leave them's own king in check, then undo. Grounded on
// original_source/chess/position.rs's do_move en-passant filter (see
// SPEC_FULL.md §4.3's resolution of the open question about trial-play
// semantics: the trial both moves the capturing pawn and strips the
// just-moved pawn, matching this engine's IsAttacked exactly).
func (p *Position) setEnPassantIfLegal(ep Square, us, them Color) {
	theirPawn := NewPiece(Pawn, them)
	ourPawn := NewPiece(Pawn, us)
	landingSquare := ep
	if us == ColorWhite {
		landingSquare = ep + 8
	} else {
		landingSquare = ep - 8
	}

	candidates := pawnAttacks[us][ep] & p.Bitboards[theirPawn]
	for candidates != 0 {
		from := popLSB(&candidates)

		p.removePiece(theirPawn, from)
		p.placePiece(theirPawn, ep)
		p.removePiece(ourPawn, landingSquare)

		kingSq := p.KingSquare(them)
		legal := !p.IsAttacked(kingSq, us)

		p.removePiece(theirPawn, ep)
		p.placePiece(theirPawn, from)
		p.placePiece(ourPawn, landingSquare)

		if legal {
			p.EPTarget = ep
			return
		}
	}
}

// String renders the position as a FEN string, for diagnostics.
func (p *Position) String() string {
	s, err := p.FEN()
	if err != nil {
		return fmt.Sprintf("<invalid position: %v>", err)
	}
	return s
}
