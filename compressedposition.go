// compressedposition.go implements the 24-byte packed position
// representation: an 8-byte big-endian occupancy bitboard followed by 16
// bytes of nibbles, one per occupied square in ascending order, low nibble
// first.
//
// Decompress is grounded on original_source/packed_position.rs, the only
// direction the original implements. Compress is this package's own
// construction, built as the exact inverse of that decode (see DESIGN.md):
// for each occupied square, prefer the special nibble (12: just-doubled
// pawn, 13/14: castling-rights rook, 15: black king when Black is to move)
// whenever the position's state requires it to survive the round trip,
// else the piece's literal id.

package binpack

// CompressedPosition is the 24-byte wire representation of a Position.
type CompressedPosition [24]byte

// Compress packs p into its 24-byte wire form.
func Compress(p *Position) CompressedPosition {
	var cp CompressedPosition

	occupied := p.Bitboards[bbAll]
	for i := range 8 {
		cp[i] = byte(occupied >> uint(8*(7-i)))
	}

	var epPawnSquare Square = SquareNone
	if p.EPTarget != SquareNone {
		if RankOf(p.EPTarget) == Rank3 {
			epPawnSquare = p.EPTarget + 8
		} else {
			epPawnSquare = p.EPTarget - 8
		}
	}

	squares := Squares(occupied)
	for i, sq := range squares {
		nibble := nibbleForSquare(p, sq, epPawnSquare)
		byteIdx := 8 + i/2
		if i%2 == 0 {
			cp[byteIdx] = (cp[byteIdx] &^ 0x0F) | nibble
		} else {
			cp[byteIdx] = (cp[byteIdx] &^ 0xF0) | (nibble << 4)
		}
	}

	return cp
}

// nibbleForSquare computes the packed nibble for the piece standing on sq,
// given the (at most one) square holding the pawn that just double-pushed.
func nibbleForSquare(p *Position, sq, epPawnSquare Square) byte {
	piece := p.PieceAt(sq)

	switch {
	case piece == WhiteKing:
		return byte(piece)
	case piece == BlackKing:
		if p.ActiveColor == ColorBlack {
			return 15
		}
		return byte(piece)
	case (piece == WhitePawn || piece == BlackPawn) && sq == epPawnSquare:
		return 12
	case piece == WhiteRook && sq == SA1 && p.CastlingRights&CastlingWQ != 0:
		return 13
	case piece == WhiteRook && sq == SH1 && p.CastlingRights&CastlingWK != 0:
		return 13
	case piece == BlackRook && sq == SA8 && p.CastlingRights&CastlingBQ != 0:
		return 14
	case piece == BlackRook && sq == SH8 && p.CastlingRights&CastlingBK != 0:
		return 14
	default:
		return byte(piece)
	}
}

// Decompress unpacks cp into a fresh Position. Castling rights and
// side-to-move start at their zero values (CastlingNone, White) and are
// filled in only as special nibbles demand it — matching the original
// decoder exactly (see original_source/packed_position.rs).
func (cp CompressedPosition) Decompress() *Position {
	p := &Position{ActiveColor: ColorWhite, CastlingRights: CastlingNone, EPTarget: SquareNone}

	var occupied uint64
	for i := range 8 {
		occupied |= uint64(cp[i]) << uint(8*(7-i))
	}

	squares := Squares(occupied)
	for i, sq := range squares {
		byteIdx := 8 + i/2
		var nibble byte
		if i%2 == 0 {
			nibble = cp[byteIdx] & 0x0F
		} else {
			nibble = cp[byteIdx] >> 4
		}
		decompressNibble(p, sq, nibble)
	}

	return p
}

func decompressNibble(p *Position, sq Square, nibble byte) {
	switch {
	case nibble <= 11:
		p.placePiece(Piece(nibble), sq)

	case nibble == 12:
		if RankOf(sq) == Rank4 {
			p.placePiece(WhitePawn, sq)
			p.EPTarget = sq - 8
		} else {
			p.placePiece(BlackPawn, sq)
			p.EPTarget = sq + 8
		}

	case nibble == 13:
		p.placePiece(WhiteRook, sq)
		if sq == SA1 {
			p.CastlingRights |= CastlingWQ
		} else {
			p.CastlingRights |= CastlingWK
		}

	case nibble == 14:
		p.placePiece(BlackRook, sq)
		if sq == SA8 {
			p.CastlingRights |= CastlingBQ
		} else {
			p.CastlingRights |= CastlingBK
		}

	case nibble == 15:
		p.placePiece(BlackKing, sq)
		p.ActiveColor = ColorBlack

	default:
		panic("binpack: decompress: unreachable nibble value")
	}
}
