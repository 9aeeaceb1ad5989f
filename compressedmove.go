// compressedmove.go implements the 2-byte wire move representation.
//
// Grounded on original_source/compressed_move.rs for the bit layout, and
// on the teacher's types.go for the idiom of packing a move into a fixed-
// width integer with From()/To()-style accessors — generalized here to a
// big-endian uint16 with the spec's own field widths, which differ from
// the teacher's (the teacher packs the king's destination for castling;
// this format packs the rook's square, see move.go).

package binpack

// CompressedMove is the 2-byte big-endian wire representation of a Move.
//
// Bit layout from MSB: type(2) | from(6) | to(6) | promotion(2), where
// promotion is promoted_piece_type - Knight (zero when not a promotion).
// The zero value decodes to the null move.
type CompressedMove uint16

// CompressMove packs m into its 2-byte wire form.
func CompressMove(m Move) CompressedMove {
	var promo PieceType
	if m.Type == MovePromotion {
		promo = m.Promotion - Knight
	}
	return CompressedMove(uint16(m.Type)<<14 | uint16(m.From)<<8 | uint16(m.To)<<2 | uint16(promo))
}

// Decompress unpacks cm into a Move. Only the promoted piece type is
// recovered; its color is given by Move.PromotionColor. Promotion is left
// at its zero value for every non-promotion move.
func (cm CompressedMove) Decompress() Move {
	m := Move{
		Type: MoveType((cm >> 14) & 0x3),
		From: Square((cm >> 8) & 0x3F),
		To:   Square((cm >> 2) & 0x3F),
	}
	if m.Type == MovePromotion {
		m.Promotion = Knight + PieceType(cm&0x3)
	}
	return m
}

// PromotionColor infers the color of a promotion move from its
// destination rank: rank 1 implies Black (promoting down the board), any
// other rank implies White. Only meaningful when m.Type == MovePromotion.
func (m Move) PromotionColor() Color {
	if RankOf(m.To) == Rank1 {
		return ColorBlack
	}
	return ColorWhite
}

// Bytes returns the big-endian byte encoding of cm.
func (cm CompressedMove) Bytes() [2]byte {
	return [2]byte{byte(cm >> 8), byte(cm)}
}

// CompressedMoveFromBytes reads a big-endian CompressedMove.
func CompressedMoveFromBytes(b [2]byte) CompressedMove {
	return CompressedMove(uint16(b[0])<<8 | uint16(b[1]))
}
