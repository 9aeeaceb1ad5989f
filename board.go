// board.go renders a Position as a human-readable Unicode board, used for
// debugging and test failure output.
//
// Grounded on _examples/treepeck-chego's cli/cli.go (FormatPosition),
// adapted from that package's separate-arguments signature and
// enum.Piece-indexed symbol table to a Position method over this
// package's interleaved piece id layout (see piece.go).

package binpack

import "strings"

// pieceGlyphs maps each piece id to its Unicode chess glyph, in the same
// id order as pieceSymbols (piece.go).
var pieceGlyphs = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝',
	'♖', '♜', '♕', '♛', '♔', '♚',
}

// Render draws p as an 8x8 Unicode board with rank/file labels, followed
// by side to move, en-passant target, and castling rights.
func (p *Position) Render() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := range 8 {
			sq := rank*8 + file
			piece := p.PieceAt(sq)
			glyph := '.'
			if piece != PieceNone {
				glyph = pieceGlyphs[piece]
			}
			b.WriteRune(glyph)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	b.WriteString("Active color: ")
	if p.ActiveColor == ColorWhite {
		b.WriteString("white\n")
	} else {
		b.WriteString("black\n")
	}

	b.WriteString("En passant: ")
	b.WriteString(SquareName(p.EPTarget))
	b.WriteByte('\n')

	b.WriteString("Castling rights: ")
	wrote := false
	for _, pair := range [...]struct {
		bit  CastlingRights
		char byte
	}{
		{CastlingWK, 'K'}, {CastlingWQ, 'Q'}, {CastlingBK, 'k'}, {CastlingBQ, 'q'},
	} {
		if p.CastlingRights&pair.bit != 0 {
			b.WriteByte(pair.char)
			wrote = true
		}
	}
	if !wrote {
		b.WriteByte('-')
	}

	return b.String()
}
