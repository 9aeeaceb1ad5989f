// fen.go converts between Forsyth-Edwards Notation strings and Position
// values. This package only uses FEN for diagnostics (Position.String) and
// test fixtures — it is not part of the wire format — so, unlike the
// teacher's FEN parser, malformed FEN returns an error rather than
// panicking; see DESIGN.md.
//
// Grounded on the teacher's fen.go (ParseBitboards/SerializeBitboards
// square-walk order, string2Square).

package binpack

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Split(fen, " ")
	if len(fields) != 6 {
		return nil, fmt.Errorf("binpack: FEN %q: want 6 space-separated fields, got %d", fen, len(fields))
	}

	p := &Position{}

	bitboards, err := ParseBitboards(fields[0])
	if err != nil {
		return nil, fmt.Errorf("binpack: FEN %q: %w", fen, err)
	}
	p.Bitboards = bitboards

	switch fields[1] {
	case "w":
		p.ActiveColor = ColorWhite
	case "b":
		p.ActiveColor = ColorBlack
	default:
		return nil, fmt.Errorf("binpack: FEN %q: bad active color %q", fen, fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.CastlingRights |= CastlingWK
		case 'Q':
			p.CastlingRights |= CastlingWQ
		case 'k':
			p.CastlingRights |= CastlingBK
		case 'q':
			p.CastlingRights |= CastlingBQ
		case '-':
		default:
			return nil, fmt.Errorf("binpack: FEN %q: bad castling rights %q", fen, fields[2])
		}
	}

	if fields[3] == "-" {
		p.EPTarget = SquareNone
	} else {
		ep := fields[3]
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || ep[1] < '1' || ep[1] > '8' {
			return nil, fmt.Errorf("binpack: FEN %q: bad en passant field %q", fen, fields[3])
		}
		p.EPTarget = ParseSquare(fields[3])
	}

	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("binpack: FEN %q: bad halfmove clock: %w", fen, err)
	}

	p.FullmoveCnt, err = strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("binpack: FEN %q: bad fullmove number: %w", fen, err)
	}
	p.Rule50 = p.HalfmoveCnt
	p.Ply = 2*(p.FullmoveCnt-1) + p.ActiveColor

	return p, nil
}

// FEN serializes p into a FEN string.
func (p *Position) FEN() (string, error) {
	var b strings.Builder
	b.Grow(64)

	placement, err := SerializeBitboards(p.Bitboards)
	if err != nil {
		return "", err
	}
	b.WriteString(placement)

	if p.ActiveColor == ColorWhite {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

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
	b.WriteByte(' ')

	b.WriteString(SquareName(p.EPTarget))
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(p.HalfmoveCnt))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveCnt))

	return b.String(), nil
}

// ParseBitboards parses the piece-placement field of a FEN string.
func ParseBitboards(placement string) ([15]uint64, error) {
	var bitboards [15]uint64
	square := 56

	for i := 0; i < len(placement); i++ {
		c := placement[i]

		switch {
		case c == '/':
			square -= 16
		case c >= '1' && c <= '8':
			square += int(c - '0')
		default:
			piece, ok := pieceFromFENChar(c)
			if !ok {
				return bitboards, fmt.Errorf("bad piece placement character %q", c)
			}
			if square < 0 || square > 63 {
				return bitboards, fmt.Errorf("piece placement overflows the board")
			}
			bb := uint64(1) << uint(square)
			bitboards[piece] |= bb
			bitboards[bbWhite+ColorOf(piece)] |= bb
			bitboards[bbAll] |= bb
			square++
		}
	}

	return bitboards, nil
}

func pieceFromFENChar(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'p':
		return BlackPawn, true
	case 'N':
		return WhiteKnight, true
	case 'n':
		return BlackKnight, true
	case 'B':
		return WhiteBishop, true
	case 'b':
		return BlackBishop, true
	case 'R':
		return WhiteRook, true
	case 'r':
		return BlackRook, true
	case 'Q':
		return WhiteQueen, true
	case 'q':
		return BlackQueen, true
	case 'K':
		return WhiteKing, true
	case 'k':
		return BlackKing, true
	}
	return PieceNone, false
}

// SerializeBitboards converts the piece bitboards into the piece-placement
// field of a FEN string.
func SerializeBitboards(bitboards [15]uint64) (string, error) {
	var board [64]byte

	for piece := WhitePawn; piece <= BlackKing; piece++ {
		bb := bitboards[piece]
		for bb != 0 {
			sq := popLSB(&bb)
			board[sq] = pieceSymbols[piece]
		}
	}

	var b strings.Builder
	b.Grow(20)

	for rank := 7; rank >= 0; rank-- {
		empty := byte(0)
		for file := range 8 {
			sq := rank*8 + file
			if board[sq] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + empty)
				empty = 0
			}
			b.WriteByte(board[sq])
		}
		if empty > 0 {
			b.WriteByte('0' + empty)
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	return b.String(), nil
}
