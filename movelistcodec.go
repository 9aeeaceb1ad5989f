// movelistcodec.go implements the per-ply move-list bit-stream codec: the
// core of this package. Each ply after an entry's fixed 34 bytes encodes
// piece_id (sized to the mover's piece count), move_id (sized to the
// moving piece's pseudo-legal move count in the *current* position), and a
// VLE-16 score delta.
//
// Grounded on original_source/writer/move_score_list_writer.rs
// (add_move_score/calculate_move_encoding — including the king castling
// move_id arithmetic: move_id = attacks_size-1, +1 if long-castle rights
// are held, +1 again if the actual move is short). There is no
// move-list decoder in original_source (the Rust project only ships the
// writer and the reader's entry-unpacking, not its move-list replay); the
// decoder below is this package's own construction, built as the exact
// inverse of the writer using the same destination-enumeration helpers
// (movegen.go) so both sides can never disagree about a position's
// derived move count.

package binpack

import "fmt"

const scoreVLEBlockSize = 4

// MoveListWriter accumulates the bit-packed move list for one entry's
// worth of plies.
type MoveListWriter struct {
	w         *BitWriter
	numPlies  uint16
	lastScore int16
}

// NewMoveListWriter starts a move-list encoding with the given base
// entry's score as its starting reference.
func NewMoveListWriter(initialScore int16) *MoveListWriter {
	return &MoveListWriter{w: NewBitWriter(), lastScore: -initialScore}
}

// AddMove encodes one ply: pos must be the position *before* mv is
// applied. The caller is responsible for applying mv to pos afterward
// (via pos.MakeMove) before encoding the next ply.
func (mw *MoveListWriter) AddMove(pos *Position, mv Move, score int16) {
	us := pos.ActiveColor
	ourPieces := pos.Bitboards[bbWhite+us]

	pieceID := CountBits(ourPieces & squaresBeforeBB(mv.From))
	numPieces := CountBits(ourPieces)

	moveID, numMoves := encodeMoveID(pos, mv)

	mw.w.WriteBitsWide(uint16(pieceID), UsedBits(uint64(numPieces)))
	mw.w.WriteBitsWide(uint16(moveID), UsedBits(uint64(numMoves)))

	scoreDelta := ZigZagEncode(score - mw.lastScore)
	mw.w.WriteVLE16(scoreDelta, scoreVLEBlockSize)
	mw.lastScore = -score

	mw.numPlies++
}

// Bytes returns the encoded move list, and its ply count.
func (mw *MoveListWriter) Bytes() ([]byte, uint16) {
	return mw.w.Bytes(), mw.numPlies
}

// MoveListDecoder replays a move-list byte stream, mutating a working
// Position one ply at a time.
type MoveListDecoder struct {
	r            *BitReader
	totalPlies   uint16
	plyRemaining uint16
	lastScore    int16
}

// NewMoveListDecoder starts decoding numPlies plies from data, given the
// entry's initial score as the starting reference.
func NewMoveListDecoder(data []byte, numPlies uint16, initialScore int16) *MoveListDecoder {
	return &MoveListDecoder{r: NewBitReader(data), totalPlies: numPlies, plyRemaining: numPlies, lastScore: -initialScore}
}

// Done reports whether every ply has been decoded.
func (md *MoveListDecoder) Done() bool { return md.plyRemaining == 0 }

// numPliesConsumed returns how many plies have been decoded so far.
func (md *MoveListDecoder) numPliesConsumed() uint16 { return md.totalPlies - md.plyRemaining }

// Next decodes and applies the next ply to pos (which must reflect the
// position *before* this ply), returning the decoded move and score. The
// caller supplies the base entry's ply and result to stamp onto the
// returned entry since the move list itself carries neither; ply is
// basePly + (1-indexed count of plies decoded so far by this decoder).
func (md *MoveListDecoder) Next(pos *Position, basePly uint16, result int16) (TrainingDataEntry, error) {
	if md.plyRemaining == 0 {
		return TrainingDataEntry{}, fmt.Errorf("binpack: move list: no more plies to decode")
	}
	ply := basePly + md.numPliesConsumed() + 1

	us := pos.ActiveColor
	ourPieces := pos.Bitboards[bbWhite+us]
	numPieces := CountBits(ourPieces)

	pieceIDBits := UsedBits(uint64(numPieces))
	pieceID, err := md.r.ExtractBitsWide(pieceIDBits)
	if err != nil {
		return TrainingDataEntry{}, err
	}
	if int(pieceID) >= numPieces {
		return TrainingDataEntry{}, invalidFormat("decoded piece_id out of range", nil)
	}
	from := NthSetBitIndex(ourPieces, uint(pieceID))

	mv, numMoves, err := decodeDestination(pos, from)
	if err != nil {
		return TrainingDataEntry{}, err
	}

	moveIDBits := UsedBits(uint64(numMoves))
	moveID, err := md.r.ExtractBitsWide(moveIDBits)
	if err != nil {
		return TrainingDataEntry{}, err
	}
	if int(moveID) >= numMoves {
		return TrainingDataEntry{}, invalidFormat("decoded move_id out of range", nil)
	}

	mv, err = resolveMove(pos, from, int(moveID), mv)
	if err != nil {
		return TrainingDataEntry{}, err
	}

	delta, err := md.r.ExtractVLE16(scoreVLEBlockSize)
	if err != nil {
		return TrainingDataEntry{}, err
	}
	score := md.lastScore + ZigZagDecode(delta)
	md.lastScore = -score

	pos.MakeMove(mv)
	md.plyRemaining--

	return TrainingDataEntry{Pos: pos, Move: mv, Score: score, Ply: ply, Result: result}, nil
}

// NumReadBytes returns the number of chunk bytes this decoder has
// consumed so far, used by the entry reader to advance its offset once
// the move list is exhausted.
func (md *MoveListDecoder) NumReadBytes() int { return md.r.NumReadBytes() }

// squaresBeforeBB is an alias for squaresBefore with a name matching its
// use here (a bitboard mask, not a scalar count).
func squaresBeforeBB(sq Square) uint64 { return squaresBefore(sq) }

// encodeMoveID computes (move_id, num_moves) for mv, played from the
// current pos, per SPEC_FULL.md §4.9.
func encodeMoveID(pos *Position, mv Move) (moveID, numMoves int) {
	us := pos.ActiveColor
	piece := pos.PieceAt(mv.From)
	pt := PieceTypeOf(piece)
	ourPieces := pos.Bitboards[bbWhite+us]
	occupied := pos.Bitboards[bbAll]

	switch pt {
	case Pawn:
		dests := PawnDestinations(pos, us, mv.From)
		id := CountBits(dests & squaresBeforeBB(mv.To))
		n := CountBits(dests)
		if RankOf(mv.From) == promotionRank(us) {
			id = id*4 + int(mv.Promotion-Knight)
			n *= 4
		}
		return id, n

	case King:
		attacks := kingAttacks[mv.From] &^ ourPieces
		attacksSize := CountBits(attacks)
		ourMask := castlingMaskFor(us)
		numCastling := CountBits(uint64(pos.CastlingRights & ourMask))
		numMoves := attacksSize + numCastling

		if mv.Type == MoveCastle {
			id := attacksSize - 1
			if pos.CastlingRights&longCastleRight(us) != 0 {
				id++
			}
			if FileOf(mv.To) == FileOf(SH1) {
				id++
			}
			return id, numMoves
		}
		id := CountBits(attacks & squaresBeforeBB(mv.To))
		return id, numMoves

	default:
		attacks := PieceAttacks(pt, mv.From, occupied) &^ ourPieces
		id := CountBits(attacks & squaresBeforeBB(mv.To))
		return id, CountBits(attacks)
	}
}

// castlingMaskFor returns the pair of castling-rights bits belonging to
// color c.
func castlingMaskFor(c Color) CastlingRights {
	if c == ColorWhite {
		return CastlingWK | CastlingWQ
	}
	return CastlingBK | CastlingBQ
}

// longCastleRight returns the long-castle right bit for color c.
func longCastleRight(c Color) CastlingRights {
	if c == ColorWhite {
		return CastlingWQ
	}
	return CastlingBQ
}

// shortCastleRight returns the short-castle right bit for color c.
func shortCastleRight(c Color) CastlingRights {
	if c == ColorWhite {
		return CastlingWK
	}
	return CastlingBK
}

// decodeDestination determines num_moves for the piece standing on from,
// returning a partially-filled Move (only From is set) for resolveMove to
// finish once move_id is known.
func decodeDestination(pos *Position, from Square) (Move, int, error) {
	us := pos.ActiveColor
	piece := pos.PieceAt(from)
	if piece == PieceNone {
		return Move{}, 0, fmt.Errorf("binpack: move list: decoded piece_id points at an empty square")
	}
	pt := PieceTypeOf(piece)

	switch pt {
	case Pawn:
		dests := PawnDestinations(pos, us, from)
		n := CountBits(dests)
		if RankOf(from) == promotionRank(us) {
			n *= 4
		}
		return Move{From: from}, n, nil

	case King:
		ourPieces := pos.Bitboards[bbWhite+us]
		attacks := kingAttacks[from] &^ ourPieces
		attacksSize := CountBits(attacks)
		numCastling := CountBits(uint64(pos.CastlingRights & castlingMaskFor(us)))
		return Move{From: from}, attacksSize + numCastling, nil

	default:
		occupied := pos.Bitboards[bbAll]
		ourPieces := pos.Bitboards[bbWhite+us]
		attacks := PieceAttacks(pt, from, occupied) &^ ourPieces
		return Move{From: from}, CountBits(attacks), nil
	}
}

// resolveMove fills in To (and Type/Promotion) now that move_id is known,
// recomputing the same destination mask decodeDestination used.
func resolveMove(pos *Position, from Square, moveID int, partial Move) (Move, error) {
	us := pos.ActiveColor
	piece := pos.PieceAt(from)
	pt := PieceTypeOf(piece)

	switch pt {
	case Pawn:
		dests := PawnDestinations(pos, us, from)
		if RankOf(from) == promotionRank(us) {
			destIdx := moveID / 4
			promoIdx := moveID % 4
			to := NthSetBitIndex(dests, uint(destIdx))
			return Move{From: from, To: to, Type: MovePromotion, Promotion: Knight + PieceType(promoIdx)}, nil
		}
		to := NthSetBitIndex(dests, uint(moveID))
		if FileOf(to) != FileOf(from) && pos.PieceAt(to) == PieceNone {
			return Move{From: from, To: to, Type: MoveEnPassant}, nil
		}
		return Move{From: from, To: to, Type: MoveNormal}, nil

	case King:
		ourPieces := pos.Bitboards[bbWhite+us]
		attacks := kingAttacks[from] &^ ourPieces
		attacksSize := CountBits(attacks)

		if moveID < attacksSize {
			to := NthSetBitIndex(attacks, uint(moveID))
			return Move{From: from, To: to, Type: MoveNormal}, nil
		}

		longHeld := pos.CastlingRights&longCastleRight(us) != 0
		shortHeld := pos.CastlingRights&shortCastleRight(us) != 0
		offset := moveID - attacksSize

		var isShort bool
		switch {
		case longHeld && shortHeld:
			isShort = offset == 1
		case shortHeld:
			isShort = true
		case longHeld:
			isShort = false
		default:
			return Move{}, fmt.Errorf("binpack: move list: castle move_id with no castling rights held")
		}

		var rookSquare Square
		if us == ColorWhite {
			if isShort {
				rookSquare = SH1
			} else {
				rookSquare = SA1
			}
		} else {
			if isShort {
				rookSquare = SH8
			} else {
				rookSquare = SA8
			}
		}
		return Move{From: from, To: rookSquare, Type: MoveCastle}, nil

	default:
		occupied := pos.Bitboards[bbAll]
		ourPieces := pos.Bitboards[bbWhite+us]
		attacks := PieceAttacks(pt, from, occupied) &^ ourPieces
		to := NthSetBitIndex(attacks, uint(moveID))
		return Move{From: from, To: to, Type: MoveNormal}, nil
	}
}
