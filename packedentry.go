// packedentry.go implements the 32-byte fixed-size training-data tuple:
// compressed position, compressed move, zigzag score, packed ply|result,
// and the rule-50 counter.
//
// Grounded on original_source/packed_entry.rs (unpack_entry's field
// offsets and the ply/result packing). Pack is the symmetric inverse,
// following the same field layout.

package binpack

// PackedEntry is the 32-byte big-endian wire representation of a
// TrainingDataEntry.
type PackedEntry [32]byte

// TrainingDataEntry is a single (position, move, score, ply, result)
// training-data tuple.
type TrainingDataEntry struct {
	Pos    *Position
	Move   Move
	Score  int16
	Ply    uint16
	Result int16
}

// Pack packs e into its 32-byte wire form.
func Pack(e TrainingDataEntry) PackedEntry {
	var pe PackedEntry

	cp := Compress(e.Pos)
	copy(pe[0:24], cp[:])

	mv := CompressMove(e.Move).Bytes()
	pe[24], pe[25] = mv[0], mv[1]

	score := ZigZagEncode(e.Score)
	pe[26], pe[27] = byte(score>>8), byte(score)

	resultZZ := ZigZagEncode(e.Result)
	pr := uint16(resultZZ)<<14 | (e.Ply & 0x3FFF)
	pe[28], pe[29] = byte(pr>>8), byte(pr)

	rule50 := uint16(e.Pos.Rule50)
	pe[30], pe[31] = byte(rule50>>8), byte(rule50)

	return pe
}

// Unpack unpacks pe into a TrainingDataEntry, stamping the decoded ply and
// rule50 counter onto the returned position.
func (pe PackedEntry) Unpack() TrainingDataEntry {
	var cp CompressedPosition
	copy(cp[:], pe[0:24])
	pos := cp.Decompress()

	mv := CompressedMoveFromBytes([2]byte{pe[24], pe[25]}).Decompress()

	score := ZigZagDecode(uint16(pe[26])<<8 | uint16(pe[27]))

	pr := uint16(pe[28])<<8 | uint16(pe[29])
	ply := pr & 0x3FFF
	result := ZigZagDecode(pr >> 14)

	rule50 := uint16(pe[30])<<8 | uint16(pe[31])

	pos.Ply = int(ply)
	pos.Rule50 = int(rule50)

	return TrainingDataEntry{
		Pos:    pos,
		Move:   mv,
		Score:  score,
		Ply:    ply,
		Result: result,
	}
}
