// bits.go implements the low-level bit arithmetic that move generation,
// the packed-position codec, and the per-ply move-list codec all share:
// LSB scanning, the n-th set bit lookup the codec uses to go from a
// decoded index back to a square, bit-width sizing, and zig-zag encoding
// of signed score deltas.
//
// Grounded on the teacher's bitutil.go (bitScan/popLSB/CountBits) and
// original_source/arithmetic.rs (nth_set_bit_index's portable fallback,
// zig-zag). See DESIGN.md for why the BMI2 pdep fast path named in
// spec.md §4.1 is not wired here.

package binpack

import "math/bits"

// bitscanMagic is used to index bitScanLookup from the isolated LSB of a
// bitboard.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup is a precalculated lookup table of LSB indices for 64-bit
// words, indexed by the De Bruijn-style hash of the isolated LSB.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// bitScan returns the index of the LSB within the bitboard.
//
// NOTE: bitScan returns 63 for the empty bitboard, same as the teacher.
func bitScan(bb uint64) int {
	return bitScanLookup[bb&-bb*bitscanMagic>>58]
}

// popLSB removes the LSB from the bitboard and returns its index.
//
// NOTE: popLSB returns 63 for the empty bitboard.
func popLSB(bb *uint64) int {
	lsb := bitScan(*bb)
	*bb &= *bb - 1
	return lsb
}

// CountBits returns the number of set bits in the bitboard (popcount).
func CountBits(bb uint64) int {
	return bits.OnesCount64(bb)
}

// nthSetBitLookup[b][n] is the index of the n-th (0-indexed) set bit
// within the byte b, used by the branchless descent in NthSetBitIndex.
var nthSetBitLookup = func() (table [256][8]byte) {
	for v := range 256 {
		for n := range 8 {
			value, count, idx := uint64(v), 0, byte(0)
			for count < n {
				if value == 0 {
					break
				}
				value &= value - 1
				count++
			}
			idx = byte(bits.TrailingZeros64(value))
			if value == 0 {
				idx = 0
			}
			table[v][n] = idx
		}
	}
	return table
}()

// NthSetBitIndex returns the bit index of the n-th (0-indexed) set bit in
// v. Behavior is undefined when n >= popcount(v).
//
// This is the portable branchless 32/16/8 binary-descent fallback that
// spec.md §4.1 and original_source/arithmetic.rs both specify (the
// BMI2 pdep fast path is intentionally not wired — see DESIGN.md).
func NthSetBitIndex(v uint64, n uint) int {
	var shift uint

	p := uint(bits.OnesCount32(uint32(v)))
	if p <= n {
		v >>= 32
		shift += 32
		n -= p
	}

	p = uint(bits.OnesCount16(uint16(v)))
	if p <= n {
		v >>= 16
		shift += 16
		n -= p
	}

	p = uint(bits.OnesCount8(uint8(v)))
	if p <= n {
		v >>= 8
		shift += 8
		n -= p
	}

	return int(uint(nthSetBitLookup[v&0xFF][n]) + shift)
}

// UsedBits returns the minimal number of bits needed to represent n, i.e.
// 0 for n==0, else floor(log2(n))+1.
func UsedBits(n uint64) int {
	if n == 0 {
		return 0
	}
	return bits.Len64(n)
}

// ZigZagEncode maps a signed 16-bit delta to an unsigned value, keeping
// small magnitudes small: set-sign-bit values are XORed with 0x7FFF, then
// the result is rotated left by one bit.
func ZigZagEncode(x int16) uint16 {
	v := uint16(x)
	if v&0x8000 != 0 {
		v ^= 0x7FFF
	}
	return bits.RotateLeft16(v, 1)
}

// ZigZagDecode is the inverse of ZigZagEncode.
func ZigZagDecode(v uint16) int16 {
	r := bits.RotateLeft16(v, -1)
	if v&1 != 0 {
		r ^= 0x7FFF
	}
	return int16(r)
}

// squaresBefore returns a bitboard with bits 0..sq-1 set, used by the
// move-list codec to turn a destination square into an index within an
// ascending-order enumeration of a destination bitboard.
func squaresBefore(sq Square) uint64 {
	if sq == 0 {
		return 0
	}
	return uint64(1)<<uint(sq) - 1
}
