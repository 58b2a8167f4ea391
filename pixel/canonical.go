package pixel

import "math/bits"

// canonical maps a mask to the nearest mask representable by a sparse
// glyph table. A table entry of 0 marks an unmapped mask. Nearest means
// minimal Hamming distance between masks; ties resolve to the lowest
// mask value so the mapping is deterministic.
//
// The shipped tables are total, so this only runs for caller-supplied
// sparse tables.
func canonical(mask uint16, table []rune) uint16 {
	if int(mask) < len(table) && table[mask] != 0 {
		return mask
	}
	best := uint16(0)
	bestDist := -1
	for m := 0; m < len(table); m++ {
		if table[m] == 0 {
			continue
		}
		d := bits.OnesCount16(mask ^ uint16(m))
		if bestDist < 0 || d < bestDist {
			best = uint16(m)
			bestDist = d
		}
	}
	return best
}

// EncodeWith maps a mask through a caller-supplied glyph table,
// canonicalizing masks the table does not cover. The table length must
// be a power of two no larger than 1<<16; masks at or beyond the table
// length panic like Encode.
func EncodeWith(mask uint16, table []rune) rune {
	if int(mask) >= len(table) {
		panic("pixel: mask outside table domain")
	}
	return table[canonical(mask, table)]
}
