package glass

// ─────────────────────────────────────────────────────────────────────────
// Portable bit-set fallback.
//
// Used when detectHardwareBitOps reports no usable acceleration. Computes
// identical results to the hw* variants via a De Bruijn multiplication
// sequence for bit-scans and SWAR for popcount — plain integer arithmetic,
// no compiler intrinsic required.
// ─────────────────────────────────────────────────────────────────────────

const deBruijn64 = 0x03f79d71b4cb0a89

var deBruijnTable = [64]uint8{
	0, 1, 48, 2, 57, 49, 28, 3, 61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22, 45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16, 54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10, 25, 14, 19, 9, 13, 8, 7, 6,
}

func swFirstSet(m uint64) (int, bool) {
	if m == 0 {
		return 0, false
	}
	return int(deBruijnTable[((m&-m)*deBruijn64)>>58]), true
}

// swLastSet finds the highest set bit by folding m's high bits down onto
// its low bits (a portable "smear") until the De Bruijn table can resolve
// the position of the (now duplicated) top bit.
func swLastSet(m uint64) (int, bool) {
	if m == 0 {
		return 0, false
	}
	m |= m >> 1
	m |= m >> 2
	m |= m >> 4
	m |= m >> 8
	m |= m >> 16
	m |= m >> 32
	// m is now all-ones below and including the original top bit; its
	// lowest set bit (bit 0) gives nothing, so isolate the top bit instead.
	top := m - (m >> 1)
	return int(deBruijnTable[(top*deBruijn64)>>58]), true
}

func swNextSetAfter(m uint64, i int) (int, bool) {
	if i >= 63 {
		return 0, false
	}
	cleared := m &^ ((uint64(2) << uint(i)) - 1)
	return swFirstSet(cleared)
}

func swPrevSetBefore(m uint64, i int) (int, bool) {
	if i <= 0 {
		return 0, false
	}
	kept := m & ((uint64(1) << uint(i)) - 1)
	return swLastSet(kept)
}

func swRankBelow(m uint64, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= 64 {
		return swPopcount(m)
	}
	return swPopcount(m & ((uint64(1) << uint(i)) - 1))
}

// swPopcount is the classic SWAR bit-parallel popcount.
func swPopcount(m uint64) int {
	m = m - ((m >> 1) & 0x5555555555555555)
	m = (m & 0x3333333333333333) + ((m >> 2) & 0x3333333333333333)
	m = (m + (m >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((m * 0x0101010101010101) >> 56)
}
