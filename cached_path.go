package glass

// ─────────────────────────────────────────────────────────────────────────
// Cached path (§4.6)
//
// Remembers the root-to-leaf descent for the last-touched key: the
// internal node visited at each of the depth-1 internal levels, the digit
// chosen at each, and the leaf reached. When the next key shares a long
// high-order prefix with the previous one — the workload's stated common
// case (§1: "strong sequential locality") — the shared levels need not be
// re-walked.
//
// §4.6 phrases the reuse boundary as clz(k ^ k_prev) divided by
// BITS_PER_LEVEL. We compute the equivalent shared-digit count by
// comparing digits directly instead: KEY_BITS (32) is not a multiple of
// BITS_PER_LEVEL (6), so the top digit only carries 2 real bits, and a
// literal division on the clz count mis-rounds exactly at that boundary.
// Comparing the (at most 6) digits directly is just as cheap and exact at
// every boundary.
//
// Grounded on the `ref`/`DeltaBucket` handle-caching pattern in the
// teacher's router package: a struct that remembers a resolved handle so a
// repeated operation on related input can skip re-resolving it. Here the
// cached thing is an entire root-to-leaf path rather than one handle.
// ─────────────────────────────────────────────────────────────────────────

type cachedPath struct {
	valid  bool
	key    uint32
	nodes  [depth - 1]internalIndex // nodes[l] is the internal node at level l
	digits [depth - 1]uint8         // digits[l] is the digit used to leave nodes[l]
	leaf   leafIndex
}

// sharedDigits returns the number of leading digits (0..depth) that k and
// the cached key agree on.
func sharedDigits(k, prev uint32) int {
	n := 0
	for l := 0; l < depth; l++ {
		if digitAt(k, l) != digitAt(prev, l) {
			break
		}
		n++
	}
	return n
}

func digitAt(k uint32, level int) uint8 {
	shift := uint(bitsPerLevel * (depth - 1 - level))
	return uint8((k >> shift) & (fanout - 1))
}

// invalidate drops the cached path. Called after every leaf destruction,
// which may prune internal nodes on the path; creating nodes leaves the
// existing path nodes live, and insertDescend re-records the path after
// each descent.
func (c *cachedPath) invalidate() {
	c.valid = false
}

// record stores a freshly completed descent for reuse by the next call.
func (c *cachedPath) record(k uint32, nodes [depth - 1]internalIndex, digits [depth - 1]uint8, leaf leafIndex) {
	c.valid = true
	c.key = k
	c.nodes = nodes
	c.digits = digits
	c.leaf = leaf
}

// reusablePrefixLevels reports how many of the cached path's internal
// levels can be reused for k without re-walking them, or 0/false if the
// cache is invalid.
func (c *cachedPath) reusablePrefixLevels(k uint32) (int, bool) {
	if !c.valid {
		return 0, false
	}
	return sharedDigits(k, c.key), true
}
