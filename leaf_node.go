package glass

// ─────────────────────────────────────────────────────────────────────────
// LeafNode (§3, §4.4)
//
// A 64-slot value array with an occupancy mask, the doubly-linked
// leaf-list pointers that keep leaves reachable in key order (invariant
// I4), a parent back-reference for upward count maintenance, the shared
// high-order prefix used both for key reconstruction and hashing, and the
// intrusive hash-chain link used by the pre-leaf cache (§4.5).
//
// Grounded on quantumqueue64.node (fixed 64-entry value array plus
// doubly-linked prev/next chain fields), generalized from "one bucket's
// LIFO chain of distinct entries" to "one leaf's 64 co-resident values
// plus the cross-leaf list and hash chain."
// ─────────────────────────────────────────────────────────────────────────

type leafNode struct {
	mask       uint64
	values     [fanout]uint64
	prev, next leafIndex
	parent     internalIndex
	parentSlot uint8
	prefix     uint32 // high KEY_BITS - BITS_PER_LEVEL bits shared by every key this leaf stores
	hashNext   leafIndex
}

func newLeafNode(prefix uint32, parent internalIndex, parentSlot uint8) leafNode {
	return leafNode{
		prev:       nilLeaf,
		next:       nilLeaf,
		parent:     parent,
		parentSlot: parentSlot,
		prefix:     prefix,
		hashNext:   nilLeaf,
	}
}

func (l *leafNode) count() int {
	return swPopcount(l.mask) // only called off the hot path (debug/asserts); descent uses the parents' childCounts, not a popcount
}

func (l *leafNode) has(slot uint8) bool {
	return l.mask&(uint64(1)<<slot) != 0
}

// key reconstructs the full 32-bit key a given slot represents, per
// §4.7's compute_buy_cost reconstruction rule.
func (l *leafNode) key(slot uint8) uint32 {
	return (l.prefix << bitsPerLevel) | uint32(slot)
}

func (l *leafNode) empty() bool {
	return l.mask == 0
}
