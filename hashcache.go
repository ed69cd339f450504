package glass

// ─────────────────────────────────────────────────────────────────────────
// Pre-leaf hash cache (§4.5)
//
// Maps a leaf's prefix (the high KEY_BITS - BITS_PER_LEVEL bits of any key
// it stores) directly to the leaf holding it, so get/remove on a
// recently-touched prefix skip the trie walk entirely. Buckets hold a
// chain head; the chain itself runs through LeafNode.hashNext — an
// intrusive link, not a separately-allocated cons cell.
//
// Grounded on quantumqueue64's buckets []Handle head array chained through
// a field embedded in the node struct itself (there: node.next threading a
// tick bucket's LIFO list; here: leafNode.hashNext threading a hash
// bucket's chain). Same device, applied to a hash of the prefix instead of
// a tick value.
// ─────────────────────────────────────────────────────────────────────────

// hashPrefix is the stable 64-bit mix the spec treats as an opaque hasher
// (§4.5, §1: "hashing library choice ... opaque 64-bit hasher for u32").
// Adapted from pairidx's xxhash-style finalizer mix, reduced from a
// byte-buffer hash down to a single 26-bit-prefix avalanche.
func hashPrefix(prefix uint32) uint64 {
	h := uint64(prefix) * 0x9E3779B185EBCA87
	h ^= h >> 33
	h *= 0xC2B2AE3D27D4EB4F
	h ^= h >> 29
	return h
}

func bucketFor(prefix uint32) uint32 {
	return uint32(hashPrefix(prefix)) & (hashTableSize - 1)
}

// hashInsert prepends leaf to the chain for its prefix's bucket (§4.5:
// "on leaf creation, prepend to the chain").
func (g *Glass) hashInsert(li leafIndex) {
	leaf := g.leaves.get(uint32(li))
	b := bucketFor(leaf.prefix)
	leaf.hashNext = g.hashBuckets[b]
	g.hashBuckets[b] = li
}

// hashRemove unlinks leaf from its bucket's chain (§4.5: "on destruction,
// unlink").
func (g *Glass) hashRemove(li leafIndex) {
	leaf := g.leaves.get(uint32(li))
	b := bucketFor(leaf.prefix)

	cur := g.hashBuckets[b]
	if cur == li {
		g.hashBuckets[b] = leaf.hashNext
		leaf.hashNext = nilLeaf
		return
	}
	for cur != nilLeaf {
		node := g.leaves.get(uint32(cur))
		if node.hashNext == li {
			node.hashNext = leaf.hashNext
			leaf.hashNext = nilLeaf
			return
		}
		cur = node.hashNext
	}
}

// hashLookup finds the live leaf whose prefix matches, or reports miss.
// This is the O(1) fast path for get/remove (§4.5).
func (g *Glass) hashLookup(prefix uint32) (leafIndex, bool) {
	b := bucketFor(prefix)
	cur := g.hashBuckets[b]
	for cur != nilLeaf {
		node := g.leaves.get(uint32(cur))
		if node.prefix == prefix {
			return cur, true
		}
		cur = node.hashNext
	}
	return nilLeaf, false
}
