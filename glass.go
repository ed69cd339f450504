// Package glass implements the Glass container: an ordered map from
// 32-bit price keys to 64-bit quantity values, built as a hybrid
// radix-trie / doubly-linked-leaf-list / intrusive hash-table structure
// specialised for the access patterns of a client-side limit-order book
// (strong sequential locality, a bounded hot working set around the best
// bid/ask, a long cold tail).
//
// Glass is not safe for concurrent use and performs no I/O; every public
// method takes exclusive access to the receiver for its duration (§5).
package glass

// Glass is the container described in §3. All mutation and query
// operations are synchronous and single-threaded; see package doc and §5.
type Glass struct {
	root internalIndex // nilInternal when empty
	size uint32

	head, tail leafIndex // least/greatest populated leaf

	internals *arena[internalNode]
	leaves    *arena[leafNode]

	hashBuckets [hashTableSize]leafIndex

	path cachedPath

	cold map[uint32]uint64 // preempted entries, not currently in the trie

	// lastTouched tracks the prefix of the most recently accessed leaf,
	// used by the preemption policy to pick a victim on the side farthest
	// from current activity (§4.8).
	lastTouched      uint32
	lastTouchedValid bool
	thres            uint32

	ops bitOps

	// traversalSteps counts internal-node levels actually walked by
	// insertDescend (excluding levels served from the cached path),
	// exposed so cache-path effectiveness is observable without timing
	// (§4.6, §8 S6).
	traversalSteps uint64
}

// TraversalSteps reports the running total of internal-node levels
// insertDescend has had to walk rather than serve from the cached path.
func (g *Glass) TraversalSteps() uint64 {
	return g.traversalSteps
}

// New returns an empty Glass, ready for use.
func New() *Glass {
	g := &Glass{
		root:      nilInternal,
		head:      nilLeaf,
		tail:      nilLeaf,
		internals: newArena[internalNode](arenaCapacity),
		leaves:    newArena[leafNode](arenaCapacity),
		cold:      make(map[uint32]uint64),
		ops:       selectBitOps(),
	}
	for i := range g.hashBuckets {
		g.hashBuckets[i] = nilLeaf
	}
	return g
}

// Len reports the total logical size: entries live in the trie plus
// entries preempted into the cold map (invariant I6).
func (g *Glass) Len() uint32 {
	return g.size
}

// Cap reports the arena capacity backing both node pools, mirroring the
// teacher's Size()/Empty() metadata accessors (§12).
func (g *Glass) Cap() uint32 {
	return arenaCapacity
}

// Clear releases every node back to its arena free list and empties the
// hot trie, the cold map, the hash buckets, and the cached path, without
// shrinking backing storage (§5, §12). Grounded on quantumqueue64.New's
// freelist-(re)construction loop.
func (g *Glass) Clear() {
	g.internals.reset()
	g.leaves.reset()
	g.root = nilInternal
	g.head = nilLeaf
	g.tail = nilLeaf
	g.size = 0
	for i := range g.hashBuckets {
		g.hashBuckets[i] = nilLeaf
	}
	g.path.invalidate()
	g.cold = make(map[uint32]uint64)
	g.lastTouchedValid = false
	g.thres = 0
	g.traversalSteps = 0
}

func (g *Glass) internal(i internalIndex) *internalNode {
	return g.internals.get(uint32(i))
}

func (g *Glass) leaf(i leafIndex) *leafNode {
	return g.leaves.get(uint32(i))
}

func leafPrefix(k uint32) uint32 {
	return k >> bitsPerLevel
}

func leafSlot(k uint32) uint8 {
	return uint8(k & (fanout - 1))
}
