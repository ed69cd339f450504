package glass

// constants.go — compile-time tunables for the trie layout and the
// preemption/hash-cache subsystems. Mirrors the teacher's constants.go:
// every constant carries a one-line sizing justification instead of a
// runtime config surface (§10.3 — Glass has no config/env/CLI surface).

const (
	// bitsPerLevel is the digit width each trie level branches on.
	// 6 bits gives a 64-way fanout, matching the 64-bit occupancy masks
	// used throughout (§3: BITS_PER_LEVEL = 6).
	bitsPerLevel = 6

	// fanout is the branching factor per internal node and the slot count
	// per leaf: 2^bitsPerLevel.
	fanout = 1 << bitsPerLevel

	// keyBits is the full width of a price key (§3: KEY_BITS = 32).
	keyBits = 32

	// depth is the number of 6-bit digits a 32-bit key decomposes into,
	// rounded up: ceil(32/6) = 6. The last digit addresses a leaf slot;
	// the remaining five address internal-node levels.
	depth = 6

	// maxSize bounds the hot (in-trie) working set so it stays small
	// enough to live in cache even under arbitrary key traffic (§3:
	// MAX_SIZE = 4096).
	maxSize = 4096

	// arenaCapacity sizes both the internal-node and leaf-node arenas.
	// 16384 covers MAX_SIZE entries even in the pathological case of one
	// leaf per entry (4096 leaves) plus five levels of mostly-sparse
	// internal nodes above them, with headroom for cold/hot churn before
	// prune catches up (§3: ARENA_CAPACITY = 16384).
	arenaCapacity = 16384

	// hashTableSize is a power of two sized for MAX_SIZE/fanout leaves
	// (64 at full occupancy) at a 4x load-factor headroom, following the
	// teacher's own "double capacity for load-factor headroom" sizing
	// idiom in its Robin Hood hash table constructor.
	hashTableSize = 256
)
