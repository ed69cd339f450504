package glass

// ─────────────────────────────────────────────────────────────────────────
// Node handles (§9: "Cyclic references ... do not use owning pointers;
// store stable arena indices").
//
// internalIndex and leafIndex are plain 32-bit arena slots, one per arena.
// nodeIndex is the tagged handle stored in InternalNode.children, where a
// slot may address either arena: bit 31 distinguishes leaf from internal,
// following §9's "implementers choosing 64-bit handles should still pack
// tag bits" and the teacher's own Handle uint32 discipline
// (quantumqueue64.Handle).
// ─────────────────────────────────────────────────────────────────────────

type internalIndex uint32
type leafIndex uint32
type nodeIndex uint32

const nilInternal internalIndex = ^internalIndex(0)
const nilLeaf leafIndex = ^leafIndex(0)
const nilNode nodeIndex = ^nodeIndex(0)

const leafTag nodeIndex = 1 << 31

func leafRef(i leafIndex) nodeIndex         { return nodeIndex(i) | leafTag }
func internalRef(i internalIndex) nodeIndex { return nodeIndex(i) }

func (n nodeIndex) isNil() bool  { return n == nilNode }
func (n nodeIndex) isLeaf() bool { return n&leafTag != 0 }
func (n nodeIndex) leaf() leafIndex {
	return leafIndex(n &^ leafTag)
}
func (n nodeIndex) internal() internalIndex {
	return internalIndex(n)
}
