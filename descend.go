package glass

// ─────────────────────────────────────────────────────────────────────────
// Structural descent helpers (§4.3, §4.4, §4.6)
//
// These build and tear down the path from root to leaf: creating internal
// nodes and leaves lazily (insertDescend), threading a new leaf into the
// key-ordered leaf list (predecessorOf/successorOf), maintaining subtree
// counts on every level from a leaf up to the root (adjustAncestors), and
// pruning empty structure back down to, but not including, the root
// (destroyLeaf/pruneEmptyAncestors — invariant I9).
//
// Grounded on quantumqueue64's hierarchical descend/ascend logic in
// linkAtHead/unlink, generalized from a fixed 3-level group/lane/bucket
// hierarchy to a recursive depth-1-level internal-node chain.
// ─────────────────────────────────────────────────────────────────────────

func (g *Glass) ensureRoot() internalIndex {
	if g.root == nilInternal {
		idx := g.internals.borrow()
		*g.internal(internalIndex(idx)) = newInternalNode(nilInternal, 0)
		g.root = internalIndex(idx)
	}
	return g.root
}

func (g *Glass) createInternalChild(parent internalIndex, slot uint8) internalIndex {
	idx := g.internals.borrow()
	*g.internal(internalIndex(idx)) = newInternalNode(parent, slot)
	return internalIndex(idx)
}

// createLeaf allocates a fresh leaf for key k under (parent, slot) and
// threads it into the key-ordered leaf list and the hash cache. The leaf
// starts empty (mask == 0); the caller sets the first value.
func (g *Glass) createLeaf(k uint32, parent internalIndex, slot uint8) leafIndex {
	idx := g.leaves.borrow()
	*g.leaf(leafIndex(idx)) = newLeafNode(leafPrefix(k), parent, slot)
	li := leafIndex(idx)

	pred, hasPred := g.predecessorOf(parent, slot)
	succ, hasSucc := g.successorOf(parent, slot)

	leaf := g.leaf(li)
	if hasPred {
		leaf.prev = pred
		g.leaf(pred).next = li
	} else {
		leaf.prev = nilLeaf
		g.head = li
	}
	if hasSucc {
		leaf.next = succ
		g.leaf(succ).prev = li
	} else {
		leaf.next = nilLeaf
		g.tail = li
	}

	g.hashInsert(li)
	return li
}

// rightmostLeafUnder follows the highest-indexed child at every level
// starting from ref until it reaches a leaf.
func (g *Glass) rightmostLeafUnder(ref nodeIndex) leafIndex {
	for {
		if ref.isLeaf() {
			return ref.leaf()
		}
		node := g.internal(ref.internal())
		idx, ok := g.ops.lastSet(node.mask)
		debugAssert(ok, "rightmostLeafUnder: non-root internal node with empty mask")
		ref = node.children[idx]
	}
}

func (g *Glass) leftmostLeafUnder(ref nodeIndex) leafIndex {
	for {
		if ref.isLeaf() {
			return ref.leaf()
		}
		node := g.internal(ref.internal())
		idx, ok := g.ops.firstSet(node.mask)
		debugAssert(ok, "leftmostLeafUnder: non-root internal node with empty mask")
		ref = node.children[idx]
	}
}

// predecessorOf finds the leaf holding the greatest key strictly less
// than the key that would occupy (parent, slot), by walking up until a
// sibling subtree to the left exists, then descending its rightmost edge.
func (g *Glass) predecessorOf(parent internalIndex, slot uint8) (leafIndex, bool) {
	cur := parent
	curSlot := slot
	for {
		node := g.internal(cur)
		if idx, ok := g.ops.prevSetBefore(node.mask, int(curSlot)); ok {
			return g.rightmostLeafUnder(node.children[idx]), true
		}
		if node.parent == nilInternal {
			return nilLeaf, false
		}
		curSlot = node.parentSlot
		cur = node.parent
	}
}

// successorOf mirrors predecessorOf on the other side.
func (g *Glass) successorOf(parent internalIndex, slot uint8) (leafIndex, bool) {
	cur := parent
	curSlot := slot
	for {
		node := g.internal(cur)
		if idx, ok := g.ops.nextSetAfter(node.mask, int(curSlot)); ok {
			return g.leftmostLeafUnder(node.children[idx]), true
		}
		if node.parent == nilInternal {
			return nilLeaf, false
		}
		curSlot = node.parentSlot
		cur = node.parent
	}
}

// adjustAncestors walks from (start, startSlot) up to the root, adjusting
// every level's record of its child's subtree count by delta, maintaining
// invariant I1 at every level in one upward pass.
func (g *Glass) adjustAncestors(start internalIndex, startSlot uint8, delta int32) {
	cur := start
	slot := startSlot
	for {
		node := g.internal(cur)
		node.adjustChildCount(slot, delta)
		if node.parent == nilInternal {
			return
		}
		slot = node.parentSlot
		cur = node.parent
	}
}

// insertDescend returns the leaf for key k, creating internal nodes and
// the leaf itself as needed. Only called after a hash-cache miss, so the
// leaf this produces is always new — see hashLookup's invariant I5:
// every live leaf is hashed, so a miss means no leaf for this prefix
// exists yet.
//
// Reuses the cached path's shared prefix levels (§4.6) instead of
// re-walking from root when the new key shares high-order digits with
// the previously touched one.
func (g *Glass) insertDescend(k uint32) leafIndex {
	cur := g.ensureRoot()

	var nodesPath [depth - 1]internalIndex
	var digitsPath [depth - 1]uint8

	reuseLevels := 0
	if n, ok := g.path.reusablePrefixLevels(k); ok {
		reuseLevels = n
	}
	if reuseLevels > depth-2 {
		// A full prefix match (all internal digits shared) would mean the
		// leaf already exists, contradicting the hash-cache miss that got
		// us here; clamp defensively rather than trust a stale cache.
		reuseLevels = depth - 2
	}

	for l := 0; l < reuseLevels; l++ {
		nodesPath[l] = g.path.nodes[l]
		digitsPath[l] = digitAt(k, l)
	}
	if reuseLevels > 0 {
		lastNode := g.internal(nodesPath[reuseLevels-1])
		cur = lastNode.children[digitsPath[reuseLevels-1]].internal()
	}

	var newLeaf leafIndex
	for level := reuseLevels; level <= depth-2; level++ {
		g.traversalSteps++
		d := digitAt(k, level)
		nodesPath[level] = cur
		digitsPath[level] = d
		node := g.internal(cur)

		if level == depth-2 {
			newLeaf = g.createLeaf(k, cur, d)
			node.setChild(d, leafRef(newLeaf), 0)
			break
		}

		if node.hasChild(d) {
			cur = node.children[d].internal()
			continue
		}
		child := g.createInternalChild(cur, d)
		node.setChild(d, internalRef(child), 0)
		cur = child
	}

	g.path.record(k, nodesPath, digitsPath, newLeaf)
	return newLeaf
}

// destroyLeaf unlinks li from the leaf list and hash cache, clears its
// slot from its parent, and prunes any ancestor internal node left empty
// by that removal, stopping at (but not removing) the root (§4.4, I9).
func (g *Glass) destroyLeaf(li leafIndex) {
	leaf := g.leaf(li)
	debugAssert(leaf.count() == 0, "destroyLeaf called on a leaf still holding %d entries", leaf.count())

	if leaf.prev != nilLeaf {
		g.leaf(leaf.prev).next = leaf.next
	} else {
		g.head = leaf.next
	}
	if leaf.next != nilLeaf {
		g.leaf(leaf.next).prev = leaf.prev
	} else {
		g.tail = leaf.prev
	}

	g.hashRemove(li)

	parent := leaf.parent
	slot := leaf.parentSlot
	g.leaves.release(uint32(li))

	g.internal(parent).clearChild(slot)
	g.pruneEmptyAncestors(parent)
}

func (g *Glass) pruneEmptyAncestors(start internalIndex) {
	cur := start
	for cur != g.root && g.internal(cur).empty() {
		node := g.internal(cur)
		parent := node.parent
		slot := node.parentSlot
		g.internal(parent).clearChild(slot)
		g.internals.release(uint32(cur))
		cur = parent
	}
}

func (g *Glass) touch(prefix uint32) {
	g.lastTouched = prefix
	g.lastTouchedValid = true
}
