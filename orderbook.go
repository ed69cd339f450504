package glass

// ─────────────────────────────────────────────────────────────────────────
// Order-book sweep operations (§4.7)
//
// BuyShares/ComputeBuyCost walk the leaf list from head (lowest price)
// consuming quantity level by level — the ascending-price sweep a market
// buy order performs against a limit-order book. Grounded on the
// teacher's router package's bucket-by-bucket arbitrage-path walk
// (ArbPath/DeltaBucket), generalized from walking a fixed hop sequence to
// walking the leaf list until the requested quantity is exhausted.
// ─────────────────────────────────────────────────────────────────────────

// ComputeBuyCost reports the total cost of buying qty shares against the
// book without modifying it.
func (g *Glass) ComputeBuyCost(qty uint64) uint64 {
	var cost uint64
	cur := g.head
	for cur != nilLeaf && qty > 0 {
		leaf := g.leaf(cur)
		m := leaf.mask
		for qty > 0 {
			slot, ok := g.ops.firstSet(m)
			if !ok {
				break
			}
			price := leaf.key(uint8(slot))
			avail := leaf.values[slot]
			consumed := avail
			if consumed > qty {
				consumed = qty
			}
			cost += uint64(price) * consumed
			qty -= consumed
			m &^= uint64(1) << slot
		}
		cur = leaf.next
	}
	return cost
}

// BuyShares consumes up to qty shares from the lowest available prices
// upward, depleting and removing price levels (and leaves) as it goes,
// and returns the total cost actually paid.
func (g *Glass) BuyShares(qty uint64) uint64 {
	var cost uint64
	cur := g.head
	for cur != nilLeaf && qty > 0 {
		leaf := g.leaf(cur)
		next := leaf.next

		for qty > 0 {
			slot, ok := g.ops.firstSet(leaf.mask)
			if !ok {
				break
			}
			price := leaf.key(uint8(slot))
			avail := leaf.values[slot]
			consumed := avail
			if consumed > qty {
				consumed = qty
			}
			cost += uint64(price) * consumed
			qty -= consumed

			if consumed == avail {
				leaf.mask &^= uint64(1) << slot
				g.adjustAncestors(leaf.parent, leaf.parentSlot, -1)
				g.size--
			} else {
				leaf.values[slot] -= consumed
			}
		}

		if leaf.empty() {
			g.destroyLeaf(cur)
			g.path.invalidate()
		}
		cur = next
	}
	return cost
}

// RemoveByIndex removes the i-th smallest (key, value) in the hot trie,
// returning it and whether an entry existed at that index.
func (g *Glass) RemoveByIndex(i uint32) (uint32, uint64, bool) {
	k, v, ok := g.Nth(i)
	if !ok {
		return 0, 0, false
	}
	g.Remove(k)
	return k, v, true
}
