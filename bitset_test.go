package glass

import "testing"

// Both bit-set implementations must agree on every primitive for every
// mask/index pair exercised here — selectBitOps hides the choice from
// callers, so hw* and sw* are only trustworthy if they're interchangeable.

func TestBitsetFirstLastSet(t *testing.T) {
	cases := []struct {
		mask      uint64
		wantFirst int
		wantOk    bool
		wantLast  int
	}{
		{0, 0, false, 0},
		{1, 0, true, 0},
		{1 << 63, 63, true, 63},
		{0b1010, 1, true, 3},
		{^uint64(0), 0, true, 63},
	}
	for _, c := range cases {
		for name, ops := range map[string]bitOps{"hw": hwBitOps, "sw": swBitOps} {
			gotFirst, gotOk := ops.firstSet(c.mask)
			if gotOk != c.wantOk || (c.wantOk && gotFirst != c.wantFirst) {
				t.Errorf("%s.firstSet(%#x) = (%d,%v), want (%d,%v)", name, c.mask, gotFirst, gotOk, c.wantFirst, c.wantOk)
			}
			gotLast, gotOk2 := ops.lastSet(c.mask)
			if gotOk2 != c.wantOk || (c.wantOk && gotLast != c.wantLast) {
				t.Errorf("%s.lastSet(%#x) = (%d,%v), want (%d,%v)", name, c.mask, gotLast, gotOk2, c.wantLast, c.wantOk)
			}
		}
	}
}

func TestBitsetNextPrevSetAfterBefore(t *testing.T) {
	mask := uint64(0b0010_0100_1001) // bits 0,3,6,9 set
	for name, ops := range map[string]bitOps{"hw": hwBitOps, "sw": swBitOps} {
		if got, ok := ops.nextSetAfter(mask, 0); !ok || got != 3 {
			t.Errorf("%s.nextSetAfter(mask,0) = (%d,%v), want (3,true)", name, got, ok)
		}
		if got, ok := ops.nextSetAfter(mask, 9); ok {
			t.Errorf("%s.nextSetAfter(mask,9) = (%d,%v), want no-match", name, got, ok)
		}
		if got, ok := ops.prevSetBefore(mask, 9); !ok || got != 6 {
			t.Errorf("%s.prevSetBefore(mask,9) = (%d,%v), want (6,true)", name, got, ok)
		}
		if got, ok := ops.prevSetBefore(mask, 0); ok {
			t.Errorf("%s.prevSetBefore(mask,0) = (%d,%v), want no-match", name, got, ok)
		}
	}
}

func TestBitsetRankBelowPopcount(t *testing.T) {
	mask := uint64(0b1011_0110)
	want := swPopcount(mask & 0x0F) // below index 4
	for name, ops := range map[string]bitOps{"hw": hwBitOps, "sw": swBitOps} {
		if got := ops.rankBelow(mask, 4); got != want {
			t.Errorf("%s.rankBelow(mask,4) = %d, want %d", name, got, want)
		}
		if got := ops.popcount(mask); got != 5 {
			t.Errorf("%s.popcount(mask) = %d, want 5", name, got)
		}
	}
}

func TestBitsetExhaustiveAgreement(t *testing.T) {
	masks := []uint64{0, 1, 2, 0xFF, 0xFF00, 1 << 62, 1<<62 | 1, ^uint64(0), 0xAAAAAAAAAAAAAAAA}
	for _, m := range masks {
		for i := 0; i <= 63; i++ {
			hf, hok := hwFirstSet(m)
			sf, sok := swFirstSet(m)
			if hf != sf || hok != sok {
				t.Fatalf("firstSet mismatch mask=%#x: hw=(%d,%v) sw=(%d,%v)", m, hf, hok, sf, sok)
			}
			hn, hnok := hwNextSetAfter(m, i)
			sn, snok := swNextSetAfter(m, i)
			if hn != sn || hnok != snok {
				t.Fatalf("nextSetAfter mismatch mask=%#x i=%d: hw=(%d,%v) sw=(%d,%v)", m, i, hn, hnok, sn, snok)
			}
			hp, hpok := hwPrevSetBefore(m, i)
			sp, spok := swPrevSetBefore(m, i)
			if hp != sp || hpok != spok {
				t.Fatalf("prevSetBefore mismatch mask=%#x i=%d: hw=(%d,%v) sw=(%d,%v)", m, i, hp, hpok, sp, spok)
			}
			if hwRankBelow(m, i) != swRankBelow(m, i) {
				t.Fatalf("rankBelow mismatch mask=%#x i=%d", m, i)
			}
		}
	}
}
