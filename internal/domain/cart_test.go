package domain_test

import (
	"testing"

	"neotech/internal/domain"
)

func TestCartTotalRecomputed(t *testing.T) {
	c := domain.Cart{
		{ProductID: 1, Name: "NeoPhone X1", Price: 250000, Qty: 2},
		{ProductID: 4, Name: "BassPods Wireless", Price: 68000, Qty: 3},
	}
	want := int64(250000*2 + 68000*3)
	if got := c.Total(); got != want {
		t.Fatalf("want total %d, got %d", want, got)
	}
	// mutate a copy's qty and recompute
	c[0].Qty = 1
	if got := c.Total(); got != 250000+68000*3 {
		t.Fatalf("total not recomputed fresh, got %d", got)
	}
}

func TestCartAddMergesSameProduct(t *testing.T) {
	var c domain.Cart
	line := domain.CartLine{ProductID: 5, Name: "GameBox One S", Price: 420000}
	c = c.Add(line, 1)
	c = c.Add(line, 2)
	if len(c) != 1 {
		t.Fatalf("want one line, got %d", len(c))
	}
	if c[0].Qty != 3 {
		t.Fatalf("want qty 3, got %d", c[0].Qty)
	}
}

func TestCartAddClampsQty(t *testing.T) {
	var c domain.Cart
	c = c.Add(domain.CartLine{ProductID: 2, Price: 310000}, 0)
	if c[0].Qty != 1 {
		t.Fatalf("want qty clamped to 1, got %d", c[0].Qty)
	}
	c = c.Update(2, -4)
	if c[0].Qty != 1 {
		t.Fatalf("want qty clamped to 1 on update, got %d", c[0].Qty)
	}
}

func TestCartUpdateMissingProductIsNoop(t *testing.T) {
	c := domain.Cart{{ProductID: 1, Price: 250000, Qty: 2}}
	got := c.Update(99, 5)
	if len(got) != 1 || got[0].ProductID != 1 || got[0].Qty != 2 {
		t.Fatalf("cart changed by update on absent product: %+v", got)
	}
}

func TestCartAddDoesNotMutateReceiver(t *testing.T) {
	orig := domain.Cart{{ProductID: 1, Price: 100, Qty: 1}}
	_ = orig.Add(domain.CartLine{ProductID: 1, Price: 100}, 5)
	if orig[0].Qty != 1 {
		t.Fatalf("Add mutated the original cart: %+v", orig)
	}
}

func TestCartClear(t *testing.T) {
	c := domain.Cart{{ProductID: 1, Price: 100, Qty: 1}}
	if got := c.Clear(); !got.Empty() || got.Total() != 0 {
		t.Fatalf("clear left items behind: %+v", got)
	}
}
