package services

import (
	"testing"

	"legrazie-orders/models"
)

var (
	margherita = models.MenuItem{ID: "margherita", Name: "Margherita", Price: 8.00, Category: models.CategoryPizze, Ingredients: []string{"Pomodoro", "Mozzarella", "Basilico"}}
	caprese    = models.MenuItem{ID: "caprese", Name: "Caprese", Price: 6.50, Category: models.CategoryAntipasti, Ingredients: []string{"Mozzarella di bufala", "Pomodoro", "Basilico"}}
)

func TestCartAddAndTotal(t *testing.T) {
	var c Cart
	if c.Total() != 0 {
		t.Errorf("empty cart total = %v, want 0", c.Total())
	}

	c.AddItem(margherita, models.Customization{})
	c.AddItem(caprese, models.Customization{Removed: []string{"Basilico"}})
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	if got := c.Total(); got != 14.50 {
		t.Errorf("total = %v, want 14.50", got)
	}

	// Same item twice stays two distinct entries.
	c.AddItem(margherita, models.Customization{Added: []string{"Peperoncino"}})
	if c.Len() != 3 {
		t.Errorf("len = %d, want 3", c.Len())
	}
	if got := c.Total(); got != 22.50 {
		t.Errorf("total = %v, want 22.50", got)
	}
}

func TestCartRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(margherita, models.Customization{})
	c.AddItem(caprese, models.Customization{})

	c.RemoveItem(0)
	if c.Len() != 1 || c.Entries()[0].Item.ID != "caprese" {
		t.Fatalf("remove by index failed, entries = %+v", c.Entries())
	}

	// Out-of-range removals are silent no-ops.
	for _, idx := range []int{-1, 1, 99} {
		c.RemoveItem(idx)
		if c.Len() != 1 {
			t.Errorf("RemoveItem(%d) changed cart, len = %d", idx, c.Len())
		}
	}
	if got := c.Total(); got != 6.50 {
		t.Errorf("total after no-op removals = %v, want 6.50", got)
	}
}

func TestCartSnapshot(t *testing.T) {
	var c Cart
	cust := models.Customization{Removed: []string{"Basilico"}, Added: []string{"Extra mozzarella"}}
	c.AddItem(margherita, cust)

	items := c.Snapshot()
	if len(items) != 1 {
		t.Fatalf("snapshot len = %d, want 1", len(items))
	}
	it := items[0]
	if it.ID != "margherita" || it.Name != "Margherita" || it.Price != 8.00 {
		t.Errorf("snapshot item = %+v", it)
	}
	if len(it.Customizations.Removed) != 1 || it.Customizations.Removed[0] != "Basilico" {
		t.Errorf("snapshot removed = %v", it.Customizations.Removed)
	}
	if len(it.Customizations.Added) != 1 || it.Customizations.Added[0] != "Extra mozzarella" {
		t.Errorf("snapshot added = %v", it.Customizations.Added)
	}
}

func TestCartClear(t *testing.T) {
	var c Cart
	c.AddItem(margherita, models.Customization{})
	c.Clear()
	if c.Len() != 0 || c.Total() != 0 {
		t.Errorf("cleared cart: len = %d, total = %v", c.Len(), c.Total())
	}
}
