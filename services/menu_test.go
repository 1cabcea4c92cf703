package services

import (
	"testing"

	"legrazie-orders/models"
)

func TestCatalogLookups(t *testing.T) {
	c := NewCatalog([]models.MenuItem{margherita, caprese})

	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}

	item, ok := c.ByID("margherita")
	if !ok || item.Price != 8.00 {
		t.Errorf("ByID(margherita) = %+v, %v", item, ok)
	}
	if _, ok := c.ByID("quattro-stagioni"); ok {
		t.Error("ByID found an item that is not on the menu")
	}

	pizze := c.ByCategory(models.CategoryPizze)
	if len(pizze) != 1 || pizze[0].ID != "margherita" {
		t.Errorf("ByCategory(pizze) = %+v", pizze)
	}
	if got := c.ByCategory(models.CategoryDolci); got != nil {
		t.Errorf("ByCategory(dolci) = %+v, want none", got)
	}
}
