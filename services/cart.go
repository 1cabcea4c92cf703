package services

import "legrazie-orders/models"

// Cart accumulates confirmed items for one session. No dedup: the same menu
// item may appear as several entries with different customizations.
type Cart struct {
	entries []models.CartEntry
}

func (c *Cart) AddItem(item models.MenuItem, cust models.Customization) {
	c.entries = append(c.entries, models.CartEntry{Item: item, Customizations: cust})
}

// RemoveItem removes the entry at the given position. Out-of-range indexes
// are a no-op.
func (c *Cart) RemoveItem(index int) {
	if index < 0 || index >= len(c.entries) {
		return
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
}

// Total is the sum of entry prices. Customizations carry no surcharge.
func (c *Cart) Total() float64 {
	var total float64
	for _, e := range c.entries {
		total += e.Item.Price
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) Entries() []models.CartEntry {
	return c.entries
}

// Snapshot reduces the cart to the order-item form persisted with the order.
func (c *Cart) Snapshot() []models.OrderItem {
	items := make([]models.OrderItem, len(c.entries))
	for i, e := range c.entries {
		items[i] = models.OrderItem{
			ID:             e.Item.ID,
			Name:           e.Item.Name,
			Price:          e.Item.Price,
			Customizations: e.Customizations,
		}
	}
	return items
}

// Clear empties the cart after a submitted order.
func (c *Cart) Clear() {
	c.entries = nil
}
