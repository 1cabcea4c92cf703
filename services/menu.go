package services

import (
	"context"
	"fmt"

	"legrazie-orders/db"
	"legrazie-orders/models"
)

// Catalog is the read-only menu loaded once at startup.
type Catalog struct {
	items []models.MenuItem
	byID  map[string]models.MenuItem
}

func LoadCatalog(ctx context.Context) (*Catalog, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), price, category, COALESCE(ingredients, '{}'::text[])
		FROM menu_items
		ORDER BY category, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	defer rows.Close()

	c := &Catalog{byID: make(map[string]models.MenuItem)}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Ingredients); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		c.items = append(c.items, item)
		c.byID[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCatalog builds a catalog from a fixed item list.
func NewCatalog(items []models.MenuItem) *Catalog {
	c := &Catalog{items: items, byID: make(map[string]models.MenuItem, len(items))}
	for _, item := range items {
		c.byID[item.ID] = item
	}
	return c
}

func (c *Catalog) Items() []models.MenuItem {
	return c.items
}

func (c *Catalog) ByID(id string) (models.MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) ByCategory(category string) []models.MenuItem {
	var items []models.MenuItem
	for _, item := range c.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

func (c *Catalog) Len() int {
	return len(c.items)
}
