package cats

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID = errors.New("duplicate cat id")
	ErrNotFound    = errors.New("not found")
)

// Catalog es el snapshot inmutable de gatos, compartido entre requests sin locks.
// Nadie lo modifica después de NewCatalog; todos los accesos devuelven copias.
type Catalog struct {
	items []Cat
	byID  map[int]int
}

func NewCatalog(items []Cat) (*Catalog, error) {
	c := &Catalog{
		items: make([]Cat, 0, len(items)),
		byID:  make(map[int]int, len(items)),
	}

	for _, it := range items {
		if _, exists := c.byID[it.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it.clone())
	}

	return c, nil
}

// All devuelve todos los gatos en el orden original.
func (c *Catalog) All() []Cat {
	out := make([]Cat, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.clone())
	}
	return out
}

func (c *Catalog) ByID(id int) (Cat, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Cat{}, false
	}
	return c.items[i].clone(), true
}

func (c *Catalog) Len() int { return len(c.items) }
