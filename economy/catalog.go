// Package economy provides an in-memory, read-only item catalog that
// satisfies the lookups the inspect codec needs.
package economy

import (
	"fmt"

	"github.com/0xAozora/cs2-inspect-link/types"
)

type optional struct {
	set bool
	v   uint32
}

func opt(p *uint32) optional {
	if p == nil {
		return optional{}
	}
	return optional{set: true, v: *p}
}

type defKey struct {
	def   uint32
	index optional
	tint  optional
}

type indexKey struct {
	t     types.ItemType
	index uint32
}

// Catalog is an immutable snapshot of the item catalog. It is safe for
// concurrent use.
type Catalog struct {
	items []types.CatalogItem

	byID    map[uint32]*types.CatalogItem
	byDef   map[defKey]*types.CatalogItem
	byIndex map[indexKey]*types.CatalogItem
	defs    map[uint32]types.ItemType
}

// New indexes items. Ids must be unique; when several items share a
// definition, index and tint, or a type and index, the first one wins.
func New(items []types.CatalogItem) (*Catalog, error) {
	c := &Catalog{
		items:   make([]types.CatalogItem, len(items)),
		byID:    make(map[uint32]*types.CatalogItem, len(items)),
		byDef:   make(map[defKey]*types.CatalogItem, len(items)),
		byIndex: make(map[indexKey]*types.CatalogItem),
		defs:    make(map[uint32]types.ItemType),
	}
	copy(c.items, items)

	for i := range c.items {
		item := &c.items[i]

		if _, ok := c.byID[item.ID]; ok {
			return nil, fmt.Errorf("duplicate item id %d", item.ID)
		}
		c.byID[item.ID] = item

		key := defKey{def: item.Def, index: opt(item.Index), tint: opt(item.Tint)}
		if _, ok := c.byDef[key]; !ok {
			c.byDef[key] = item
		}

		if item.Index != nil {
			key := indexKey{t: item.Type, index: *item.Index}
			if _, ok := c.byIndex[key]; !ok {
				c.byIndex[key] = item
			}
		}

		if _, ok := c.defs[item.Def]; !ok {
			c.defs[item.Def] = item.Type
		}
	}

	return c, nil
}

func (c *Catalog) Get(id uint32) (*types.CatalogItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Find(def uint32, index, tint *uint32) (*types.CatalogItem, bool) {
	item, ok := c.byDef[defKey{def: def, index: opt(index), tint: opt(tint)}]
	return item, ok
}

func (c *Catalog) FindByIndex(t types.ItemType, index uint32) (*types.CatalogItem, bool) {
	item, ok := c.byIndex[indexKey{t: t, index: index}]
	return item, ok
}

func (c *Catalog) TypeOf(def uint32) (types.ItemType, bool) {
	t, ok := c.defs[def]
	return t, ok
}

// Items returns the catalog entries in load order. The slice must not be
// modified.
func (c *Catalog) Items() []types.CatalogItem {
	return c.items
}

func (c *Catalog) Len() int {
	return len(c.items)
}
