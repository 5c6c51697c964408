package catalog

import "fmt"

// Catalog is a validated, declaration-ordered set of entities.
type Catalog struct {
	entities []Entity
	index    map[Ref]int
}

// New builds a catalog, rejecting malformed entities and duplicate refs.
func New(entities ...Entity) (*Catalog, error) {
	c := &Catalog{
		entities: make([]Entity, 0, len(entities)),
		index:    make(map[Ref]int, len(entities)),
	}
	for _, e := range entities {
		if err := c.add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Merge concatenates catalogs in order. Duplicate refs are rejected.
func Merge(catalogs ...*Catalog) (*Catalog, error) {
	var all []Entity
	for _, c := range catalogs {
		if c == nil {
			continue
		}
		all = append(all, c.entities...)
	}
	return New(all...)
}

func (c *Catalog) add(e Entity) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid entity: %w", err)
	}
	ref := e.Ref()
	if _, exists := c.index[ref]; exists {
		return fmt.Errorf("duplicate entity %s", ref)
	}
	c.index[ref] = len(c.entities)
	c.entities = append(c.entities, e)
	return nil
}

// Entities returns the entities in declaration order.
func (c *Catalog) Entities() []Entity {
	out := make([]Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// Lookup returns the entity with the given ref.
func (c *Catalog) Lookup(ref Ref) (Entity, bool) {
	i, ok := c.index[ref]
	if !ok {
		return Entity{}, false
	}
	return c.entities[i], true
}

// Position returns the declaration index of ref, or -1.
func (c *Catalog) Position(ref Ref) int {
	if i, ok := c.index[ref]; ok {
		return i
	}
	return -1
}

// Len returns the number of entities.
func (c *Catalog) Len() int {
	return len(c.entities)
}
