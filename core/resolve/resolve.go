package resolve

import (
	"sort"

	"inventory-seeder/core/catalog"
)

// Plan is the resolved processing order of a catalog.
type Plan struct {
	// Order lists the entities so that in-catalog parents come first.
	Order []catalog.Entity

	// Depth maps each entity to its dependency depth (0 = no in-catalog parent).
	Depth map[catalog.Ref]int

	// External lists parent refs not defined in the catalog, in first-use order.
	// They are resolved by remote lookup only.
	External []catalog.Ref
}

// IsExternal reports whether ref is resolved outside the catalog.
func (p *Plan) IsExternal(ref catalog.Ref) bool {
	for _, r := range p.External {
		if r == ref {
			return true
		}
	}
	return false
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	done
)

type resolver struct {
	cat   *catalog.Catalog
	state map[catalog.Ref]visitState
	depth map[catalog.Ref]int
	stack []catalog.Ref
}

// Resolve computes the processing order of c.
// It returns a *CycleError if the parent graph is not acyclic.
func Resolve(c *catalog.Catalog) (*Plan, error) {
	entities := c.Entities()
	r := &resolver{
		cat:   c,
		state: make(map[catalog.Ref]visitState, len(entities)),
		depth: make(map[catalog.Ref]int, len(entities)),
	}

	// 1. Compute depths, detecting cycles along the way
	for _, e := range entities {
		if _, err := r.visit(e); err != nil {
			return nil, err
		}
	}

	// 2. Collect external refs in first-use order
	var external []catalog.Ref
	seen := make(map[catalog.Ref]struct{})
	for _, e := range entities {
		for _, p := range e.Parents {
			ref := p.Ref()
			if _, ok := c.Lookup(ref); ok {
				continue
			}
			if _, dup := seen[ref]; dup {
				continue
			}
			seen[ref] = struct{}{}
			external = append(external, ref)
		}
	}

	// 3. Stable sort by depth keeps declaration order within a depth
	order := make([]catalog.Entity, len(entities))
	copy(order, entities)
	sort.SliceStable(order, func(i, j int) bool {
		return r.depth[order[i].Ref()] < r.depth[order[j].Ref()]
	})

	return &Plan{
		Order:    order,
		Depth:    r.depth,
		External: external,
	}, nil
}

// visit returns the depth of e, computing parents first.
func (r *resolver) visit(e catalog.Entity) (int, error) {
	ref := e.Ref()
	switch r.state[ref] {
	case done:
		return r.depth[ref], nil
	case visiting:
		return 0, r.cycleFrom(ref)
	}

	r.state[ref] = visiting
	r.stack = append(r.stack, ref)

	depth := 0
	for _, p := range e.Parents {
		parent, ok := r.cat.Lookup(p.Ref())
		if !ok {
			continue // external
		}
		d, err := r.visit(parent)
		if err != nil {
			return 0, err
		}
		if d+1 > depth {
			depth = d + 1
		}
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.state[ref] = done
	r.depth[ref] = depth
	return depth, nil
}

// cycleFrom builds the error for a cycle closing at ref.
func (r *resolver) cycleFrom(ref catalog.Ref) error {
	for i, s := range r.stack {
		if s == ref {
			refs := make([]catalog.Ref, len(r.stack)-i)
			copy(refs, r.stack[i:])
			return &CycleError{Refs: refs}
		}
	}
	return &CycleError{Refs: []catalog.Ref{ref}}
}
