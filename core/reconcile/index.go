package reconcile

import "inventory-seeder/core/catalog"

// Index maps natural keys to remote ids for the duration of one run.
// An id is recorded exactly once, after a successful lookup or create.
type Index struct {
	ids map[catalog.Ref]int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{ids: make(map[catalog.Ref]int)}
}

// Get returns the resolved id of ref.
func (x *Index) Get(ref catalog.Ref) (int, bool) {
	id, ok := x.ids[ref]
	return id, ok
}

// Set records the id of ref. Later calls for the same ref are ignored.
func (x *Index) Set(ref catalog.Ref, id int) {
	if _, exists := x.ids[ref]; exists {
		return
	}
	x.ids[ref] = id
}

// Len returns the number of resolved refs.
func (x *Index) Len() int {
	return len(x.ids)
}
