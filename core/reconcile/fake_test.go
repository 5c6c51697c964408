package reconcile

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"inventory-seeder/core/catalog"
	"inventory-seeder/core/inventory"
	"inventory-seeder/core/utils"
)

// fakeInventory is an in-memory inventory API with call counters.
type fakeInventory struct {
	nextID  int
	records map[catalog.Kind][]inventory.Record

	// rejects makes Create fail for the given natural keys.
	rejects map[string]error
	// findErr makes Find fail for the given natural keys.
	findErr map[string]error

	finds, creates, patches int
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		records: make(map[catalog.Kind][]inventory.Record),
		rejects: make(map[string]error),
		findErr: make(map[string]error),
	}
}

// seed inserts a record directly, bypassing counters.
func (f *fakeInventory) seed(kind catalog.Kind, fields map[string]any) int {
	f.nextID++
	rec := inventory.Record{"id": f.nextID}
	for k, v := range fields {
		rec[k] = v
	}
	f.records[kind] = append(f.records[kind], rec)
	return f.nextID
}

func (f *fakeInventory) matches(rec inventory.Record, filter inventory.Filter) bool {
	for k, want := range filter {
		field := k
		if len(k) > 3 && k[len(k)-3:] == "_id" {
			field = k[:len(k)-3]
			id, ok := rec.RefID(field)
			if !ok || fmt.Sprint(id) != want {
				return false
			}
			continue
		}
		if utils.ToString(rec[field]) != want {
			return false
		}
	}
	return true
}

func (f *fakeInventory) Find(ctx context.Context, kind catalog.Kind, filter inventory.Filter) (inventory.Record, bool, error) {
	f.finds++
	if err, ok := f.findErr[filter[kind.KeyField()]]; ok {
		return nil, false, err
	}
	for _, rec := range f.records[kind] {
		if f.matches(rec, filter) {
			return rec, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeInventory) Create(ctx context.Context, kind catalog.Kind, payload map[string]any) (inventory.Record, error) {
	f.creates++
	key := utils.ToString(payload[kind.KeyField()])
	if err, ok := f.rejects[key]; ok {
		return nil, err
	}
	id := f.seed(kind, payload)
	return f.records[kind][len(f.records[kind])-1], checkID(id)
}

func (f *fakeInventory) Patch(ctx context.Context, kind catalog.Kind, id int, fields map[string]any) (inventory.Record, error) {
	f.patches++
	for _, rec := range f.records[kind] {
		if rec.ID() == id {
			for k, v := range fields {
				rec[k] = v
			}
			return rec, nil
		}
	}
	return nil, &inventory.APIError{Method: http.MethodPatch, Status: http.StatusNotFound, Body: "not found"}
}

func (f *fakeInventory) count(kind catalog.Kind) int {
	return len(f.records[kind])
}

func checkID(id int) error {
	if id <= 0 {
		return errors.New("bad id")
	}
	return nil
}

func rejected(body string) error {
	return &inventory.APIError{Method: http.MethodPost, Status: http.StatusBadRequest, Body: body}
}
