package inventory

import (
	"inventory-seeder/core/utils"
)

// Record is a decoded API object.
type Record map[string]any

// ID returns the numeric id of the record, or 0 if absent.
func (r Record) ID() int {
	v, ok := r["id"]
	if !ok || v == nil {
		return 0
	}
	return utils.ToInt(v)
}

// RefID returns the id stored in a foreign-key field.
// The API renders relations either as a bare id or as a nested object
// carrying an "id" key; a null relation returns ok=false.
func (r Record) RefID(field string) (int, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, false
	}
	if nested, isMap := v.(map[string]any); isMap {
		id, has := nested["id"]
		if !has || id == nil {
			return 0, false
		}
		return utils.ToInt(id), true
	}
	return utils.ToInt(v), true
}

// listResponse is the envelope of a collection query.
type listResponse struct {
	Count   int      `json:"count"`
	Results []Record `json:"results"`
}
