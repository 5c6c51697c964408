package reconcile

import (
	"fmt"

	"inventory-seeder/core/catalog"
)

// MissingParentError reports a parent that could not be resolved to an id.
// It is local to one entity and becomes a Skipped outcome.
type MissingParentError struct {
	Parent catalog.Ref
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("missing parent %s", e.Parent)
}
