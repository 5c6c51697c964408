package resolve

import (
	"errors"
	"fmt"
	"strings"

	"inventory-seeder/core/catalog"
)

// ErrCycle is matched by every *CycleError.
var ErrCycle = errors.New("dependency cycle")

// CycleError reports a cycle in the parent graph.
type CycleError struct {
	// Refs lists the entities on the cycle, in the order they were found.
	Refs []catalog.Ref
}

func (e *CycleError) Error() string {
	keys := make([]string, 0, len(e.Refs)+1)
	for _, r := range e.Refs {
		keys = append(keys, r.String())
	}
	if len(e.Refs) > 0 {
		keys = append(keys, e.Refs[0].String())
	}
	return fmt.Sprintf("dependency cycle: %s", strings.Join(keys, " -> "))
}

// Keys returns the natural keys involved in the cycle.
func (e *CycleError) Keys() []string {
	out := make([]string, len(e.Refs))
	for i, r := range e.Refs {
		out[i] = r.Key
	}
	return out
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}
