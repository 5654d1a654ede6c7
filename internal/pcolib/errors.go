package pcolib

import "fmt"

// NotFoundError is returned when a named service type or team position does
// not exist on the server.
type NotFoundError struct {
	Kind string
	Name string
	// Scope names the containing service type for team position lookups.
	Scope string
}

func (e *NotFoundError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf(
			"%s '%s' not found in service type '%s'", e.Kind, e.Name, e.Scope,
		)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// PartialDeleteError is returned when some, but not necessarily all,
// assignment deletions failed. The deletion loop itself never stops early.
type PartialDeleteError struct {
	Failed int
	Total  int
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf(
		"failed to remove %d of %d assignments", e.Failed, e.Total,
	)
}
