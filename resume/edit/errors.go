package edit

import "fmt"

// NotFoundError reports that a mutation targeted an entry id that is not in
// the list. The original UI silently ignored this case; surfacing it lets the
// caller decide whether stale state is worth a notice.
type NotFoundError struct {
	Section string
	ID      string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s entry %s not found", e.Section, e.ID)
}

// UnknownFieldError reports a field name outside the editable set.
type UnknownFieldError struct {
	Field string
}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}
