package pomomo

import "time"

// ExistingRecord is the envelope a repo adds to a stored record.
type ExistingRecord[T ~string] struct {
	ID        T
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExistingRecord stamps a new row at whole-second resolution, the
// precision repos persist timestamps with, so the returned record equals the
// one read back later.
func NewExistingRecord[T ~string](id string, at time.Time) ExistingRecord[T] {
	at = at.Truncate(time.Second)
	return ExistingRecord[T]{
		ID:        T(id),
		CreatedAt: at,
		UpdatedAt: at,
	}
}
