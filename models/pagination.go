package models

const (
	// DefaultLimit is the page size used when the caller does not supply a
	// usable limit.
	DefaultLimit uint64 = 100
	// DefaultOffset is the page start used when the caller does not supply a
	// usable offset.
	DefaultOffset uint64 = 0
)

// Page is a limit/offset window over an ordered listing.
type Page struct {
	Limit  uint64
	Offset uint64
}

// DefaultPage returns the window used when no pagination is requested.
func DefaultPage() Page {
	return Page{Limit: DefaultLimit, Offset: DefaultOffset}
}
