package models

const (
	// DefaultPageLimit is used when a list request carries no limit.
	DefaultPageLimit = 20
	// MaxPageLimit caps the number of users returned by one list request.
	MaxPageLimit = 100
)

// ListUsersRequest holds pagination parameters for the users listing.
type ListUsersRequest struct {
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// Normalize applies the default limit and clamps it to [MaxPageLimit].
func (r ListUsersRequest) Normalize() ListUsersRequest {
	if r.Limit == 0 {
		r.Limit = DefaultPageLimit
	}
	if r.Limit > MaxPageLimit {
		r.Limit = MaxPageLimit
	}
	return r
}
