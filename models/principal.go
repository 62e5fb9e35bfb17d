package models

// Principal is the authenticated caller of a single request.
//
// It is derived from a verified credential and lives only for the duration
// of the request; nothing in this service persists it.
type Principal struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
