package models

import "time"

// User is an account that can log in and receive a token.
//
// Password is accepted on create only and is replaced by PasswordHash
// before anything touches storage. Neither is ever serialized in a response.
type User struct {
	UserID       int64      `json:"user_id"`
	Username     *string    `json:"username"`
	Role         *string    `json:"role" validate:"required,role"`
	Password     *string    `json:"password,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    *time.Time `json:"created_at"`
}

// Principal builds the request principal for an authenticated user.
func (u User) Principal() (Principal, bool) {
	if u.Username == nil || u.Role == nil {
		return Principal{}, false
	}
	role, ok := ParseRole(*u.Role)
	if !ok {
		return Principal{}, false
	}
	return Principal{UserID: u.UserID, Username: *u.Username, Role: role}, true
}
