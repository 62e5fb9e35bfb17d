package models

// MessageResponse acknowledges a create, update or delete.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after a successful login. The token is also set
// as an HttpOnly cookie.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    Role   `json:"role"`
}
