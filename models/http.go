package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisteredUser is the public subset of a freshly created account
// returned by the registration endpoint. It deliberately mirrors the
// User JSON field names while exposing nothing beyond identity.
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// RegisterResponse is the JSON body of a successful registration.
type RegisterResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// SessionUser is the profile payload returned by a successful login.
//
// Points is stringified here and only here: the original session
// credential carried the balance as a string, and clients depend on it.
// Every other endpoint returns points as a number.
type SessionUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Points    string `json:"points"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// PointsResponse is the JSON body of GET /api/points.
type PointsResponse struct {
	Points int64 `json:"points"`
}

// AwardResponse is the JSON body of POST /api/points.
type AwardResponse struct {
	Message   string `json:"message"`
	NewPoints int64  `json:"newPoints"`
}

// UpdateUserResponse is the JSON body of a successful profile update.
// User carries only the columns the update may change, as persisted —
// not an echo of the input and not the full account record.
type UpdateUserResponse struct {
	Message string         `json:"message"`
	User    UpdatedProfile `json:"user"`
}

// MessageResponse is a bare informational JSON body, e.g. the
// "no fields to update" reply of the profile update endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of every non-2xx reply. Clients rely on
// the "error" key to extract the failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
