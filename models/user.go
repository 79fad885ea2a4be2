package models

import "time"

// User represents an account entity used for authentication, profile
// management and points accrual. It is the sole persisted entity of the
// application.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Server-assigned, immutable, primary key at the persistence layer.
	UserID int64 `json:"id"`

	// Email is the unique login handle. Stored case-sensitively;
	// exactly one row may exist per email.
	Email string `json:"email"`

	// Username is the display handle. Unique by business rule but not
	// enforced as a hard constraint in the schema.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never
	// serialized into any response payload.
	PasswordHash string `json:"-"`

	// Points is the non-negative accrual balance. It only grows, in
	// fixed increments, through the points service award path.
	Points int64 `json:"points"`

	// FirstName and LastName are optional display strings.
	// An empty value means "not set".
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// AvatarURL is an optional reference to an externally stored image.
	// An empty value means "use the default avatar".
	AvatarURL string `json:"avatar_url,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
