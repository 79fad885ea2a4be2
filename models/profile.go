package models

// ProfileUpdate describes a partial update of a user's profile fields.
//
// Each field is independently nullable: a nil pointer means "leave the
// column untouched", a non-nil pointer (including a pointer to an empty
// string) means "set the column to this value". The store layer compiles
// only the present fields into a parameterized UPDATE statement, so an
// update with no fields set is a no-op.
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.AvatarURL == nil
}

// UpdatedProfile is what a profile update hands back: exactly the columns
// the update endpoint may touch, as persisted. Callers that need the full
// account state fetch the profile separately.
type UpdatedProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

// AvatarUpload carries an avatar image received from a multipart form on
// its way to blob storage. Filename is the client-supplied original name
// and is used only for its extension; the stored object key is derived
// from the username and the upload timestamp.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
