package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/ebelikov/lotus/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldFirstName targets the optional first-name field of a profile update.
	FieldFirstName = "first_name"

	// FieldLastName targets the optional last-name field of a profile update.
	FieldLastName = "last_name"

	// FieldAvatarFilename targets the client-supplied original file name
	// of an avatar upload.
	FieldAvatarFilename = "avatar_filename"

	// FieldAvatarContentType targets the MIME type of an avatar upload.
	FieldAvatarContentType = "avatar_content_type"

	// FieldAvatarData targets the binary payload of an avatar upload.
	FieldAvatarData = "avatar_data"
)

const (
	// maxNameRunes bounds the first and last name display strings.
	maxNameRunes = 64

	// maxAvatarBytes bounds the avatar image payload.
	maxAvatarBytes = 5 << 20
)

// allowedAvatarContentTypes is the exhaustive set of MIME types accepted
// for avatar uploads. Any content type not present here is rejected.
var allowedAvatarContentTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
}

// ProfileValidator implements the Validator interface for the profile
// domain models: ProfileUpdate and AvatarUpload.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type ProfileValidator struct {
}

// NewProfileValidator constructs a new ProfileValidator and returns it as
// the Validator interface.
func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Unrecognized types are rejected with
// ErrUnsupportedType.
func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, *value, fields...)

	case models.AvatarUpload:
		return v.validateAvatarUpload(ctx, value, fields...)
	case *models.AvatarUpload:
		return v.validateAvatarUpload(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func isAllowedAvatarContentType(contentType string) bool {
	for _, allowed := range allowedAvatarContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// validateProfileUpdate checks the optional display-name fields of a
// partial update. Absent (nil) fields are always valid: absence means
// "leave unchanged", and an empty string is a legitimate way to clear a
// previously set value.
func (v *ProfileValidator) validateProfileUpdate(_ context.Context, update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName}
	}

	for _, field := range fields {
		switch field {
		case FieldFirstName:
			if update.FirstName != nil && utf8.RuneCountInString(*update.FirstName) > maxNameRunes {
				return fmt.Errorf("%w: %s", ErrNameTooLong, FieldFirstName)
			}
		case FieldLastName:
			if update.LastName != nil && utf8.RuneCountInString(*update.LastName) > maxNameRunes {
				return fmt.Errorf("%w: %s", ErrNameTooLong, FieldLastName)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateAvatarUpload checks an avatar image on its way to blob storage:
// the original filename must be present, the MIME type must be an allowed
// image type, and the payload must be non-empty and within the size limit.
func (v *ProfileValidator) validateAvatarUpload(_ context.Context, upload models.AvatarUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAvatarFilename, FieldAvatarContentType, FieldAvatarData}
	}

	for _, field := range fields {
		switch field {
		case FieldAvatarFilename:
			if upload.Filename == "" {
				return ErrEmptyAvatarFilename
			}
		case FieldAvatarContentType:
			if !isAllowedAvatarContentType(upload.ContentType) {
				return fmt.Errorf("%w: %q", ErrInvalidAvatarMimeType, upload.ContentType)
			}
		case FieldAvatarData:
			if len(upload.Data) == 0 {
				return ErrEmptyAvatarData
			}
			if len(upload.Data) > maxAvatarBytes {
				return fmt.Errorf("%w: %d bytes", ErrAvatarTooLarge, len(upload.Data))
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
