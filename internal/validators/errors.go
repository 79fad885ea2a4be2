package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameTooLong           = errors.New("name is too long")
	ErrEmptyAvatarFilename   = errors.New("avatar filename is required")
	ErrEmptyAvatarData       = errors.New("avatar data is required")
	ErrAvatarTooLarge        = errors.New("avatar data exceeds the size limit")
	ErrInvalidAvatarMimeType = errors.New("avatar content type is not an allowed image type")
)
