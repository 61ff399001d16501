package fund

import "errors"

var (
	ErrFundNotFound  = errors.New("fund not found")
	ErrSlugTaken     = errors.New("fund slug already in use")
	ErrInvalidName   = errors.New("fund name is required")
	ErrInvalidSlug   = errors.New("fund slug must be lowercase letters, digits and dashes")
	ErrFundInactive  = errors.New("fund is inactive")
	ErrAlreadyActive = errors.New("fund is already active")
)
