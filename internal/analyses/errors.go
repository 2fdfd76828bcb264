package analyses

import "errors"

var (
	ErrNotFound       = errors.New("analysis not found")
	ErrForbidden      = errors.New("access denied")
	ErrResumeNotFound = errors.New("resume not found")
	ErrInvalidInput   = errors.New("invalid input")
)
