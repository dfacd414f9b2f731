package event

import "errors"

var (
	ErrMissingRequiredField  = errors.New("title and date are required")
	ErrNotAnImage            = errors.New("uploaded file is not an image")
	ErrImageTooLarge         = errors.New("uploaded image exceeds the size limit")
	ErrExtractionFailed      = errors.New("event extraction failed")
	ErrShareFailed           = errors.New("share failed")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
