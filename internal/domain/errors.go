package domain

import "errors"

var (
	// ErrParseFailed means an imported HTML document could not be read
	ErrParseFailed = errors.New("failed to parse template HTML")

	// ErrInvalidUpload means an uploaded file failed image validation
	ErrInvalidUpload = errors.New("invalid image upload")

	// ErrComponentNotFound means a referenced component id is not in the template
	ErrComponentNotFound = errors.New("component not found")
)
