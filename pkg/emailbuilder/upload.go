package emailbuilder

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// DefaultMaxImageBytes caps inline image uploads at 2 MB. Inline images
// travel inside the template JSON and the exported HTML, so oversized
// uploads bloat everything downstream.
const DefaultMaxImageBytes = 2 * 1024 * 1024

// ImageDataURI validates an uploaded file as an image and returns it as a
// data URI suitable for an image src property. maxBytes <= 0 falls back to
// DefaultMaxImageBytes.
func ImageDataURI(filename string, data []byte, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	if len(data) == 0 {
		return "", fmt.Errorf("upload %q is empty", filename)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("upload %q is %d bytes, exceeds limit of %d bytes", filename, len(data), maxBytes)
	}

	// Sniff the content type from the bytes rather than trusting the
	// filename extension.
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("upload %q is %s, not an image", filename, contentType)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
