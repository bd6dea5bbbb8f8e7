// Package upload validates user-supplied image files before a photo poem
// is generated from them.
package upload

import (
	"fmt"
	"math"
	"net/http"
)

// MaxImageSize is the largest accepted upload.
const MaxImageSize = 10 * 1024 * 1024

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidationError describes why an upload was rejected. The message is
// safe to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateImage checks that data is a non-empty image of an accepted type
// and within the size limit. The content type is sniffed from the bytes,
// not taken from the filename.
func ValidateImage(data []byte) error {
	if len(data) == 0 {
		return &ValidationError{Message: "The selected file appears to be empty"}
	}
	if len(data) > MaxImageSize {
		return &ValidationError{
			Message: fmt.Sprintf("File size must be less than %dMB", MaxImageSize/(1024*1024)),
		}
	}
	if !allowedTypes[http.DetectContentType(data)] {
		return &ValidationError{Message: "Please upload a valid image file (JPEG, PNG, GIF, or WebP)"}
	}
	return nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count for display, e.g. "2.5 MB".
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	i := int(math.Log(float64(bytes)) / math.Log(1024))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%.2f %s", value, sizeUnits[i])
}
