package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid file headers for content sniffing.
var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0}
	gifHeader  = []byte("GIF89a\x00\x00")
)

func TestValidateImage(t *testing.T) {
	t.Run("accepts png", func(t *testing.T) {
		assert.NoError(t, ValidateImage(pngHeader))
	})

	t.Run("accepts jpeg", func(t *testing.T) {
		assert.NoError(t, ValidateImage(jpegHeader))
	})

	t.Run("accepts gif", func(t *testing.T) {
		assert.NoError(t, ValidateImage(gifHeader))
	})

	t.Run("rejects empty file", func(t *testing.T) {
		err := ValidateImage(nil)
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "empty")
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		err := ValidateImage([]byte("hello, this is plain text"))
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "valid image file")
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		big := make([]byte, MaxImageSize+1)
		copy(big, pngHeader)

		err := ValidateImage(big)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "10MB")
	})
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{10 * 1024 * 1024, "10.00 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSize(tt.bytes))
	}
}
