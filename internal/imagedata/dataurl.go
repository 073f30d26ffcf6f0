package imagedata

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// MaxUploadBytes is the ceiling for user-supplied reference images (10MB decoded).
const MaxUploadBytes = 10 << 20

const pngPrefix = "data:image/png;base64,"

// Base64Payload splits the media-type declaration off a data URL and returns
// the raw base64-encoded bytes that follow it.
func Base64Payload(dataURL string) (string, error) {
	idx := strings.IndexByte(dataURL, ',')
	if idx < 0 {
		return "", fmt.Errorf("not a data URL: missing payload separator")
	}
	header := dataURL[:idx]
	if !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return "", fmt.Errorf("not a base64 data URL: %q", header)
	}
	return dataURL[idx+1:], nil
}

// Decode returns the declared media type and the decoded image bytes of a
// base64 data URL.
func Decode(dataURL string) (string, []byte, error) {
	payload, err := Base64Payload(dataURL)
	if err != nil {
		return "", nil, err
	}

	header := dataURL[:strings.IndexByte(dataURL, ',')]
	mediaType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return mediaType, data, nil
}

// EncodePNG wraps raw PNG bytes in the data-URL transport format.
func EncodePNG(data []byte) string {
	return pngPrefix + base64.StdEncoding.EncodeToString(data)
}

// ValidateUpload rejects reference images that are not images or exceed the
// upload ceiling. An empty value is valid (no image supplied).
func ValidateUpload(dataURL string) error {
	if dataURL == "" {
		return nil
	}

	mediaType, data, err := Decode(dataURL)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return fmt.Errorf("unsupported media type %q", mediaType)
	}
	if len(data) > MaxUploadBytes {
		return fmt.Errorf("image is too large: %d bytes (max %d)", len(data), MaxUploadBytes)
	}

	return nil
}
