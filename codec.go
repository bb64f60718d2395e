package imgexport

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for decoding only; webp has no encoder.
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when a record asks for an output
// encoding this module cannot produce.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// decodeContent decodes a base64 image payload into raw bytes.
func decodeContent(content string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("decode base64 content: %w", err)
	}
	return data, nil
}

// decodeImage interprets raw bytes as a raster image using any of the
// registered formats (png, jpeg, gif, bmp, tiff, webp).
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image data: %w", err)
	}
	return img, nil
}

// encodeImage writes img to w in the named format. Format names are
// lower-case encoding names as carried by image metadata ("png", "jpeg",
// "jpg", "gif", "bmp", "tiff", "tif").
func encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, nil)
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// extensionForFormat maps an encoding name to its file extension. The only
// divergence is the informal "jpeg" name, which conventionally gets a
// "jpg" extension.
func extensionForFormat(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
