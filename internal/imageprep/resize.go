// Package imageprep shrinks reference images before they are base64 encoded.
package imageprep

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"
)

// Fit downscales imageData so neither side exceeds maxSide, keeping the aspect ratio.
// Images already inside the bound come back unchanged. imaging cannot write webp, so a
// resized webp is returned as PNG along with the new MIME type.
func Fit(imageData []byte, mimeType string, maxSide int) ([]byte, string, error) {
	if maxSide <= 0 {
		return imageData, mimeType, nil
	}

	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxSide && bounds.Dy() <= maxSide {
		return imageData, mimeType, nil
	}

	format, outMimeType := outputFormat(mimeType)
	resized := imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(90)); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	log.Debug().
		Int("from_width", bounds.Dx()).
		Int("from_height", bounds.Dy()).
		Int("to_width", resized.Bounds().Dx()).
		Int("to_height", resized.Bounds().Dy()).
		Msg("Resized reference image")

	return buf.Bytes(), outMimeType, nil
}

func outputFormat(mimeType string) (imaging.Format, string) {
	switch mimeType {
	case "image/png", "image/webp":
		return imaging.PNG, "image/png"
	case "image/gif":
		return imaging.GIF, "image/gif"
	default:
		return imaging.JPEG, "image/jpeg"
	}
}
