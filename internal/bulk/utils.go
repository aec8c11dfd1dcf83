package bulk

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheahjs/bulk-image-generator/internal/imageprep"
	"github.com/rs/zerolog/log"
)

const fallbackMimeType = "image/jpeg"

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// MimeTypeFor maps a file extension to a MIME type. Unknown extensions are treated as JPEG.
func MimeTypeFor(path string) string {
	if mimeType, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mimeType
	}
	return fallbackMimeType
}

func readImage(path string) ([]byte, error) {
	imageFile, err := os.Open(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	defer imageFile.Close()

	imageData, err := io.ReadAll(imageFile)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	return imageData, nil
}

func encodeImage(path string, maxSide int) (ReferenceImage, error) {
	imageData, err := readImage(path)
	if err != nil {
		return ReferenceImage{}, err
	}

	mimeType := MimeTypeFor(path)
	if maxSide > 0 {
		imageData, mimeType, err = imageprep.Fit(imageData, mimeType, maxSide)
		if err != nil {
			return ReferenceImage{}, fmt.Errorf("failed to resize %s: %w", path, err)
		}
	}

	log.Debug().Str("path", path).Str("mime_type", mimeType).Int("bytes", len(imageData)).Msg("Encoded reference image")

	return ReferenceImage{
		Data:     base64.StdEncoding.EncodeToString(imageData),
		MimeType: mimeType,
	}, nil
}

// normalizePrompts trims every prompt and drops the blank ones, keeping order
func normalizePrompts(prompts []string) []string {
	normalized := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		if prompt = strings.TrimSpace(prompt); prompt != "" {
			normalized = append(normalized, prompt)
		}
	}
	return normalized
}

// PromptsFromFile loads one prompt per line
func PromptsFromFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileNotFoundError{Path: path, Err: err}
	}
	return normalizePrompts(strings.Split(string(content), "\n")), nil
}

// PromptsFromInlineList splits a comma separated list of prompts
func PromptsFromInlineList(list string) []string {
	return normalizePrompts(strings.Split(list, ","))
}
