package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cheahjs/bulk-image-generator/internal/bulk"
	"github.com/rs/zerolog/log"
)

var ErrNotSuccessful = errors.New("refusing to store an unsuccessful result")

// ResultStore persists successful batch results as JSON files under basePath
type ResultStore struct {
	basePath string
	now      func() time.Time
}

func NewResultStore(basePath string) (*ResultStore, error) {
	if basePath == "" {
		basePath = "."
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &ResultStore{basePath: basePath, now: time.Now}, nil
}

// Save writes the result to bulk_generation_results_<unix seconds>.json and returns the path
func (store *ResultStore) Save(result *bulk.BatchResult) (string, error) {
	if result == nil || !result.Success {
		return "", ErrNotSuccessful
	}

	jsonBody, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	resultPath := filepath.Join(store.basePath, fmt.Sprintf("bulk_generation_results_%d.json", store.now().Unix()))
	if err := os.WriteFile(resultPath, jsonBody, 0o644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}

	log.Info().Str("path", resultPath).Msg("Stored batch result")

	return resultPath, nil
}
