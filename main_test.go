package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cheahjs/bulk-image-generator/internal/bulk"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, status int, body string) string {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/api/image/bulk-generate", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}).Methods(http.MethodPost)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server.URL + "/api/image/bulk-generate"
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	t.Setenv("BULKGEN_LOG_FORMAT", "json")
	t.Setenv("BULKGEN_LOG_LEVEL", "error")

	t.Run("partial success writes the result file", func(t *testing.T) {
		dir := t.TempDir()
		outputDir := filepath.Join(dir, "out")
		imagePath := writeTemp(t, dir, "cat.jpg", "jpeg-bytes")
		promptsPath := writeTemp(t, dir, "prompts.txt", "a cat in Paris\n\na cat on the moon\n")
		apiURL := newService(t, http.StatusOK, `{
			"success": true, "totalPrompts": 2, "successCount": 1, "failureCount": 1,
			"imageChatId": "chat-1",
			"results": [{"prompt": "a cat in Paris", "imageUrl": "https://cdn.example/1.png"}],
			"errors": [{"prompt": "a cat on the moon", "error": "timeout"}]
		}`)

		var stdout bytes.Buffer
		err := run(context.Background(), []string{
			"--image", imagePath, "--prompts", promptsPath, "--api-url", apiURL, "--output-dir", outputDir,
		}, &stdout)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Processing 2 prompts")
		assert.Contains(t, stdout.String(), "Chat ID: chat-1")

		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Regexp(t, `^bulk_generation_results_\d+\.json$`, entries[0].Name())
	})

	t.Run("service failure writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		outputDir := filepath.Join(dir, "out")
		imagePath := writeTemp(t, dir, "cat.jpg", "jpeg-bytes")
		apiURL := newService(t, http.StatusOK, `{"success": false, "error": "rate limited"}`)

		err := run(context.Background(), []string{
			"--image", imagePath, "--prompts", "a, b", "--api-url", apiURL, "--output-dir", outputDir,
		}, &bytes.Buffer{})

		var failure *bulk.ServiceFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, "rate limited", failure.Message)
		assert.NoDirExists(t, outputDir)
	})

	t.Run("status 500 writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		outputDir := filepath.Join(dir, "out")
		imagePath := writeTemp(t, dir, "cat.jpg", "jpeg-bytes")
		apiURL := newService(t, http.StatusInternalServerError, `oops`)

		err := run(context.Background(), []string{
			"--image", imagePath, "--prompts", "a", "--api-url", apiURL, "--output-dir", outputDir,
		}, &bytes.Buffer{})

		var serviceErr *bulk.ServiceError
		require.ErrorAs(t, err, &serviceErr)
		assert.NoDirExists(t, outputDir)
	})

	t.Run("invalid size is rejected before sending", func(t *testing.T) {
		dir := t.TempDir()
		imagePath := writeTemp(t, dir, "cat.jpg", "jpeg-bytes")

		err := run(context.Background(), []string{
			"--image", imagePath, "--prompts", "a", "--size", "8K", "--api-url", "http://127.0.0.1:1/unused",
		}, &bytes.Buffer{})

		var optErr *bulk.InvalidOptionError
		assert.ErrorAs(t, err, &optErr)
	})

	t.Run("missing required flags", func(t *testing.T) {
		err := run(context.Background(), []string{"--prompts", "a"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestLoadPrompts(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "prompts.txt", "one, with comma\ntwo\n")

	fromFile, err := loadPrompts(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one, with comma", "two"}, fromFile)

	inline, err := loadPrompts("one, two")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, inline)

	// a directory is never a prompts file
	asText, err := loadPrompts(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, asText)
}
