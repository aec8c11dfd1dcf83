// Package report renders batch results for humans.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/cheahjs/bulk-image-generator/internal/bulk"
)

const previewLength = 60

// Settings prints what is about to be sent
func Settings(w io.Writer, request *bulk.BatchRequest) {
	fmt.Fprintf(w, "Processing %d prompts\n", len(request.Prompts))
	fmt.Fprintf(w, "Settings: %s, %s, %s\n\n", request.ImageSize, request.AspectRatio, request.Style)
}

// Summary prints totals followed by every generated image and every failed prompt
func Summary(w io.Writer, result *bulk.BatchResult, elapsed time.Duration) {
	fmt.Fprintf(w, "Bulk generation completed in %.1f seconds\n\n", elapsed.Seconds())
	fmt.Fprintln(w, "Results:")
	fmt.Fprintf(w, "   Total prompts: %d\n", result.TotalPrompts)
	fmt.Fprintf(w, "   Successful: %d\n", result.SuccessCount)
	fmt.Fprintf(w, "   Failed: %d\n", result.FailureCount)
	fmt.Fprintf(w, "   Chat ID: %s\n", result.ImageChatID)

	if len(result.Results) > 0 {
		fmt.Fprintln(w, "\nGenerated images:")
		for i, item := range result.Results {
			fmt.Fprintf(w, "\n%d. %s\n", i+1, Preview(item.Prompt))
			fmt.Fprintf(w, "   URL: %s\n", item.ImageURL)
		}
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(w, "\nErrors:")
		for i, item := range result.Errors {
			fmt.Fprintf(w, "\n%d. %s\n", i+1, Preview(item.Prompt))
			fmt.Fprintf(w, "   Error: %s\n", item.Error)
		}
	}
}

// Saved prints where the result file went
func Saved(w io.Writer, path string) {
	fmt.Fprintf(w, "\nResults saved to: %s\n", path)
}

// Preview shortens a prompt to its first 60 characters
func Preview(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= previewLength {
		return prompt
	}
	return string(runes[:previewLength]) + "..."
}
