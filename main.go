package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/cheahjs/bulk-image-generator/internal/bulk"
	"github.com/cheahjs/bulk-image-generator/internal/config"
	"github.com/cheahjs/bulk-image-generator/internal/report"
	"github.com/cheahjs/bulk-image-generator/internal/store"
	"github.com/rs/zerolog/log"
)

type cliOptions struct {
	imagePath string
	prompts   string
	apiURL    string
	outputDir string
	options   bulk.Options
}

func parseFlags(args []string, cfg *config.Config) (*cliOptions, error) {
	opts := &cliOptions{}
	defaults := bulk.DefaultOptions()

	flags := flag.NewFlagSet("bulkgen", flag.ContinueOnError)
	flags.StringVar(&opts.imagePath, "image", "", "Path to reference image (required)")
	flags.StringVar(&opts.prompts, "prompts", "", "Path to prompts file (one per line) or comma-separated prompts (required)")
	flags.StringVar(&opts.options.AspectRatio, "aspect-ratio", defaults.AspectRatio, "Aspect ratio")
	flags.StringVar(&opts.options.ImageSize, "size", defaults.ImageSize, "Image size (2K or 4K)")
	flags.StringVar(&opts.options.Style, "style", defaults.Style, "Image style")
	flags.StringVar(&opts.options.BatchName, "batch-name", "", "Optional batch name")
	flags.StringVar(&opts.apiURL, "api-url", cfg.APIURL, "API URL")
	flags.StringVar(&opts.options.UserID, "user-id", cfg.UserID, "User ID")
	flags.StringVar(&opts.outputDir, "output-dir", cfg.OutputDir, "Directory the result file is written to")
	flags.IntVar(&opts.options.MaxSide, "max-side", 0, "Downscale the reference image to this many pixels per side (0 keeps it as is)")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if opts.imagePath == "" || opts.prompts == "" {
		flags.Usage()
		return nil, errors.New("--image and --prompts are required")
	}

	return opts, nil
}

// loadPrompts treats --prompts as a file when one exists at that path, otherwise as an inline list
func loadPrompts(value string) ([]string, error) {
	if info, err := os.Stat(value); err == nil && !info.IsDir() {
		return bulk.PromptsFromFile(value)
	}
	return bulk.PromptsFromInlineList(value), nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg := config.Load()
	cfg.ConfigureLogger()

	opts, err := parseFlags(args, cfg)
	if err != nil {
		return err
	}

	prompts, err := loadPrompts(opts.prompts)
	if err != nil {
		return err
	}

	log.Info().Str("path", opts.imagePath).Msg("Loading reference image")
	request, err := bulk.PrepareRequest(opts.imagePath, prompts, opts.options)
	if err != nil {
		return err
	}
	report.Settings(stdout, request)

	coordinator, err := bulk.NewCoordinator(bulk.Config{APIURL: opts.apiURL})
	if err != nil {
		return err
	}

	startedAt := time.Now()
	result, err := coordinator.Submit(ctx, request)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}

	report.Summary(stdout, result, time.Since(startedAt))
	if result.Partial() {
		log.Warn().Int("failed", result.FailureCount).Int("total", result.TotalPrompts).Msg("Some prompts failed")
	}

	resultStore, err := store.NewResultStore(opts.outputDir)
	if err != nil {
		return err
	}
	resultPath, err := resultStore.Save(result)
	if err != nil {
		return err
	}
	report.Saved(stdout, resultPath)

	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("Bulk generation failed")
		os.Exit(1)
	}
}
