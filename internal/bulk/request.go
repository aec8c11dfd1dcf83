package bulk

// PrepareRequest builds a BatchRequest from a reference image on disk and a list of prompts.
// The image file is the only I/O; calling it twice with the same inputs yields identical requests.
func PrepareRequest(imagePath string, prompts []string, opts Options) (*BatchRequest, error) {
	opts = withDefaults(opts)

	if opts.ImageSize != ImageSize2K && opts.ImageSize != ImageSize4K {
		return nil, &InvalidOptionError{
			Option:  "imageSize",
			Value:   opts.ImageSize,
			Allowed: []string{ImageSize2K, ImageSize4K},
		}
	}

	prompts = normalizePrompts(prompts)
	if len(prompts) == 0 {
		return nil, ErrNoPrompts
	}

	referenceImage, err := encodeImage(imagePath, opts.MaxSide)
	if err != nil {
		return nil, err
	}

	return &BatchRequest{
		ReferenceImage: referenceImage,
		Prompts:        prompts,
		UserID:         opts.UserID,
		AspectRatio:    opts.AspectRatio,
		ImageSize:      opts.ImageSize,
		Style:          opts.Style,
		BatchName:      opts.BatchName,
	}, nil
}

func withDefaults(opts Options) Options {
	defaults := DefaultOptions()
	if opts.AspectRatio == "" {
		opts.AspectRatio = defaults.AspectRatio
	}
	if opts.ImageSize == "" {
		opts.ImageSize = defaults.ImageSize
	}
	if opts.Style == "" {
		opts.Style = defaults.Style
	}
	return opts
}
