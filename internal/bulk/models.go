package bulk

// ReferenceImage represents the base64 encoded image every prompt is generated against
type ReferenceImage struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// BatchRequest represents a bulk-generate request body
type BatchRequest struct {
	ReferenceImage ReferenceImage `json:"referenceImage"`
	Prompts        []string       `json:"prompts"`
	UserID         string         `json:"userId"`
	AspectRatio    string         `json:"aspectRatio"`
	ImageSize      string         `json:"imageSize"`
	Style          string         `json:"style"`
	BatchName      string         `json:"batchName,omitempty"`
}

// PromptResult represents a prompt the service generated an image for
type PromptResult struct {
	Prompt   string `json:"prompt"`
	ImageURL string `json:"imageUrl"`
}

// PromptError represents a prompt the service failed to generate
type PromptError struct {
	Prompt string `json:"prompt"`
	Error  string `json:"error"`
}

// BatchResult represents a bulk-generate response body.
// Error is only populated when Success is false.
type BatchResult struct {
	Success      bool           `json:"success"`
	TotalPrompts int            `json:"totalPrompts"`
	SuccessCount int            `json:"successCount"`
	FailureCount int            `json:"failureCount"`
	ImageChatID  string         `json:"imageChatId,omitempty"`
	Results      []PromptResult `json:"results"`
	Errors       []PromptError  `json:"errors"`
	Error        string         `json:"error,omitempty"`
}

// Err returns a *ServiceFailure when the service reported success:false
func (result *BatchResult) Err() error {
	if result.Success {
		return nil
	}
	message := result.Error
	if message == "" {
		message = "unknown error"
	}
	return &ServiceFailure{Message: message}
}

// Partial reports whether the batch succeeded overall but some prompts failed
func (result *BatchResult) Partial() bool {
	return result.Success && result.FailureCount > 0
}

const (
	ImageSize2K = "2K"
	ImageSize4K = "4K"

	DefaultAspectRatio = "1:1"
	DefaultImageSize   = ImageSize2K
	DefaultStyle       = "photorealistic"
)

// Options controls how a BatchRequest is built. Empty fields fall back to the defaults.
type Options struct {
	AspectRatio string
	ImageSize   string
	Style       string
	BatchName   string
	UserID      string

	// MaxSide downscales the reference image so neither side exceeds it. Zero disables resizing.
	MaxSide int
}

func DefaultOptions() Options {
	return Options{
		AspectRatio: DefaultAspectRatio,
		ImageSize:   DefaultImageSize,
		Style:       DefaultStyle,
	}
}
