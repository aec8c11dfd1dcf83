package bulk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// HTTPClient is the part of *http.Client the coordinator needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	APIURL string
	// HTTPClient defaults to a plain &http.Client{} so the transport's own timeouts apply.
	HTTPClient HTTPClient
}

// Coordinator submits a BatchRequest to the generation service and checks what comes back
type Coordinator struct {
	apiURL     string
	httpClient HTTPClient
}

func NewCoordinator(config Config) (*Coordinator, error) {
	if config.APIURL == "" {
		return nil, errors.New("api url is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Coordinator{
		apiURL:     config.APIURL,
		httpClient: httpClient,
	}, nil
}

// Submit sends the request exactly once. A success:false body is returned as a failed
// BatchResult with a nil error; transport, status and consistency problems are errors.
func (coordinator *Coordinator) Submit(ctx context.Context, request *BatchRequest) (*BatchResult, error) {
	jsonBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, coordinator.apiURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	log.Info().
		Str("request_id", requestID).
		Str("url", coordinator.apiURL).
		Int("prompts", len(request.Prompts)).
		Msg("Sending bulk generation request")

	startedAt := time.Now()
	resp, err := coordinator.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: coordinator.apiURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: coordinator.apiURL, Err: err}
	}

	log.Info().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(startedAt)).
		Msg("Received bulk generation response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result BatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}

	if !result.Success {
		log.Warn().Str("request_id", requestID).Str("error", result.Error).Msg("Service reported failure")
		return &BatchResult{Success: false, Error: result.Error}, nil
	}

	if err := Reconcile(request, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Reconcile checks the reported counts against the returned arrays and the number of prompts sent
func Reconcile(request *BatchRequest, result *BatchResult) error {
	requested := len(request.Prompts)
	if result.TotalPrompts != requested ||
		result.SuccessCount+result.FailureCount != result.TotalPrompts ||
		len(result.Results)+len(result.Errors) != result.TotalPrompts {
		return &ReconciliationError{
			Requested:    requested,
			TotalPrompts: result.TotalPrompts,
			SuccessCount: result.SuccessCount,
			FailureCount: result.FailureCount,
			Results:      len(result.Results),
			Errors:       len(result.Errors),
		}
	}
	return nil
}
