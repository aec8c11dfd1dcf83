package bulk

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoPrompts = errors.New("no prompts given")

// FileNotFoundError is returned when the reference image or prompts file cannot be read
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }

// InvalidOptionError is returned when a constrained option has a value outside its allowed set
type InvalidOptionError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Option, e.Value, strings.Join(e.Allowed, ", "))
}

// TransportError is returned when the request never got an HTTP response
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is returned for non-2xx responses and for 2xx bodies that are not a valid result.
// Err is only set in the latter case.
type ServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Body)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ServiceFailure is a 2xx response whose body reported success:false
type ServiceFailure struct {
	Message string
}

func (e *ServiceFailure) Error() string {
	return fmt.Sprintf("generation failed: %s", e.Message)
}

// ReconciliationError is returned when the reported counts do not add up
type ReconciliationError struct {
	Requested    int
	TotalPrompts int
	SuccessCount int
	FailureCount int
	Results      int
	Errors       int
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("inconsistent result: requested=%d totalPrompts=%d successCount=%d failureCount=%d results=%d errors=%d",
		e.Requested, e.TotalPrompts, e.SuccessCount, e.FailureCount, e.Results, e.Errors)
}
