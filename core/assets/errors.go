package assets

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a model name is empty.
	ErrEmptyName = errors.New("model name is empty")
	// ErrAttemptTimeout marks a single attempt that exceeded its timeout.
	// It is retried like any other attempt failure.
	ErrAttemptTimeout = errors.New("load attempt timed out")
	// ErrLoadExhausted matches a LoadError returned once every attempt failed
	// and the fallback is disabled.
	ErrLoadExhausted = errors.New("model load retries exhausted")
	// ErrNoModel is returned when a downloader reports success without a model.
	ErrNoModel = errors.New("downloader returned no model")
)

// LoadError is returned when a model could not be loaded and no fallback was allowed.
// It wraps the error of the last attempt.
type LoadError struct {
	Name     string
	Attempts int
	Err      error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to load model %s after %d attempts", e.Name, e.Attempts)
	}
	return fmt.Sprintf("failed to load model %s after %d attempts: %v", e.Name, e.Attempts, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLoadExhausted) true for any LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadExhausted
}
