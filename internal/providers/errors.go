package providers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrProviderUnavailable is returned when no upstream collaborator is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrMalformedPayload marks an upstream payload missing an expected field or result set.
	ErrMalformedPayload = errors.New("malformed upstream payload")
)

// FetchError captures a failed upstream request: transport failure, non-200
// status, undecodable body, or a payload of unexpected shape.
type FetchError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := "upstream fetch failed"
	if e.Resource != "" {
		msg = "fetch " + e.Resource
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// RateLimited reports whether upstream answered 429.
func (e *FetchError) RateLimited() bool {
	return e != nil && e.StatusCode == http.StatusTooManyRequests
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// Malformed builds a FetchError wrapping ErrMalformedPayload.
func Malformed(resource string, format string, args ...any) error {
	return &FetchError{
		Resource: resource,
		Err:      fmt.Errorf("%w: %s", ErrMalformedPayload, fmt.Sprintf(format, args...)),
	}
}

// WrapFetchError makes sure err is a FetchError, tagging it with resource when it is not.
func WrapFetchError(resource string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsFetchError(err); ok {
		return err
	}
	return &FetchError{Resource: resource, Err: err}
}
