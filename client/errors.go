package client

import (
	"errors"
	"fmt"
	"time"
)

// Category classifies API failures for the view layer. Only the detail
// read and the review submission ever surface these; list reads degrade
// to sample data instead.
type Category string

const (
	// CategoryUnreachable is a transport-level failure (status 0): the
	// backend never answered.
	CategoryUnreachable Category = "unreachable"
	// CategoryNotFound is HTTP 404.
	CategoryNotFound Category = "not_found"
	// CategoryForbidden is HTTP 403.
	CategoryForbidden Category = "forbidden"
	// CategoryLoadFailed is every other failed response.
	CategoryLoadFailed Category = "load_failed"
)

// APIError carries the failure category and, when one exists, the HTTP
// status. StatusCode is 0 for transport failures.
type APIError struct {
	Category   Category
	StatusCode int
	Message    string
	Err        error

	// retryAfter carries the server's Retry-After hint into the retry loop.
	retryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%s, status %d): %s", e.Category, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%s, status %d)", e.Category, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// categorize maps an HTTP status to its error category.
func categorize(statusCode int) Category {
	switch statusCode {
	case 403:
		return CategoryForbidden
	case 404:
		return CategoryNotFound
	default:
		return CategoryLoadFailed
	}
}

func unreachable(err error) *APIError {
	return &APIError{Category: CategoryUnreachable, StatusCode: 0, Err: err}
}

// HasCategory reports whether err is an APIError of the given category.
func HasCategory(err error, category Category) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Category == category
}

// FriendlyMessage renders a user-facing message for a failed detail read.
// Unknown errors get the generic text so the UI never shows raw internals.
func FriendlyMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Category {
		case CategoryForbidden:
			return "You don't have permission to view this university."
		case CategoryNotFound:
			return "We couldn't find that university. It may have been removed."
		case CategoryUnreachable:
			return "We couldn't reach the server. Please check your connection and try again."
		}
	}
	return "Something went wrong while loading. Please try again."
}
