package notion

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates the provided API token is invalid
var ErrUnauthorized = errors.New("invalid or expired Notion token")

// ErrMalformedPageURL indicates a URL that does not carry a valid page identifier
var ErrMalformedPageURL = errors.New("URL does not contain a valid Notion page identifier")

// APIError represents a non-2xx response from the Notion API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Notion API error: HTTP %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("Notion API error: HTTP %d", e.StatusCode)
}
