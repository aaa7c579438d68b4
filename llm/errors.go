package llm

import (
	"fmt"
	"net/http"
	"strings"
)

// ProviderError represents an error returned by an LLM provider API.
type ProviderError struct {
	provider   string
	statusCode int
	status     string
	message    string
}

// NewProviderError returns a ProviderError. The status is the provider's
// symbolic status, e.g. "RESOURCE_EXHAUSTED", and may be empty.
func NewProviderError(provider string, statusCode int, status, message string) *ProviderError {
	return &ProviderError{
		provider:   provider,
		statusCode: statusCode,
		status:     status,
		message:    message,
	}
}

func (e *ProviderError) Error() string {
	if e.status != "" {
		return fmt.Sprintf("%s api error (status %d %s): %s", e.provider, e.statusCode, e.status, e.message)
	}
	return fmt.Sprintf("%s api error (status %d): %s", e.provider, e.statusCode, e.message)
}

// Provider returns the name of the provider that produced the error.
func (e *ProviderError) Provider() string {
	return e.provider
}

// StatusCode returns the HTTP status code of the failed call.
func (e *ProviderError) StatusCode() int {
	return e.statusCode
}

// Status returns the provider's symbolic status, if any.
func (e *ProviderError) Status() string {
	return e.status
}

// Message returns the error message reported by the provider.
func (e *ProviderError) Message() string {
	return e.message
}

// IsAuthentication reports whether the provider rejected the credentials.
func (e *ProviderError) IsAuthentication() bool {
	switch e.statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	switch e.status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return true
	}
	// Gemini reports a bad key as 400 INVALID_ARGUMENT.
	return strings.Contains(strings.ToLower(e.message), "api key not valid")
}

// IsQuota reports whether the request was rejected for rate or quota limits.
func (e *ProviderError) IsQuota() bool {
	return e.statusCode == http.StatusTooManyRequests || e.status == "RESOURCE_EXHAUSTED"
}
