package ingesting

import "fmt"

// ConfigurationError means the project cannot be synced at all: no usable
// credential configuration could be resolved. Fatal for the run, not retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ingestion configuration error: %s", e.Reason)
}

func NewConfigurationError(reason string) error {
	return &ConfigurationError{Reason: reason}
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// AuthenticationError means every order fetch failed with a credential-shaped
// failure and zero orders were recovered. It carries the per-endpoint error
// map so the caller can see which pair failed how. Fatal for the run.
type AuthenticationError struct {
	Errors map[string]string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("marketplace rejected all credentials (%d failed calls)", len(e.Errors))
}

// IsAuthenticationError reports whether err is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	_, ok := err.(*AuthenticationError)
	return ok
}
