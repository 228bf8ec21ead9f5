package pageblade

import (
	"os"
	"strings"
)

const (
	// DefaultBaseURL is the API root used when nothing else is configured
	DefaultBaseURL = "https://api.pageblade.com"

	// EnvBaseURL overrides the API root
	EnvBaseURL = "PAGEBLADE_URL"
	// EnvAPIKey supplies the API key when the client is not given one
	EnvAPIKey = "PAGEBLADE_API_KEY"

	// HeaderAPIKey carries the API key on every request
	HeaderAPIKey = "x-api-key"
	// HeaderTenantID selects the tenant a request applies to
	HeaderTenantID = "x-tenant-id"
)

// Environment holds the process-level fallbacks for client configuration.
type Environment struct {
	BaseURL string
	APIKey  string
}

// LookupEnvironment reads the PAGEBLADE_* variables from the process environment
func LookupEnvironment() Environment {
	return Environment{
		BaseURL: os.Getenv(EnvBaseURL),
		APIKey:  os.Getenv(EnvAPIKey),
	}
}

// firstNonEmpty returns the first value that is not blank
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ResolveBaseURL returns configured, else the environment override, else
// DefaultBaseURL, without a trailing slash.
func ResolveBaseURL(configured string, env Environment) string {
	return strings.TrimRight(firstNonEmpty(configured, env.BaseURL, DefaultBaseURL), "/")
}

// ResolveAPIKey returns configured, else the environment fallback. The result
// is empty when neither is set.
func ResolveAPIKey(configured string, env Environment) string {
	return firstNonEmpty(configured, env.APIKey)
}

// ResolveTenant returns the per-call tenant, else the configured default.
func ResolveTenant(explicit, configured string) string {
	return firstNonEmpty(explicit, configured)
}
