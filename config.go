package promptlab

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables consulted for provider credentials.
const (
	// GroqAPIKeyEnv is the environment variable holding the Groq API key.
	GroqAPIKeyEnv = "GROQ_API_KEY"
	// AnthropicAPIKeyEnv is the environment variable holding the Anthropic API key.
	AnthropicAPIKeyEnv = "ANTHROPIC_API_KEY"
)

// ResolveAPIKey returns the explicit key when non-empty, otherwise the
// value of the named environment variable. It returns an error when
// neither source provides a key.
//
// Example usage:
//
//	key, err := promptlab.ResolveAPIKey("", promptlab.GroqAPIKeyEnv)
//	if err != nil {
//	    log.Fatal(err)
//	}
func ResolveAPIKey(explicit, envVar string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("API key must be provided explicitly or via the %s environment variable", envVar)
}

// LooksLikeGroqKey performs a cheap format check on a Groq API key
// before it is used for a network call. Groq keys start with "gsk_".
func LooksLikeGroqKey(key string) bool {
	return strings.HasPrefix(key, "gsk_") && len(key) > 20
}

// KeyStatus reports the outcome of verifying a credential with a
// minimal completion call.
type KeyStatus struct {
	// Valid is true when the credential was accepted by the provider.
	// A rate-limited key is still reported as valid.
	Valid bool
	// Message is a human-readable summary of the verification result.
	Message string
}
