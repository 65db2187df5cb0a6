package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the engine's secrets in the OS keychain.
	KeyringService = "payrise"
)

func account(provider string) string {
	return "payrise:api:" + strings.ToLower(strings.TrimSpace(provider))
}

// ProviderAPIKey returns the API key for provider: keyring first, then the
// envVar fallback. An empty result means the provider runs unauthenticated.
func ProviderAPIKey(provider, envVar string) string {
	if strings.TrimSpace(provider) != "" {
		key, err := keyring.Get(KeyringService, account(provider))
		if err == nil && strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key)
		}
	}
	if envVar != "" {
		return strings.TrimSpace(os.Getenv(envVar))
	}
	return ""
}

func SetProviderAPIKey(provider, key string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("provider name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, account(provider), strings.TrimSpace(key))
}

func DeleteProviderAPIKey(provider string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("provider name is empty")
	}
	return keyring.Delete(KeyringService, account(provider))
}
