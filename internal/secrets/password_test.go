package secrets

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestProviderAPIKeyPrefersKeyring(t *testing.T) {
	keyring.MockInit()
	t.Setenv("INDEED_API_KEY", "from-env")

	if got := ProviderAPIKey("indeed", "INDEED_API_KEY"); got != "from-env" {
		t.Fatalf("env fallback = %q", got)
	}
	if err := SetProviderAPIKey("Indeed", " from-keyring "); err != nil {
		t.Fatalf("SetProviderAPIKey: %v", err)
	}
	if got := ProviderAPIKey("indeed", "INDEED_API_KEY"); got != "from-keyring" {
		t.Fatalf("keyring value = %q", got)
	}
	if err := DeleteProviderAPIKey("indeed"); err != nil {
		t.Fatalf("DeleteProviderAPIKey: %v", err)
	}
	if got := ProviderAPIKey("indeed", "INDEED_API_KEY"); got != "from-env" {
		t.Fatalf("after delete = %q", got)
	}
}

func TestSetProviderAPIKeyValidates(t *testing.T) {
	keyring.MockInit()
	if err := SetProviderAPIKey("", "k"); err == nil {
		t.Fatal("expected error for empty provider")
	}
	if err := SetProviderAPIKey("indeed", "  "); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestProviderAPIKeyMissing(t *testing.T) {
	keyring.MockInit()
	if got := ProviderAPIKey("linkedin", ""); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
