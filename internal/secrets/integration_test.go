//go:build integration && darwin

package secrets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// Integration tests use the real macOS Keychain.
// Run with: go test -tags integration ./internal/secrets/
//
// Requires an unlocked login Keychain and an interactive session
// (first run may prompt for Keychain access approval).

const integrationAccount = "scfg-integration-test"

func integrationBackend() *KeychainBackend {
	return NewKeychainBackend(systemKeychain{})
}

func cleanupIntegration(t *testing.T, b *KeychainBackend, services ...string) {
	t.Helper()
	for _, s := range services {
		b.Delete(integrationAccount, s)
	}
}

func TestKeychainStoreAndLoad(t *testing.T) {
	b := integrationBackend()
	service := "integration-store-load"
	defer cleanupIntegration(t, b, service)

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"key":"value"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := b.Store(integrationAccount, service, path); err != nil {
		t.Fatalf("Store: %v", err)
	}

	v, err := b.Load(integrationAccount, service, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"key": "value"}) {
		t.Errorf("Load = %#v", v)
	}
}

func TestKeychainOverwrite(t *testing.T) {
	b := integrationBackend()
	service := "integration-overwrite"
	defer cleanupIntegration(t, b, service)

	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	os.WriteFile(first, []byte(`{"v":1}`), 0600)
	os.WriteFile(second, []byte(`{"v":2}`), 0600)

	b.Store(integrationAccount, service, first)
	b.Store(integrationAccount, service, second)

	v, err := b.Load(integrationAccount, service, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"v": float64(2)}) {
		t.Errorf("Load after overwrite = %#v", v)
	}
}

func TestKeychainDelete(t *testing.T) {
	b := integrationBackend()
	service := "integration-delete"

	path := filepath.Join(t.TempDir(), "doc.json")
	os.WriteFile(path, []byte(`{}`), 0600)

	b.Store(integrationAccount, service, path)
	if err := b.Delete(integrationAccount, service); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := b.Load(integrationAccount, service, LoadOptions{}); err == nil {
		t.Error("expected error after delete")
	}
}

func TestKeychainList(t *testing.T) {
	b := integrationBackend()
	services := []string{"integration-list-a", "integration-list-b"}
	defer cleanupIntegration(t, b, services...)

	path := filepath.Join(t.TempDir(), "doc.json")
	os.WriteFile(path, []byte(`{}`), 0600)

	for _, s := range services {
		b.Store(integrationAccount, s, path)
	}

	entries, err := b.List(integrationAccount)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	found := make(map[string]bool)
	for _, e := range entries {
		found[e.Service] = true
	}
	for _, s := range services {
		if !found[s] {
			t.Errorf("expected %q in list, not found", s)
		}
	}
}
