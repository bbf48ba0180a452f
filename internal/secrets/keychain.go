package secrets

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/benaskins/scfg/internal/codec"
)

// Keychain is the credential-store capability KeychainBackend depends on.
// The darwin implementation talks to the macOS Keychain; tests use
// MemoryKeychain. Service names passed here already carry the prefix.
// Implementations report a missing entry by wrapping ErrNotFound.
type Keychain interface {
	Get(account, service string) (string, error)
	Set(account, service, value string) error
	Delete(account, service string) error
	Entries(account string) ([]Entry, error)
}

// KeychainBackend stores configurations as generic passwords in a
// credential store.
type KeychainBackend struct {
	kc Keychain
}

// NewKeychainBackend creates a store backed by the given credential store.
func NewKeychainBackend(kc Keychain) *KeychainBackend {
	return &KeychainBackend{kc: kc}
}

// Load retrieves, base64-decodes and parses the entry for
// (account, service). With opts.MirrorPath set, the decoded bytes are also
// written to that path before parsing, so the mirror preserves the stored
// document byte-for-byte.
func (b *KeychainBackend) Load(account, service string, opts LoadOptions) (any, error) {
	value, err := b.kc.Get(account, qualified(service))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, account, service)
		}
		return nil, fmt.Errorf("%w: get %s/%s: %v", ErrBackend, account, service, err)
	}

	raw, err := codec.Decode(strings.TrimSpace(value))
	if err != nil {
		return nil, err
	}

	if opts.MirrorPath != "" {
		if err := os.WriteFile(opts.MirrorPath, raw, 0o600); err != nil {
			return nil, fmt.Errorf("%w: writing mirror %s: %v", ErrIO, opts.MirrorPath, err)
		}
	}

	return codec.ParseJSON(raw)
}

// Store reads filename and writes its base64-encoded bytes as the entry
// for (account, service). The contents are not JSON-validated here; the
// well-formedness invariant is enforced on every Load.
func (b *KeychainBackend) Store(account, service, filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: filename", ErrConfiguration)
	}
	raw, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrIO, filename, err)
	}
	return b.StoreBytes(account, service, raw)
}

// StoreBytes writes raw document bytes as the base64-encoded entry for
// (account, service).
func (b *KeychainBackend) StoreBytes(account, service string, raw []byte) error {
	if err := b.kc.Set(account, qualified(service), codec.Encode(raw)); err != nil {
		return fmt.Errorf("%w: set %s/%s: %v", ErrBackend, account, service, err)
	}
	return nil
}

// List enumerates the account's generic-password entries, keeps the
// prefixed ones and strips the prefix. Sorted by service name.
func (b *KeychainBackend) List(account string) ([]Entry, error) {
	all, err := b.kc.Entries(account)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrBackend, account, err)
	}
	entries := make([]Entry, 0, len(all))
	for _, e := range all {
		if !strings.HasPrefix(e.Service, ServicePrefix) {
			continue
		}
		e.Service = strings.TrimPrefix(e.Service, ServicePrefix)
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Service < entries[j].Service
	})
	return entries, nil
}

// Delete removes the entry for (account, service). Deleting an entry that
// does not exist is an error, not a no-op.
func (b *KeychainBackend) Delete(account, service string) error {
	if err := b.kc.Delete(account, qualified(service)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, account, service)
		}
		return fmt.Errorf("%w: delete %s/%s: %v", ErrBackend, account, service, err)
	}
	return nil
}
