//go:build darwin

package secrets

import (
	"errors"

	gokeychain "github.com/keybase/go-keychain"
)

// NewSystemBackend returns the Keychain-backed store on macOS.
//
// Keychain calls may block on an interactive authorization prompt; there is
// no built-in timeout. Entries are scoped with
// kSecAttrAccessibleWhenUnlockedThisDeviceOnly: never synced to iCloud,
// never available while the machine is locked.
func NewSystemBackend() Backend {
	return NewKeychainBackend(systemKeychain{})
}

// systemKeychain adapts the macOS Keychain to the Keychain capability.
type systemKeychain struct{}

func (systemKeychain) Get(account, service string) (string, error) {
	data, err := gokeychain.GetGenericPassword(service, account, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	// GetGenericPassword reports a missing item as empty data with no
	// error, so an empty value is indistinguishable from an absent entry.
	if len(data) == 0 {
		return "", ErrNotFound
	}
	return string(data), nil
}

func (systemKeychain) Set(account, service, value string) error {
	// Update = delete + add, same effect as `security add-generic-password -U`.
	if err := gokeychain.DeleteGenericPasswordItem(service, account); err != nil &&
		!errors.Is(err, gokeychain.ErrorItemNotFound) {
		return err
	}

	item := gokeychain.NewGenericPassword(service, account, service, []byte(value), "")
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)
	return gokeychain.AddItem(item)
}

func (systemKeychain) Delete(account, service string) error {
	err := gokeychain.DeleteGenericPasswordItem(service, account)
	if errors.Is(err, gokeychain.ErrorItemNotFound) {
		return ErrNotFound
	}
	return err
}

func (systemKeychain) Entries(account string) ([]Entry, error) {
	query := gokeychain.NewItem()
	query.SetSecClass(gokeychain.SecClassGenericPassword)
	query.SetAccount(account)
	query.SetMatchLimit(gokeychain.MatchLimitAll)
	query.SetReturnAttributes(true)

	results, err := gokeychain.QueryItem(query)
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, Entry{
			Service:    r.Service,
			Account:    r.Account,
			CreatedAt:  r.CreationDate,
			ModifiedAt: r.ModificationDate,
		})
	}
	return entries, nil
}
