// Package secrets stores named JSON configuration blobs in the macOS
// Keychain, with a flat-file fallback on platforms that have no credential
// store.
//
// Keychain entries are generic passwords with:
//   - Service: "SC-" + the caller's service name
//   - Account: the caller's account (typically the current OS user)
//   - Value: base64 of the UTF-8 JSON bytes
//
// The "SC-" prefix namespaces scfg entries inside the login Keychain. It is
// applied exactly once on write and stripped exactly once from List
// results; it never appears in filenames or payloads. The file medium holds
// the raw JSON text with no base64 layer.
package secrets

import "time"

// ServicePrefix namespaces Keychain service attributes. Other tools reading
// the same entries must use the same prefix.
const ServicePrefix = "SC-"

// Entry identifies one stored configuration, without its payload.
type Entry struct {
	Service    string // prefix already stripped
	Account    string
	CreatedAt  time.Time // zero if the store does not report it
	ModifiedAt time.Time
}

// LoadOptions carries the per-call inputs only some media use.
type LoadOptions struct {
	// Filename is the document path for the file medium.
	Filename string

	// MirrorPath, when non-empty on the Keychain medium, receives the
	// decoded JSON bytes verbatim — never re-serialized, so the original
	// formatting survives byte-for-byte. Ignored by the file medium.
	MirrorPath string
}

// Backend is the store contract, implemented by KeychainBackend on macOS
// and FileBackend elsewhere. Operations a medium cannot provide fail with
// ErrUnsupported rather than silently doing nothing.
type Backend interface {
	// Load returns the JSON payload stored for (account, service).
	Load(account, service string, opts LoadOptions) (any, error)

	// Store reads filename and writes its base64-encoded contents as the
	// entry for (account, service), overwriting any existing entry.
	Store(account, service, filename string) error

	// StoreBytes writes raw document bytes the way Store does, for callers
	// that already hold the document (e.g. piped stdin) instead of a path.
	StoreBytes(account, service string, raw []byte) error

	// List enumerates the account's stored configurations. Payloads are
	// never decoded.
	List(account string) ([]Entry, error)

	// Delete removes the entry for (account, service).
	Delete(account, service string) error
}

func qualified(service string) string {
	return ServicePrefix + service
}
