package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/benaskins/scfg/internal/codec"
)

// FileBackend reads configurations from plain JSON files. It is the
// fallback medium on platforms without a credential store, so only Load is
// available. The file holds raw UTF-8 JSON text — no base64 layer.
type FileBackend struct{}

// NewFileBackend creates the file-backed store.
func NewFileBackend() *FileBackend {
	return &FileBackend{}
}

// Load reads and parses the JSON document at opts.Filename. The mirror
// option only applies to the Keychain medium and is ignored here.
func (*FileBackend) Load(account, service string, opts LoadOptions) (any, error) {
	if opts.Filename == "" {
		return nil, fmt.Errorf("%w: filename is required for a file-backed load", ErrConfiguration)
	}
	raw, err := os.ReadFile(opts.Filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, opts.Filename)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, opts.Filename, err)
	}
	return codec.ParseJSON(raw)
}

func (*FileBackend) Store(account, service, filename string) error {
	return fmt.Errorf("%w: store requires the macOS Keychain", ErrUnsupported)
}

func (*FileBackend) StoreBytes(account, service string, raw []byte) error {
	return fmt.Errorf("%w: store requires the macOS Keychain", ErrUnsupported)
}

func (*FileBackend) List(account string) ([]Entry, error) {
	return nil, fmt.Errorf("%w: list requires the macOS Keychain", ErrUnsupported)
}

func (*FileBackend) Delete(account, service string) error {
	return fmt.Errorf("%w: delete requires the macOS Keychain", ErrUnsupported)
}
