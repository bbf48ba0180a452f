//go:build !darwin

package secrets

// NewSystemBackend returns the flat-file store on platforms without a
// credential store. Load reads a plain JSON file; Store, List and Delete
// fail with ErrUnsupported.
func NewSystemBackend() Backend {
	return NewFileBackend()
}
