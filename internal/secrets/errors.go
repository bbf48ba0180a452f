package secrets

import "errors"

// Every backend failure surfaces as one of these sentinels, wrapped with
// detail and matched by callers with errors.Is. Decode-time failures keep
// their own sentinels in the codec package. No error is ever swallowed
// into a default value.
var (
	// ErrConfiguration reports a required parameter missing for the
	// selected medium.
	ErrConfiguration = errors.New("missing required parameter")

	// ErrNotFound reports that no entry or file exists for the identity.
	ErrNotFound = errors.New("entry not found")

	// ErrUnsupported reports an operation the current platform's medium
	// cannot perform.
	ErrUnsupported = errors.New("operation not supported on this platform")

	// ErrBackend reports a credential-store call failure, including
	// permission errors and user-declined prompts.
	ErrBackend = errors.New("credential store failure")

	// ErrIO reports a filesystem call failure other than a missing file.
	ErrIO = errors.New("file access failure")
)
