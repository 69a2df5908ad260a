package gnupg

import (
	"bytes"
	"io"
	"os"
)

// Request describes one external invocation. It is built by an operation
// wrapper, consumed exactly once by run, and never reused.
type Request struct {
	// Args are the operation-specific arguments, appended after the
	// baseline set.
	Args []string
	// Operation tags the invocation for decoding and error reporting.
	Operation Operation

	// Input sources for the data channel, mutually exclusive, tried in
	// this order: Input bytes, File handle, Path. All empty means the
	// operation needs no data channel.
	Input []byte
	File  *os.File
	Path  string

	// Passphrase, when non-empty, is delivered over a dedicated pipe as
	// an extra file descriptor; never on argv, never on stdin.
	Passphrase string

	// Env overrides are appended to the inherited environment.
	Env map[string]string
}

// inputReader resolves the data channel by precedence. The returned
// closer is non-nil when the reader was opened here.
func (r *Request) inputReader() (io.Reader, io.Closer, error) {
	switch {
	case len(r.Input) > 0:
		return bytes.NewReader(r.Input), nil, nil
	case r.File != nil:
		return r.File, nil, nil
	case r.Path != "":
		f, err := os.Open(r.Path)
		if err != nil {
			return nil, nil, NewError(ErrFileNotFound, "unable to open input file: %q", r.Path).WithCause(err)
		}
		return f, f, nil
	default:
		return nil, nil, nil
	}
}
