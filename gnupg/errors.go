package gnupg

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrKind classifies a failure reported by this package.
type ErrKind int

// Error kinds, in rough lifecycle order: setup, argument validation,
// process transport, operation outcome.
const (
	ErrNone ErrKind = iota
	ErrHomedir
	ErrOutputDir
	ErrInit
	ErrNotFound
	ErrProcess
	ErrInvalidArgument
	ErrFailedToStartProcess
	ErrFailedToRetrieveChildProcess
	ErrWriteFail
	ErrReadFail
	ErrTimeout
	ErrPassphrase
	ErrKeyNotFound
	ErrDecryptionFailed
	ErrBadSignature
	ErrKeyNotSubkey
	ErrInvalidReasonCode
	ErrFileNotFound
	ErrFileNotProvided
)

func (k ErrKind) String() string {
	switch k {
	case ErrHomedir:
		return "HomedirError"
	case ErrOutputDir:
		return "OutputDirError"
	case ErrInit:
		return "GPGInitError"
	case ErrNotFound:
		return "GPGNotFoundError"
	case ErrProcess:
		return "GPGProcessError"
	case ErrInvalidArgument:
		return "InvalidArgumentError"
	case ErrFailedToStartProcess:
		return "FailedToStartProcess"
	case ErrFailedToRetrieveChildProcess:
		return "FailedToRetrieveChildProcess"
	case ErrWriteFail:
		return "WriteFailError"
	case ErrReadFail:
		return "ReadFailError"
	case ErrTimeout:
		return "TimeoutError"
	case ErrPassphrase:
		return "PassphraseError"
	case ErrKeyNotFound:
		return "KeyNotFoundError"
	case ErrDecryptionFailed:
		return "DecryptionFailedError"
	case ErrBadSignature:
		return "BadSignatureError"
	case ErrKeyNotSubkey:
		return "KeyNotSubkey"
	case ErrInvalidReasonCode:
		return "InvalidReasonCode"
	case ErrFileNotFound:
		return "FileNotFoundError"
	case ErrFileNotProvided:
		return "FileNotProvidedError"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by every operation in this package.
// Result, when present, carries the raw output of the failed invocation
// so callers can inspect what the tool actually reported.
type Error struct {
	Kind   ErrKind
	Result *CmdResult

	msg   string
	cause error
}

// NewError returns an Error of the given kind.
func NewError(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// WithResult attaches the originating CmdResult.
func (e *Error) WithResult(res *CmdResult) *Error {
	e.Result = res
	return e
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = errors.WithStack(err)
	return e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// ErrorKind returns the kind of err when it is, or wraps, an *Error,
// and ErrNone otherwise.
func ErrorKind(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrNone
}

// ResultFromError returns the CmdResult attached to err, if any.
func ResultFromError(err error) *CmdResult {
	var e *Error
	if errors.As(err, &e) {
		return e.Result
	}
	return nil
}
