package wp

import "fmt"

// ErrorKind classifies API failures so callers can decide fallback behavior.
type ErrorKind int

const (
	// ErrUnreachable means the request never produced an HTTP response.
	ErrUnreachable ErrorKind = iota
	// ErrHTTP means the server answered with a non-success status.
	ErrHTTP
	// ErrUnexpectedFormat means the body was not the JSON shape we expect.
	ErrUnexpectedFormat
	// ErrInvalidContentType means the content type has no resolvable REST base.
	ErrInvalidContentType
	// ErrConfigurationMissing means no API base URL is configured yet.
	ErrConfigurationMissing
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnreachable:
		return "unreachable"
	case ErrHTTP:
		return "http"
	case ErrUnexpectedFormat:
		return "unexpected_format"
	case ErrInvalidContentType:
		return "invalid_content_type"
	case ErrConfigurationMissing:
		return "configuration_missing"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by the API client. Expected failure
// modes (bad status, bad body) are values, never panics.
type Error struct {
	Kind   ErrorKind
	Status int // HTTP status, set when Kind == ErrHTTP
	Op     string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ErrHTTP:
		return fmt.Sprintf("%s: server returned HTTP %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a *wp.Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == kind
}

func httpError(op string, status int) *Error {
	return &Error{Kind: ErrHTTP, Status: status, Op: op}
}

func unreachable(op string, err error) *Error {
	return &Error{Kind: ErrUnreachable, Op: op, Err: err}
}

func badFormat(op string, err error) *Error {
	return &Error{Kind: ErrUnexpectedFormat, Op: op, Err: err}
}
