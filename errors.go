package nested

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a PathError. The set of codes is closed.
type ErrorCode string

// String returns the code value
func (c ErrorCode) String() string { return string(c) }

// Sentinel errors, one per code, for errors.Is matching
var (
	ErrInvalidPath        = errors.New("invalid path")
	ErrInvalidIndex       = errors.New("invalid index")
	ErrMissingKey         = errors.New("missing key")
	ErrEmptyPath          = errors.New("empty path")
	ErrImmutableContainer = errors.New("immutable container")
	ErrNonNavigableType   = errors.New("non-navigable type")
	ErrOperationDisabled  = errors.New("operation disabled")
	ErrPathTooDeep        = errors.New("path too deep")
)

var codeSentinels = map[ErrorCode]error{
	ErrCodeInvalidPath:        ErrInvalidPath,
	ErrCodeInvalidIndex:       ErrInvalidIndex,
	ErrCodeMissingKey:         ErrMissingKey,
	ErrCodeEmptyPath:          ErrEmptyPath,
	ErrCodeImmutableContainer: ErrImmutableContainer,
	ErrCodeNonNavigableType:   ErrNonNavigableType,
	ErrCodeOperationDisabled:  ErrOperationDisabled,
	ErrCodePathTooDeep:        ErrPathTooDeep,
}

// Codes returns every error code the engine can produce
func Codes() []ErrorCode {
	return []ErrorCode{
		ErrCodeInvalidPath,
		ErrCodeInvalidIndex,
		ErrCodeMissingKey,
		ErrCodeEmptyPath,
		ErrCodeImmutableContainer,
		ErrCodeNonNavigableType,
		ErrCodeOperationDisabled,
		ErrCodePathTooDeep,
	}
}

// PathError is the only error type produced by the engine.
type PathError struct {
	Op      string    `json:"op"`      // Operation that failed
	Path    string    `json:"path"`    // Path as given by the caller, when known
	Code    ErrorCode `json:"code"`    // Machine-readable failure class
	Message string    `json:"message"` // Human-readable error message
}

func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("nested %s failed at path '%s': %s [%s]", e.Op, e.Path, e.Message, e.Code)
	}
	if e.Op != "" {
		return fmt.Sprintf("nested %s failed: %s [%s]", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}

// Unwrap returns the sentinel for the error code
func (e *PathError) Unwrap() error {
	return codeSentinels[e.Code]
}

// Is matches another PathError by code, or a sentinel through Unwrap
func (e *PathError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*PathError); ok {
		return e.Code == targetErr.Code
	}
	return false
}

// CodeOf extracts the error code from err
func CodeOf(err error) (ErrorCode, bool) {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Code, true
	}
	return "", false
}

// IsCode reports whether err is a PathError with the given code
func IsCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

func newPathError(code ErrorCode, format string, args ...any) *PathError {
	return &PathError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func newMissingKeyError(key any) *PathError {
	return newPathError(ErrCodeMissingKey, "key not found: '%v'", key)
}

func newNonNavigableError(node any) *PathError {
	return newPathError(ErrCodeNonNavigableType, "cannot navigate into %s", typeName(node))
}

func newImmutableError(node any) *PathError {
	return newPathError(ErrCodeImmutableContainer, "cannot modify %s (immutable)", typeName(node))
}

// withContext fills in the operation and caller path on a PathError
func withContext(err error, op string, path any) error {
	var pathErr *PathError
	if !errors.As(err, &pathErr) {
		return err
	}
	if pathErr.Op == "" {
		pathErr.Op = op
	}
	if pathErr.Path == "" {
		pathErr.Path = describePath(path)
	}
	return pathErr
}

// ErrorClassifier helps classify errors for better handling
type ErrorClassifier struct{}

// NewErrorClassifier creates a new error classifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsPathSyntax reports failures caused by a malformed or too deep path.
// These are never suppressed by GetOr or Exists.
func (ec *ErrorClassifier) IsPathSyntax(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidPath),
		errors.Is(err, ErrEmptyPath),
		errors.Is(err, ErrPathTooDeep):
		return true
	default:
		return false
	}
}

// IsNotFound reports failures caused by the shape of the data
func (ec *ErrorClassifier) IsNotFound(err error) bool {
	switch {
	case errors.Is(err, ErrMissingKey),
		errors.Is(err, ErrInvalidIndex),
		errors.Is(err, ErrNonNavigableType):
		return true
	default:
		return false
	}
}

// IsMutationRejected reports writes refused by mutability rules
func (ec *ErrorClassifier) IsMutationRejected(err error) bool {
	return errors.Is(err, ErrImmutableContainer) || errors.Is(err, ErrOperationDisabled)
}

// GetErrorSuggestion provides helpful suggestions for common errors
func (ec *ErrorClassifier) GetErrorSuggestion(err error) string {
	switch {
	case errors.Is(err, ErrEmptyPath):
		return "Provide at least one key or index"
	case errors.Is(err, ErrInvalidPath):
		return "Check for empty segments like 'a..b' or use the sequence form for keys containing '.'"
	case errors.Is(err, ErrPathTooDeep):
		return "Shorten the path or raise MaxDepth in the configuration"
	case errors.Is(err, ErrMissingKey):
		return "Check if the key exists, use GetAtOr with a default, or set CreatePaths"
	case errors.Is(err, ErrInvalidIndex):
		return "Indices must be integers within bounds; sequences grow only by appending at their length"
	case errors.Is(err, ErrNonNavigableType):
		return "The path descends into a scalar; set CreatePaths to replace it with a container"
	case errors.Is(err, ErrImmutableContainer):
		return "Tuples and arrays cannot be modified; convert them to []any first"
	case errors.Is(err, ErrOperationDisabled):
		return "Set AllowListMutation to delete from sequences, or pass a *[]any root to resize it"
	default:
		return "Check the error message for specific details"
	}
}
