package nested

const (
	// Safety limits
	MaxDepth    = 100   // Maximum number of tokens in a normalized path
	MaxListSize = 10000 // Maximum absolute index accepted for sequence access or growth

	// Path syntax
	PathDelimiter = "."

	// Logging
	MaxLoggedPathLength  = 100
	MaxLoggedErrorLength = 200
)

// Error codes for machine-readable error identification
const (
	ErrCodeInvalidPath        ErrorCode = "INVALID_PATH"
	ErrCodeInvalidIndex       ErrorCode = "INVALID_INDEX"
	ErrCodeMissingKey         ErrorCode = "MISSING_KEY"
	ErrCodeEmptyPath          ErrorCode = "EMPTY_PATH"
	ErrCodeImmutableContainer ErrorCode = "IMMUTABLE_CONTAINER"
	ErrCodeNonNavigableType   ErrorCode = "NON_NAVIGABLE_TYPE"
	ErrCodeOperationDisabled  ErrorCode = "OPERATION_DISABLED"
	ErrCodePathTooDeep        ErrorCode = "PATH_TOO_DEEP"
)

// Operation names carried by PathError.Op
const (
	opNormalize = "normalize"
	opGet       = "get"
	opExists    = "exists"
	opSet       = "set"
	opDelete    = "delete"
)
