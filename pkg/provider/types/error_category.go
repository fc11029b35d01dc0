package types

// ErrorCategory classifies a stream-terminating error independent of which
// provider or dialect produced it, so callers can branch on retryability
// without knowing OpenAI's specific error codes.
type ErrorCategory string

const (
	ErrorCategoryUnknown       ErrorCategory = "UNKNOWN"
	ErrorCategoryAuth          ErrorCategory = "AUTH"
	ErrorCategoryRateLimit     ErrorCategory = "RATE_LIMIT"
	ErrorCategoryInvalidArg    ErrorCategory = "INVALID_ARG"
	ErrorCategoryNotFound      ErrorCategory = "NOT_FOUND"
	ErrorCategoryServer        ErrorCategory = "SERVER"
	ErrorCategoryNetwork       ErrorCategory = "NETWORK"
	ErrorCategoryContentFilter ErrorCategory = "CONTENT_FILTER"
)
