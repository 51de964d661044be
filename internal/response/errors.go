package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound    ErrCode = "NOT_FOUND"
	ErrRollNoTaken ErrCode = "ROLL_NO_TAKEN"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Store ─────────────────────────────────────────────────────────
	ErrDatabaseNotConfigured ErrCode = "DATABASE_NOT_CONFIGURED"
	ErrStore                 ErrCode = "STORE_ERROR"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."

	case ErrNotFound:
		return "Resource not found."
	case ErrRollNoTaken:
		return "Roll number already exists."

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrDatabaseNotConfigured:
		return "Database not configured. Set DATABASE_URL and DATABASE_NAME."
	case ErrStore:
		return "Database operation failed."

	case ErrInternal:
		return "Internal server error."
	default:
		return "An unexpected error occurred."
	}
}
