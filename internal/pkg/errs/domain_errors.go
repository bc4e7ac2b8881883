package errs

// Sentinel errors shared by the usecase and handler layers
var (
	// Store errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrRowMappingFailed        = New("row mapping failed")

	// Request errors
	ErrInvalidDateRange = New("end date before start date")

	// Idempotency errors
	ErrIdempotencyInProgress = New("idempotency in progress")
	ErrIdempotencyMismatch   = New("idempotency key reused with different request")
)
