package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// InvalidFrequencyError represents a non-positive aggregation frequency.
	// Rejected before any aggregation starts.
	InvalidFrequencyError ErrorCode = "invalid_frequency"
	// MalformedTickError represents a tick record that fails required-field
	// coercion. Only raised when the engine runs with the strict tick policy;
	// the default policy drops the row instead.
	MalformedTickError ErrorCode = "malformed_tick"
	// ReconciliationSourceUnavailable represents a reference or computed
	// dataset that could not be obtained. Kept distinct so an unavailable
	// source is never reported as "zero mismatches".
	ReconciliationSourceUnavailable ErrorCode = "reconciliation_source_unavailable"
	// IdentityNormalizationError represents a reference row whose
	// symbol/series pair cannot be mapped to an instrument id.
	IdentityNormalizationError ErrorCode = "identity_normalization"
	// InvalidDateRangeError represents a date or date range that cannot be
	// parsed.
	InvalidDateRangeError ErrorCode = "invalid_date_range"
)

// Severity represents the severity level of an error.
type Severity string

const (
	// SeverityCritical indicates a critical error that requires immediate attention.
	SeverityCritical Severity = "critical"
	// SeverityHigh indicates a high severity error that should be addressed promptly.
	SeverityHigh Severity = "high"
	// SeverityMedium indicates a medium severity error that should be addressed in due course.
	SeverityMedium Severity = "medium"
	// SeverityLow indicates a low severity error that can be addressed at a later time.
	SeverityLow Severity = "low"
)

// Category represents the category of an error.
type Category string

const (
	// CategoryDatabase indicates an error related to database operations.
	CategoryDatabase Category = "database"
	// CategoryValidation indicates an error related to validation of input data.
	CategoryValidation Category = "validation"
	// CategoryBusinessLogic indicates an error related to business logic processing.
	CategoryBusinessLogic Category = "business_logic"
	// CategoryExternal indicates an error related to external services or files.
	CategoryExternal Category = "external"
	// CategoryUnknown indicates an unknown error category.
	CategoryUnknown Category = "unknown"
)
