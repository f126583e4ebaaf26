package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ResolvedResponse is the body of the relationship-resolution endpoints:
// hydrated records in the caller-given order, plus the ids that could not be
// resolved. Missing ids are reported, never silently dropped.
type ResolvedResponse[T any] struct {
	Content []T      `json:"content"`
	Missing []string `json:"missing,omitempty"`
}
