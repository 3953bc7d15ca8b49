package dto

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
//
// ErrorDetails carries the internal error text and is only populated when the
// deployment runs in development mode; callers decide whether to pass the
// inner error to NewErrorResponse.
type ErrorResponse struct {
	Message      string    `json:"error" example:"company not found"`
	ErrorDetails string    `json:"details,omitempty" example:"sql: connection refused"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-18T12:00:00Z"`
}

// Error implements the error interface so the response can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
