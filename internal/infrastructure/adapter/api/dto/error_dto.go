package dto

// ErrorResponse is the body of every failed request. Code is the numeric domain error code;
// RequestID matches the X-Request-ID header and the request's log entries.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse builds an error body
func NewErrorResponse(code int, message, requestID string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, RequestID: requestID}
}
