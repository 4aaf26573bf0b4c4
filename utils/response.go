package utils

// ErrorResponse is the JSON body returned on any classified failure.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MessageResponse is the JSON body for outcomes that carry only a message,
// such as empty report results or delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}
