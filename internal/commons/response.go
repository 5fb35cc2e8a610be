package commons

// MessageResponse is the success body shared by delete and update.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned on every failed request. The message is
// the only detail exposed to callers; internal failures always carry the
// generic text.
type ErrorResponse struct {
	Error string `json:"error"`
}

const InternalErrorMessage = "Internal Server Error"

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
