package models

// ErrorResponse is the body of every non 2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by operations that have nothing else to report
type MessageResponse struct {
	Message string `json:"message"`
}

// CustomPizzaResponse wraps a written pizza together with a confirmation message
type CustomPizzaResponse struct {
	Message     string      `json:"message"`
	CustomPizza CustomPizza `json:"customPizza"`
}

// Error messages exposed to API clients
const (
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInvalidPizzaID     = "Invalid pizza ID format"
	ErrMsgInvalidPizzaName   = "Pizza name cannot be empty"
	ErrMsgPizzaNotFound      = "Pizza not found"
	ErrMsgInternalServer     = "Internal server error"
)

// Success messages
const (
	MsgPizzaCreated = "Custom pizza created successfully!"
	MsgPizzaUpdated = "Custom pizza updated successfully!"
	MsgPizzaDeleted = "Pizza deleted successfully"
)

// NewErrorResponse builds an ErrorResponse with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
