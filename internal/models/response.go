package models

// Response is the JSON envelope of every API answer.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse carries a message that is safe to show to the user.
func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}
