package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// MessageResponse cuerpo simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
