package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AckResponse confirmación simple para operaciones sin cuerpo de resultado.
type AckResponse struct {
	Message string `json:"message"`
}
