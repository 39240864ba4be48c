package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AckResponse respuesta de confirmación simple.
type AckResponse struct {
	Message string `json:"message"`
}
