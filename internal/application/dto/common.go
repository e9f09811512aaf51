package dto

// ErrorResponse cuerpo de error HTTP: {"error": "..."} en todos los fallos.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de confirmación para operaciones sin entidad de retorno.
type MessageResponse struct {
	Message string `json:"message"`
}
