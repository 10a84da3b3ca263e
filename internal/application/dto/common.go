package dto

// ErrorResponse cuerpo de error HTTP (rutas fuera de /graphql).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
