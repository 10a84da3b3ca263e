package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los textos de los cinco primeros son contrato de la API GraphQL: se
// devuelven tal cual en el arreglo de errores de la respuesta, así que no
// deben traducirse ni reformatearse.
var (
	ErrPriceNotPositive  = errors.New("Price must be greater than zero")
	ErrNegativeStock     = errors.New("Stock cannot be negative")
	ErrNoProductsChosen  = errors.New("At least one product must be selected")
	ErrInvalidCustomerID = errors.New("Invalid customer ID")
	ErrInvalidProductID  = errors.New("Invalid product ID")

	ErrNotFound  = errors.New("recurso no encontrado")
	ErrDuplicate = errors.New("recurso duplicado")
)
