package entity

import "time"

// Customer representa un cliente del CRM.
// Phone vacío significa "sin teléfono" (el campo es opcional).
type Customer struct {
	ID        string
	Name      string
	Email     string // único a nivel de base de datos
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
