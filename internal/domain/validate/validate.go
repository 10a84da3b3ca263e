// Package validate contiene los predicados puros de validación de las
// mutaciones. No tocan la base de datos; la unicidad de email se resuelve
// con CustomerRepository.ExistsByEmail.
package validate

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// phoneRE acepta "+NNNNNNNNNN" (10 a 15 dígitos) o "NNN-NNN-NNNN".
// Anclado a la cadena completa: sin coincidencias parciales.
var phoneRE = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

// Phone valida el formato de teléfono. Vacío es válido (campo opcional).
func Phone(phone string) bool {
	if phone == "" {
		return true
	}
	return phoneRE.MatchString(phone)
}

// Price es verdadero si el precio es estrictamente positivo.
func Price(price decimal.Decimal) bool {
	return price.IsPositive()
}

// Stock es verdadero si el stock no es negativo.
func Stock(stock int) bool {
	return stock >= 0
}

// AllResolved es verdadero si todos los IDs solicitados se resolvieron a un
// producto existente. Compara contra el conteo de IDs distintos: un solo ID
// irresoluble (o inexistente) invalida la solicitud completa.
func AllResolved(requestedIDs []string, found []*entity.Product) bool {
	distinct := make(map[string]struct{}, len(requestedIDs))
	for _, id := range requestedIDs {
		distinct[id] = struct{}{}
	}
	return len(found) == len(distinct)
}
