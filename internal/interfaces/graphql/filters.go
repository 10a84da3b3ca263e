package graphql

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Decodificación de los input objects de filtro (mapas de graphql-go) hacia
// los filtros del dominio. Campo ausente = sin restricción.

func decodeCustomerFilter(m map[string]interface{}) repository.CustomerFilter {
	return repository.CustomerFilter{
		NameContains:  optString(m, "nameContains"),
		EmailContains: optString(m, "emailContains"),
		CreatedAtGte:  optTime(m, "createdAtGte"),
		CreatedAtLte:  optTime(m, "createdAtLte"),
		PhonePattern:  optString(m, "phonePattern"),
	}
}

func decodeProductFilter(m map[string]interface{}) repository.ProductFilter {
	return repository.ProductFilter{
		NameContains: optString(m, "nameContains"),
		PriceGte:     optDecimal(m, "priceGte"),
		PriceLte:     optDecimal(m, "priceLte"),
		StockGte:     optInt(m, "stockGte"),
		StockLte:     optInt(m, "stockLte"),
		LowStock:     optBool(m, "lowStock"),
	}
}

func decodeOrderFilter(m map[string]interface{}) repository.OrderFilter {
	return repository.OrderFilter{
		TotalAmountGte: optDecimal(m, "totalAmountGte"),
		TotalAmountLte: optDecimal(m, "totalAmountLte"),
		OrderDateGte:   optTime(m, "orderDateGte"),
		OrderDateLte:   optTime(m, "orderDateLte"),
		CustomerName:   optString(m, "customerName"),
		ProductID:      optString(m, "productId"),
	}
}

func optString(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optInt(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func optBool(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func optTime(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

func optDecimal(m map[string]interface{}, key string) *decimal.Decimal {
	if v, ok := m[key].(decimal.Decimal); ok {
		return &v
	}
	return nil
}
