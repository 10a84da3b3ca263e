package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden y sus asociaciones en order_products.
// Llamar dentro de una transacción para que ambas escrituras sean atómicas.
func (r *OrderRepo) Create(order *entity.Order, productIDs []string) error {
	query := `
		INSERT INTO orders (id, customer_id, order_date, total_amount)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.OrderDate, order.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, productID := range productIDs {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`,
			order.ID, productID,
		)
		if err != nil {
			return fmt.Errorf("insert order product: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil, nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT id, customer_id, order_date, total_amount FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista órdenes con filtro. limit <= 0 no limita.
func (r *OrderRepo) List(f repository.OrderFilter, limit, offset int) ([]*entity.Order, error) {
	w := orderWhere(f)
	query := `
		SELECT o.id, o.customer_id, o.order_date, o.total_amount
		FROM orders o` + w.clause() + ` ORDER BY o.order_date, o.id`
	args := w.args
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Count cuenta órdenes que cumplen el filtro.
func (r *OrderRepo) Count(f repository.OrderFilter) (int, error) {
	w := orderWhere(f)
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders o`+w.clause(), w.args...,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func orderWhere(f repository.OrderFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.TotalAmountGte != nil {
		w.add("o.total_amount >= $%d", *f.TotalAmountGte)
	}
	if f.TotalAmountLte != nil {
		w.add("o.total_amount <= $%d", *f.TotalAmountLte)
	}
	if f.OrderDateGte != nil {
		w.add("o.order_date >= $%d", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		w.add("o.order_date <= $%d", *f.OrderDateLte)
	}
	if f.CustomerName != nil {
		w.add("o.customer_id IN (SELECT id FROM customers WHERE name ILIKE $%d)", "%"+*f.CustomerName+"%")
	}
	if f.ProductID != nil {
		w.add("EXISTS (SELECT 1 FROM order_products op WHERE op.order_id = o.id AND op.product_id = $%d)", *f.ProductID)
	}
	return w
}
