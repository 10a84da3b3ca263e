package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ExistsByEmail verifica si ya existe un cliente con ese email (comparación exacta).
func (r *CustomerRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists customer by email: %w", err)
	}
	return exists, nil
}

// List lista clientes con filtro. limit <= 0 no limita.
func (r *CustomerRepo) List(f repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	w := customerWhere(f)
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers` + w.clause() + ` ORDER BY created_at, id`
	args := w.args
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count cuenta clientes que cumplen el filtro.
func (r *CustomerRepo) Count(f repository.CustomerFilter) (int, error) {
	w := customerWhere(f)
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM customers`+w.clause(), w.args...,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func customerWhere(f repository.CustomerFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.NameContains != nil {
		w.add("name ILIKE $%d", "%"+*f.NameContains+"%")
	}
	if f.EmailContains != nil {
		w.add("email ILIKE $%d", "%"+*f.EmailContains+"%")
	}
	if f.CreatedAtGte != nil {
		w.add("created_at >= $%d", *f.CreatedAtGte)
	}
	if f.CreatedAtLte != nil {
		w.add("created_at <= $%d", *f.CreatedAtLte)
	}
	if f.PhonePattern != nil {
		w.add("phone LIKE $%d", *f.PhonePattern+"%")
	}
	return w
}
