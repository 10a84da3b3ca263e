package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, stock)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Stock,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT id, name, price, stock FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// FilterByIDs devuelve los productos existentes entre los IDs dados.
// IDs repetidos producen una sola fila; IDs inexistentes no producen ninguna.
func (r *ProductRepo) FilterByIDs(ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, name, price, stock FROM products WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("filter products by ids: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByOrder devuelve los productos asociados a una orden.
func (r *ProductRepo) ListByOrder(orderID string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list products by order: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// List lista productos con filtro. limit <= 0 no limita.
func (r *ProductRepo) List(f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	w := productWhere(f)
	query := `SELECT id, name, price, stock FROM products` + w.clause() + ` ORDER BY name, id`
	args := w.args
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Count cuenta productos que cumplen el filtro.
func (r *ProductRepo) Count(f repository.ProductFilter) (int, error) {
	w := productWhere(f)
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products`+w.clause(), w.args...,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func productWhere(f repository.ProductFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.NameContains != nil {
		w.add("name ILIKE $%d", "%"+*f.NameContains+"%")
	}
	if f.PriceGte != nil {
		w.add("price >= $%d", *f.PriceGte)
	}
	if f.PriceLte != nil {
		w.add("price <= $%d", *f.PriceLte)
	}
	if f.StockGte != nil {
		w.add("stock >= $%d", *f.StockGte)
	}
	if f.StockLte != nil {
		w.add("stock <= $%d", *f.StockLte)
	}
	if f.LowStock != nil && *f.LowStock {
		w.conds = append(w.conds, "stock < 10")
	}
	return w
}
