package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. fakeStore es el "estado de la base"; los repos son vistas
// sobre él y fakeTxRunner emula la semántica transaccional con
// snapshot/restore: si fn devuelve error, el estado vuelve al del inicio.
// ──────────────────────────────────────────────────────────────────────────────

var errStoreDown = errors.New("store: connection lost")

type fakeStore struct {
	customers     map[string]*entity.Customer
	products      map[string]*entity.Product
	orders        map[string]*entity.Order
	orderProducts map[string][]string

	// failCustomerCreateAt fuerza un error de base en el N-ésimo insert de
	// clientes (1-based). 0 = nunca falla.
	failCustomerCreateAt int
	customerCreates      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers:     map[string]*entity.Customer{},
		products:      map[string]*entity.Product{},
		orders:        map[string]*entity.Order{},
		orderProducts: map[string][]string{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.orders {
		cp := *v
		c.orders[k] = &cp
	}
	for k, v := range s.orderProducts {
		c.orderProducts[k] = append([]string(nil), v...)
	}
	c.failCustomerCreateAt = s.failCustomerCreateAt
	c.customerCreates = s.customerCreates
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.customers = from.customers
	s.products = from.products
	s.orders = from.orders
	s.orderProducts = from.orderProducts
	s.customerCreates = from.customerCreates
}

// ── CustomerRepository ────────────────────────────────────────────────────────

type fakeCustomerRepo struct{ s *fakeStore }

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.s.customerCreates++
	if r.s.failCustomerCreateAt > 0 && r.s.customerCreates >= r.s.failCustomerCreateAt {
		return errStoreDown
	}
	for _, existing := range r.s.customers {
		if existing.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) ExistsByEmail(email string) (bool, error) {
	for _, c := range r.s.customers {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCustomerRepo) List(f repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for _, c := range r.s.customers {
		if f.NameContains != nil && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(*f.NameContains)) {
			continue
		}
		if f.EmailContains != nil && !strings.Contains(strings.ToLower(c.Email), strings.ToLower(*f.EmailContains)) {
			continue
		}
		if f.PhonePattern != nil && !strings.HasPrefix(c.Phone, *f.PhonePattern) {
			continue
		}
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Email < list[j].Email })
	return page(list, limit, offset), nil
}

func (r *fakeCustomerRepo) Count(f repository.CustomerFilter) (int, error) {
	list, err := r.List(f, 0, 0)
	return len(list), err
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FilterByIDs(ids []string) ([]*entity.Product, error) {
	seen := map[string]bool{}
	var list []*entity.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.s.products[id]; ok {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) ListByOrder(orderID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, id := range r.s.orderProducts[orderID] {
		if p, ok := r.s.products[id]; ok {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) List(f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.products {
		if f.NameContains != nil && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*f.NameContains)) {
			continue
		}
		if f.PriceGte != nil && p.Price.LessThan(*f.PriceGte) {
			continue
		}
		if f.PriceLte != nil && p.Price.GreaterThan(*f.PriceLte) {
			continue
		}
		if f.StockGte != nil && p.Stock < *f.StockGte {
			continue
		}
		if f.StockLte != nil && p.Stock > *f.StockLte {
			continue
		}
		if f.LowStock != nil && *f.LowStock && p.Stock >= 10 {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *fakeProductRepo) Count(f repository.ProductFilter) (int, error) {
	list, err := r.List(f, 0, 0)
	return len(list), err
}

// ── OrderRepository ───────────────────────────────────────────────────────────

type fakeOrderRepo struct{ s *fakeStore }

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) Create(o *entity.Order, productIDs []string) error {
	cp := *o
	r.s.orders[o.ID] = &cp
	r.s.orderProducts[o.ID] = append([]string(nil), productIDs...)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(f repository.OrderFilter, limit, offset int) ([]*entity.Order, error) {
	var list []*entity.Order
	for _, o := range r.s.orders {
		if f.TotalAmountGte != nil && o.TotalAmount.LessThan(*f.TotalAmountGte) {
			continue
		}
		if f.TotalAmountLte != nil && o.TotalAmount.GreaterThan(*f.TotalAmountLte) {
			continue
		}
		if f.ProductID != nil && !contains(r.s.orderProducts[o.ID], *f.ProductID) {
			continue
		}
		if f.CustomerName != nil {
			c := r.s.customers[o.CustomerID]
			if c == nil || !strings.Contains(strings.ToLower(c.Name), strings.ToLower(*f.CustomerName)) {
				continue
			}
		}
		cp := *o
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, limit, offset), nil
}

func (r *fakeOrderRepo) Count(f repository.OrderFilter) (int, error) {
	list, err := r.List(f, 0, 0)
	return len(list), err
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(&fakeCustomerRepo{t.s}, &fakeProductRepo{t.s}, &fakeOrderRepo{t.s})
	if err != nil {
		t.s.restore(snapshot)
		return err
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
