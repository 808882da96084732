package memory

import (
	"context"
	"sync"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/Kyle5427/web-data-management-system/internal/errors"
)

// ProductRepository implements domain.ProductRepository backed by process
// memory. List preserves insertion order.
type ProductRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Product
	order  []int64
}

func NewProductRepository() *ProductRepository {
	r := &ProductRepository{}
	r.reset()
	return r
}

func (r *ProductRepository) reset() {
	r.nextID = 0
	r.items = make(map[int64]domain.Product)
	r.order = nil
}

// Reset discards all products. Test helper.
func (r *ProductRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.items[id])
	}
	return products, nil
}

func (r *ProductRepository) Get(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (r *ProductRepository) Create(_ context.Context, input domain.ProductInput) (*domain.Product, error) {
	if fields := input.Validate(); len(fields) > 0 {
		return nil, errors.ValidationError("invalid product", fields...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	product := domain.Product{
		ID:          r.nextID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}
	r.items[product.ID] = product
	r.order = append(r.order, product.ID)
	return &product, nil
}

func (r *ProductRepository) Update(_ context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		// Existence first: a missing id reports not-found even when the
		// patch is also invalid.
		return nil, domain.ErrProductNotFound
	}

	if fields := patch.Validate(); len(fields) > 0 {
		return nil, errors.ValidationError("invalid product", fields...)
	}

	updated := patch.Apply(existing)
	r.items[id] = updated
	return &updated, nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrProductNotFound
	}

	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
