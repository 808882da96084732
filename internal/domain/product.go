package domain

import (
	"context"

	"github.com/Kyle5427/web-data-management-system/internal/errors"
	"github.com/Kyle5427/web-data-management-system/internal/money"
)

// Product is a catalog record. Price is stored in cents.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       money.Cents
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name        string
	Description string
	Price       money.Cents
}

// ProductPatch is a partial update. Nil fields retain their prior values.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *money.Cents
}

// Validate checks all fields and returns one entry per offending field.
func (in ProductInput) Validate() []errors.FieldError {
	var fields []errors.FieldError
	if in.Name == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name must not be empty"})
	}
	if in.Description == "" {
		fields = append(fields, errors.FieldError{Field: "description", Message: "description must not be empty"})
	}
	if in.Price < 0 {
		fields = append(fields, errors.FieldError{Field: "price", Message: "price must be a non-negative amount in cents"})
	}
	return fields
}

// Validate checks only the supplied fields.
func (p ProductPatch) Validate() []errors.FieldError {
	var fields []errors.FieldError
	if p.Name != nil && *p.Name == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name must not be empty"})
	}
	if p.Description != nil && *p.Description == "" {
		fields = append(fields, errors.FieldError{Field: "description", Message: "description must not be empty"})
	}
	if p.Price != nil && *p.Price < 0 {
		fields = append(fields, errors.FieldError{Field: "price", Message: "price must be a non-negative amount in cents"})
	}
	return fields
}

// Apply returns a copy of p with the patch's supplied fields replaced.
func (p ProductPatch) Apply(existing Product) Product {
	if p.Name != nil {
		existing.Name = *p.Name
	}
	if p.Description != nil {
		existing.Description = *p.Description
	}
	if p.Price != nil {
		existing.Price = *p.Price
	}
	return existing
}

type ProductRepository interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]Product, error)

	// Get returns ErrProductNotFound if no such product exists.
	Get(ctx context.Context, id int64) (*Product, error)

	// Create validates the input and persists a new product with a unique id.
	// Invalid input yields a *errors.Error of type validation.
	Create(ctx context.Context, input ProductInput) (*Product, error)

	// Update checks existence before validating the patch: a missing id
	// yields ErrProductNotFound even when the patch is also invalid.
	Update(ctx context.Context, id int64, patch ProductPatch) (*Product, error)

	// Delete permanently removes a product, ErrProductNotFound if missing.
	Delete(ctx context.Context, id int64) error
}
