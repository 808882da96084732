package app

import (
	"context"
	"log/slog"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/Kyle5427/web-data-management-system/internal/errors"
)

// seedProducts are the demonstration records inserted on first boot.
var seedProducts = []domain.ProductInput{
	{
		Name:        "Premium Wireless Headphones",
		Description: "High-fidelity audio with active noise cancellation and 30-hour battery life.",
		Price:       29999,
	},
	{
		Name:        "Ergonomic Mechanical Keyboard",
		Description: "Customizable RGB backlighting with hot-swappable switches for peak performance.",
		Price:       14950,
	},
	{
		Name:        "4K Ultra HD Monitor",
		Description: "27-inch IPS display with 144Hz refresh rate and HDR support.",
		Price:       44900,
	},
	{
		Name:        "Smart Home Hub",
		Description: "Control all your smart devices from one central voice-activated unit.",
		Price:       8999,
	},
}

// SeedProducts inserts the demonstration catalog when the store is empty.
// Idempotent: a non-empty store is left untouched.
func (s *Service) SeedProducts(ctx context.Context) error {
	existing, err := s.products.List(ctx)
	if err != nil {
		return errors.InternalError("failed to check product store", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, input := range seedProducts {
		if _, err := s.products.Create(ctx, input); err != nil {
			return errors.InternalError("failed to seed products", err)
		}
	}

	slog.Info("Seeded demonstration products", "count", len(seedProducts))
	return nil
}
