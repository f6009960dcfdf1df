package catalog

import (
	"context"
	"fmt"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/ougirez/milkdigit/internal/service/process"
	"sort"
)

type Service struct {
	store store.Store
}

func NewCatalogService(store store.Store) *Service {
	return &Service{store: store}
}

// loaded indexes Products.csv by id, the first row of a duplicated id wins.
func (s *Service) loaded(ctx context.Context) (map[int64]domain.Product, []int64, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err = snap.Err(store.ResourceProducts); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", store.ResourceProducts.FileName(), err)
	}

	byID := make(map[int64]domain.Product)
	var order []int64
	for _, p := range snap.Products() {
		if _, ok := byID[p.ID]; ok {
			continue
		}
		byID[p.ID] = p
		order = append(order, p.ID)
	}
	return byID, order, nil
}

// List returns the fixed catalog, each entry replaced by a loaded row with the same id,
// followed by other loaded products ordered by id.
func (s *Service) List(ctx context.Context) ([]domain.ProductCard, error) {
	byID, order, err := s.loaded(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.ProductCard, 0, len(domain.FixedCatalog)+len(order))
	for _, fixed := range domain.FixedCatalog {
		p := fixed
		if loaded, ok := byID[fixed.ID]; ok {
			p = loaded
		}
		cards = append(cards, domain.ProductCard{Product: p, Color: process.ProductColor(p.ID)})
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, id := range order {
		if _, fixed := domain.FixedProduct(id); fixed {
			continue
		}
		cards = append(cards, domain.ProductCard{Product: byID[id], Color: process.ProductColor(id)})
	}

	return cards, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	byID, _, err := s.loaded(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	if p, ok := byID[id]; ok {
		return p, nil
	}
	if p, ok := domain.FixedProduct(id); ok {
		return p, nil
	}
	return domain.Product{}, fmt.Errorf("product %d: %w", id, constants.ErrProductNotFound)
}
