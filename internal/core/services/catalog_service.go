package services

import (
	"sort"
	"strings"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
	"github.com/srgjo27/ticket_storefront/internal/core/ports"
)

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortDateAsc   SortOrder = "date-asc"
	SortDateDesc  SortOrder = "date-desc"
)

type CatalogService struct {
	catalog ports.Catalog
}

func NewCatalogService(catalog ports.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) Get(id string) (domain.Event, error) {
	event, ok := s.catalog.Get(id)
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}

	return event, nil
}

// Search matches term against title and location, case-insensitively, and
// orders the result. Unknown sort orders keep catalog order.
func (s *CatalogService) Search(term string, order SortOrder) []domain.Event {
	term = strings.ToLower(strings.TrimSpace(term))

	results := make([]domain.Event, 0)
	for _, e := range s.catalog.All() {
		if term == "" ||
			strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Location), term) {
			results = append(results, e)
		}
	}

	switch order {
	case SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price.LessThan(results[j].Price) })
	case SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price.GreaterThan(results[j].Price) })
	case SortDateAsc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Date.Before(results[j].Date) })
	case SortDateDesc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Date.After(results[j].Date) })
	}

	return results
}
