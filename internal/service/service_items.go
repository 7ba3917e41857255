package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/models"
)

// DefaultItems are the fixtures served by the mock server.
var DefaultItems = []models.Item{
	{ID: "1", Title: "Welcome checklist", IsActive: true},
	{ID: "2", Title: "Quarterly report", IsActive: false},
	{ID: "3", Title: "Team offsite", IsActive: true},
}

type itemService struct {
	items []models.Item

	logger *logger.Logger
}

// NewItemService returns an ItemService serving a copy of items.
// A nil slice serves [DefaultItems].
func NewItemService(items []models.Item, logger *logger.Logger) ItemService {
	if items == nil {
		items = DefaultItems
	}
	return &itemService{
		items:  slices.Clone(items),
		logger: logger,
	}
}

// ListItems returns every fixture. The same list is served to every subject.
func (s *itemService) ListItems(ctx context.Context, subject string) ([]models.Item, error) {
	logger.FromContext(ctx).Debug().Str("subject", subject).Int("items", len(s.items)).Msg("listing items")
	return slices.Clone(s.items), nil
}
