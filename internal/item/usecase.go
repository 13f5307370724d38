package item

import (
	"context"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/item/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

type UseCase interface {
	CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.MenuItem, error)
	GetItem(ctx context.Context, id string) (*model.MenuItem, error)
	ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.MenuItem, int, error)
	UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error

	// MenuHierarchy returns the full Section -> Category -> Items tree over
	// the active snapshot, with display names resolved per item.
	MenuHierarchy(ctx context.Context) ([]dto.SectionGroupView, error)
	// SectionItems is the single-section variant used when the till has a
	// section selected.
	SectionItems(ctx context.Context, sectionID string) ([]dto.CategoryGroupView, error)

	// InvalidateCaches drops cached lists and the cached hierarchy after an
	// out-of-band menu change (see internal/listener).
	InvalidateCaches(ctx context.Context)
}
