package item

import (
	"context"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/item/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	FindAll(ctx context.Context, filters *dto.ItemFilters) ([]model.MenuItem, int, error)
	Update(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id string) error
}
