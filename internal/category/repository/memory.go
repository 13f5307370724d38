package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/category/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

// MemoryRepository keeps categories in a map. Tests use it in place of the
// postgres repository.
type MemoryRepository struct {
	mu         sync.RWMutex
	categories map[string]model.Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{categories: make(map[string]model.Category)}
}

func (r *MemoryRepository) Create(ctx context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Category
	for _, c := range r.categories {
		if f.Active != nil && c.Active != *f.Active {
			continue
		}
		if f.ParentID != nil {
			if *f.ParentID == "" {
				if c.ParentCategoryID != nil {
					continue
				}
			} else if c.ParentCategoryID == nil || *c.ParentCategoryID != *f.ParentID {
				continue
			}
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, len(out), nil
}

func (r *MemoryRepository) Update(ctx context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}
