package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/item/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

// MemoryRepository keeps menu items in a map. Tests use it in place of the
// postgres repository.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]model.MenuItem
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]model.MenuItem)}
}

func (r *MemoryRepository) Create(ctx context.Context, m *model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[m.ID] = *m
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.ItemFilters) ([]model.MenuItem, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.MenuItem
	for _, m := range r.items {
		if f.Active != nil && m.Active != *f.Active {
			continue
		}
		if f.CategoryID != nil && *f.CategoryID != "" && m.CategoryID != *f.CategoryID {
			continue
		}
		if f.SearchQuery != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(f.SearchQuery)) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, len(out), nil
}

func (r *MemoryRepository) Update(ctx context.Context, m *model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[m.ID] = *m
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
