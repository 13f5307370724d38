package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/category"
	catdto "github.com/Bodzaman/cottage-pos-menu-service/internal/category/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/item"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/item/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/menu"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/cache"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/search"
)

const (
	itemsIndex        = "menu_items"
	hierarchyCacheKey = "menu:hierarchy"
	listCachePrefix   = "items:list:"
	cacheTTL          = 5 * time.Minute
)

type itemUseCase struct {
	repo    item.Repository
	catRepo category.Repository
	cache   *cache.RedisClient
	es      *search.Client
	logger  logger.ZapLogger
}

func NewItemUseCase(repo item.Repository, catRepo category.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) item.UseCase {
	return &itemUseCase{
		repo:    repo,
		catRepo: catRepo,
		cache:   cache,
		es:      es,
		logger:  log,
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (uc *itemUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.MenuItem, error) {
	cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errors.New("category not found")
	}

	id := uuid.New().String()
	now := time.Now()

	m := &model.MenuItem{
		BaseModel:          model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		CategoryID:         input.CategoryID,
		Name:               input.Name,
		ItemName:           nilIfEmpty(input.ItemName),
		VariantName:        nilIfEmpty(input.VariantName),
		ProteinType:        nilIfEmpty(input.ProteinType),
		KitchenDisplayName: nilIfEmpty(input.KitchenDisplayName),
		Description:        nilIfEmpty(input.Description),
		Price:              input.Price,
		ImageURL:           nilIfEmpty(input.ImageURL),
		DisplayOrder:       input.DisplayOrder,
		Active:             true,
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	go uc.invalidateCaches(context.Background())
	go uc.syncToElastic(context.Background(), m)

	return m, nil
}

func (uc *itemUseCase) syncToElastic(ctx context.Context, m *model.MenuItem) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"item_name": { "type": "text" },
				"variant_name": { "type": "text" },
				"protein_type": { "type": "keyword" },
				"description": { "type": "text" },
				"category_id": { "type": "keyword" },
				"price": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, itemsIndex, mapping)

	if err := uc.es.Index(ctx, itemsIndex, m.ID, m); err != nil {
		uc.logger.Error("failed to index menu item", zap.Error(err))
	}
}

func (uc *itemUseCase) GetItem(ctx context.Context, id string) (*model.MenuItem, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *itemUseCase) ListItems(ctx context.Context, filters *dto.ItemFilters) ([]model.MenuItem, int, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Items []model.MenuItem
				Count int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Items, result.Count, nil
			}
		}
	}

	// Search via Elastic when a query is present; fall back to the DB ILIKE
	// filter if the cluster is down.
	if filters.SearchQuery != "" && uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
					"fields": []string{"name^3", "item_name^2", "variant_name", "description"},
				},
			},
			"from": (filters.Page - 1) * filters.PageSize,
		}
		if filters.PageSize > 0 {
			q["size"] = filters.PageSize
		}

		res, err := uc.es.Search(ctx, itemsIndex, q)
		if err == nil {
			var esItems []model.MenuItem
			for _, hit := range res.Hits.Hits {
				var m model.MenuItem
				if err := json.Unmarshal(hit.Source, &m); err == nil {
					esItems = append(esItems, m)
				}
			}
			return esItems, res.Hits.Total.Value, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	items, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if cacheKey != "" && uc.cache != nil {
		cacheData := struct {
			Items []model.MenuItem
			Count int
		}{Items: items, Count: count}
		if data, err := json.Marshal(cacheData); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return items, count, nil
}

func (uc *itemUseCase) generateCacheKey(filters *dto.ItemFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", listCachePrefix, md5.Sum(data)), nil
}

func (uc *itemUseCase) invalidateCaches(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, listCachePrefix+"*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
	uc.cache.Client.Del(ctx, hierarchyCacheKey)
}

// InvalidateCaches drops every cached list and the cached hierarchy. Exposed
// for the menu-events listener.
func (uc *itemUseCase) InvalidateCaches(ctx context.Context) {
	uc.invalidateCaches(ctx)
}

func (uc *itemUseCase) UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.MenuItem, error) {
	m, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("menu item not found")
	}

	if input.CategoryID != "" && input.CategoryID != m.CategoryID {
		cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, errors.New("category not found")
		}
		m.CategoryID = input.CategoryID
	}

	m.Name = input.Name
	m.ItemName = nilIfEmpty(input.ItemName)
	m.VariantName = nilIfEmpty(input.VariantName)
	m.ProteinType = nilIfEmpty(input.ProteinType)
	m.KitchenDisplayName = nilIfEmpty(input.KitchenDisplayName)
	m.Description = nilIfEmpty(input.Description)
	m.Price = input.Price
	m.ImageURL = nilIfEmpty(input.ImageURL)
	m.DisplayOrder = input.DisplayOrder
	m.Active = input.Active
	m.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	go uc.invalidateCaches(context.Background())
	go uc.syncToElastic(context.Background(), m)

	return m, nil
}

func (uc *itemUseCase) DeleteItem(ctx context.Context, id string) error {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return nil // Already deleted
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateCaches(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), itemsIndex, id); err != nil {
				uc.logger.Error("failed to delete menu item from ES", zap.Error(err))
			}
		}()
	}

	return nil
}

// activeSnapshot loads the active categories and items the grouping functions
// run over.
func (uc *itemUseCase) activeSnapshot(ctx context.Context) ([]model.MenuItem, []model.Category, error) {
	active := true
	categories, _, err := uc.catRepo.FindAll(ctx, &catdto.CategoryFilters{Active: &active})
	if err != nil {
		return nil, nil, err
	}
	items, _, err := uc.repo.FindAll(ctx, &dto.ItemFilters{Active: &active})
	if err != nil {
		return nil, nil, err
	}
	return items, categories, nil
}

func (uc *itemUseCase) MenuHierarchy(ctx context.Context) ([]dto.SectionGroupView, error) {
	if uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, hierarchyCacheKey).Result()
		if err == nil {
			var cached []dto.SectionGroupView
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	items, categories, err := uc.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	tree := menu.GroupItemsByHierarchy(items, categories)
	views := make([]dto.SectionGroupView, 0, len(tree))
	for _, section := range tree {
		views = append(views, dto.SectionGroupView{
			Section:    section.Section,
			Categories: toCategoryViews(section.Categories),
		})
	}

	if uc.cache != nil {
		if data, err := json.Marshal(views); err == nil {
			uc.cache.Client.Set(ctx, hierarchyCacheKey, data, cacheTTL)
		}
	}

	return views, nil
}

func (uc *itemUseCase) SectionItems(ctx context.Context, sectionID string) ([]dto.CategoryGroupView, error) {
	items, categories, err := uc.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryViews(menu.GroupItemsBySection(items, categories, sectionID)), nil
}

func toCategoryViews(groups []menu.CategoryGroup) []dto.CategoryGroupView {
	views := make([]dto.CategoryGroupView, 0, len(groups))
	for _, g := range groups {
		itemViews := make([]dto.ItemView, 0, len(g.Items))
		for _, it := range g.Items {
			itemViews = append(itemViews, dto.NewItemView(it))
		}
		views = append(views, dto.CategoryGroupView{Category: g.Category, Items: itemViews})
	}
	return views
}
