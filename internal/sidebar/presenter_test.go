package sidebar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/menu"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

func newTestPresenter(t *testing.T) (*Presenter, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewPresenter(context.Background(), store, logger.NewNop(), "till-1"), store
}

func TestPresenter_ToggleAndQuery(t *testing.T) {
	p, _ := newTestPresenter(t)
	ctx := context.Background()

	assert.False(t, p.IsExpanded("starters"))
	assert.True(t, p.Toggle(ctx, "starters"))
	assert.True(t, p.IsExpanded("starters"))
	assert.False(t, p.Toggle(ctx, "starters"))
	assert.False(t, p.IsExpanded("starters"))
}

func TestPresenter_StateSurvivesReload(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	p := NewPresenter(ctx, store, logger.NewNop(), "till-1")
	p.Expand(ctx, "starters")
	p.Expand(ctx, "desserts")

	reloaded := NewPresenter(ctx, store, logger.NewNop(), "till-1")
	assert.Equal(t, []string{"desserts", "starters"}, reloaded.Expanded())
}

func TestPresenter_TerminalsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := NewPresenter(ctx, store, logger.NewNop(), "till-1")
	a.Expand(ctx, "starters")

	b := NewPresenter(ctx, store, logger.NewNop(), "till-2")
	assert.Empty(t, b.Expanded())
}

func TestPresenter_CorruptStateFallsBackToEmpty(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, StorageKey+":till-1", []byte("{not json")))

	p := NewPresenter(ctx, store, logger.NewNop(), "till-1")
	assert.Empty(t, p.Expanded())

	// Presenter still works after the bad read.
	p.Expand(ctx, "sides")
	assert.True(t, p.IsExpanded("sides"))
}

func TestPresenter_SelectionDoesNotCollapseOthers(t *testing.T) {
	p, _ := newTestPresenter(t)
	ctx := context.Background()

	starters := menu.SectionUUID("starters")
	mains := menu.SectionUUID("main-course")
	categories := []model.Category{
		{BaseModel: model.BaseModel{ID: "veg"}, ParentCategoryID: &starters, Active: true},
		{BaseModel: model.BaseModel{ID: "curries"}, ParentCategoryID: &mains, Active: true},
	}

	p.Expand(ctx, "desserts")
	got := p.ExpandFor(ctx, "veg", categories)
	assert.Equal(t, "starters", got)
	assert.True(t, p.IsExpanded("starters"))
	assert.True(t, p.IsExpanded("desserts"))
}

func TestPresenter_ExpandForNestedCategory(t *testing.T) {
	p, _ := newTestPresenter(t)
	ctx := context.Background()

	mains := menu.SectionUUID("main-course")
	parent := "curries"
	categories := []model.Category{
		{BaseModel: model.BaseModel{ID: "curries"}, ParentCategoryID: &mains, Active: true},
		{BaseModel: model.BaseModel{ID: "house-specials"}, ParentCategoryID: &parent, Active: true},
	}

	assert.Equal(t, "main-course", p.ExpandFor(ctx, "house-specials", categories))
}

func TestPresenter_ExpandForSectionPseudoID(t *testing.T) {
	p, _ := newTestPresenter(t)
	assert.Equal(t, "drinks", p.ExpandFor(context.Background(), "section-drinks", nil))
	assert.True(t, p.IsExpanded("drinks"))
}

func TestPresenter_ExpandForAllItemsView(t *testing.T) {
	p, _ := newTestPresenter(t)
	assert.Equal(t, "", p.ExpandFor(context.Background(), "", nil))
	assert.Empty(t, p.Expanded())
}

func TestIsParentOfSelected(t *testing.T) {
	starters := menu.SectionUUID("starters")
	categories := []model.Category{
		{BaseModel: model.BaseModel{ID: "veg"}, ParentCategoryID: &starters, Active: true},
	}

	assert.True(t, IsParentOfSelected("starters", "veg", categories))
	assert.False(t, IsParentOfSelected("main-course", "veg", categories))
	assert.False(t, IsParentOfSelected("starters", "", categories))
	assert.False(t, IsParentOfSelected("starters", "unknown-cat", categories))
}

func TestPresenter_CyclicParentLinksDoNotLoop(t *testing.T) {
	p, _ := newTestPresenter(t)
	a, b := "a", "b"
	categories := []model.Category{
		{BaseModel: model.BaseModel{ID: "a"}, ParentCategoryID: &b, Active: true},
		{BaseModel: model.BaseModel{ID: "b"}, ParentCategoryID: &a, Active: true},
	}
	assert.Equal(t, "", p.ExpandFor(context.Background(), "a", categories))
}
