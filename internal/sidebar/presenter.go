package sidebar

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/menu"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

// StorageKey is the key the till has always persisted its expansion state
// under. Per-terminal state gets the terminal id as a suffix.
const StorageKey = "pos_expanded_categories"

// Presenter tracks which menu sections are expanded in the category sidebar
// and persists that set so it survives reloads. Expansion is independent of
// selection: selecting a category never collapses other sections.
type Presenter struct {
	store    Store
	logger   logger.ZapLogger
	key      string
	mu       sync.Mutex
	expanded map[string]bool
}

func NewPresenter(ctx context.Context, store Store, log logger.ZapLogger, terminalID string) *Presenter {
	key := StorageKey
	if terminalID != "" {
		key = StorageKey + ":" + terminalID
	}
	p := &Presenter{
		store:    store,
		logger:   log,
		key:      key,
		expanded: make(map[string]bool),
	}
	p.load(ctx)
	return p
}

// load restores the persisted expansion set. Any read or decode failure
// degrades to an empty in-memory set; the sidebar must render regardless.
func (p *Presenter) load(ctx context.Context) {
	raw, err := p.store.Get(ctx, p.key)
	if err != nil {
		if err != ErrNotFound {
			p.logger.Warn("failed to read expansion state, starting empty",
				zap.String("key", p.key), zap.Error(err))
		}
		return
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		p.logger.Warn("corrupt expansion state, starting empty",
			zap.String("key", p.key), zap.Error(err))
		return
	}
	for _, id := range ids {
		p.expanded[id] = true
	}
}

func (p *Presenter) persist(ctx context.Context) {
	ids := p.expandedLocked()
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := p.store.Set(ctx, p.key, data); err != nil {
		// In-memory state stays authoritative for this session.
		p.logger.Warn("failed to persist expansion state",
			zap.String("key", p.key), zap.Error(err))
	}
}

func (p *Presenter) expandedLocked() []string {
	ids := make([]string, 0, len(p.expanded))
	for id := range p.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Toggle flips a section's expansion and reports the new state.
func (p *Presenter) Toggle(ctx context.Context, sectionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.expanded[sectionID] {
		delete(p.expanded, sectionID)
	} else {
		p.expanded[sectionID] = true
	}
	p.persist(ctx)
	return p.expanded[sectionID]
}

func (p *Presenter) Expand(ctx context.Context, sectionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.expanded[sectionID] {
		return
	}
	p.expanded[sectionID] = true
	p.persist(ctx)
}

func (p *Presenter) Collapse(ctx context.Context, sectionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.expanded[sectionID] {
		return
	}
	delete(p.expanded, sectionID)
	p.persist(ctx)
}

func (p *Presenter) IsExpanded(sectionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.expanded[sectionID]
}

// Expanded returns the expanded section ids, sorted.
func (p *Presenter) Expanded() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.expandedLocked()
}

// SetExpanded replaces the whole set, used when the till pushes its state.
func (p *Presenter) SetExpanded(ctx context.Context, sectionIDs []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expanded = make(map[string]bool, len(sectionIDs))
	for _, id := range sectionIDs {
		p.expanded[id] = true
	}
	p.persist(ctx)
}

// ExpandFor expands the section that owns the current selection and returns
// its id, so the till can scroll it into view. A selection can be a category
// id, a "section-" pseudo-id, or empty for the all-items view.
func (p *Presenter) ExpandFor(ctx context.Context, selectedCategory string, categories []model.Category) string {
	section := owningSection(selectedCategory, categories)
	if section == "" {
		return ""
	}
	p.Expand(ctx, section)
	return section
}

// IsParentOfSelected reports whether the given section contains the current
// selection, directly or through nested categories.
func IsParentOfSelected(sectionID, selectedCategory string, categories []model.Category) bool {
	return sectionID != "" && owningSection(selectedCategory, categories) == sectionID
}

// owningSection walks a category's parent chain up to a section root. The
// walk is bounded by the category count so malformed parent links cannot
// loop forever.
func owningSection(selectedCategory string, categories []model.Category) string {
	if selectedCategory == "" {
		return ""
	}
	if rest := strings.TrimPrefix(selectedCategory, "section-"); rest != selectedCategory {
		return rest
	}

	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	current := selectedCategory
	for range categories {
		c, ok := byID[current]
		if !ok || c.ParentCategoryID == nil {
			return ""
		}
		if s, ok := menu.SectionForUUID(*c.ParentCategoryID); ok {
			return s.ID
		}
		current = *c.ParentCategoryID
	}
	return ""
}
