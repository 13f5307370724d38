package menu

import (
	"sort"
	"strings"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

// Section is a fixed top-level grouping of the menu. Each section maps to a
// root node of the backend category tree via UUID. The table is configured at
// build time and never reloaded.
type Section struct {
	ID          string `json:"id"`
	UUID        string `json:"uuid"`
	DisplayName string `json:"display_name"`
}

// Sections is the canonical display order for the till. Do not reorder.
var Sections = []Section{
	{ID: "starters", UUID: "1a7c9f02-4b3d-4e8a-9c21-5f0d8e6b1a34", DisplayName: "Starters"},
	{ID: "tandoori", UUID: "2b8d0a13-5c4e-4f9b-8d32-6a1e9f7c2b45", DisplayName: "Tandoori Specialities"},
	{ID: "main-course", UUID: "3c9e1b24-6d5f-4a0c-9e43-7b2f0a8d3c56", DisplayName: "Main Course"},
	{ID: "biryani", UUID: "4d0f2c35-7e6a-4b1d-8f54-8c3a1b9e4d67", DisplayName: "Biryani Dishes"},
	{ID: "sides", UUID: "5e1a3d46-8f7b-4c2e-9a65-9d4b2c0f5e78", DisplayName: "Side Dishes"},
	{ID: "desserts", UUID: "6f2b4e57-9a8c-4d3f-8b76-0e5c3d1a6f89", DisplayName: "Desserts"},
	{ID: "drinks", UUID: "7a3c5f68-0b9d-4e4a-9c87-1f6d4e2b7a90", DisplayName: "Drinks"},
}

var sectionByID = func() map[string]Section {
	m := make(map[string]Section, len(Sections))
	for _, s := range Sections {
		m[s.ID] = s
	}
	return m
}()

// SectionUUID resolves a section slug to its category-tree root UUID.
// Returns "" for an unknown section.
func SectionUUID(sectionID string) string {
	return sectionByID[sectionID].UUID
}

// SectionForUUID is the reverse lookup, used when walking a category's parent
// chain up to its owning section.
func SectionForUUID(uuid string) (Section, bool) {
	for _, s := range Sections {
		if s.UUID == uuid {
			return s, true
		}
	}
	return Section{}, false
}

// ChildCategories returns the active categories parented directly to the
// section's root UUID, sorted by display order. Unknown sections yield an
// empty list.
func ChildCategories(sectionID string, categories []model.Category) []model.Category {
	uuid := SectionUUID(sectionID)
	if uuid == "" {
		return nil
	}

	var children []model.Category
	for _, c := range categories {
		if !c.Active {
			continue
		}
		if c.ParentCategoryID != nil && *c.ParentCategoryID == uuid {
			children = append(children, c)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].DisplayOrder < children[j].DisplayOrder
	})
	return children
}

// SectionDisplayName returns the configured label for a section id. Ids may
// arrive with a "section-" prefix from the sidebar's pseudo-ids. Unrecognized
// ids are reconstructed by title-casing the hyphen-split slug so the function
// never fails on a dynamic id.
func SectionDisplayName(sectionID string) string {
	id := strings.TrimPrefix(sectionID, "section-")
	if s, ok := sectionByID[id]; ok {
		return s.DisplayName
	}

	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
