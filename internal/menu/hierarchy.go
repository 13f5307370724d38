package menu

import (
	"sort"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

// CategoryGroup is one visible category with every item attached to it or to
// any of its descendants.
type CategoryGroup struct {
	Category model.Category   `json:"category"`
	Items    []model.MenuItem `json:"items"`
}

// SectionGroup is one configured section with its visible category groups.
type SectionGroup struct {
	Section    Section         `json:"section"`
	Categories []CategoryGroup `json:"categories"`
}

// descendantClosure returns the ids of every active category reachable from
// rootID by following parent links, excluding the root itself. The fixed-point
// loop terminates on any input, cyclic or not: the reach set only grows and is
// bounded by the category list, so at most len(categories) passes run.
func descendantClosure(rootID string, categories []model.Category) map[string]bool {
	reach := map[string]bool{rootID: true}
	for changed := true; changed; {
		changed = false
		for _, c := range categories {
			if !c.Active || c.ParentCategoryID == nil {
				continue
			}
			if reach[*c.ParentCategoryID] && !reach[c.ID] {
				reach[c.ID] = true
				changed = true
			}
		}
	}
	delete(reach, rootID)
	return reach
}

// groupSection builds the category groups for one section root. Only direct
// children are surfaced as visible categories; items hanging off deeper
// descendants roll up into the direct child that owns them. Items attached to
// the section root itself are not collected — only ids inside a category's
// closure match, and the root is not in any of them.
func groupSection(sectionID string, items []model.MenuItem, categories []model.Category, dropEmpty bool) []CategoryGroup {
	uuid := SectionUUID(sectionID)
	if uuid == "" {
		return nil
	}
	if len(descendantClosure(uuid, categories)) == 0 {
		return nil
	}

	var groups []CategoryGroup
	for _, cat := range ChildCategories(sectionID, categories) {
		match := descendantClosure(cat.ID, categories)
		match[cat.ID] = true

		var grouped []model.MenuItem
		for _, item := range items {
			if item.Active && match[item.CategoryID] {
				grouped = append(grouped, item)
			}
		}
		sort.SliceStable(grouped, func(i, j int) bool {
			return grouped[i].DisplayOrder < grouped[j].DisplayOrder
		})

		if dropEmpty && len(grouped) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{Category: cat, Items: grouped})
	}
	return groups
}

// GroupItemsByHierarchy rebuilds the three-level Section -> Category -> Items
// tree from flat snapshots. Sections appear in registry order; sections with
// no categories, and category groups with no items, are omitted. The output
// is freshly allocated on every call.
func GroupItemsByHierarchy(items []model.MenuItem, categories []model.Category) []SectionGroup {
	var result []SectionGroup
	for _, section := range Sections {
		groups := groupSection(section.ID, items, categories, true)
		if len(groups) == 0 {
			continue
		}
		result = append(result, SectionGroup{Section: section, Categories: groups})
	}
	return result
}

// GroupItemsBySection is the single-section variant used when the till has a
// section selected. Unlike the full tree it keeps categories that currently
// have no items, so a selected section still shows its full category list.
func GroupItemsBySection(items []model.MenuItem, categories []model.Category, sectionID string) []CategoryGroup {
	return groupSection(sectionID, items, categories, false)
}
