package dto

import (
	"github.com/Bodzaman/cottage-pos-menu-service/internal/menu"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

type ItemFilters struct {
	CategoryID  *string
	Active      *bool
	SearchQuery string
	Page        int
	PageSize    int
}

// ItemView is a menu item with every rendering context's name resolved once,
// so the till, kitchen ticket and receipt builders never re-derive them.
type ItemView struct {
	model.MenuItem
	DisplayName string `json:"display_name"`
	KitchenName string `json:"kitchen_name"`
	ReceiptName string `json:"receipt_name"`
}

type CategoryGroupView struct {
	Category model.Category `json:"category"`
	Items    []ItemView     `json:"items"`
}

type SectionGroupView struct {
	Section    menu.Section        `json:"section"`
	Categories []CategoryGroupView `json:"categories"`
}

// NewItemView resolves the three audience-specific names for an item.
func NewItemView(item model.MenuItem) ItemView {
	return ItemView{
		MenuItem:    item,
		DisplayName: menu.ResolveItemDisplayName(&item, menu.DisplayNameOptions{}),
		KitchenName: menu.ResolveItemDisplayName(&item, menu.DisplayNameOptions{UseKitchenName: true}),
		ReceiptName: menu.ReceiptDisplayName(item.BaseName(), item.VariantLabel(), item.Protein()),
	}
}
