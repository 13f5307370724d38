package model

import "encoding/json"

// MenuItem is a single sellable line on the menu. The naming fields exist in
// two generations of the data: older rows carry variant/protein qualifiers in
// separate columns, newer rows arrive with the qualifier already embedded in
// the name. Display-name resolution lives in internal/menu.
type MenuItem struct {
	BaseModel
	CategoryID         string       `db:"category_id" json:"category_id"`
	Name               string       `db:"name" json:"name"`
	ItemName           *string      `db:"item_name" json:"item_name,omitempty"` // Enriched override of Name
	VariantName        *string      `db:"variant_name" json:"variant_name,omitempty"`
	ProteinType        *string      `db:"protein_type" json:"protein_type,omitempty"`
	KitchenDisplayName *string      `db:"kitchen_display_name" json:"kitchen_display_name,omitempty"`
	Description        *string      `db:"description" json:"description,omitempty"`
	Price              float64      `db:"price" json:"price"`
	ImageURL           *string      `db:"image_url" json:"image_url,omitempty"`
	DisplayOrder       int          `db:"display_order" json:"display_order"`
	Active             bool         `db:"active" json:"active"`
	Variant            *ItemVariant `db:"-" json:"variant,omitempty"` // Joined data
}

type ItemVariant struct {
	BaseModel
	ItemID          string  `db:"item_id" json:"item_id"`
	Name            string  `db:"name" json:"name"`
	PriceAdjustment float64 `db:"price_adjustment" json:"price_adjustment"`
	Active          bool    `db:"active" json:"active"`
}

// UnmarshalJSON accepts both the snake_case keys of the current backend and
// the camelCase keys still emitted by older till builds. The snake_case value
// wins when both spellings are present.
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	type alias MenuItem
	aux := struct {
		*alias
		ItemNameCamel    *string `json:"itemName"`
		VariantNameCamel *string `json:"variantName"`
		ProteinTypeCamel *string `json:"proteinType"`
		KitchenNameCamel *string `json:"kitchenDisplayName"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if m.ItemName == nil {
		m.ItemName = aux.ItemNameCamel
	}
	if m.VariantName == nil {
		m.VariantName = aux.VariantNameCamel
	}
	if m.ProteinType == nil {
		m.ProteinType = aux.ProteinTypeCamel
	}
	if m.KitchenDisplayName == nil {
		m.KitchenDisplayName = aux.KitchenNameCamel
	}
	return nil
}

// BaseName prefers the enriched item_name override when present.
func (m *MenuItem) BaseName() string {
	if m.ItemName != nil && *m.ItemName != "" {
		return *m.ItemName
	}
	return m.Name
}

// VariantLabel checks the flat column first, then the joined variant record.
func (m *MenuItem) VariantLabel() string {
	if m.VariantName != nil && *m.VariantName != "" {
		return *m.VariantName
	}
	if m.Variant != nil {
		return m.Variant.Name
	}
	return ""
}

func (m *MenuItem) Protein() string {
	if m.ProteinType != nil {
		return *m.ProteinType
	}
	return ""
}

func (m *MenuItem) KitchenName() string {
	if m.KitchenDisplayName != nil {
		return *m.KitchenDisplayName
	}
	return ""
}
