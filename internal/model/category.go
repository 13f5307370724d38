package model

type Category struct {
	BaseModel
	Name             string  `db:"name" json:"name"`
	ParentCategoryID *string `db:"parent_category_id" json:"parent_category_id"` // Nullable; may point at a category or a section root
	Description      *string `db:"description" json:"description,omitempty"`
	DisplayOrder     int     `db:"display_order" json:"display_order"`
	Active           bool    `db:"active" json:"active"`
}
