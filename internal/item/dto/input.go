package dto

type CreateItemInput struct {
	CategoryID         string
	Name               string
	ItemName           string
	VariantName        string
	ProteinType        string
	KitchenDisplayName string
	Description        string
	Price              float64
	ImageURL           string
	DisplayOrder       int
}

type UpdateItemInput struct {
	ID                 string
	CategoryID         string
	Name               string
	ItemName           string
	VariantName        string
	ProteinType        string
	KitchenDisplayName string
	Description        string
	Price              float64
	ImageURL           string
	DisplayOrder       int
	Active             bool
}
