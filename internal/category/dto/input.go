package dto

type CreateCategoryInput struct {
	ParentCategoryID *string
	Name             string
	Description      string
	DisplayOrder     int
}

type UpdateCategoryInput struct {
	ID               string
	ParentCategoryID *string
	Name             string
	Description      string
	DisplayOrder     int
	Active           bool
}
