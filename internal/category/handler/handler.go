package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/category"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/category/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/menu"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sections", h.ListSections)
	rg.POST("/categories", h.CreateCategory)
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:id", h.GetCategory)
	rg.PUT("/categories/:id", h.UpdateCategory)
	rg.DELETE("/categories/:id", h.DeleteCategory)
}

type createCategoryRequest struct {
	Name             string  `json:"name" binding:"required"`
	ParentCategoryID *string `json:"parent_category_id"`
	Description      string  `json:"description"`
	DisplayOrder     int     `json:"display_order"`
}

type updateCategoryRequest struct {
	Name             string  `json:"name" binding:"required"`
	ParentCategoryID *string `json:"parent_category_id"`
	Description      string  `json:"description"`
	DisplayOrder     int     `json:"display_order"`
	Active           bool    `json:"active"`
}

// ListSections returns the fixed section registry with each section's direct
// child categories resolved against the current category list.
func (h *CategoryHandler) ListSections(c *gin.Context) {
	active := true
	cats, _, err := h.uc.ListCategories(c.Request.Context(), &dto.CategoryFilters{Active: &active})
	if err != nil {
		h.logger.Error("failed to list categories for sections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sections"})
		return
	}

	sections := make([]gin.H, 0, len(menu.Sections))
	for _, s := range menu.Sections {
		sections = append(sections, gin.H{
			"id":           s.ID,
			"uuid":         s.UUID,
			"display_name": menu.SectionDisplayName(s.ID),
			"categories":   menu.ChildCategories(s.ID, cats),
		})
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &dto.CreateCategoryInput{
		ParentCategoryID: req.ParentCategoryID,
		Name:             req.Name,
		Description:      req.Description,
		DisplayOrder:     req.DisplayOrder,
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	cat, err := h.uc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	filters := &dto.CategoryFilters{}

	if parent, ok := c.GetQuery("parent_id"); ok {
		filters.ParentID = &parent
	}
	if activeStr, ok := c.GetQuery("active"); ok {
		active := activeStr == "true"
		filters.Active = &active
	}

	cats, count, err := h.uc.ListCategories(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": cats, "total": count})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &dto.UpdateCategoryInput{
		ID:               c.Param("id"),
		ParentCategoryID: req.ParentCategoryID,
		Name:             req.Name,
		Description:      req.Description,
		DisplayOrder:     req.DisplayOrder,
		Active:           req.Active,
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.uc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
