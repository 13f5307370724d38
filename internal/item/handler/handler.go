package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/item"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/item/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

type ItemHandler struct {
	uc     item.UseCase
	logger logger.ZapLogger
}

func NewItemHandler(uc item.UseCase, log logger.ZapLogger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu/hierarchy", h.MenuHierarchy)
	rg.GET("/menu/sections/:id", h.SectionItems)
	rg.POST("/items", h.CreateItem)
	rg.GET("/items", h.ListItems)
	rg.GET("/items/:id", h.GetItem)
	rg.PUT("/items/:id", h.UpdateItem)
	rg.DELETE("/items/:id", h.DeleteItem)
}

type itemRequest struct {
	CategoryID         string  `json:"category_id" binding:"required"`
	Name               string  `json:"name" binding:"required"`
	ItemName           string  `json:"item_name"`
	VariantName        string  `json:"variant_name"`
	ProteinType        string  `json:"protein_type"`
	KitchenDisplayName string  `json:"kitchen_display_name"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	ImageURL           string  `json:"image_url"`
	DisplayOrder       int     `json:"display_order"`
	Active             bool    `json:"active"`
}

func (h *ItemHandler) MenuHierarchy(c *gin.Context) {
	tree, err := h.uc.MenuHierarchy(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build menu hierarchy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build menu hierarchy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": tree})
}

func (h *ItemHandler) SectionItems(c *gin.Context) {
	groups, err := h.uc.SectionItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed to build section view", zap.Error(err), zap.String("section", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build section view"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": groups})
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &dto.CreateItemInput{
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		ItemName:           req.ItemName,
		VariantName:        req.VariantName,
		ProteinType:        req.ProteinType,
		KitchenDisplayName: req.KitchenDisplayName,
		Description:        req.Description,
		Price:              req.Price,
		ImageURL:           req.ImageURL,
		DisplayOrder:       req.DisplayOrder,
	}

	m, err := h.uc.CreateItem(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed to create menu item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": m})
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	m, err := h.uc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": m})
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	filters := &dto.ItemFilters{
		SearchQuery: c.Query("q"),
		Page:        intQuery(c, "page", 1),
		PageSize:    intQuery(c, "page_size", 0),
	}
	if categoryID, ok := c.GetQuery("category_id"); ok {
		filters.CategoryID = &categoryID
	}
	if activeStr, ok := c.GetQuery("active"); ok {
		active := activeStr == "true"
		filters.Active = &active
	}

	items, count, err := h.uc.ListItems(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": count})
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &dto.UpdateItemInput{
		ID:                 c.Param("id"),
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		ItemName:           req.ItemName,
		VariantName:        req.VariantName,
		ProteinType:        req.ProteinType,
		KitchenDisplayName: req.KitchenDisplayName,
		Description:        req.Description,
		Price:              req.Price,
		ImageURL:           req.ImageURL,
		DisplayOrder:       req.DisplayOrder,
		Active:             req.Active,
	}

	m, err := h.uc.UpdateItem(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": m})
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if err := h.uc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if v, ok := c.GetQuery(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
