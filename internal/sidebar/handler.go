package sidebar

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/auth"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/category"
	catdto "github.com/Bodzaman/cottage-pos-menu-service/internal/category/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

// Handler exposes the sidebar expansion state over HTTP. A presenter is
// rebuilt from the store per request; the store is the source of truth.
type Handler struct {
	store  Store
	catUC  category.UseCase
	logger logger.ZapLogger
}

func NewHandler(store Store, catUC category.UseCase, log logger.ZapLogger) *Handler {
	return &Handler{
		store:  store,
		catUC:  catUC,
		logger: log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sidebar", h.GetState)
	rg.PUT("/sidebar", h.PutState)
	rg.POST("/sidebar/toggle", h.Toggle)
	rg.POST("/sidebar/selection", h.Selection)
}

func (h *Handler) presenter(c *gin.Context) *Presenter {
	ctx := c.Request.Context()
	return NewPresenter(ctx, h.store, h.logger, auth.GetTerminalID(ctx))
}

func (h *Handler) GetState(c *gin.Context) {
	p := h.presenter(c)
	c.JSON(http.StatusOK, gin.H{"expanded": p.Expanded()})
}

type putStateRequest struct {
	Expanded []string `json:"expanded"`
}

func (h *Handler) PutState(c *gin.Context) {
	var req putStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := h.presenter(c)
	p.SetExpanded(c.Request.Context(), req.Expanded)
	c.JSON(http.StatusOK, gin.H{"expanded": p.Expanded()})
}

type toggleRequest struct {
	SectionID string `json:"section_id" binding:"required"`
}

func (h *Handler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := h.presenter(c)
	expanded := p.Toggle(c.Request.Context(), req.SectionID)
	c.JSON(http.StatusOK, gin.H{"section_id": req.SectionID, "expanded": expanded})
}

type selectionRequest struct {
	SelectedCategory string `json:"selected_category"`
}

// Selection records the till's current selection and auto-expands the owning
// section so it can be scrolled into view.
func (h *Handler) Selection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	categories, _, err := h.catUC.ListCategories(c.Request.Context(), &catdto.CategoryFilters{Active: &active})
	if err != nil {
		h.logger.Error("failed to list categories for selection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve selection"})
		return
	}

	p := h.presenter(c)
	section := p.ExpandFor(c.Request.Context(), req.SelectedCategory, categories)
	c.JSON(http.StatusOK, gin.H{
		"scroll_to": section,
		"expanded":  p.Expanded(),
	})
}
