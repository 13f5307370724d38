package sidebar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/auth"
	catdto "github.com/Bodzaman/cottage-pos-menu-service/internal/category/dto"
	catrepo "github.com/Bodzaman/cottage-pos-menu-service/internal/category/repository"
	catuc "github.com/Bodzaman/cottage-pos-menu-service/internal/category/usecase"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/menu"
	"github.com/Bodzaman/cottage-pos-menu-service/pkg/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MemoryStore, *catrepo.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewMemoryStore()
	repo := catrepo.NewMemoryRepository()
	uc := catuc.NewCategoryUseCase(repo, logger.NewNop())
	h := NewHandler(store, uc, logger.NewNop())

	router := gin.New()
	router.Use(auth.TerminalMiddleware())
	h.RegisterRoutes(router.Group("/api/v1"))
	return router, store, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.TerminalHeader, "till-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestSidebarHandler_StateRoundTrip(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/api/v1/sidebar", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["expanded"])

	w, body = doJSON(t, router, http.MethodPut, "/api/v1/sidebar", `{"expanded":["starters","drinks"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []interface{}{"drinks", "starters"}, body["expanded"])

	w, body = doJSON(t, router, http.MethodGet, "/api/v1/sidebar", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []interface{}{"drinks", "starters"}, body["expanded"])
}

func TestSidebarHandler_Toggle(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/api/v1/sidebar/toggle", `{"section_id":"starters"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["expanded"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sidebar/toggle", `{"section_id":"starters"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["expanded"])
}

func TestSidebarHandler_ToggleRequiresSectionID(t *testing.T) {
	router, _, _ := newTestRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/sidebar/toggle", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSidebarHandler_SelectionExpandsOwningSection(t *testing.T) {
	router, _, repo := newTestRouter(t)

	uc := catuc.NewCategoryUseCase(repo, logger.NewNop())
	starters := menu.SectionUUID("starters")
	cat, err := uc.CreateCategory(context.Background(), &catdto.CreateCategoryInput{
		Name:             "Vegetable Starters",
		ParentCategoryID: &starters,
	})
	require.NoError(t, err)

	w, body := doJSON(t, router, http.MethodPost, "/api/v1/sidebar/selection", `{"selected_category":"`+cat.ID+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "starters", body["scroll_to"])
	assert.Contains(t, body["expanded"], "starters")
}

func TestSidebarHandler_TerminalsIsolatedByHeader(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPut, "/api/v1/sidebar", `{"expanded":["starters"]}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same route, different terminal header.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sidebar", nil)
	req.Header.Set(auth.TerminalHeader, "till-2")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body["expanded"])
}
