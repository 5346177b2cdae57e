package promo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"trailbook/internal/api"
	"trailbook/internal/logger"
)

func setupPromoRouter(t *testing.T, repo Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	handler := NewHandler(NewService(repo))
	router := gin.New()
	router.POST("/api/promo/validate", handler.Validate)
	router.POST("/admin/promos", handler.Create)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateHandlerSuccess(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByCode", mock.Anything, "SAVE10").Return(&PromoCode{
		Code: "SAVE10", Discount: 10, Type: "percentage", Active: true,
	}, nil)

	router := setupPromoRouter(t, mockRepo)
	w := postJSON(t, router, "/api/promo/validate", `{"code":"SAVE10"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "SAVE10", data["code"])
	assert.Equal(t, float64(10), data["discount"])
	assert.Equal(t, "percentage", data["type"])
}

func TestValidateHandlerMissingCode(t *testing.T) {
	router := setupPromoRouter(t, new(MockRepository))
	w := postJSON(t, router, "/api/promo/validate", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Promo code is required", resp.Error)
}

func TestValidateHandlerNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByCode", mock.Anything, "NOPE").Return(nil, ErrNotFound)

	router := setupPromoRouter(t, mockRepo)
	w := postJSON(t, router, "/api/promo/validate", `{"code":"NOPE"}`)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp api.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid or inactive promo code", resp.Error)
}

func TestCreateHandlerRejectsBadType(t *testing.T) {
	router := setupPromoRouter(t, new(MockRepository))
	w := postJSON(t, router, "/admin/promos", `{"code":"X","discount":5,"type":"bogus"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
