package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PiotrPlachta/JobApp/internal/models"
	"github.com/PiotrPlachta/JobApp/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Application{}))

	h := NewApplicationHandler(services.NewApplicationService(db))

	r := gin.New()
	api := r.Group("/api")
	api.GET("/applications", h.List)
	api.POST("/applications", h.Create)
	api.GET("/applications/:id", h.Get)
	api.PUT("/applications/:id", h.Update)
	api.DELETE("/applications/:id", h.Delete)
	api.GET("/stats", h.Stats)
	api.GET("/application-statuses", GetApplicationStatuses)
	api.GET("/salary-currencies", GetSalaryCurrencies)
	api.GET("/salary-types", GetSalaryTypes)
	api.GET("/health", HealthCheck)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateApplicationMissingRequiredField(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		body    map[string]any
		missing string
	}{
		{"no company", map[string]any{"role": "Engineer", "url": "http://x"}, "company"},
		{"no role", map[string]any{"company": "Acme", "url": "http://x"}, "role"},
		{"no url", map[string]any{"company": "Acme", "role": "Engineer"}, "url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/applications", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Missing required field: "+tt.missing, resp["error"])
		})
	}
}

func TestCreateApplicationMinimalBody(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/applications", map[string]any{
		"company": "Acme", "role": "Engineer", "url": "http://x",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var app models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
	assert.NotZero(t, app.ID)
	assert.Equal(t, "Applied", app.Status)
	assert.Equal(t, "PLN", app.SalaryCurrency)
	assert.Equal(t, "yearly", app.SalaryType)
	assert.Zero(t, app.SalaryAmount)
}

func TestGetApplicationNotFound(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/applications/999", "/api/applications/abc"} {
		w := doJSON(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Application not found"}`, w.Body.String())
	}
}

func TestUpdateApplicationPartial(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/applications", map[string]any{
		"company": "Acme", "role": "Engineer", "url": "http://x", "notes": "keep me",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/applications/%d", created.ID),
		map[string]any{"status": "Offer"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Offer", updated.Status)
	assert.Equal(t, "keep me", updated.Notes)
	assert.Equal(t, "Acme", updated.Company)
}

func TestUpdateApplicationNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/api/applications/424242", map[string]any{"status": "Offer"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteApplication(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/applications", map[string]any{
		"company": "Acme", "role": "Engineer", "url": "http://x",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/applications/%d", created.ID)

	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Application deleted successfully"}`, w.Body.String())

	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListApplications(t *testing.T) {
	r := newTestRouter(t)

	for i := 0; i < 3; i++ {
		w := doJSON(r, http.MethodPost, "/api/applications", map[string]any{
			"company": fmt.Sprintf("Company %d", i), "role": "Engineer", "url": "http://x",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/applications", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var apps []models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apps))
	assert.Len(t, apps, 3)
}

func TestEnumEndpoints(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path     string
		length   int
		contains string
	}{
		{"/api/application-statuses", 8, "Applied"},
		{"/api/salary-currencies", 4, "PLN"},
		{"/api/salary-types", 3, "yearly"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var values []string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &values))
			assert.Len(t, values, tt.length)
			assert.Contains(t, values, tt.contains)
		})
	}
}

func TestStatsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/applications", map[string]any{
		"company": "Acme", "role": "Engineer", "url": "http://x", "salary_amount": 90000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalApplications  int64 `json:"total_applications"`
		StatusDistribution []struct {
			Status string `json:"status"`
			Count  int64  `json:"count"`
		} `json:"status_distribution"`
		SalaryStats struct {
			Average float64 `json:"average"`
		} `json:"salary_stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalApplications)
	require.Len(t, stats.StatusDistribution, 1)
	assert.Equal(t, "Applied", stats.StatusDistribution[0].Status)
	assert.InDelta(t, 90000.0, stats.SalaryStats.Average, 1e-6)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
