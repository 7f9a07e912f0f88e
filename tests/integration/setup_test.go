package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kakeibo/internal/config"
	"kakeibo/internal/handlers"
	"kakeibo/internal/logger"
	"kakeibo/internal/middleware"
	"kakeibo/internal/models"
	"kakeibo/internal/services"
	"kakeibo/internal/validator"
)

const testAPIKey = "test-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Expense{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite, with the same routing and gating as cmd/api. httptest requests
// arrive from 192.0.2.1, so the allowlist covers that block.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	cfg := &config.Config{
		Port:         "8000",
		APIKey:       testAPIKey,
		LANSubnets:   []string{"192.0.2.0/24"},
		SyncMaxItems: 1000,
	}

	// Services
	store := services.NewExpenseStore(db)
	syncService := services.NewSyncService(db, store, cfg.SyncMaxItems)
	expenseService := services.NewExpenseService(store)
	reportService := services.NewReportService(store)

	// Handlers
	syncHandler := handlers.NewSyncHandler(syncService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	summaryHandler := handlers.NewSummaryHandler(reportService)
	pairingHandler := handlers.NewPairingHandler(cfg)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sync := router.Group("/sync")
	sync.Use(middleware.LANOnly(cfg.LANSubnets))
	sync.GET("/url", pairingHandler.SyncURL)
	sync.GET("/qr.png", pairingHandler.SyncQR)
	sync.GET("/page", pairingHandler.SyncPage)
	sync.POST("/expenses", middleware.APIKeyAuth(cfg.APIKey), syncHandler.SyncExpenses)

	protected := router.Group("/")
	protected.Use(middleware.APIKeyAuth(cfg.APIKey))

	protected.GET("/expenses", expenseHandler.ListByMonth)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)
	protected.GET("/stats", expenseHandler.MonthlyStats)

	summary := protected.Group("/summary")
	summary.GET("", summaryHandler.Total)
	summary.GET("/by-category", summaryHandler.ByCategory)
	summary.GET("/by-payer", summaryHandler.ByPayer)
	summary.GET("/expenses", summaryHandler.ListExpenses)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// syncItem builds one sync payload item as a JSON fragment.
func syncItem(uuid, date string, amount int64, category, paidBy string) string {
	return fmt.Sprintf(`{"client_uuid":%q,"date":%q,"amount":%d,"category":%q,"paid_by":%q}`,
		uuid, date, amount, category, paidBy)
}

// syncBatch posts a sync batch and fails the test unless it is accepted.
func (app *testApp) syncBatch(t *testing.T, items ...string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/sync/expenses", `{"items":[`+strings.Join(items, ",")+`]}`, testAPIKey)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}
