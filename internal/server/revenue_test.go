package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/relaycrm/relay/internal/clock"
	"github.com/relaycrm/relay/internal/config"
	dealdomain "github.com/relaycrm/relay/internal/deal/domain"
	dealrepo "github.com/relaycrm/relay/internal/deal/repository"
	dealservice "github.com/relaycrm/relay/internal/deal/service"
	revenuedomain "github.com/relaycrm/relay/internal/revenue/domain"
	revenuerepo "github.com/relaycrm/relay/internal/revenue/repository"
	revenueservice "github.com/relaycrm/relay/internal/revenue/service"
	"github.com/relaycrm/relay/internal/server"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *snowflake.Node) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&dealdomain.Deal{}, &revenuedomain.RevenueItem{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()
	clk := clock.New()
	dealSvc := dealservice.New(dealservice.Params{
		DB:          db,
		Log:         log,
		GenID:       node,
		Clock:       clk,
		Repo:        dealrepo.Provide(),
		RevenueRepo: revenuerepo.Provide(),
	})
	revenueSvc := revenueservice.New(revenueservice.Params{
		DB:       db,
		Log:      log,
		GenID:    node,
		Clock:    clk,
		Repo:     revenuerepo.Provide(),
		DealRepo: dealrepo.Provide(),
	})

	cfg := config.Config{
		Environment: "test",
		Clock:       config.ClockConfig{AllowSimulated: true},
	}
	engine := server.NewEngine(cfg, log)
	srv := server.NewServer(server.Params{
		Cfg:        cfg,
		Log:        log,
		DB:         db,
		DealSvc:    dealSvc,
		RevenueSvc: revenueSvc,
	})
	srv.RegisterRoutes(engine)
	return engine, db, node
}

func seedDeal(t *testing.T, db *gorm.DB, node *snowflake.Node) *dealdomain.Deal {
	t.Helper()

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	deal := &dealdomain.Deal{
		ID:               node.Generate(),
		Name:             "Globex retainer",
		Stage:            dealdomain.StageWon,
		Currency:         "USD",
		AuditFee:         decimal.RequireFromString("1000"),
		RetainerMonthly:  decimal.RequireFromString("200"),
		CustomDevFee:     decimal.Zero,
		RevenueStartDate: &start,
		RevenueEndDate:   &end,
		CreatedAt:        start,
		UpdatedAt:        start,
	}
	require.NoError(t, db.Create(deal).Error)
	return deal
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGetRevenueScheduleEndpoint(t *testing.T) {
	engine, db, node := setupRouter(t)
	deal := seedDeal(t, db, node)

	w := doJSON(engine, http.MethodGet, "/v1/deals/"+deal.ID.String()+"/revenue-schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data revenuedomain.Schedule `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Months, 3)
	assert.Equal(t, "USD", resp.Data.Currency)
	assert.Equal(t, "Jan 2024", resp.Data.Months[0].Display)
	assert.True(t, resp.Data.Totals.Total.Equal(decimal.RequireFromString("1600")))
}

func TestGetRevenueScheduleUnknownDeal(t *testing.T) {
	engine, _, node := setupRouter(t)

	w := doJSON(engine, http.MethodGet, "/v1/deals/"+node.Generate().String()+"/revenue-schedule", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "deal_not_found")
}

func TestUpsertRevenueItemEndpoint(t *testing.T) {
	engine, db, node := setupRouter(t)
	deal := seedDeal(t, db, node)

	w := doJSON(engine, http.MethodPut, "/v1/deals/"+deal.ID.String()+"/revenue-items", map[string]any{
		"month":     "2024-02",
		"item_type": "retainer",
		"amount":    999,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(engine, http.MethodGet, "/v1/deals/"+deal.ID.String()+"/revenue-schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data revenuedomain.Schedule `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	feb := resp.Data.Months[1]
	assert.True(t, feb.Retainer.Equal(decimal.RequireFromString("999")))
	assert.True(t, feb.RetainerAmended)
}

func TestUpsertRevenueItemRejectsNegativeAmount(t *testing.T) {
	engine, db, node := setupRouter(t)
	deal := seedDeal(t, db, node)

	w := doJSON(engine, http.MethodPut, "/v1/deals/"+deal.ID.String()+"/revenue-items", map[string]any{
		"month":     "2024-02",
		"item_type": "audit_fee",
		"amount":    -5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_amount")
	assert.Contains(t, w.Body.String(), "non-negative")

	var count int64
	require.NoError(t, db.Model(&revenuedomain.RevenueItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteRevenueItemEndpoint(t *testing.T) {
	engine, db, node := setupRouter(t)
	deal := seedDeal(t, db, node)

	put := doJSON(engine, http.MethodPut, "/v1/deals/"+deal.ID.String()+"/revenue-items", map[string]any{
		"month":     "2024-03",
		"item_type": "retainer",
		"amount":    50,
	})
	require.Equal(t, http.StatusOK, put.Code)

	path := fmt.Sprintf("/v1/deals/%s/revenue-items/2024-03/retainer", deal.ID.String())
	w := doJSON(engine, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again is still a success.
	w = doJSON(engine, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&revenuedomain.RevenueItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSimulatedTimeHeaderControlsOngoingWindow(t *testing.T) {
	engine, db, node := setupRouter(t)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	deal := &dealdomain.Deal{
		ID:               node.Generate(),
		Name:             "Ongoing engagement",
		Stage:            dealdomain.StageWon,
		Currency:         "USD",
		AuditFee:         decimal.Zero,
		RetainerMonthly:  decimal.RequireFromString("100"),
		CustomDevFee:     decimal.Zero,
		RevenueStartDate: &start,
		CreatedAt:        start,
		UpdatedAt:        start,
	}
	require.NoError(t, db.Create(deal).Error)

	fetch := func(simulated string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/deals/"+deal.ID.String()+"/revenue-schedule", nil)
		req.Header.Set("X-Simulated-Time", simulated)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data revenuedomain.Schedule `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return len(resp.Data.Months)
	}

	assert.Equal(t, 3, fetch("2024-03-15T00:00:00Z"))
	assert.Equal(t, 5, fetch("2024-05-15T00:00:00Z"))
}

func TestCreateDealEndpointValidation(t *testing.T) {
	engine, _, _ := setupRouter(t)

	w := doJSON(engine, http.MethodPost, "/v1/deals", map[string]any{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(engine, http.MethodPost, "/v1/deals", map[string]any{
		"name":             "Initech audit",
		"stage":            "qualified",
		"audit_fee":        1500,
		"retainer_monthly": 250,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Initech audit")
}
