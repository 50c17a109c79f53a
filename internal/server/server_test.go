package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oaksmart/pos-ledger/config"
	analyticsrepo "github.com/oaksmart/pos-ledger/internal/analytics/repository"
	analyticsuc "github.com/oaksmart/pos-ledger/internal/analytics/usecase"
	productrepo "github.com/oaksmart/pos-ledger/internal/product/repository"
	productuc "github.com/oaksmart/pos-ledger/internal/product/usecase"
	salerepo "github.com/oaksmart/pos-ledger/internal/sale/repository"
	saleuc "github.com/oaksmart/pos-ledger/internal/sale/usecase"
	"github.com/oaksmart/pos-ledger/internal/storage"
	"github.com/oaksmart/pos-ledger/internal/syncer"
	syncrepo "github.com/oaksmart/pos-ledger/internal/syncer/repository"
	syncuc "github.com/oaksmart/pos-ledger/internal/syncer/usecase"
	userrepo "github.com/oaksmart/pos-ledger/internal/user/repository"
	useruc "github.com/oaksmart/pos-ledger/internal/user/usecase"
)

type stubClient struct {
	resp *syncer.ReconcileResponse
	err  error
}

func (s *stubClient) Reconcile(ctx context.Context, req *syncer.ReconcileRequest) (*syncer.ReconcileResponse, error) {
	return s.resp, s.err
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(&config.SqliteConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	t.Cleanup(func() { db.Close() })

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	logger := zap.NewNop()

	productRepo := productrepo.NewSqliteRepository(db)
	userUC := useruc.NewUserUseCase(userrepo.NewSqliteRepository(db), logger)
	require.NoError(t, userUC.Bootstrap(context.Background(), "1234"))

	return NewServer(
		saleuc.NewSaleUseCase(salerepo.NewSqliteRepository(db), node, logger),
		syncuc.NewSyncUseCase(syncrepo.NewSqliteRepository(db), &stubClient{resp: &syncer.ReconcileResponse{OK: true}}, logger),
		analyticsuc.NewAnalyticsUseCase(analyticsrepo.NewSqliteRepository(db), productRepo, logger),
		productuc.NewProductUseCase(productRepo, logger),
		userUC,
		logger,
	)
}

func doJSON(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "pos-ledger", body["app"])
}

func TestRecordSale_Endpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/products",
		`{"barcode":"123","name":"soap","price":10,"cost":6,"qty":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/sales",
		`{"cashier":"amina","lines":[{"barcode":"123","name":"soap","qty":2,"price":10,"cost":6}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	tx := body["transaction"].(map[string]interface{})
	assert.Equal(t, 20.0, tx["total"])
	assert.Equal(t, "amina", tx["cashier"])
	assert.NotEmpty(t, tx["local_id"])

	rec = doJSON(s, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode(t, rec)["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, 3.0, products[0].(map[string]interface{})["qty"])
}

func TestRecordSale_EmptyCartRejected(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/sales", `{"lines":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decode(t, rec)["ok"])
}

func TestLogin_Endpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/auth/login", `{"name":"admin","pin":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/auth/login", `{"name":"admin","pin":"0000"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSync_Endpoint_EmptyQueue(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/sync", "")
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode(t, rec)["result"].(map[string]interface{})
	assert.Equal(t, "nothing_to_sync", result["status"])
}

func TestSuggestReorder_UnknownProduct(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/analytics/suggest", `{"barcode":"ghost"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
