package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/export"
	timeprovider "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/time"
	mcore "github.com/amirhossein-jamali/agency-ledger/mocks/port/core"
	musecase "github.com/amirhossein-jamali/agency-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeHealth struct{ healthy bool }

func (f fakeHealth) CheckHealth(context.Context, time.Duration) database.HealthStatus {
	return database.HealthStatus{Healthy: f.healthy, Latency: "1ms"}
}

type apiFixture struct {
	router  *gin.Engine
	posting *musecase.MockPostingUseCase
	query   *musecase.MockQueryUseCase
	events  *musecase.MockAutoPostingUseCase
}

func newAPI(t *testing.T, healthy bool) *apiFixture {
	gin.SetMode(gin.TestMode)

	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	clock := timeprovider.NewManualTimeProvider(time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC))
	f := &apiFixture{
		router:  gin.New(),
		posting: musecase.NewMockPostingUseCase(t),
		query:   musecase.NewMockQueryUseCase(t),
		events:  musecase.NewMockAutoPostingUseCase(t),
	}

	routes.SetupMiddlewares(f.router, logger, clock, []string{"https://app.example.com"})
	routes.SetupRoutes(f.router, routes.Handlers{
		Transactions: handler.NewTransactionHandler(f.posting, f.query, export.NewXLSXExporter(time.UTC), export.ContentType, clock, logger),
		Balances:     handler.NewBalanceHandler(f.query, logger),
		Events:       handler.NewEventHandler(f.events, logger),
		Health:       handler.NewHealthHandler(fakeHealth{healthy: healthy}, "test"),
	}, "default")
	return f
}

func (f *apiFixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func posted(source entity.Source) *entity.Transaction {
	return &entity.Transaction{
		ID:                uuid.MustParse("0b6c3f4e-8a52-4a7a-9a53-1f5d7c2f9e10"),
		TenantID:          "agency-1",
		TransactionNumber: 7,
		Type:              entity.TypeExpense,
		Category:          entity.CategoryExpense,
		Amount:            5000,
		PaymentMethod:     entity.MethodCash,
		Source:            source,
		BalanceBefore:     10000,
		BalanceAfter:      5000,
		IsActive:          true,
		CreatedBy:         "clerk-7",
		CreatedAt:         time.Date(2024, 5, 3, 9, 30, 0, 0, time.UTC),
	}
}

func TestCreateTransaction(t *testing.T) {
	f := newAPI(t, true)

	f.posting.EXPECT().Post(mock.Anything, mock.MatchedBy(func(d entity.TransactionDraft) bool {
		return d.TenantID == "agency-1" && d.Source == "manual" && d.Amount == "50.00" && d.CreatedBy == "clerk-7"
	})).Return(posted(entity.SourceManual), nil).Once()

	w := f.do(http.MethodPost, "/api/v1/ledger/transactions",
		`{"type":"expense","category":"expense","amount":"50.00","paymentMethod":"cash"}`,
		map[string]string{"X-Tenant-ID": "agency-1", "X-User-ID": "clerk-7"})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TRX-000007", resp.Reference)
	assert.Equal(t, "50.00", resp.Amount)
	assert.Equal(t, "100.00", resp.BalanceBefore)
	assert.Equal(t, "50.00", resp.BalanceAfter)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCreateTransaction_BindingAndDomainErrors(t *testing.T) {
	f := newAPI(t, true)

	w := f.do(http.MethodPost, "/api/v1/ledger/transactions", `{"type":"gift","amount":"1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.posting.EXPECT().Post(mock.Anything, mock.Anything).
		Return(nil, errs.NewPostingError("default", "income", "deposit", "cash", "manual", "1.005", "validation failed", errs.ErrInvalidAmount)).Once()

	w = f.do(http.MethodPost, "/api/v1/ledger/transactions",
		`{"type":"income","category":"deposit","amount":"1.005","paymentMethod":"cash"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errs.CodeInvalidAmount, resp.Code)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, w.Header().Get("X-Request-ID"), resp.RequestID)
}

func TestCancelTransaction_StatusMapping(t *testing.T) {
	id := uuid.New()
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", errs.ErrTransactionNotFound, http.StatusNotFound},
		{"already cancelled", errs.ErrAlreadyCancelled, http.StatusConflict},
		{"automatic", errs.ErrAutomaticNotCancellable, http.StatusConflict},
		{"conflict", errs.ErrConcurrencyConflict, http.StatusConflict},
		{"database down", errs.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAPI(t, true)
			f.posting.EXPECT().Cancel(mock.Anything, usecase.CancelRequest{
				TenantID: "default", TransactionID: id, Reason: "typo", CancelledBy: "manager",
			}).Return(nil, errs.NewCancellationError("default", id.String(), "typo", tc.err)).Once()

			w := f.do(http.MethodPost, "/api/v1/ledger/transactions/"+id.String()+"/cancel",
				`{"reason":"typo"}`, map[string]string{"X-User-ID": "manager"})
			assert.Equal(t, tc.expected, w.Code)
			if tc.expected == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), assert.AnError.Error())
			}
		})
	}
}

func TestCancelTransaction_RejectsBeforeEngine(t *testing.T) {
	f := newAPI(t, true)

	w := f.do(http.MethodPost, "/api/v1/ledger/transactions/not-a-uuid/cancel", `{"reason":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/v1/ledger/transactions/"+uuid.NewString()+"/cancel", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errs.CodeCancellationReasonRequired, resp.Code)
}

func TestListTransactions_PassesRawFilters(t *testing.T) {
	f := newAPI(t, true)

	f.query.EXPECT().ListTransactions(mock.Anything, usecase.TransactionQuery{
		TenantID: "agency-1", Type: "income", Status: "active", From: "2024-05-01", Page: "2", Limit: "10",
	}).Return(&entity.TransactionPage{Items: []*entity.Transaction{posted(entity.SourceManual)}, Total: 11, Page: 2, Limit: 10}, nil).Once()

	w := f.do(http.MethodGet, "/api/v1/ledger/transactions?type=income&status=active&from=2024-05-01&page=2&limit=10", "",
		map[string]string{"X-Tenant-ID": "agency-1"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Items, 1)
}

func TestListTransactions_InvalidFilter(t *testing.T) {
	f := newAPI(t, true)
	f.query.EXPECT().ListTransactions(mock.Anything, mock.Anything).Return(nil, errs.NewFilterError("limit", "x")).Once()

	w := f.do(http.MethodGet, "/api/v1/ledger/transactions?limit=x", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportTransactions(t *testing.T) {
	f := newAPI(t, true)
	f.query.EXPECT().ExportTransactions(mock.Anything, mock.Anything).
		Return([]*entity.Transaction{posted(entity.SourceManual)}, nil).Once()

	w := f.do(http.MethodGet, "/api/v1/ledger/transactions/export?status=all", "", map[string]string{"X-Tenant-ID": "agency-1"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ledger_agency-1_20240503_120000.xlsx")
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}

func TestGetTransaction(t *testing.T) {
	f := newAPI(t, true)
	txn := posted(entity.SourceAutomatic)
	txn.LinkedDocument = &entity.LinkedDocument{Kind: entity.DocumentAppointment, ID: "apt-1"}
	f.query.EXPECT().GetTransaction(mock.Anything, "default", txn.ID).Return(txn, nil).Once()

	w := f.do(http.MethodGet, "/api/v1/ledger/transactions/"+txn.ID.String(), "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LinkedDocument)
	assert.Equal(t, "appointment", resp.LinkedDocument.Kind)
}

func TestBalanceSummaryAndStatistics(t *testing.T) {
	f := newAPI(t, true)

	f.query.EXPECT().GetCurrentBalances(mock.Anything, "agency-1").
		Return(entity.Balances{Cash: 5000, Card: -250, Total: 4750}, nil).Once()
	f.query.EXPECT().GetBalanceSummary(mock.Anything, "agency-1").Return(&entity.BalanceSummary{
		TenantID:       "agency-1",
		Today:          entity.PeriodTotals{Income: 10000, Expense: 5000, Count: 2},
		Reconciliation: entity.Reconciliation{Balanced: true},
	}, nil).Once()
	f.query.EXPECT().GetStatistics(mock.Anything, "agency-1", "2024-05-01", "2024-05-31").Return(&entity.Statistics{
		TenantID:        "agency-1",
		ByPaymentMethod: []entity.BreakdownRow{{Key: "cash", Income: 100, Count: 1}},
	}, nil).Once()

	headers := map[string]string{"X-Tenant-ID": "agency-1"}

	w := f.do(http.MethodGet, "/api/v1/ledger/balance", "", headers)
	require.Equal(t, http.StatusOK, w.Code)
	var balance dto.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, "-2.50", balance.Card)
	assert.Equal(t, "47.50", balance.Total)

	w = f.do(http.MethodGet, "/api/v1/ledger/summary", "", headers)
	require.Equal(t, http.StatusOK, w.Code)
	var summary dto.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "50.00", summary.Today.Net)
	assert.True(t, summary.Reconciliation.Balanced)

	w = f.do(http.MethodGet, "/api/v1/ledger/statistics?from=2024-05-01&to=2024-05-31", "", headers)
	require.Equal(t, http.StatusOK, w.Code)
	var stats dto.StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Len(t, stats.ByPaymentMethod, 1)
	assert.Equal(t, "1.00", stats.ByPaymentMethod[0].Income)
}

func TestPaymentEvents(t *testing.T) {
	f := newAPI(t, true)

	f.events.EXPECT().RecordAppointmentPayment(mock.Anything, usecase.PaymentEvent{
		TenantID: "agency-1", DocumentID: "apt-9", Amount: "250.75", PaymentMethod: "card", EventID: "evt-1", RecordedBy: "booking",
	}).Return(posted(entity.SourceAutomatic), nil).Once()
	f.events.EXPECT().ReverseDocumentPayment(mock.Anything, mock.MatchedBy(func(e usecase.ReversalEvent) bool {
		return e.DocumentKind == "invoice" && e.Reason == "trip cancelled"
	})).Return(posted(entity.SourceAutomatic), nil).Once()

	headers := map[string]string{"X-Tenant-ID": "agency-1", "X-User-ID": "booking"}

	w := f.do(http.MethodPost, "/api/v1/ledger/events/appointment-payments",
		`{"documentId":"apt-9","amount":"250.75","paymentMethod":"card","eventId":"evt-1"}`, headers)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = f.do(http.MethodPost, "/api/v1/ledger/events/reversals",
		`{"documentKind":"invoice","documentId":"inv-1","amount":"10","paymentMethod":"cash","reason":"trip cancelled"}`, headers)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = f.do(http.MethodPost, "/api/v1/ledger/events/reversals",
		`{"documentKind":"order","documentId":"o-1","amount":"10","paymentMethod":"cash","reason":"x"}`, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/v1/ledger/events/invoice-payments", `{"amount":"10"}`, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantHeaderTooLong(t *testing.T) {
	f := newAPI(t, true)

	w := f.do(http.MethodGet, "/api/v1/ledger/balance", "", map[string]string{"X-Tenant-ID": strings.Repeat("a", 65)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndCORS(t *testing.T) {
	w := newAPI(t, true).do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = newAPI(t, false).do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = newAPI(t, true).do(http.MethodOptions, "/api/v1/ledger/balance", "", map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = newAPI(t, true).do(http.MethodOptions, "/api/v1/ledger/balance", "", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPanicIsRecovered(t *testing.T) {
	f := newAPI(t, true)
	f.query.EXPECT().GetCurrentBalances(mock.Anything, "default").RunAndReturn(
		func(context.Context, string) (entity.Balances, error) { panic("boom") }).Once()

	w := f.do(http.MethodGet, "/api/v1/ledger/balance", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
