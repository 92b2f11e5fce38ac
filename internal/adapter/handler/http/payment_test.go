package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/auth"
	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/config"
	handler "github.com/zumerkk/atlasderslik-sub000/internal/adapter/handler/http"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/port"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/port/mock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, svc port.Service) (*handler.Router, port.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewProduction()

	ts, err := auth.New()
	assert.NoError(t, err)

	ph, err := handler.NewPaymentHandler(svc, logger)
	assert.NoError(t, err)

	r, err := handler.NewRouter(&config.HTTP{}, ts, ph)
	assert.NoError(t, err)

	return r, ts
}

func bearer(t *testing.T, ts port.TokenService, userID string) string {
	t.Helper()
	token, err := ts.CreateToken(&domain.User{ID: userID})
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestPaymentHandler_InitializeCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Initialize good", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().InitializeCheckout(gomock.Any(), "u1", "pkg-8").
			Return(&domain.CheckoutSession{
				OrderID:             "ord-1",
				Token:               "tok-1",
				CheckoutFormContent: "<form/>",
			}, nil)

		r, ts := newTestRouter(t, svc)

		body, _ := json.Marshal(handler.InitializeRequest{PackageID: "pkg-8"})
		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/initialize", bytes.NewReader(body))
		req.Header.Set("Authorization", bearer(t, ts, "u1"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusOK, w.Code)

		resp := handler.InitializeResponse{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "tok-1", resp.Token)
		assert.Equal(t, "ord-1", resp.OrderID)
		assert.Equal(t, "<form/>", resp.RedirectContent)
	})

	t.Run("No auth", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		r, _ := newTestRouter(t, svc)

		body, _ := json.Marshal(handler.InitializeRequest{PackageID: "pkg-8"})
		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/initialize", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
	})

	t.Run("Gateway unreachable maps to 504", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().InitializeCheckout(gomock.Any(), "u1", "pkg-8").
			Return(nil, domain.ErrGatewayUnreachable)

		r, ts := newTestRouter(t, svc)

		body, _ := json.Marshal(handler.InitializeRequest{PackageID: "pkg-8"})
		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/initialize", bytes.NewReader(body))
		req.Header.Set("Authorization", bearer(t, ts, "u1"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), "message")
	})

	t.Run("Missing package id", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		r, ts := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/initialize", strings.NewReader(`{}`))
		req.Header.Set("Authorization", bearer(t, ts, "u1"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_Callback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	completed := &domain.Order{ID: "ord-1", Status: domain.OrderStatusCompleted}

	t.Run("Successful payment", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ReconcileCallback(gomock.Any(), "tok-1").
			Return(&domain.ReconcileResult{
				Order:     completed,
				Outcome:   domain.ReconcileOutcomeSuccess,
				Message:   "payment completed",
				PaymentID: "txn-9",
			}, nil)

		r, _ := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/callback",
			strings.NewReader(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusOK, w.Code)

		resp := handler.CallbackResponse{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "ord-1", resp.OrderID)
		assert.Equal(t, "txn-9", resp.PaymentID)
	})

	t.Run("Declined payment is 200 with failure body", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ReconcileCallback(gomock.Any(), "tok-1").
			Return(&domain.ReconcileResult{
				Order:   &domain.Order{ID: "ord-1", Status: domain.OrderStatusFailed},
				Outcome: domain.ReconcileOutcomeFailure,
				Message: "card declined",
			}, nil)

		r, _ := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/callback",
			strings.NewReader(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusOK, w.Code)

		resp := handler.CallbackResponse{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "failure", resp.Status)
		assert.Equal(t, "card declined", resp.Message)
	})

	t.Run("Form-encoded token from browser redirect", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ReconcileCallback(gomock.Any(), "tok-1").
			Return(&domain.ReconcileResult{
				Order:     completed,
				Outcome:   domain.ReconcileOutcomeSuccess,
				Message:   "payment completed",
				PaymentID: "txn-9",
			}, nil)

		r, _ := newTestRouter(t, svc)

		form := url.Values{"token": {"tok-1"}}
		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/callback",
			strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusOK, w.Code)
	})

	t.Run("Unknown token is 404", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ReconcileCallback(gomock.Any(), "tok-bogus").
			Return(nil, domain.ErrOrderNotFound)

		r, _ := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/callback",
			strings.NewReader(`{"token":"tok-bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusNotFound, w.Code)
	})

	t.Run("Conflict is 409", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ReconcileCallback(gomock.Any(), "tok-1").
			Return(nil, domain.ErrReconciliationConflict)

		r, _ := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/callback",
			strings.NewReader(`{"token":"tok-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusConflict, w.Code)
	})

	t.Run("Missing token is 400", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		r, _ := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodPost, "/api/payment/callback",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_Orders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Current completed order", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().GetCurrentCompletedOrder(gomock.Any(), "u1").
			Return(&domain.Order{ID: "ord-1", Status: domain.OrderStatusCompleted}, nil)

		r, ts := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/payment/orders/current", nethttp.NoBody)
		req.Header.Set("Authorization", bearer(t, ts, "u1"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ord-1")
	})

	t.Run("No completed order is 404", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().GetCurrentCompletedOrder(gomock.Any(), "u1").
			Return(nil, domain.ErrDataNotFound)

		r, ts := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/payment/orders/current", nethttp.NoBody)
		req.Header.Set("Authorization", bearer(t, ts, "u1"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusNotFound, w.Code)
	})

	t.Run("List orders", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().GetOrdersByUser(gomock.Any(), "u1").
			Return([]*domain.Order{
				{ID: "ord-1", Status: domain.OrderStatusCompleted},
				{ID: "ord-2", Status: domain.OrderStatusFailed},
			}, nil)

		r, ts := newTestRouter(t, svc)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/payment/orders", nethttp.NoBody)
		req.Header.Set("Authorization", bearer(t, ts, "u1"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ord-1")
		assert.Contains(t, w.Body.String(), "ord-2")
	})
}
