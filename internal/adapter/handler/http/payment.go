package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type InitializeRequest struct {
	PackageID string `json:"packageId" binding:"required"`
}

type InitializeResponse struct {
	Status          string `json:"status"`
	OrderID         string `json:"orderId"`
	Token           string `json:"token"`
	RedirectContent string `json:"redirectContent,omitempty"`
	RedirectURL     string `json:"redirectUrl,omitempty"`
}

// InitializeCheckout starts a purchase for the authenticated caller.
func (ph *PaymentHandler) InitializeCheckout(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := InitializeRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	session, err := ph.service.InitializeCheckout(ctx, userID, req.PackageID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, InitializeResponse{
		Status:          "success",
		OrderID:         session.OrderID,
		Token:           session.Token,
		RedirectContent: session.CheckoutFormContent,
		RedirectURL:     session.PaymentPageURL,
	})
}

type CallbackRequest struct {
	Token string `json:"token" form:"token" binding:"required"`
}

type CallbackResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId,omitempty"`
}

// Callback resolves a gateway redirect. An ordinary declined payment is a 200
// with a semantic failure body; HTTP error codes are kept for malformed
// requests, unknown tokens and internal faults. Gateways post the token as a
// browser form, so both JSON and form encoding are accepted.
func (ph *PaymentHandler) Callback(ctx *gin.Context) {
	req := CallbackRequest{}
	if err := ctx.ShouldBind(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	result, err := ph.service.ReconcileCallback(ctx, req.Token)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, CallbackResponse{
		Status:    string(result.Outcome),
		Message:   result.Message,
		OrderID:   result.Order.ID,
		PaymentID: result.PaymentID,
	})
}

type OrderResp struct {
	OrderID     string           `json:"orderId"`
	PackageID   string           `json:"packageId"`
	Amount      *decimal.Decimal `json:"amount"`
	Status      string           `json:"status"`
	PaymentID   string           `json:"paymentId,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func orderResp(o *domain.Order) OrderResp {
	amount := o.Amount
	return OrderResp{
		OrderID:     o.ID,
		PackageID:   o.PackageID,
		Amount:      &amount,
		Status:      string(o.Status),
		PaymentID:   o.GatewayTransactionID,
		CompletedAt: o.CompletedAt,
		CreatedAt:   o.CreatedAt,
	}
}

func (ph *PaymentHandler) ListOrdersByUser(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ph.service.GetOrdersByUser(ctx, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, o := range list {
		result = append(result, orderResp(o))
	}

	ph.handleSuccess(ctx, result)
}

// CurrentOrder returns the caller's most recent COMPLETED order, backing the
// front end's "current active package" check.
func (ph *PaymentHandler) CurrentOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	order, err := ph.service.GetCurrentCompletedOrder(ctx, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, orderResp(order))
}
