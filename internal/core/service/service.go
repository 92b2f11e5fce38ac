package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/port"
	"go.uber.org/zap"
)

// Placeholder buyer fields sent to the gateway when the user record lacks the
// optional ones. The gateway requires them to be present but this subsystem
// never invents real-looking personal data.
const (
	DefaultBuyerPhone    = "+900000000000"
	DefaultBuyerIdentity = "11111111111"
	DefaultBuyerAddress  = "N/A"
	DefaultBuyerCity     = "N/A"
)

type Service struct {
	repo        port.Repository
	gateway     port.GatewayClient
	catalog     port.PackageCatalog
	directory   port.UserDirectory
	callbackURL string
	logger      *zap.Logger
}

func NewService(repo port.Repository, gateway port.GatewayClient,
	catalog port.PackageCatalog, directory port.UserDirectory,
	callbackURL string, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:        repo,
		gateway:     gateway,
		catalog:     catalog,
		directory:   directory,
		callbackURL: callbackURL,
		logger:      logger,
	}, nil
}

// InitializeCheckout creates the order first, then talks to the gateway, so a
// gateway failure still leaves an auditable FAILED record. The order's amount
// is snapshotted from the package price and never re-read.
func (s *Service) InitializeCheckout(ctx context.Context, userID string, packageID string) (*domain.CheckoutSession, error) {
	user, err := s.directory.ReadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUserNotFound
		}
		s.logger.Error("Read user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	pkg, err := s.catalog.ReadPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPackageNotFound
		}
		s.logger.Error("Read package", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if !pkg.Purchasable || pkg.Price.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrPackageNotPurchasable
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		PackageID: pkg.ID,
		Amount:    pkg.Price,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	result, err := s.gateway.CreateSession(ctx, s.buildSessionRequest(order, pkg, user))
	if err != nil {
		s.failOrderAtInitiation(ctx, order.ID, err)
		if errors.Is(err, domain.ErrGatewayRejected) || errors.Is(err, domain.ErrGatewayUnreachable) {
			return nil, err
		}
		s.logger.Error("Create gateway session", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := s.repo.AttachSessionToken(ctx, order.ID, result.Token); err != nil {
		s.logger.Error("Attach session token",
			zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &domain.CheckoutSession{
		OrderID:             order.ID,
		Token:               result.Token,
		CheckoutFormContent: result.CheckoutFormContent,
		PaymentPageURL:      result.PaymentPageURL,
	}, nil
}

func (s *Service) buildSessionRequest(order *domain.Order, pkg *domain.Package, user *domain.User) *port.CheckoutSessionRequest {
	req := &port.CheckoutSessionRequest{
		ConversationID:      order.ID,
		Amount:              order.Amount,
		BasketItemID:        pkg.ID,
		BasketItemName:      pkg.Name,
		CallbackURL:         s.callbackURL,
		BuyerID:             user.ID,
		BuyerName:           user.FirstName,
		BuyerSurname:        user.LastName,
		BuyerEmail:          user.Email,
		BuyerPhone:          user.Phone,
		BuyerIdentityNumber: user.IdentityNumber,
		BuyerAddress:        user.Address,
		BuyerCity:           user.City,
	}
	if req.BuyerPhone == "" {
		req.BuyerPhone = DefaultBuyerPhone
	}
	if req.BuyerIdentityNumber == "" {
		req.BuyerIdentityNumber = DefaultBuyerIdentity
	}
	if req.BuyerAddress == "" {
		req.BuyerAddress = DefaultBuyerAddress
	}
	if req.BuyerCity == "" {
		req.BuyerCity = DefaultBuyerCity
	}
	return req
}

// failOrderAtInitiation marks a just-created order FAILED after the gateway
// refused or never answered the session creation. Best effort: the guarded
// transition cannot regress a state someone else already settled.
func (s *Service) failOrderAtInitiation(ctx context.Context, orderID string, cause error) {
	applied, err := s.repo.ApplyTerminalTransition(ctx, orderID,
		domain.OrderStatusPending, domain.OrderStatusFailed,
		port.TerminalFields{FailureReason: cause.Error()})
	if err != nil {
		s.logger.Error("Mark order failed at initiation",
			zap.String("order", orderID), zap.Error(err))
		return
	}
	if !applied {
		s.logger.Warn("Order already terminal while failing initiation",
			zap.String("order", orderID))
	}
}

// ReconcileCallback converts the gateway's authoritative session result into a
// local terminal state exactly once. The token is only a lookup key here; the
// retrieve call is the trust anchor.
func (s *Service) ReconcileCallback(ctx context.Context, token string) (*domain.ReconcileResult, error) {
	outcome, err := s.gateway.RetrieveSession(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayRejected) || errors.Is(err, domain.ErrGatewayUnreachable) {
			return nil, err
		}
		s.logger.Error("Retrieve gateway session", zap.Error(err))
		return nil, domain.ErrInternal
	}

	order, err := s.repo.ReadOrderByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("Callback token matches no order", zap.String("token", token))
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order by token", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if outcome.Status == port.SessionStatusSuccess {
		return s.reconcileSuccess(ctx, order, outcome)
	}
	return s.reconcileFailure(ctx, order, outcome)
}

func (s *Service) reconcileSuccess(ctx context.Context, order *domain.Order, outcome *port.SessionOutcome) (*domain.ReconcileResult, error) {
	now := time.Now()
	applied, err := s.repo.ApplyTerminalTransition(ctx, order.ID,
		domain.OrderStatusPending, domain.OrderStatusCompleted,
		port.TerminalFields{
			GatewayTransactionID: outcome.PaymentID,
			CompletedAt:          &now,
		})
	if err != nil {
		s.logger.Error("Complete order", zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	if applied {
		s.logger.Info("Order completed",
			zap.String("order", order.ID),
			zap.String("payment", outcome.PaymentID))
		return s.freshResult(ctx, order.ID, domain.ReconcileOutcomeSuccess,
			"payment completed", outcome.PaymentID, false)
	}

	// Already terminal: a redelivered callback for the same payment is a
	// safe no-op, anything else is a conflict.
	current, err := s.repo.ReadOrder(ctx, order.ID)
	if err != nil {
		s.logger.Error("Re-read terminal order", zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if current.Status == domain.OrderStatusCompleted && current.GatewayTransactionID == outcome.PaymentID {
		return &domain.ReconcileResult{
			Order:     current,
			Outcome:   domain.ReconcileOutcomeSuccess,
			Message:   "payment already completed",
			PaymentID: outcome.PaymentID,
			Duplicate: true,
		}, nil
	}

	s.logger.Error("Reconciliation conflict on success callback",
		zap.String("order", current.ID),
		zap.String("status", string(current.Status)),
		zap.String("recorded_payment", current.GatewayTransactionID),
		zap.String("callback_payment", outcome.PaymentID))
	return nil, domain.ErrReconciliationConflict
}

func (s *Service) reconcileFailure(ctx context.Context, order *domain.Order, outcome *port.SessionOutcome) (*domain.ReconcileResult, error) {
	reason := outcome.ErrorMessage
	if reason == "" {
		reason = "payment failed"
	}

	applied, err := s.repo.ApplyTerminalTransition(ctx, order.ID,
		domain.OrderStatusPending, domain.OrderStatusFailed,
		port.TerminalFields{FailureReason: reason})
	if err != nil {
		s.logger.Error("Fail order", zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	if applied {
		s.logger.Info("Order failed",
			zap.String("order", order.ID), zap.String("reason", reason))
		return s.freshResult(ctx, order.ID, domain.ReconcileOutcomeFailure, reason, "", false)
	}

	current, err := s.repo.ReadOrder(ctx, order.ID)
	if err != nil {
		s.logger.Error("Re-read terminal order", zap.String("order", order.ID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if current.Status == domain.OrderStatusFailed {
		return &domain.ReconcileResult{
			Order:     current,
			Outcome:   domain.ReconcileOutcomeFailure,
			Message:   reason,
			Duplicate: true,
		}, nil
	}

	s.logger.Error("Reconciliation conflict on failure callback",
		zap.String("order", current.ID),
		zap.String("status", string(current.Status)))
	return nil, domain.ErrReconciliationConflict
}

func (s *Service) freshResult(ctx context.Context, orderID string,
	outcome domain.ReconcileOutcome, message, paymentID string, duplicate bool) (*domain.ReconcileResult, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("Read order after transition", zap.String("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return &domain.ReconcileResult{
		Order:     order,
		Outcome:   outcome,
		Message:   message,
		PaymentID: paymentID,
		Duplicate: duplicate,
	}, nil
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetCurrentCompletedOrder(ctx context.Context, userID string) (*domain.Order, error) {
	order, err := s.repo.ReadLatestCompletedByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Get current completed order", zap.Error(err))
		return nil, fmt.Errorf("read latest completed order: %w", err)
	}
	return order, nil
}
