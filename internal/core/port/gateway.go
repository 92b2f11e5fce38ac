package port

import (
	"context"

	"github.com/govalues/decimal"
)

// CheckoutSessionRequest is everything the gateway needs to open a hosted
// checkout form. Buyer fields come from the user directory; the builder fills
// placeholder defaults for the optional ones.
type CheckoutSessionRequest struct {
	ConversationID string
	Amount         decimal.Decimal
	BasketItemID   string
	BasketItemName string
	CallbackURL    string

	BuyerID             string
	BuyerName           string
	BuyerSurname        string
	BuyerEmail          string
	BuyerPhone          string
	BuyerIdentityNumber string
	BuyerAddress        string
	BuyerCity           string
}

// CheckoutSessionResult is the gateway's answer to a session creation.
type CheckoutSessionResult struct {
	Token               string
	CheckoutFormContent string
	PaymentPageURL      string
}

type SessionStatus string

const (
	SessionStatusSuccess SessionStatus = "SUCCESS"
	SessionStatusFailure SessionStatus = "FAILURE"
)

// SessionOutcome is the authoritative result of a checkout session as
// reported by the gateway itself, never by the redirect payload.
type SessionOutcome struct {
	Status       SessionStatus
	PaymentID    string
	ErrorMessage string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type GatewayClient interface {
	// CreateSession opens a checkout session. A structured negative answer
	// from the gateway surfaces as domain.ErrGatewayRejected, transport
	// failures and timeouts as domain.ErrGatewayUnreachable. No retries here:
	// blindly retrying session creation risks duplicate sessions.
	CreateSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResult, error)

	// RetrieveSession fetches the result of a session. A declined payment is
	// a well-formed SessionOutcome, not an error.
	RetrieveSession(ctx context.Context, token string) (*SessionOutcome, error)
}
