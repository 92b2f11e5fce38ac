package gateway

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zumerkk/atlasderslik-sub000/internal/adapter/config"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/domain"
	"github.com/zumerkk/atlasderslik-sub000/internal/core/port"
	"go.uber.org/zap"
)

const (
	initializePath = "/payment/checkoutform/initialize"
	retrievePath   = "/payment/checkoutform/retrieve"
)

// Client talks to the hosted checkout-form API of the card gateway. It holds
// no local state and never retries: retry policy belongs to the caller.
type Client struct {
	logger  *zap.Logger
	baseURL string
	apiKey  string
	secret  string
	http    *http.Client
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:  log,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		secret:  cfg.SecretKey,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

type buyerPayload struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Surname             string `json:"surname"`
	Email               string `json:"email"`
	GsmNumber           string `json:"gsmNumber"`
	IdentityNumber      string `json:"identityNumber"`
	RegistrationAddress string `json:"registrationAddress"`
	City                string `json:"city"`
}

type basketItemPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type initializeRequest struct {
	Locale         string              `json:"locale"`
	ConversationID string              `json:"conversationId"`
	Price          string              `json:"price"`
	PaidPrice      string              `json:"paidPrice"`
	Currency       string              `json:"currency"`
	CallbackURL    string              `json:"callbackUrl"`
	Buyer          buyerPayload        `json:"buyer"`
	BasketItems    []basketItemPayload `json:"basketItems"`
}

type initializeResponse struct {
	Status              string `json:"status"`
	Token               string `json:"token"`
	CheckoutFormContent string `json:"checkoutFormContent"`
	PaymentPageURL      string `json:"paymentPageUrl"`
	ErrorMessage        string `json:"errorMessage"`
}

type retrieveRequest struct {
	Locale string `json:"locale"`
	Token  string `json:"token"`
}

type retrieveResponse struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentID     string `json:"paymentId"`
	ErrorMessage  string `json:"errorMessage"`
}

func (c *Client) CreateSession(ctx context.Context, req *port.CheckoutSessionRequest) (*port.CheckoutSessionResult, error) {
	price := req.Amount.String()
	body := initializeRequest{
		Locale:         "tr",
		ConversationID: req.ConversationID,
		Price:          price,
		PaidPrice:      price,
		Currency:       "TRY",
		CallbackURL:    req.CallbackURL,
		Buyer: buyerPayload{
			ID:                  req.BuyerID,
			Name:                req.BuyerName,
			Surname:             req.BuyerSurname,
			Email:               req.BuyerEmail,
			GsmNumber:           req.BuyerPhone,
			IdentityNumber:      req.BuyerIdentityNumber,
			RegistrationAddress: req.BuyerAddress,
			City:                req.BuyerCity,
		},
		BasketItems: []basketItemPayload{
			{ID: req.BasketItemID, Name: req.BasketItemName, Price: price},
		},
	}

	var resp initializeResponse
	if err := c.post(ctx, initializePath, body, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "success" {
		c.logger.Warn("Gateway rejected session creation",
			zap.String("conversation", req.ConversationID),
			zap.String("reason", resp.ErrorMessage))
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayRejected, resp.ErrorMessage)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: gateway returned no session token", domain.ErrGatewayRejected)
	}

	return &port.CheckoutSessionResult{
		Token:               resp.Token,
		CheckoutFormContent: resp.CheckoutFormContent,
		PaymentPageURL:      resp.PaymentPageURL,
	}, nil
}

func (c *Client) RetrieveSession(ctx context.Context, token string) (*port.SessionOutcome, error) {
	var resp retrieveResponse
	if err := c.post(ctx, retrievePath, retrieveRequest{Locale: "tr", Token: token}, &resp); err != nil {
		return nil, err
	}

	// Envelope failure means the token itself was not accepted; a declined
	// payment arrives as status success + paymentStatus FAILURE.
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayRejected, resp.ErrorMessage)
	}

	if resp.PaymentStatus == "SUCCESS" {
		return &port.SessionOutcome{
			Status:    port.SessionStatusSuccess,
			PaymentID: resp.PaymentID,
		}, nil
	}
	return &port.SessionOutcome{
		Status:       port.SessionStatusFailure,
		ErrorMessage: resp.ErrorMessage,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	nonce := newNonce()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authorization(nonce, raw))
	req.Header.Set("X-Request-Rnd", nonce)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Gateway request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s", domain.ErrGatewayUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: gateway answered %d", domain.ErrGatewayUnreachable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: gateway answered %d", domain.ErrGatewayRejected, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	return nil
}

// authorization builds the gateway's shared-key request signature:
// base64(sha1(apiKey + nonce + secret + body)).
func (c *Client) authorization(nonce string, body []byte) string {
	h := sha1.New()
	h.Write([]byte(c.apiKey))
	h.Write([]byte(nonce))
	h.Write([]byte(c.secret))
	h.Write(body)
	return "ADWS " + c.apiKey + ":" + base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func newNonce() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
