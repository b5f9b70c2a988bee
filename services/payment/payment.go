package payment

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"go.uber.org/zap"

	paymentRepo "facilityai/database/repository/payment"
	"facilityai/models"
)

// Link lifetime and token entropy. Tokens are opaque URL-safe strings; the
// derived path is what a front-end renders as a mock checkout.
const (
	linkTTL    = 7 * 24 * time.Hour
	tokenBytes = 16
)

type PaymentService interface {
	CreateLink(ctx context.Context, req models.PaymentLinkRequest) (*models.PaymentLinkResult, error)
}

// DefaultPaymentService persists pending payment links. No processor is
// called; status transitions are owned by collaborators.
type DefaultPaymentService struct {
	Links  paymentRepo.PaymentLinkRepository
	Logger *zap.Logger
}

func (s *DefaultPaymentService) CreateLink(ctx context.Context, req models.PaymentLinkRequest) (*models.PaymentLinkResult, error) {
	token, err := NewToken(tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment token: %w", err)
	}
	url := "/pay/" + token

	link := models.PaymentLink{
		CustomerID:  req.CustomerID,
		AmountCents: req.AmountCents,
		Currency:    models.DefaultCurrency,
		Description: req.Description,
		Status:      models.PaymentStatusPending,
		Token:       token,
		URL:         url,
		ExpiresAt:   time.Now().UTC().Add(linkTTL),
	}

	id, err := s.Links.Create(ctx, link)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("payment link created",
		zap.String("id", id),
		zap.String("customer_id", req.CustomerID),
		zap.Int("amount_cents", req.AmountCents))

	return &models.PaymentLinkResult{ID: id, Token: token, URL: url}, nil
}

// NewToken returns a URL-safe token carrying n bytes of entropy.
func NewToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
