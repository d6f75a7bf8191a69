package payment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned before any network call when no secret key
// was supplied.
var ErrNotConfigured = errors.New("stripe secret key is not configured")

type SessionRequest struct {
	PriceID        string
	Quantity       int64
	SuccessURL     string
	CancelURL      string
	Metadata       map[string]string
	IdempotencyKey string
}

type Session struct {
	ID  string
	URL string
}

type Options struct {
	SecretKey string
	// APIURL overrides the Stripe API base, e.g. for a local stub.
	APIURL  string
	Timeout time.Duration
	Logger  *zap.Logger
}

type StripeService struct {
	secretKey string
	sessions  *session.Client
}

func NewStripeService(opts Options) *StripeService {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cfg := &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: opts.Timeout},
		// Session creation is not safe to replay without an idempotency key.
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     log.Named("stripe").Sugar(),
	}
	if opts.APIURL != "" {
		cfg.URL = stripe.String(opts.APIURL)
	}

	return &StripeService{
		secretKey: opts.SecretKey,
		sessions: &session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Key: opts.SecretKey,
		},
	}
}

func (s *StripeService) Configured() bool {
	return s.secretKey != ""
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, req SessionRequest) (*Session, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	sess, err := s.sessions.New(params)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}
