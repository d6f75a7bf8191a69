package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/metrics"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/payment"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/utils"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindTransport
	KindConfiguration
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// CheckoutError carries a message that is safe to show to the caller.
// Err holds the underlying cause and is only ever logged.
type CheckoutError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

const (
	MsgPriceRequired    = "Price ID is required"
	MsgPriceInvalid     = "Invalid price ID"
	MsgInvalidBody      = "Invalid request body"
	MsgNotConfigured    = "Payment processor not configured"
	MsgCheckoutFailed   = "Failed to create checkout session"
	priceIDStructField  = "PriceID"
	requiredValidateTag = "required"
)

func MalformedRequest(err error) *CheckoutError {
	return &CheckoutError{Kind: KindTransport, Message: MsgInvalidBody, Err: err}
}

// Gateway creates hosted checkout sessions at the payment processor.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error)
}

type CheckoutService struct {
	gateway    Gateway
	validator  *utils.Validator
	successURL string
	cancelURL  string
	log        *zap.Logger
}

func NewCheckoutService(gateway Gateway, validator *utils.Validator, successURL, cancelURL string, log *zap.Logger) *CheckoutService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutService{
		gateway:    gateway,
		validator:  validator,
		successURL: successURL,
		cancelURL:  cancelURL,
		log:        log,
	}
}

// CreateCheckoutSession validates req against the price allow-list and
// forwards it to the payment processor exactly once. Nothing leaves the
// process unless validation passes.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest, idempotencyKey string) (*models.CheckoutSession, error) {
	if err := s.validator.Struct(req); err != nil {
		msg := MsgPriceInvalid
		if utils.FailedTag(err, priceIDStructField) == requiredValidateTag {
			msg = MsgPriceRequired
		}
		metrics.RecordCheckout(metrics.OutcomeInvalid)
		return nil, &CheckoutError{Kind: KindValidation, Message: msg, Err: err}
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = s.successURL
	}

	start := time.Now()
	sess, err := s.gateway.CreateCheckoutSession(ctx, payment.SessionRequest{
		PriceID:        req.PriceID,
		Quantity:       1,
		SuccessURL:     successURL,
		CancelURL:      s.cancelURL,
		Metadata:       req.Metadata,
		IdempotencyKey: idempotencyKey,
	})
	if errors.Is(err, payment.ErrNotConfigured) {
		s.log.Error("checkout requested but stripe secret key is missing")
		metrics.RecordCheckout(metrics.OutcomeMisconfigured)
		return nil, &CheckoutError{Kind: KindConfiguration, Message: MsgNotConfigured, Err: err}
	}
	metrics.ObserveStripeRequest(time.Since(start))
	if err != nil {
		s.log.Error("stripe checkout session creation failed",
			zap.String("price_id", req.PriceID),
			zap.Error(err),
		)
		metrics.RecordCheckout(metrics.OutcomeUpstream)
		return nil, &CheckoutError{Kind: KindUpstream, Message: MsgCheckoutFailed, Err: err}
	}
	if sess == nil || sess.URL == "" {
		s.log.Error("stripe returned a checkout session without a url", zap.String("price_id", req.PriceID))
		metrics.RecordCheckout(metrics.OutcomeUpstream)
		return nil, &CheckoutError{Kind: KindUpstream, Message: MsgCheckoutFailed}
	}

	s.log.Info("checkout session created",
		zap.String("price_id", req.PriceID),
		zap.String("session_id", sess.ID),
		zap.Int("metadata_keys", len(req.Metadata)),
	)
	metrics.RecordCheckout(metrics.OutcomeCreated)

	return &models.CheckoutSession{
		URL: sess.URL,
	}, nil
}
