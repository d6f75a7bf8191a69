package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/catalog"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/payment"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/utils"
)

const (
	testSuccessURL = "https://beforeigo.app/success?session_id={CHECKOUT_SESSION_ID}"
	testCancelURL  = "https://beforeigo.app/pricing"
	processorURL   = "https://checkout.stripe.com/c/pay/cs_test_abc"
)

// --- Mock Gateway ---

type mockGateway struct {
	calls []payment.SessionRequest
	sess  *payment.Session
	err   error
}

func (m *mockGateway) CreateCheckoutSession(_ context.Context, req payment.SessionRequest) (*payment.Session, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.sess, nil
}

func newCheckoutService(t *testing.T, gw Gateway) *CheckoutService {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewCheckoutService(gw, utils.NewValidator(c), testSuccessURL, testCancelURL, nil)
}

func requireKind(t *testing.T, err error, kind ErrorKind) *CheckoutError {
	t.Helper()
	var ce *CheckoutError
	require.True(t, errors.As(err, &ce), "expected *CheckoutError, got %v", err)
	assert.Equal(t, kind, ce.Kind)
	return ce
}

func TestCreateCheckoutSessionRejectsUnknownPrices(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"unknown":       "not_a_real_price",
		"case mismatch": "PRICE_PAPERBACK_JOURNAL",
		"padded":        "price_paperback_journal ",
	}

	for name, priceID := range cases {
		t.Run(name, func(t *testing.T) {
			gw := &mockGateway{sess: &payment.Session{URL: processorURL}}
			svc := newCheckoutService(t, gw)

			sess, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{PriceID: priceID}, "")

			assert.Nil(t, sess)
			ce := requireKind(t, err, KindValidation)
			if priceID == "" {
				assert.Equal(t, MsgPriceRequired, ce.Message)
			} else {
				assert.Equal(t, MsgPriceInvalid, ce.Message)
			}
			assert.Empty(t, gw.calls)
		})
	}
}

func TestCreateCheckoutSessionForEveryAllowedPrice(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	for _, item := range c.Items() {
		t.Run(item.Key, func(t *testing.T) {
			gw := &mockGateway{sess: &payment.Session{ID: "cs_test_abc", URL: processorURL}}
			svc := newCheckoutService(t, gw)

			sess, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{PriceID: item.PriceID}, "")
			require.NoError(t, err)
			assert.Equal(t, processorURL, sess.URL)
			require.Len(t, gw.calls, 1)
			assert.Equal(t, item.PriceID, gw.calls[0].PriceID)
		})
	}
}

func TestCreateCheckoutSessionDefaults(t *testing.T) {
	gw := &mockGateway{sess: &payment.Session{ID: "cs_test_abc", URL: processorURL}}
	svc := newCheckoutService(t, gw)

	sess, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		PriceID: "price_1SwerICu1M0mOVHk4sJk5mNv",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, &models.CheckoutSession{URL: processorURL}, sess)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, testSuccessURL, call.SuccessURL)
	assert.Equal(t, testCancelURL, call.CancelURL)
	assert.EqualValues(t, 1, call.Quantity)
	assert.Empty(t, call.Metadata)
	assert.Empty(t, call.IdempotencyKey)
}

func TestCreateCheckoutSessionPassesThroughCallerInput(t *testing.T) {
	gw := &mockGateway{sess: &payment.Session{ID: "cs_test_abc", URL: processorURL}}
	svc := newCheckoutService(t, gw)

	metadata := map[string]string{
		"product_type": "physical_journal",
		"role":         "Grandma",
		"format":       "hardcover",
		"name":         "Ada Lovelace",
		"address":      "1 Main St",
		"city":         "Austin",
		"state":        "TX",
		"zip":          "78701",
		"phone":        "",
	}

	_, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		PriceID:    "price_hardcover_journal",
		SuccessURL: "https://example.com/done/",
		Metadata:   metadata,
	}, "retry-token-1")
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "https://example.com/done/", call.SuccessURL)
	assert.Equal(t, metadata, call.Metadata)
	assert.Equal(t, "retry-token-1", call.IdempotencyKey)
}

func TestCreateCheckoutSessionNotConfigured(t *testing.T) {
	gw := &mockGateway{err: payment.ErrNotConfigured}
	svc := newCheckoutService(t, gw)

	_, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{PriceID: "price_paperback_journal"}, "")

	ce := requireKind(t, err, KindConfiguration)
	assert.Equal(t, MsgNotConfigured, ce.Message)
	assert.ErrorIs(t, err, payment.ErrNotConfigured)
}

func TestCreateCheckoutSessionValidatesBeforeConfiguration(t *testing.T) {
	gw := &mockGateway{err: payment.ErrNotConfigured}
	svc := newCheckoutService(t, gw)

	_, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{PriceID: "nope"}, "")

	requireKind(t, err, KindValidation)
	assert.Empty(t, gw.calls)
}

func TestCreateCheckoutSessionUpstreamFailure(t *testing.T) {
	gw := &mockGateway{err: errors.New("No such price: 'price_paperback_journal'")}
	svc := newCheckoutService(t, gw)

	_, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{PriceID: "price_paperback_journal"}, "")

	ce := requireKind(t, err, KindUpstream)
	assert.Equal(t, MsgCheckoutFailed, ce.Message)
	assert.NotContains(t, ce.Message, "No such price")
	assert.Len(t, gw.calls, 1)
}

func TestCreateCheckoutSessionMissingURL(t *testing.T) {
	gw := &mockGateway{sess: &payment.Session{ID: "cs_test_abc"}}
	svc := newCheckoutService(t, gw)

	_, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{PriceID: "price_paperback_journal"}, "")

	requireKind(t, err, KindUpstream)
}

func TestCheckoutErrorFormatting(t *testing.T) {
	err := &CheckoutError{Kind: KindUpstream, Message: MsgCheckoutFailed, Err: errors.New("boom")}
	assert.Equal(t, "upstream: Failed to create checkout session: boom", err.Error())
	assert.Equal(t, "transport: Invalid request body", (&CheckoutError{Kind: KindTransport, Message: MsgInvalidBody}).Error())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
