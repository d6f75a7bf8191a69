package models

type CheckoutRequest struct {
	PriceID    string            `json:"priceId" validate:"required,price_id"`
	SuccessURL string            `json:"successUrl,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type CheckoutSession struct {
	URL string `json:"url"`
}
