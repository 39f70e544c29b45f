package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tour-booking-platform/internal/models"
)

// StripeConfig represents Stripe payment service configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// StripeService creates hosted checkout sessions via the Stripe API and
// verifies webhook events against the endpoint secret.
type StripeService struct {
	config  StripeConfig
	client  *http.Client
	baseURL string
}

// NewStripeService creates a new Stripe payment service
func NewStripeService(config StripeConfig) *StripeService {
	return &StripeService{
		config:  config,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.stripe.com",
	}
}

// CheckoutLineItem is one priced line of a checkout session. UnitAmount is in
// cents and always derives from the catalog price, never from a cart snapshot.
type CheckoutLineItem struct {
	Name       string
	UnitAmount int
	Quantity   int
	Images     []string
}

// CheckoutSession represents a Stripe Checkout Session
type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
}

// WebhookEvent represents a Stripe webhook event envelope
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// EventSession is the checkout session object carried by a completed event
type EventSession struct {
	ID            string            `json:"id"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// stripeError represents an error response from the Stripe API
type stripeError struct {
	ErrorInfo struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *stripeError) Error() string {
	return fmt.Sprintf("Stripe error: %s", e.ErrorInfo.Message)
}

// CreateCheckoutSession creates a hosted checkout session for a booking. The
// booking id travels in the session metadata so the webhook can find it.
func (s *StripeService) CreateCheckoutSession(bookingID string, lines []CheckoutLineItem) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", s.config.SuccessURL+"?session_id={CHECKOUT_SESSION_ID}&booking_id="+bookingID)
	form.Set("cancel_url", s.config.CancelURL)
	form.Set("metadata[bookingId]", bookingID)

	for i, line := range lines {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", "usd")
		form.Set(prefix+"[price_data][product_data][name]", line.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.Itoa(line.UnitAmount))
		form.Set(prefix+"[quantity]", strconv.Itoa(line.Quantity))
		for j, image := range line.Images {
			form.Set(fmt.Sprintf("%s[price_data][product_data][images][%d]", prefix, j), image)
		}
	}

	httpReq, err := http.NewRequest("POST", s.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send checkout request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkout response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, s.handleAPIError(resp.StatusCode, bodyBytes)
	}

	var session CheckoutSession
	if err := json.Unmarshal(bodyBytes, &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout response: %w", err)
	}
	return &session, nil
}

// handleAPIError maps Stripe API errors
func (s *StripeService) handleAPIError(statusCode int, body []byte) error {
	var apiErr stripeError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.ErrorInfo.Message == "" {
		return fmt.Errorf("API error (status %d): %s", statusCode, string(body))
	}

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("bad request: %s", apiErr.ErrorInfo.Message)
	case http.StatusUnauthorized:
		return fmt.Errorf("unauthorized: check API keys - %s", apiErr.ErrorInfo.Message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited: %s", apiErr.ErrorInfo.Message)
	default:
		return &apiErr
	}
}

// VerifyWebhookSignature verifies a Stripe-Signature header against the raw
// request body. The header carries a timestamp and one or more v1 signatures,
// each an HMAC-SHA256 of "<timestamp>.<payload>" keyed by the endpoint secret.
func (s *StripeService) VerifyWebhookSignature(payload []byte, sigHeader string) bool {
	var timestamp string
	var signatures []string
	for _, part := range strings.Split(sigHeader, ",") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}
		switch pair[0] {
		case "t":
			timestamp = pair[1]
		case "v1":
			signatures = append(signatures, pair[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.config.WebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return true
		}
	}
	return false
}

// ConstructEvent verifies the signature and decodes the webhook payload.
// Nothing in the payload is trusted before the signature check passes.
func (s *StripeService) ConstructEvent(payload []byte, sigHeader string) (*WebhookEvent, error) {
	if !s.VerifyWebhookSignature(payload, sigHeader) {
		return nil, models.ErrInvalidSignature
	}

	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook event: %w", err)
	}
	return &event, nil
}

// Session decodes the event's checkout session object
func (e *WebhookEvent) Session() (*EventSession, error) {
	var session EventSession
	if err := json.Unmarshal(e.Data.Object, &session); err != nil {
		return nil, fmt.Errorf("failed to decode event session: %w", err)
	}
	return &session, nil
}
