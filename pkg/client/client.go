// Package client is a typed HTTP client for the TrailBook API, shared by
// front ends and integration tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trailbook/internal/booking"
	"trailbook/internal/experience"
	"trailbook/internal/pricing"
	"trailbook/internal/promo"
)

// APIError carries the envelope error of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient is used by tests to inject a custom transport.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}

	return nil
}

func (c *Client) ListExperiences(ctx context.Context) ([]experience.Experience, error) {
	var experiences []experience.Experience
	if err := c.do(ctx, http.MethodGet, "/api/experiences", nil, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

func (c *Client) GetExperience(ctx context.Context, id int) (*experience.Detail, error) {
	var detail experience.Detail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/experiences/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) ValidatePromo(ctx context.Context, code string) (*promo.Resolved, error) {
	var resolved promo.Resolved
	req := promo.ValidateRequest{Code: code}
	if err := c.do(ctx, http.MethodPost, "/api/promo/validate", req, &resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}

func (c *Client) CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (*booking.Booking, error) {
	var b booking.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) GetBooking(ctx context.Context, referenceID string) (*booking.Booking, error) {
	var b booking.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+referenceID, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// LocalQuote computes display pricing for the checkout screen. The server
// recomputes this on booking; the two always agree because they share the
// same calculation.
func LocalQuote(basePrice int64, quantity int, resolved *promo.Resolved) pricing.Quote {
	var discount *pricing.Discount
	if resolved != nil {
		discount = &pricing.Discount{Type: resolved.Type, Value: resolved.Discount}
	}
	return pricing.Calculate(basePrice, quantity, discount)
}

// Search filters experiences by a case-insensitive substring match over
// title, description and location.
func Search(experiences []experience.Experience, query string) []experience.Experience {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return experiences
	}

	matched := []experience.Experience{}
	for _, exp := range experiences {
		if strings.Contains(strings.ToLower(exp.Title), query) ||
			strings.Contains(strings.ToLower(exp.Description), query) ||
			strings.Contains(strings.ToLower(exp.Location), query) {
			matched = append(matched, exp)
		}
	}
	return matched
}
