// Package gateway talks to the Mercado Pago REST API: preference creation at
// checkout time and payment lookup during webhook reconciliation.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tripcart/internal/pkg/config"
	"tripcart/internal/pkg/errs"
)

// PreferenceItem is one purchasable line inside a preference request.
type PreferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PictureURL  string  `json:"picture_url,omitempty"`
	Quantity    int32   `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

type Payer struct {
	Email string `json:"email"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest is the checkout session the gateway hosts for us. The
// external reference is echoed back in webhook deliveries and is how payment
// notifications find their cart lines again.
type PreferenceRequest struct {
	Items             []PreferenceItem  `json:"items"`
	Payer             Payer             `json:"payer"`
	BackURLs          BackURLs          `json:"back_urls"`
	AutoReturn        string            `json:"auto_return"`
	NotificationURL   string            `json:"notification_url"`
	ExternalReference string            `json:"external_reference"`
	BinaryMode        bool              `json:"binary_mode"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

type Preference struct {
	ID                string `json:"id"`
	InitPoint         string `json:"init_point"`
	SandboxInitPoint  string `json:"sandbox_init_point,omitempty"`
	ExternalReference string `json:"external_reference"`
}

type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	ExternalReference string `json:"external_reference"`
}

// Error carries the gateway's HTTP status and raw diagnostic body so callers
// can surface what the gateway actually said.
type Error struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("payment gateway returned status %d: %s", e.StatusCode, string(e.Body))
}

// Client is injected everywhere it is needed; there is no package-level
// instance.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	currencyID string
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.AccessToken,
		currencyID: cfg.CurrencyID,
	}
}

func (c *Client) CurrencyID() string {
	return c.currencyID
}

// CreatePreference registers a checkout session with the gateway. Both 200 and
// 201 count as success; anything else becomes a *gateway.Error.
func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal preference request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build preference request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "preference request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read preference response")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &Error{StatusCode: resp.StatusCode, Body: respBody}
	}

	var pref Preference
	if err := json.Unmarshal(respBody, &pref); err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Body: respBody}
	}
	if pref.ID == "" || pref.InitPoint == "" {
		return nil, &Error{StatusCode: resp.StatusCode, Body: respBody}
	}

	return &pref, nil
}

// GetPayment fetches full payment details for a webhook notification's
// resource id.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment lookup request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "payment lookup failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read payment response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{StatusCode: resp.StatusCode, Body: respBody}
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Body: respBody}
	}

	return &payment, nil
}
