package mercadopago

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"pix-notify/config"
	"pix-notify/internal/core/domain"
	"pix-notify/pkg/apperror"

	"github.com/rs/zerolog"
)

// Client talks to the Mercado Pago payments API: single-payment fetch and
// recent-payments search.
type Client struct {
	baseURL     string
	accessToken string
	searchLimit int
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient creates a gateway client. A nil httpClient gets a default one
// with the configured timeout.
func NewClient(cfg config.GatewayConfig, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = 10
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		searchLimit: limit,
		httpClient:  httpClient,
		logger:      logger.With().Str("component", "mercadopago").Logger(),
	}
}

// paymentPayload mirrors the fields of the API payment object this service
// cares about. The id arrives as a JSON number; json.Number keeps it exact.
type paymentPayload struct {
	ID              json.Number `json:"id"`
	Status          string      `json:"status"`
	PaymentMethodID string      `json:"payment_method_id"`
	PaymentTypeID   string      `json:"payment_type_id"`
	PaymentType     string      `json:"payment_type"`
	Amount          float64     `json:"transaction_amount"`
	Payer           struct {
		FirstName string `json:"first_name"`
	} `json:"payer"`
}

func (p paymentPayload) toRecord() domain.PaymentRecord {
	paymentType := p.PaymentTypeID
	if paymentType == "" {
		paymentType = p.PaymentType
	}
	return domain.PaymentRecord{
		ID:            p.ID.String(),
		Status:        p.Status,
		PaymentMethod: p.PaymentMethodID,
		PaymentType:   paymentType,
		Amount:        p.Amount,
		Payer:         p.Payer.FirstName,
	}
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if c.accessToken == "" {
		return nil, apperror.ErrMissingCredential("gateway access token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return body, nil
}

// FetchPayment confirms one payment by id against the gateway.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/v1/payments/%s", c.baseURL, url.PathEscape(paymentID)))
	if err != nil {
		return nil, err
	}

	var payload paymentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding payment %s: %w", paymentID, err)
	}

	rec := payload.toRecord()
	c.logger.Debug().
		Str("payment_id", rec.ID).
		Str("status", rec.Status).
		Str("payment_method", rec.PaymentMethod).
		Msg("payment fetched")
	return &rec, nil
}

// SearchRecent returns the newest page of payments, sorted by creation
// date descending on the gateway side.
func (c *Client) SearchRecent(ctx context.Context) ([]domain.PaymentRecord, error) {
	q := url.Values{}
	q.Set("sort", "date_created")
	q.Set("criteria", "desc")
	q.Set("limit", fmt.Sprintf("%d", c.searchLimit))

	body, err := c.get(ctx, fmt.Sprintf("%s/v1/payments/search?%s", c.baseURL, q.Encode()))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Results []paymentPayload `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	records := make([]domain.PaymentRecord, 0, len(payload.Results))
	for _, p := range payload.Results {
		records = append(records, p.toRecord())
	}
	c.logger.Debug().Int("count", len(records)).Msg("recent payments searched")
	return records, nil
}
