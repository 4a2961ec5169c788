package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"livestock-breeding/internal/platform/httpclient"
	"livestock-breeding/internal/ports/notify"
)

var (
	ErrNotConfigured = errors.New("dispatcher client not configured")
	ErrUpstream      = errors.New("dispatcher upstream error")
)

// Config del cliente hacia el despachador de notificaciones.
// BaseURL y APIKey vendrán de env vars (NOTIFY_BASE_URL, NOTIFY_API_KEY).
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implementa notify.Notifier contra el despachador externo.
// La entrega concreta (push/email) es responsabilidad del despachador.
type Client struct {
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		http:   hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

func (c *Client) PregnancyConfirmed(ctx context.Context, n notify.PregnancyConfirmation) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	const path = "/v1/notifications/pregnancy-confirmed"

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["X-Api-Key"] = c.apiKey
	}

	in := struct {
		RecordID        string  `json:"record_id"`
		OwnerUserID     string  `json:"owner_user_id"`
		MotherID        string  `json:"mother_id"`
		ExpectedDueDate *string `json:"expected_due_date,omitempty"`
		ConfirmedAt     string  `json:"confirmed_at"`
	}{
		RecordID:    n.RecordID,
		OwnerUserID: n.OwnerUserID,
		MotherID:    n.MotherID,
		ConfirmedAt: n.ConfirmedAt.UTC().Format(time.RFC3339),
	}
	if n.ExpectedDueDate != nil {
		d := n.ExpectedDueDate.Format("2006-01-02")
		in.ExpectedDueDate = &d
	}

	if err := c.http.DoJSON(ctx, http.MethodPost, path, headers, in, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}
