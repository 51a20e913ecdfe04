package ay32

import (
	"context"
	"net/http"
	"time"

	"github.com/laixingyu123/ay32-client-go/internal/validate"
)

// Email sources accepted by the backend.
const (
	EmailSourceHuel    = "huel"
	EmailSourceGmail   = "gmail"
	EmailSourceOutlook = "outlook"
	EmailSourceYandex  = "yandex"
	EmailSourceCustom  = "custom"
)

// Email direction values.
const (
	EmailTypeSend    = 1
	EmailTypeReceive = 2
)

// EmailRecord is one stored email.
type EmailRecord struct {
	ID          int64     `json:"id"`
	EmailSource string    `json:"email_source"`
	EmailType   int       `json:"email_type"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body,omitempty"`
	ReceivedAt  time.Time `json:"receivedAt"`
}

// EmailPage is one page of email records.
type EmailPage struct {
	List       []EmailRecord `json:"list"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// AddEmailParams are the parameters for AddEmail.
type AddEmailParams struct {
	EmailSource string `json:"email_source" validate:"required,oneof=huel gmail outlook yandex custom"`
	EmailType   int    `json:"email_type" validate:"required,oneof=1 2"`
	From        string `json:"from,omitempty" validate:"omitempty,max=320"`
	To          string `json:"to" validate:"required,max=320"`
	Subject     string `json:"subject" validate:"required,max=998"`
	Body        string `json:"body,omitempty"`
}

// AddEmail stores an email record and returns it with its assigned ID.
func (c *Client) AddEmail(ctx context.Context, params AddEmailParams) (*EmailRecord, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out EmailRecord
	if err := c.api.Do(ctx, http.MethodPost, "/api/email/add", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// QueryEmailsParams are the parameters for QueryEmails. Subject matches
// as a substring when set.
type QueryEmailsParams struct {
	EmailSource string `json:"email_source" validate:"required,oneof=huel gmail outlook yandex custom"`
	EmailType   int    `json:"email_type" validate:"required,oneof=1 2"`
	To          string `json:"to,omitempty" validate:"omitempty,max=320"`
	Subject     string `json:"subject,omitempty" validate:"omitempty,max=998"`
	Page        int    `json:"page" validate:"min=1"`
	PageSize    int    `json:"pageSize" validate:"min=1,max=100"`
}

// QueryEmails returns one page of emails matching the filters.
func (c *Client) QueryEmails(ctx context.Context, params QueryEmailsParams) (*EmailPage, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out EmailPage
	if err := c.api.Do(ctx, http.MethodPost, "/api/email/query", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// LatestEmailParams are the parameters for LatestEmail.
type LatestEmailParams struct {
	EmailSource string `json:"email_source" validate:"required,oneof=huel gmail outlook yandex custom"`
	EmailType   int    `json:"email_type" validate:"required,oneof=1 2"`
	To          string `json:"to,omitempty" validate:"omitempty,max=320"`
	Subject     string `json:"subject,omitempty" validate:"omitempty,max=998"`
}

// LatestEmail returns the most recent email matching the filters, or an
// API error when none exists.
func (c *Client) LatestEmail(ctx context.Context, params LatestEmailParams) (*EmailRecord, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out EmailRecord
	if err := c.api.Do(ctx, http.MethodPost, "/api/email/latest", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}
