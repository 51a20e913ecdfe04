package ay32

import (
	"context"
	"net/http"
	"time"

	"github.com/laixingyu123/ay32-client-go/internal/validate"
)

// API key status values.
const (
	APIKeyStatusDisabled = 0
	APIKeyStatusEnabled  = 1
)

// APIKey is an access credential for the HTTP API. Key is only
// populated on creation; list responses omit it.
type APIKey struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Key       string     `json:"key,omitempty"`
	Status    int        `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CreateAPIKeyParams are the parameters for CreateAPIKey.
type CreateAPIKeyParams struct {
	Name          string `json:"name" validate:"required,max=64"`
	ExpiresInDays int    `json:"expires_in_days,omitempty" validate:"omitempty,min=1,max=365"`
}

// CreateAPIKey mints a new API key. The returned Key value is shown
// exactly once; store it.
func (c *Client) CreateAPIKey(ctx context.Context, params CreateAPIKeyParams) (*APIKey, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out APIKey
	if err := c.api.Do(ctx, http.MethodPost, "/api/apiKey/create", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// ListAPIKeys returns every API key, without key material.
func (c *Client) ListAPIKeys(ctx context.Context) ([]APIKey, error) {
	var out []APIKey
	if err := c.api.Do(ctx, http.MethodPost, "/api/apiKey/list", nil, &out); err != nil {
		return nil, wrapError(err)
	}
	return out, nil
}

// UpdateAPIKeyParams are the parameters for UpdateAPIKey.
type UpdateAPIKeyParams struct {
	ID     int64  `json:"id" validate:"gt=0"`
	Name   string `json:"name,omitempty" validate:"omitempty,max=64"`
	Status *int   `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}

// UpdateAPIKey renames, enables or disables an API key.
func (c *Client) UpdateAPIKey(ctx context.Context, params UpdateAPIKeyParams) error {
	if err := validate.Struct(params); err != nil {
		return wrapError(err)
	}
	return wrapError(c.api.Do(ctx, http.MethodPost, "/api/apiKey/update", params, nil))
}

// DeleteAPIKey revokes an API key by ID.
func (c *Client) DeleteAPIKey(ctx context.Context, id int64) error {
	if id <= 0 {
		return wrapError(validate.Failf("id", "id must be greater than 0"))
	}

	body := struct {
		ID int64 `json:"id"`
	}{ID: id}
	return wrapError(c.api.Do(ctx, http.MethodPost, "/api/apiKey/delete", body, nil))
}
