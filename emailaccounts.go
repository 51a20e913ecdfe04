package ay32

import (
	"context"
	"net/http"
	"time"

	"github.com/laixingyu123/ay32-client-go/internal/validate"
)

// EmailAccount is a mailbox credential managed by the backend.
type EmailAccount struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Password     string    `json:"password,omitempty"`
	ClientID     string    `json:"client_id,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Remark       string    `json:"remark,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateEmailAccountParams are the parameters for CreateEmailAccount.
type CreateEmailAccountParams struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Remark   string `json:"remark,omitempty" validate:"omitempty,max=255"`
}

// CreateEmailAccount registers a mailbox with just an address and
// password.
func (c *Client) CreateEmailAccount(ctx context.Context, params CreateEmailAccountParams) (*EmailAccount, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out EmailAccount
	if err := c.api.Do(ctx, http.MethodPost, "/api/emailAccount/create", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// CreateFullEmailAccountParams are the parameters for
// CreateFullEmailAccount, which additionally carries OAuth material.
type CreateFullEmailAccountParams struct {
	Email        string `json:"email" validate:"required,email,max=320"`
	Password     string `json:"password" validate:"required,min=6,max=128"`
	ClientID     string `json:"client_id" validate:"required,max=128"`
	RefreshToken string `json:"refresh_token" validate:"required"`
	Remark       string `json:"remark,omitempty" validate:"omitempty,max=255"`
}

// CreateFullEmailAccount registers a mailbox together with its OAuth
// client ID and refresh token.
func (c *Client) CreateFullEmailAccount(ctx context.Context, params CreateFullEmailAccountParams) (*EmailAccount, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out EmailAccount
	if err := c.api.Do(ctx, http.MethodPost, "/api/emailAccount/createFull", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// UpdateEmailAccountParams are the parameters for UpdateEmailAccount.
// Exactly one of ID, Email or ClientID selects the account to update;
// the remaining set fields are the new values.
type UpdateEmailAccountParams struct {
	ID           *int64 `json:"id,omitempty" validate:"omitempty,gt=0"`
	Email        string `json:"email,omitempty" validate:"omitempty,email,max=320"`
	ClientID     string `json:"client_id,omitempty" validate:"omitempty,max=128"`
	Password     string `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Remark       string `json:"remark,omitempty" validate:"omitempty,max=255"`
}

func (p UpdateEmailAccountParams) lookupKeys() int {
	n := 0
	if p.ID != nil {
		n++
	}
	if p.Email != "" {
		n++
	}
	if p.ClientID != "" {
		n++
	}
	return n
}

// UpdateEmailAccount updates a mailbox selected by exactly one of its
// ID, email address or OAuth client ID.
func (c *Client) UpdateEmailAccount(ctx context.Context, params UpdateEmailAccountParams) error {
	if params.lookupKeys() != 1 {
		return wrapError(validate.Failf("id", "exactly one of id, email or client_id must be set"))
	}
	if err := validate.Struct(params); err != nil {
		return wrapError(err)
	}
	return wrapError(c.api.Do(ctx, http.MethodPost, "/api/emailAccount/update", params, nil))
}
