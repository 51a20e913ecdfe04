package ay32

import (
	"context"
	"net/http"
	"time"

	"github.com/laixingyu123/ay32-client-go/internal/validate"
)

// Account status values.
const (
	AccountStatusDisabled = 0
	AccountStatusEnabled  = 1
)

// Account is a managed platform account from the pool.
type Account struct {
	ID          int64     `json:"id"`
	Account     string    `json:"account"`
	Nickname    string    `json:"nickname,omitempty"`
	Group       string    `json:"group,omitempty"`
	Status      int       `json:"status"`
	Balance     float64   `json:"balance"`
	Remark      string    `json:"remark,omitempty"`
	LastLoginAt time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AccountPage is one page of accounts.
type AccountPage struct {
	List       []Account `json:"list"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

// LoginSession records one login against an account.
type LoginSession struct {
	SessionID string    `json:"sessionId"`
	Account   string    `json:"account"`
	LoginAt   time.Time `json:"loginAt"`
}

// Balance is an account's balance after a mutation.
type Balance struct {
	Account string  `json:"account"`
	Balance float64 `json:"balance"`
}

// CreateAccountParams are the parameters for CreateAccount.
type CreateAccountParams struct {
	Account  string `json:"account" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Nickname string `json:"nickname,omitempty" validate:"omitempty,max=64"`
	Group    string `json:"group,omitempty" validate:"omitempty,max=64"`
	Remark   string `json:"remark,omitempty" validate:"omitempty,max=255"`
}

// CreateAccount registers a new platform account in the pool.
func (c *Client) CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out Account
	if err := c.api.Do(ctx, http.MethodPost, "/api/account/create", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// UpdateAccountParams are the parameters for UpdateAccount. Account is
// the lookup key; only the fields that are set are sent.
type UpdateAccountParams struct {
	Account  string `json:"account" validate:"required,max=64"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
	Nickname string `json:"nickname,omitempty" validate:"omitempty,max=64"`
	Group    string `json:"group,omitempty" validate:"omitempty,max=64"`
	Status   *int   `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
	Remark   string `json:"remark,omitempty" validate:"omitempty,max=255"`
}

// UpdateAccount updates an existing account.
func (c *Client) UpdateAccount(ctx context.Context, params UpdateAccountParams) error {
	if err := validate.Struct(params); err != nil {
		return wrapError(err)
	}
	return wrapError(c.api.Do(ctx, http.MethodPost, "/api/account/update", params, nil))
}

// ListAccountsParams are the parameters for ListAccounts.
type ListAccountsParams struct {
	Page     int    `json:"page" validate:"min=1"`
	PageSize int    `json:"pageSize" validate:"min=1,max=100"`
	Group    string `json:"group,omitempty" validate:"omitempty,max=64"`
	Status   *int   `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}

// ListAccounts returns one page of accounts, optionally filtered by
// group and status.
func (c *Client) ListAccounts(ctx context.Context, params ListAccountsParams) (*AccountPage, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out AccountPage
	if err := c.api.Do(ctx, http.MethodPost, "/api/account/list", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// DeleteAccount removes an account from the pool.
func (c *Client) DeleteAccount(ctx context.Context, account string) error {
	if account == "" {
		return wrapError(validate.Failf("account", "account is required"))
	}

	body := struct {
		Account string `json:"account"`
	}{Account: account}
	return wrapError(c.api.Do(ctx, http.MethodPost, "/api/account/delete", body, nil))
}

// RecordLoginParams are the parameters for RecordLogin.
type RecordLoginParams struct {
	Account  string `json:"account" validate:"required,max=64"`
	DeviceID string `json:"device_id,omitempty" validate:"omitempty,max=128"`
	IP       string `json:"ip,omitempty" validate:"omitempty,ip"`
}

// RecordLogin records a login against an account and returns the
// resulting session.
func (c *Client) RecordLogin(ctx context.Context, params RecordLoginParams) (*LoginSession, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out LoginSession
	if err := c.api.Do(ctx, http.MethodPost, "/api/account/login", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// AddBalanceParams are the parameters for AddBalance.
type AddBalanceParams struct {
	Account string  `json:"account" validate:"required,max=64"`
	Amount  float64 `json:"amount" validate:"gt=0"`
}

// AddBalance credits an account and returns the new balance.
func (c *Client) AddBalance(ctx context.Context, params AddBalanceParams) (*Balance, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out Balance
	if err := c.api.Do(ctx, http.MethodPost, "/api/account/balance/add", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}
