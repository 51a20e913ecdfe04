package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laixingyu123/ay32-client-go/internal/apierrors"
)

type queryParams struct {
	EmailSource string `json:"email_source" validate:"required,oneof=huel gmail outlook yandex custom"`
	EmailType   int    `json:"email_type" validate:"required,oneof=1 2"`
	Subject     string `json:"subject,omitempty" validate:"omitempty,max=998"`
	Page        int    `json:"page" validate:"min=1"`
	PageSize    int    `json:"pageSize" validate:"min=1,max=100"`
	Status      *int   `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}

func validQuery() queryParams {
	return queryParams{
		EmailSource: "huel",
		EmailType:   2,
		Subject:     "验证码",
		Page:        1,
		PageSize:    10,
	}
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(validQuery()))
}

func TestStruct_Messages(t *testing.T) {
	five := 5

	tests := []struct {
		name      string
		mutate    func(*queryParams)
		wantField string
		wantMsg   string
	}{
		{
			name:      "oneof int",
			mutate:    func(p *queryParams) { p.EmailType = 3 },
			wantField: "email_type",
			wantMsg:   "email_type must be one of [1 2]",
		},
		{
			name:      "required string",
			mutate:    func(p *queryParams) { p.EmailSource = "" },
			wantField: "email_source",
			wantMsg:   "email_source is required",
		},
		{
			name:      "oneof string",
			mutate:    func(p *queryParams) { p.EmailSource = "proton" },
			wantField: "email_source",
			wantMsg:   "email_source must be one of [huel gmail outlook yandex custom]",
		},
		{
			name:      "min int",
			mutate:    func(p *queryParams) { p.Page = 0 },
			wantField: "page",
			wantMsg:   "page must be at least 1",
		},
		{
			name:      "max int",
			mutate:    func(p *queryParams) { p.PageSize = 500 },
			wantField: "pageSize",
			wantMsg:   "pageSize must be at most 100",
		},
		{
			name:      "max string",
			mutate:    func(p *queryParams) { p.Subject = strings.Repeat("x", 999) },
			wantField: "subject",
			wantMsg:   "subject must be at most 998 characters",
		},
		{
			name:      "oneof pointer",
			mutate:    func(p *queryParams) { p.Status = &five },
			wantField: "status",
			wantMsg:   "status must be one of [0 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validQuery()
			tt.mutate(&params)

			err := Struct(params)
			require.Error(t, err)

			var verr *apierrors.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestStruct_EmailTag(t *testing.T) {
	params := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: "not-an-email"}

	err := Struct(params)
	require.Error(t, err)

	var verr *apierrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email must be a valid email address", verr.Message)
}

func TestStruct_ByteSliceMax(t *testing.T) {
	params := struct {
		Content []byte `json:"content" validate:"required,max=8"`
	}{Content: []byte("123456789")}

	err := Struct(params)
	require.Error(t, err)

	var verr *apierrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "content must be at most 8 bytes", verr.Message)
}

func TestStruct_FirstFailureWins(t *testing.T) {
	params := queryParams{} // everything missing

	err := Struct(params)
	require.Error(t, err)

	var verr *apierrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email_source", verr.Field, "fields are reported in declaration order")
}

func TestFailf(t *testing.T) {
	err := Failf("id", "exactly one of %s must be set", "id, email or client_id")

	var verr *apierrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "id", verr.Field)
	assert.Equal(t, "exactly one of id, email or client_id must be set", verr.Message)
}
