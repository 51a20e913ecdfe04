package ay32

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEmail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/email/add", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, "gmail", body["email_source"])
		assert.Equal(t, float64(EmailTypeSend), body["email_type"])
		assert.Equal(t, "bob@example.com", body["to"])

		writeData(t, w, map[string]any{"id": 31, "to": "bob@example.com", "subject": "hello"})
	}))

	rec, err := c.AddEmail(context.Background(), AddEmailParams{
		EmailSource: EmailSourceGmail,
		EmailType:   EmailTypeSend,
		To:          "bob@example.com",
		Subject:     "hello",
		Body:        "hi bob",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), rec.ID)
	assert.Equal(t, "hello", rec.Subject)
}

func TestAddEmail_Validation(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	tests := []struct {
		name    string
		params  AddEmailParams
		field   string
		message string
	}{
		{
			name:    "unknown source",
			params:  AddEmailParams{EmailSource: "proton", EmailType: 1, To: "a@b.c", Subject: "s"},
			field:   "email_source",
			message: "email_source must be one of [huel gmail outlook yandex custom]",
		},
		{
			name:    "unknown type",
			params:  AddEmailParams{EmailSource: "huel", EmailType: 3, To: "a@b.c", Subject: "s"},
			field:   "email_type",
			message: "email_type must be one of [1 2]",
		},
		{
			name:    "missing recipient",
			params:  AddEmailParams{EmailSource: "huel", EmailType: 1, Subject: "s"},
			field:   "to",
			message: "to is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.AddEmail(context.Background(), tt.params)
			requireValidationError(t, err, tt.field, tt.message)
		})
	}

	assert.Zero(t, hits.Load(), "validation failures must not reach the server")
}

func TestQueryEmails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/email/query", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, "huel", body["email_source"])
		assert.Equal(t, float64(EmailTypeReceive), body["email_type"])
		assert.Equal(t, "验证码", body["subject"])
		assert.Equal(t, float64(1), body["page"])
		assert.Equal(t, float64(10), body["pageSize"])

		writeData(t, w, map[string]any{
			"list": []map[string]any{
				{"id": 1, "subject": "您的验证码是 481516", "to": "user@huel.dev"},
				{"id": 2, "subject": "验证码: 234243", "to": "user@huel.dev"},
			},
			"total":      2,
			"page":       1,
			"pageSize":   10,
			"totalPages": 1,
		})
	}))

	page, err := c.QueryEmails(context.Background(), QueryEmailsParams{
		EmailSource: EmailSourceHuel,
		EmailType:   EmailTypeReceive,
		Subject:     "验证码",
		Page:        1,
		PageSize:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.List, 2)
	assert.Contains(t, page.List[0].Subject, "验证码")
}

func TestQueryEmails_RepeatedCallsAreIdentical(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, map[string]any{
			"list":       []map[string]any{{"id": 9, "subject": "ping"}},
			"total":      1,
			"page":       1,
			"pageSize":   10,
			"totalPages": 1,
		})
	}))

	params := QueryEmailsParams{
		EmailSource: EmailSourceOutlook,
		EmailType:   EmailTypeReceive,
		Page:        1,
		PageSize:    10,
	}

	first, err := c.QueryEmails(context.Background(), params)
	require.NoError(t, err)
	second, err := c.QueryEmails(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQueryEmails_Validation(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := c.QueryEmails(context.Background(), QueryEmailsParams{
		EmailSource: EmailSourceHuel,
		EmailType:   3,
		Page:        1,
		PageSize:    10,
	})
	requireValidationError(t, err, "email_type", "email_type must be one of [1 2]")

	_, err = c.QueryEmails(context.Background(), QueryEmailsParams{
		EmailSource: EmailSourceHuel,
		EmailType:   EmailTypeReceive,
		Page:        0,
		PageSize:    10,
	})
	requireValidationError(t, err, "page", "page must be at least 1")

	assert.Zero(t, hits.Load(), "validation failures must not reach the server")
}

func TestLatestEmail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/email/latest", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, "user@huel.dev", body["to"])
		assert.NotContains(t, body, "subject")

		writeData(t, w, map[string]any{"id": 55, "subject": "newest"})
	}))

	rec, err := c.LatestEmail(context.Background(), LatestEmailParams{
		EmailSource: EmailSourceHuel,
		EmailType:   EmailTypeReceive,
		To:          "user@huel.dev",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(55), rec.ID)
}

func TestLatestEmail_NoMatch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrCode(w, 3004, "no email matched")
	}))

	_, err := c.LatestEmail(context.Background(), LatestEmailParams{
		EmailSource: EmailSourceYandex,
		EmailType:   EmailTypeReceive,
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 3004, apiErr.Code)
	assert.Equal(t, "no email matched", apiErr.Message)
}
