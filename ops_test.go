package ay32

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestClient wires a Client to an httptest server that lives for the
// duration of the test.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

// writeData responds with a success envelope carrying data.
func writeData(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"errCode":0,"errMsg":"","data":%s}`, raw)
}

// writeErrCode responds with a failure envelope.
func writeErrCode(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"errCode":%d,"errMsg":%q,"data":null}`, code, msg)
}

// readBody decodes the request body into a generic map so tests can
// assert on the exact wire shape.
func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

// requireValidationError asserts err is a ValidationError for field
// with the exact message.
func requireValidationError(t *testing.T, err error, field, message string) {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, field, verr.Field)
	require.Equal(t, message, verr.Message)
}
