package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// envelope is the uniform response shape produced by the backend. An
// errCode of zero means success and data carries the payload; any other
// errCode is a domain failure described by errMsg.
type envelope struct {
	ErrCode int             `json:"errCode"`
	ErrMsg  string          `json:"errMsg"`
	Data    json.RawMessage `json:"data"`
}

// RequestInterceptor runs before a request is dispatched. It may mutate
// the request in place. Returning an error aborts the call without
// retrying.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor runs after a response is received, before the body
// is decoded. Returning an error aborts the call without retrying.
type ResponseInterceptor func(ctx context.Context, req *http.Request, resp *http.Response) error
