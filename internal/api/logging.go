package api

import (
	"net/http"
	"time"
)

func (c *Client) logRequest(req *http.Request, requestID string, attempt, bodySize int) {
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", requestID).
		Int("attempt", attempt+1).
		Int("body_size", bodySize).
		Msg("api request")
}

func (c *Client) logResponse(req *http.Request, resp *http.Response, requestID string, attempt int, elapsed time.Duration) {
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", requestID).
		Int("attempt", attempt+1).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("api response")
}

func (c *Client) logFailure(method, path, requestID string, attempt int, err error) {
	c.logger.Warn().
		Err(err).
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("attempt", attempt+1).
		Msg("api request failed")
}

func (c *Client) logRetry(method, path, requestID string, attempt int) {
	c.logger.Info().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("attempt", attempt+1).
		Dur("delay", c.retryDelay).
		Msg("retrying api request")
}
