package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"
	"time"

	"github.com/laixingyu123/ay32-client-go/internal/apierrors"
)

// shouldRetry reports whether a failed attempt may be retried: the retry
// budget must not be exhausted, the caller's context must still be live,
// and the failure must be one where the server never produced a response.
func (c *Client) shouldRetry(ctx context.Context, err error, attempt int) bool {
	if attempt >= c.maxRetries {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	return isNoResponse(err)
}

// isNoResponse classifies transport failures where no HTTP response was
// received: dial and handshake failures, DNS errors, resets, truncated
// streams, and per-attempt timeouts. Received responses never reach this
// path, whatever their status code.
func isNoResponse(err error) bool {
	if err == nil {
		return false
	}

	var ie *apierrors.InterceptorError
	if errors.As(err, &ie) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	// http.Client.Do wraps every transport failure in *url.Error; one
	// reaching this point means the server never produced a response.
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// wait pauses for the configured retry delay, aborting early when the
// context is cancelled.
func (c *Client) wait(ctx context.Context) error {
	if c.retryDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
