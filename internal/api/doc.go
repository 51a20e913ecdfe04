// Package api provides the HTTP transport for the AY32 client. It
// handles request serialization, response envelope normalization, and
// retry logic for transport-level failures.
//
// # Response Envelope
//
// Every backend endpoint answers with a uniform JSON envelope:
//
//	{"errCode": 0, "errMsg": "", "data": {...}}
//
// An errCode of zero is a success and data is decoded into the caller's
// output value. Any other errCode is a domain failure and is returned as
// an *apierrors.APIError carrying the code and message. Responses whose
// body is not a decodable envelope are normalized the same way, using
// the raw body or the HTTP status text as the message.
//
// # Retry Behavior
//
// The client retries an attempt only when the server never produced a
// response: connection failures, DNS errors, resets, truncated streams,
// and per-attempt timeouts. A received response is always terminal, even
// with an HTTP 5xx status, because the backend encodes failures in the
// envelope rather than the status line. Retries use a constant delay;
// both the delay and the attempt budget are fixed at client creation
// ([Config.MaxRetries], [Config.RetryDelay]).
//
// The request body is marshalled once per call and replayed verbatim on
// every attempt, so retried requests are byte-identical.
//
// Retrying applies to every method, including non-idempotent writes. A
// request the server completed whose response was then lost looks the
// same as one that never arrived, so a retry can repeat the operation on
// the backend. Callers for whom duplicates are worse than a failed call
// should disable retries via [Config.MaxRetries].
//
// # Thread Safety
//
// The [Client] type is immutable after creation and safe for concurrent
// use. Multiple goroutines may call methods on a single Client
// simultaneously.
package api
