// Package httputil provides the HTTP plumbing used to hand snapshots to a
// host application.
//
// # Retry
//
// [Policy.Do] repeats an operation with exponential backoff.
// Only errors wrapped in [RetryableError] are retried:
//
//	err := httputil.DefaultPolicy.Do(ctx, func() error {
//	    return httputil.Post(ctx, client, url, "application/json", body)
//	})
//
// # Posting
//
// [Post] performs one request and classifies the outcome: network errors,
// 429 and 5xx responses are retryable, other non-2xx responses are not.
// Every request is reported to the registered observability HTTP hooks.
package httputil
