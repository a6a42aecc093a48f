// Package httputil holds the HTTP client plumbing shared by outbound
// integrations such as the style generator.
//
// [Retry] re-runs an operation with exponential backoff, but only when the
// failure is wrapped in [RetryableError]. Callers decide what is transient;
// [RetryableStatus] encodes the usual answer for HTTP responses (429 and
// 5xx).
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if httputil.RetryableStatus(resp.StatusCode) {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
//	    }
//	    return decode(resp.Body)
//	})
package httputil
