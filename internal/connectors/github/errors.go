package github

import (
	"errors"

	gh "github.com/google/go-github/v80/github"
)

// Connector errors.
var (
	// ErrInvalidOriginURL indicates a catalog origin URL without an
	// owner/repository path.
	ErrInvalidOriginURL = errors.New("github: origin url has no owner/repository path")

	// ErrNotDirectory indicates a contents listing response that was not
	// a directory listing.
	ErrNotDirectory = errors.New("github: contents response is not a directory listing")
)

// isNotFound reports whether the error is an HTTP 404 from the API.
func isNotFound(err error) bool {
	return statusCode(err) == 404
}

// isRateLimited reports whether the error is presumed to be a rate limit.
// go-github surfaces primary and secondary rate limits as dedicated types;
// a plain 403 is treated as a rate limit as well, matching the API's
// behaviour of answering exhausted quotas with 403.
func isRateLimited(err error) bool {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	return statusCode(err) == 403
}

// statusCode extracts the HTTP status code from a go-github error,
// or 0 when the error carries none (transport failures).
func statusCode(err error) int {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	return 0
}
