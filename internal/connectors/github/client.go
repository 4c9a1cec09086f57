package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultConcurrency is the process-wide ceiling on in-flight
	// remote calls (listings and file fetches combined).
	DefaultConcurrency = 3

	// RateLimitCooldown is the fixed wait after a presumed rate limit
	// before the identical request is retried.
	RateLimitCooldown = 60 * time.Second
)

// Client issues contents API calls through a single shared HTTP client.
// All calls are guarded by the same permit pool, so the concurrency
// ceiling holds across every walk in the process.
type Client struct {
	gh      *gh.Client
	permits *Permits
	logger  *zap.Logger

	// sleep performs the rate-limit cooldown. Replaced in tests.
	sleep func(time.Duration)
}

// NewClient creates a client authenticated with a personal access token.
func NewClient(token string, logger *zap.Logger) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = DefaultTimeout

	return newClient(gh.NewClient(tc), logger)
}

// NewClientWithHTTPClient creates a client over a caller-supplied
// http.Client. Used by tests to point the API at a stub server.
func NewClientWithHTTPClient(httpClient *http.Client, logger *zap.Logger) *Client {
	return newClient(gh.NewClient(httpClient), logger)
}

func newClient(api *gh.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		gh:      api,
		permits: NewPermits(DefaultConcurrency),
		logger:  logger,
		sleep:   time.Sleep,
	}
}
