package github

import (
	"fmt"
	"net/url"
	"strings"
)

// SplitOriginURL extracts the owner and repository name from an origin URL.
// https://github.com/django/django -> ("django", "django")
func SplitOriginURL(originURL string) (owner, repo string, err error) {
	u, err := url.Parse(originURL)
	if err != nil {
		return "", "", fmt.Errorf("parse origin url %q: %w", originURL, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidOriginURL, originURL)
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
