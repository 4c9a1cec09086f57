package github

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/thothlabs/codecorpus/internal/core/domain"
	"github.com/thothlabs/codecorpus/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ContentSource = (*Client)(nil)

// ListEntries returns the top-level contents listing of a repository.
// The listing call holds one permit for its duration.
func (c *Client) ListEntries(ctx context.Context, repo domain.RepositoryDescriptor) ([]domain.FileEntry, error) {
	owner, name, err := SplitOriginURL(repo.URL)
	if err != nil {
		return nil, err
	}

	if err := c.permits.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.permits.Release()

	_, listing, _, err := c.gh.Repositories.GetContents(ctx, owner, name, "", nil)
	if err != nil {
		return nil, fmt.Errorf("list contents of %s/%s: %w", owner, name, err)
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotDirectory, owner, name)
	}

	entries := make([]domain.FileEntry, 0, len(listing))
	for _, item := range listing {
		entries = append(entries, domain.FileEntry{
			Name: item.GetName(),
			Path: item.GetPath(),
			Type: item.GetType(),
		})
	}
	return entries, nil
}

// FetchFile retrieves and decodes one file's contents.
//
// 404 means the file is treated as absent (empty content, no error).
// 403 is presumed to be a rate limit: the call cools down for a fixed
// period and retries the identical request, indefinitely. Any other
// failure is terminal for this file and yields empty content.
func (c *Client) FetchFile(ctx context.Context, repo domain.RepositoryDescriptor, path string) (string, error) {
	owner, name, err := SplitOriginURL(repo.URL)
	if err != nil {
		c.logger.Warn("Skipping file with unresolvable origin",
			zap.String("repo", repo.Name),
			zap.String("path", path),
			zap.Error(err))
		return "", nil
	}

	log := c.logger.With(
		zap.String("repo", repo.Name),
		zap.String("path", path),
	)

	if err := c.permits.Acquire(ctx); err != nil {
		return "", err
	}
	// The permit is held across the cooldown: a call that is cooling
	// down still counts against the concurrency ceiling.
	defer c.permits.Release()

	for {
		file, _, _, err := c.gh.Repositories.GetContents(ctx, owner, name, path, nil)
		switch {
		case err == nil:
			if file == nil {
				// Directory payload, nothing to record.
				return "", nil
			}
			content, decodeErr := file.GetContent()
			if decodeErr != nil {
				log.Warn("Failed to decode file content", zap.Error(decodeErr))
				return "", nil
			}
			return content, nil

		case isNotFound(err):
			log.Info("File not found")
			return "", nil

		case isRateLimited(err):
			log.Warn("Rate limit hit, cooling down",
				zap.Duration("cooldown", RateLimitCooldown))
			c.sleep(RateLimitCooldown)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			default:
			}

		default:
			log.Warn("Fetch failed",
				zap.Int("status", statusCode(err)),
				zap.Error(err))
			return "", nil
		}
	}
}
