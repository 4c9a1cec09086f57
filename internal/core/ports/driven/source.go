package driven

import (
	"context"

	"github.com/thothlabs/codecorpus/internal/core/domain"
)

// ContentSource reads file listings and file contents from a remote
// repository host. Implementations own rate limiting and the global
// concurrency ceiling; callers may invoke methods from any number of
// goroutines.
type ContentSource interface {
	// ListEntries returns the top-level contents listing of a repository.
	// A listing failure is returned as an error; the caller decides how
	// far it propagates.
	ListEntries(ctx context.Context, repo domain.RepositoryDescriptor) ([]domain.FileEntry, error)

	// FetchFile retrieves and decodes one file's contents.
	//
	// Recoverable conditions (file absent, transport or decode failure)
	// yield an empty string and a nil error:
	// the caller proceeds as if the file does not exist. A non-nil error
	// is returned only when the context is cancelled.
	FetchFile(ctx context.Context, repo domain.RepositoryDescriptor, path string) (string, error)
}
