package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/thothlabs/codecorpus/internal/core/domain"
	"github.com/thothlabs/codecorpus/internal/core/ports/driven"
)

// ingestExtensions is the fixed set of file extensions worth ingesting.
var ingestExtensions = []string{".js", ".ts", ".py", ".java", ".rs", ".go", ".cpp"}

// Walker lists one repository's top-level entries and fetches every
// matching file, producing ingestion records.
type Walker struct {
	source driven.ContentSource
	logger *zap.Logger
}

// NewWalker creates a walker over the given content source.
func NewWalker(source driven.ContentSource, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		source: source,
		logger: logger,
	}
}

// Walk produces the ingestion records for one repository.
//
// A listing failure yields an empty slice: one repository's failure must
// never abort the others, so errors stop at this boundary and are logged.
// Files are fetched in listing order; fetches that come back empty
// (absent files, unreadable content) are skipped without a record.
func (w *Walker) Walk(ctx context.Context, repo domain.RepositoryDescriptor) []domain.IngestionRecord {
	entries, err := w.source.ListEntries(ctx, repo)
	if err != nil {
		w.logger.Warn("Failed to list repository contents",
			zap.String("repo", repo.Name),
			zap.Error(err))
		return nil
	}

	var records []domain.IngestionRecord
	for _, entry := range entries {
		if !entry.IsFile() || !hasIngestExtension(entry.Name) {
			continue
		}

		content, err := w.source.FetchFile(ctx, repo, entry.Path)
		if err != nil {
			w.logger.Warn("Fetch aborted",
				zap.String("repo", repo.Name),
				zap.String("path", entry.Path),
				zap.Error(err))
			return records
		}
		if content == "" {
			continue
		}

		records = append(records, domain.NewIngestionRecord(repo, entry, content))
	}

	w.logger.Debug("Walk complete",
		zap.String("repo", repo.Name),
		zap.Int("records", len(records)))
	return records
}

// hasIngestExtension reports whether the file name ends in one of the
// fixed ingestion extensions.
func hasIngestExtension(name string) bool {
	for _, ext := range ingestExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
