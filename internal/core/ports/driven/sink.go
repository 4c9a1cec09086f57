package driven

import (
	"context"

	"github.com/thothlabs/codecorpus/internal/core/domain"
)

// DocumentSink is the downstream corpus store receiving batched writes.
//
// The sink write contract is append-only: inserts are not upserts and no
// dedup key exists, so re-running an identical ingestion produces duplicate
// records. Batch inserts are not atomic as a group; a batch may partially
// land if the process dies mid-call. Both are known, documented properties
// of the pipeline rather than bugs to paper over.
type DocumentSink interface {
	// EnsureIndexes declares the query indexes the search engine relies on.
	// Called once at startup, before any insert.
	EnsureIndexes(ctx context.Context) error

	// InsertBatch appends a batch of records to the corpus.
	// An insert failure is fatal for the whole run: partial, unindexed
	// data is considered worse than an aborted run.
	InsertBatch(ctx context.Context, records []domain.IngestionRecord) error

	// Close releases the sink connection.
	Close(ctx context.Context) error
}
