package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thothlabs/codecorpus/internal/core/domain"
	"github.com/thothlabs/codecorpus/internal/core/ports/driven"
)

// DefaultBatchSize is the maximum number of records per sink insert.
const DefaultBatchSize = 100

// Ingestor drives the walker over a whole catalog and writes the results
// to the sink in bounded batches.
type Ingestor struct {
	walker    *Walker
	sink      driven.DocumentSink
	batchSize int
	logger    *zap.Logger
}

// NewIngestor creates an ingestor over the given source and sink.
func NewIngestor(source driven.ContentSource, sink driven.DocumentSink, logger *zap.Logger) *Ingestor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{
		walker:    NewWalker(source, logger),
		sink:      sink,
		batchSize: DefaultBatchSize,
		logger:    logger,
	}
}

// Run ingests the full catalog and returns the number of inserted records.
//
// Every repository is walked concurrently; remote-call concurrency is
// capped by the content source's permit pool, not here. The join is
// all-complete: a failed walk contributes an empty result instead of
// cancelling its siblings. Insertion happens only after every walk has
// finished, sequentially per repository in batches of at most batchSize.
// A batch insert failure aborts the run: partial, unindexed data is
// considered worse than an aborted run.
func (i *Ingestor) Run(ctx context.Context, catalog domain.Catalog) (int, error) {
	runID := uuid.NewString()
	log := i.logger.With(zap.String("run_id", runID))

	repos := catalog.Flatten()
	log.Info("Starting ingestion", zap.Int("repositories", len(repos)))

	results := make([][]domain.IngestionRecord, len(repos))

	var wg sync.WaitGroup
	for idx, repo := range repos {
		wg.Add(1)
		go func(idx int, repo domain.RepositoryDescriptor) {
			defer wg.Done()
			results[idx] = i.walker.Walk(ctx, repo)
		}(idx, repo)
	}
	wg.Wait()

	inserted := 0
	for idx, records := range results {
		for start := 0; start < len(records); start += i.batchSize {
			end := start + i.batchSize
			if end > len(records) {
				end = len(records)
			}

			batch := records[start:end]
			for b := range batch {
				batch[b].RunID = runID
			}

			if err := i.sink.InsertBatch(ctx, batch); err != nil {
				return inserted, fmt.Errorf("insert batch for %s: %w", repos[idx].Name, err)
			}
			inserted += len(batch)

			log.Info("Inserted batch",
				zap.String("repo", repos[idx].Name),
				zap.Int("size", len(batch)))
		}
	}

	log.Info("Ingestion complete", zap.Int("records", inserted))
	return inserted, nil
}
