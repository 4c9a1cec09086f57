// Package memory provides an in-memory DocumentSink for tests.
package memory

import (
	"context"
	"sync"

	"github.com/thothlabs/codecorpus/internal/core/domain"
	"github.com/thothlabs/codecorpus/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.DocumentSink = (*Sink)(nil)

// Sink is an in-memory implementation of driven.DocumentSink.
// It records every batch as submitted, which lets tests assert batch
// boundaries as well as totals.
type Sink struct {
	mu      sync.RWMutex
	batches [][]domain.IngestionRecord
	indexed bool

	// InsertErr, when set, is returned by every InsertBatch call.
	InsertErr error
}

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	return &Sink{}
}

// EnsureIndexes marks the sink as indexed.
func (s *Sink) EnsureIndexes(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexed = true
	return nil
}

// InsertBatch appends a batch.
func (s *Sink) InsertBatch(_ context.Context, records []domain.IngestionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.InsertErr != nil {
		return s.InsertErr
	}
	batch := make([]domain.IngestionRecord, len(records))
	copy(batch, records)
	s.batches = append(s.batches, batch)
	return nil
}

// Close is a no-op.
func (s *Sink) Close(_ context.Context) error {
	return nil
}

// Indexed reports whether EnsureIndexes has been called.
func (s *Sink) Indexed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexed
}

// Batches returns the batches in submission order.
func (s *Sink) Batches() [][]domain.IngestionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]domain.IngestionRecord, len(s.batches))
	copy(out, s.batches)
	return out
}

// Records returns all inserted records in submission order.
func (s *Sink) Records() []domain.IngestionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []domain.IngestionRecord
	for _, batch := range s.batches {
		records = append(records, batch...)
	}
	return records
}
