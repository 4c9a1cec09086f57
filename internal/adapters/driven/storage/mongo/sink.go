// Package mongo implements the DocumentSink port over a MongoDB
// collection, the durable store behind the code-search index.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/thothlabs/codecorpus/internal/core/domain"
	"github.com/thothlabs/codecorpus/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.DocumentSink = (*Sink)(nil)

// document is the stored shape of one corpus record.
type document struct {
	RepoName   string    `bson:"repo_name"`
	RepoURL    string    `bson:"repo_url"`
	FileName   string    `bson:"file_name"`
	FilePath   string    `bson:"file_path"`
	Language   string    `bson:"language"`
	Content    string    `bson:"content"`
	Topics     []string  `bson:"topics"`
	Frameworks []string  `bson:"frameworks"`
	Stars      int       `bson:"stars"`
	CreatedAt  time.Time `bson:"created_at"`
	Metadata   metadata  `bson:"metadata"`
}

// metadata carries the file-level attributes nested under "metadata",
// matching the document shape the search engine queries.
type metadata struct {
	Size      int    `bson:"size"`
	Type      string `bson:"type"`
	Extension string `bson:"extension"`
	RunID     string `bson:"run_id,omitempty"`
}

// Sink writes ingestion records to a MongoDB collection.
// The connection is opened once and shared by all batch inserts.
type Sink struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *zap.Logger
}

// Connect dials the store and returns a sink bound to one collection.
func Connect(ctx context.Context, uri, database, collection string, logger *zap.Logger) (*Sink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	logger.Info("Connected to document store", zap.String("database", database))

	return &Sink{
		client:     client,
		collection: client.Database(database).Collection(collection),
		logger:     logger,
	}, nil
}

// EnsureIndexes declares the query indexes the search engine relies on:
// single-field indexes on content, language, repo_name and file_name, a
// compound index over (language, repo_name, file_name) and single-field
// indexes over the topics and frameworks arrays.
func (s *Sink) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "content", Value: 1}}},
		{Keys: bson.D{{Key: "language", Value: 1}}},
		{Keys: bson.D{{Key: "repo_name", Value: 1}}},
		{Keys: bson.D{{Key: "file_name", Value: 1}}},
		{Keys: bson.D{
			{Key: "language", Value: 1},
			{Key: "repo_name", Value: 1},
			{Key: "file_name", Value: 1},
		}},
		{Keys: bson.D{{Key: "topics", Value: 1}}},
		{Keys: bson.D{{Key: "frameworks", Value: 1}}},
	}

	if _, err := s.collection.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}

	s.logger.Info("Created indexes", zap.Int("count", len(models)))
	return nil
}

// InsertBatch appends a batch of records via a single InsertMany call.
// Inserts are append-only; there is no dedup key, so identical re-runs
// duplicate records by design.
func (s *Sink) InsertBatch(ctx context.Context, records []domain.IngestionRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i, record := range records {
		docs[i] = toDocument(record)
	}

	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert many: %w", err)
	}
	return nil
}

// Close releases the sink connection.
func (s *Sink) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toDocument maps a record to its stored shape.
func toDocument(record domain.IngestionRecord) document {
	return document{
		RepoName:   record.RepoName,
		RepoURL:    record.RepoURL,
		FileName:   record.FileName,
		FilePath:   record.FilePath,
		Language:   record.Language,
		Content:    record.Content,
		Topics:     record.Topics,
		Frameworks: record.Frameworks,
		Stars:      record.Stars,
		CreatedAt:  record.CreatedAt,
		Metadata: metadata{
			Size:      record.Size,
			Type:      "code",
			Extension: record.Extension,
			RunID:     record.RunID,
		},
	}
}
