package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thothlabs/codecorpus/internal/core/domain"
)

func TestToDocument(t *testing.T) {
	now := time.Now()
	record := domain.IngestionRecord{
		RepoName:   "fastapi",
		RepoURL:    "https://github.com/tiangolo/fastapi",
		FileName:   "main.py",
		FilePath:   "main.py",
		Language:   "python",
		Content:    "import fastapi\n",
		Topics:     []string{"web", "api"},
		Frameworks: []string{"FastAPI"},
		Stars:      65000,
		Size:       15,
		Extension:  "py",
		RunID:      "run-123",
		CreatedAt:  now,
	}

	doc := toDocument(record)

	assert.Equal(t, "fastapi", doc.RepoName)
	assert.Equal(t, "https://github.com/tiangolo/fastapi", doc.RepoURL)
	assert.Equal(t, "main.py", doc.FileName)
	assert.Equal(t, "main.py", doc.FilePath)
	assert.Equal(t, "python", doc.Language)
	assert.Equal(t, "import fastapi\n", doc.Content)
	assert.Equal(t, []string{"web", "api"}, doc.Topics)
	assert.Equal(t, []string{"FastAPI"}, doc.Frameworks)
	assert.Equal(t, 65000, doc.Stars)
	assert.Equal(t, now, doc.CreatedAt)

	assert.Equal(t, 15, doc.Metadata.Size)
	assert.Equal(t, "code", doc.Metadata.Type)
	assert.Equal(t, "py", doc.Metadata.Extension)
	assert.Equal(t, "run-123", doc.Metadata.RunID)
}
