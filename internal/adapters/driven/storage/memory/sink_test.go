package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thothlabs/codecorpus/internal/core/domain"
)

func TestSink(t *testing.T) {
	ctx := context.Background()

	t.Run("records batch boundaries", func(t *testing.T) {
		sink := NewSink()

		require.NoError(t, sink.InsertBatch(ctx, []domain.IngestionRecord{{FileName: "a.go"}, {FileName: "b.go"}}))
		require.NoError(t, sink.InsertBatch(ctx, []domain.IngestionRecord{{FileName: "c.go"}}))

		batches := sink.Batches()
		require.Len(t, batches, 2)
		assert.Len(t, batches[0], 2)
		assert.Len(t, batches[1], 1)
		assert.Len(t, sink.Records(), 3)
	})

	t.Run("copies batches on insert", func(t *testing.T) {
		sink := NewSink()
		batch := []domain.IngestionRecord{{FileName: "a.go"}}
		require.NoError(t, sink.InsertBatch(ctx, batch))

		batch[0].FileName = "mutated.go"

		assert.Equal(t, "a.go", sink.Records()[0].FileName)
	})

	t.Run("InsertErr fails every insert", func(t *testing.T) {
		sink := NewSink()
		sink.InsertErr = errors.New("down")

		err := sink.InsertBatch(ctx, []domain.IngestionRecord{{FileName: "a.go"}})

		require.Error(t, err)
		assert.Empty(t, sink.Batches())
	})

	t.Run("tracks index creation", func(t *testing.T) {
		sink := NewSink()
		assert.False(t, sink.Indexed())
		require.NoError(t, sink.EnsureIndexes(ctx))
		assert.True(t, sink.Indexed())
	})

	t.Run("Close is a no-op", func(t *testing.T) {
		assert.NoError(t, NewSink().Close(ctx))
	})
}
