package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat := Default()

	t.Run("covers the expected languages", func(t *testing.T) {
		require.Len(t, cat, 2)
		assert.Contains(t, cat, "python")
		assert.Contains(t, cat, "typescript")
	})

	t.Run("descriptors are complete and consistent", func(t *testing.T) {
		for language, repos := range cat {
			require.NotEmpty(t, repos, "language %s has no repositories", language)
			for _, repo := range repos {
				assert.Equal(t, language, repo.Language, "%s: language mismatch", repo.Name)
				assert.True(t, strings.HasPrefix(repo.URL, "https://github.com/"), "%s: unexpected origin %s", repo.Name, repo.URL)
				assert.NotEmpty(t, repo.Name)
				assert.NotEmpty(t, repo.Description)
				assert.Positive(t, repo.Stars, "%s: stars missing", repo.Name)
				assert.NotEmpty(t, repo.Topics, "%s: topics missing", repo.Name)
				assert.NotEmpty(t, repo.Frameworks, "%s: frameworks missing", repo.Name)
			}
		}
	})

	t.Run("flattens to the full catalog", func(t *testing.T) {
		assert.Len(t, cat.Flatten(), 16)
	})
}
