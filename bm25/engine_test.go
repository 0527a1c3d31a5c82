package bm25_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jeongil-dev/llmsdoc/bm25"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lowercases words", "Database Migration", []string{"database", "migration"}},
		{"splits on punctuation", "db-migration: v2.0!", []string{"db", "migration", "v2", "0"}},
		{"keeps underscores", "snake_case value", []string{"snake_case", "value"}},
		{"keeps hangul syllables", "데이터베이스 마이그레이션", []string{"데이터베이스", "마이그레이션"}},
		{"mixed scripts", "Kafka 장애 대응", []string{"kafka", "장애", "대응"}},
		{"empty", "  ...  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := bm25.Tokenize(tt.input)

			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Search(t *testing.T) {
	t.Parallel()

	docs := []string{
		"DB Migration We migrated the database to PostgreSQL.",
		"Cache Warmup Warming caches before deploys.",
		"Database tuning Index the database, vacuum the database.",
		"Kubernetes Upgrade Upgraded clusters.",
	}

	t.Run("ranks documents containing the term", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index(docs)

		hits := e.Search("database", 10)

		require.Len(t, hits, 2)
		assert.Equal(t, 2, hits[0].Doc, "higher term frequency ranks first")
		assert.Equal(t, 0, hits[1].Doc)
		assert.Greater(t, hits[0].Score, hits[1].Score)
		assert.Equal(t, []string{"database"}, hits[0].Terms)
	})

	t.Run("excludes documents without matches", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index(docs)

		assert.Empty(t, e.Search("terraform", 10))
	})

	t.Run("returns nil for query without tokens", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index(docs)

		assert.Nil(t, e.Search("!!!", 10))
	})

	t.Run("limits results to topK", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index([]string{"go go", "go", "go lang", "go code"})

		assert.Len(t, e.Search("go", 2), 2)
	})

	t.Run("defaults topK to ten", func(t *testing.T) {
		t.Parallel()

		corpus := make([]string, 15)
		for i := range corpus {
			corpus[i] = "golang"
		}
		e := bm25.New()
		e.Index(corpus)

		assert.Len(t, e.Search("golang", 0), bm25.DefaultTopK)
	})

	t.Run("keeps index order on ties", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index([]string{"alpha beta", "gamma", "alpha beta", "alpha beta"})

		hits := e.Search("alpha", 10)

		require.Len(t, hits, 3)
		assert.Equal(t, []int{0, 2, 3}, []int{hits[0].Doc, hits[1].Doc, hits[2].Doc})
	})

	t.Run("scores duplicate query terms once", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index(docs)

		single := e.Search("database", 10)
		double := e.Search("database database", 10)

		require.Len(t, double, len(single))
		assert.InDelta(t, single[0].Score, double[0].Score, 1e-9)
		assert.Equal(t, []string{"database"}, double[0].Terms)
	})

	t.Run("lists matched terms in query order", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index(docs)

		hits := e.Search("PostgreSQL migrated unknown", 10)

		require.Len(t, hits, 1)
		assert.Equal(t, []string{"postgresql", "migrated"}, hits[0].Terms)
	})

	t.Run("adding a matching term raises the score", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index(docs)

		one := e.Search("database", 10)
		two := e.Search("database postgresql", 10)

		require.NotEmpty(t, one)
		require.NotEmpty(t, two)
		assert.Equal(t, 0, two[0].Doc)
		assert.Greater(t, two[0].Score, one[1].Score)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index(docs)

		assert.Equal(t, e.Search("database cache", 10), e.Search("database cache", 10))
	})

	t.Run("matches korean terms", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index([]string{"장애 대응 회고", "성능 최적화", "장애 원인 분석"})

		hits := e.Search("장애", 10)

		require.Len(t, hits, 2)
		assert.Equal(t, 0, hits[0].Doc)
		assert.Equal(t, 2, hits[1].Doc)
	})

	t.Run("handles empty documents", func(t *testing.T) {
		t.Parallel()

		e := bm25.New()
		e.Index([]string{"", ""})

		assert.True(t, e.Indexed())
		assert.Empty(t, e.Search("anything", 10))
	})

	t.Run("uses custom parameters", func(t *testing.T) {
		t.Parallel()

		e := bm25.New(bm25.WithParams(1.2, 0))
		e.Index([]string{"go", "go go go go"})

		hits := e.Search("go", 10)

		require.Len(t, hits, 2)
		assert.Equal(t, 1, hits[0].Doc)
	})
}

func TestEngine_SearchBeforeIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := bm25.New(bm25.WithLogger(logger))

	assert.False(t, e.Indexed())
	assert.Nil(t, e.Search("database", 10))
	assert.Contains(t, buf.String(), "search before index")
	assert.Contains(t, buf.String(), "level=WARN")
}
