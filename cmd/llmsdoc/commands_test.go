package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jeongil-dev/llmsdoc"
	main "github.com/jeongil-dev/llmsdoc/cmd/llmsdoc"
	"github.com/jeongil-dev/llmsdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(content llmsdoc.ContentService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Content: content,
	}, stdout, stderr
}

func sampleSection() *llmsdoc.Section {
	return &llmsdoc.Section{
		Title:       "Migrating to Kubernetes",
		Content:     "Lessons from moving services to k8s.",
		Category:    llmsdoc.CategoryBlog,
		Subcategory: "infrastructure",
		URL:         "https://jeongil.dev/ko/blog/k8s",
		PublishedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("searches all categories by default", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		var gotK int
		content := &mock.ContentService{
			SearchAllFn: func(_ context.Context, query string, topK int) ([]llmsdoc.SearchResult, error) {
				gotQuery, gotK = query, topK
				return []llmsdoc.SearchResult{
					{Section: sampleSection(), Score: 3.5, MatchedTerms: []string{"kubernetes"}},
				}, nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.SearchCmd{Query: "kubernetes", TopK: 3}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "kubernetes", gotQuery)
		assert.Equal(t, 3, gotK)
		out := stdout.String()
		assert.Contains(t, out, "1. Migrating to Kubernetes [3.50]")
		assert.Contains(t, out, "tech_blog > infrastructure  2025-03-01  https://jeongil.dev/ko/blog/k8s")
		assert.Contains(t, out, "matched: kubernetes")
	})

	t.Run("restricts to a category", func(t *testing.T) {
		t.Parallel()

		var gotCat llmsdoc.Category
		content := &mock.ContentService{
			SearchCategoryFn: func(_ context.Context, cat llmsdoc.Category, _ string, _ int) ([]llmsdoc.SearchResult, error) {
				gotCat = cat
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.SearchCmd{Query: "git", TopK: 10, Category: "docs"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, llmsdoc.CategoryDocumentation, gotCat)
		assert.Equal(t, "No results found for query: 'git'\n", stdout.String())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.ContentService{})

		err := (&main.SearchCmd{Query: "git", Category: "poetry"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, llmsdoc.EINVALID, llmsdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), `unknown category: "poetry"`)
	})

	t.Run("reports unavailable content", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			SearchAllFn: func(_ context.Context, _ string, _ int) ([]llmsdoc.SearchResult, error) {
				return nil, llmsdoc.Errorf(llmsdoc.EUNAVAILABLE, "no cached content available")
			},
		}
		deps, _, stderr := newDeps(content)

		err := (&main.SearchCmd{Query: "git", TopK: 10}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: no cached content available\n", stderr.String())
	})
}

func TestSectionsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists matching posts", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			CategorySectionsFn: func(_ context.Context, name string) ([]*llmsdoc.Section, error) {
				assert.Equal(t, "infrastructure", name)
				return []*llmsdoc.Section{sampleSection()}, nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.SectionsCmd{Name: "infrastructure"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Posts in infrastructure (1 total):")
		assert.Contains(t, stdout.String(), "  1. Migrating to Kubernetes")
	})

	t.Run("shows message when nothing matches", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			CategorySectionsFn: func(_ context.Context, _ string) ([]*llmsdoc.Section, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.SectionsCmd{Name: "gardening"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No posts found in category: 'gardening'\n", stdout.String())
	})
}

func TestRecentCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes days and category", func(t *testing.T) {
		t.Parallel()

		var gotDays int
		var gotCat llmsdoc.Category
		content := &mock.ContentService{
			RecentSectionsFn: func(_ context.Context, days int, cat llmsdoc.Category) ([]*llmsdoc.Section, error) {
				gotDays, gotCat = days, cat
				return []*llmsdoc.Section{sampleSection()}, nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.RecentCmd{Days: 7, Category: "tech_blog"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 7, gotDays)
		assert.Equal(t, llmsdoc.CategoryBlog, gotCat)
		assert.Contains(t, stdout.String(), "Posts from the last 7 days (1 total):")
	})

	t.Run("shows message when nothing is recent", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			RecentSectionsFn: func(_ context.Context, _ int, _ llmsdoc.Category) ([]*llmsdoc.Section, error) {
				return nil, nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.RecentCmd{Days: 30}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No posts found in the last 30 days\n", stdout.String())
	})

	t.Run("propagates invalid days", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			RecentSectionsFn: func(_ context.Context, _ int, _ llmsdoc.Category) ([]*llmsdoc.Section, error) {
				return nil, llmsdoc.Errorf(llmsdoc.EINVALID, "days must be positive")
			},
		}
		deps, _, stderr := newDeps(content)

		err := (&main.RecentCmd{Days: -1}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: days must be positive\n", stderr.String())
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints summary with metadata", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			SectionByTitleFn: func(_ context.Context, _ string) (*llmsdoc.Section, error) {
				return sampleSection(), nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.ShowCmd{Title: "kubernetes"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"# Migrating to Kubernetes\n\n"+
				"Published: 2025-03-01 | Category: infrastructure | URL: https://jeongil.dev/ko/blog/k8s\n\n"+
				"Lessons from moving services to k8s.\n",
			stdout.String())
	})

	t.Run("prints full content with --full", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			FullSectionContentFn: func(_ context.Context, title string) (string, error) {
				return "# Full body of " + title, nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.ShowCmd{Title: "kubernetes", Full: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "# Full body of kubernetes\n", stdout.String())
	})

	t.Run("reports missing post", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			SectionByTitleFn: func(_ context.Context, title string) (*llmsdoc.Section, error) {
				return nil, llmsdoc.Errorf(llmsdoc.ENOTFOUND, "post not found: %q", title)
			},
		}
		deps, _, stderr := newDeps(content)

		err := (&main.ShowCmd{Title: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, llmsdoc.ENOTFOUND, llmsdoc.ErrorCode(err))
		assert.Equal(t, "error: post not found: \"nope\"\n", stderr.String())
	})
}

func TestHealthCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints health as JSON after loading content", func(t *testing.T) {
		t.Parallel()

		loaded := false
		content := &mock.ContentService{
			ContentFn: func(_ context.Context, force bool) (*llmsdoc.ParsedContent, error) {
				assert.False(t, force)
				loaded = true
				return &llmsdoc.ParsedContent{}, nil
			},
			HealthFn: func(_ context.Context) llmsdoc.Health {
				return llmsdoc.Health{Status: "healthy", CacheValid: true, Sections: 4, SourceURL: "https://jeongil.dev/ko/llms.txt"}
			},
		}
		deps, stdout, stderr := newDeps(content)

		err := (&main.HealthCmd{}).Run(deps)

		require.NoError(t, err)
		assert.True(t, loaded)
		assert.Empty(t, stderr.String())

		var h llmsdoc.Health
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &h))
		assert.Equal(t, "healthy", h.Status)
		assert.Equal(t, 4, h.Sections)
	})

	t.Run("still reports health when loading fails", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			ContentFn: func(_ context.Context, _ bool) (*llmsdoc.ParsedContent, error) {
				return nil, llmsdoc.Errorf(llmsdoc.EUNAVAILABLE, "no cached content available")
			},
			HealthFn: func(_ context.Context) llmsdoc.Health {
				return llmsdoc.Health{Status: "empty"}
			},
		}
		deps, stdout, stderr := newDeps(content)

		err := (&main.HealthCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: no cached content available")
		assert.Contains(t, stdout.String(), `"status": "empty"`)
	})
}

func TestRawCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the fetched document", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			RawDocumentFn: func(_ context.Context) (string, error) {
				return "# jeongil.dev\n\n## Documentation\n", nil
			},
		}
		deps, stdout, _ := newDeps(content)

		err := (&main.RawCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "# jeongil.dev\n\n## Documentation\n", stdout.String())
	})

	t.Run("reports fetch failure", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			RawDocumentFn: func(_ context.Context) (string, error) {
				return "", llmsdoc.Errorf(llmsdoc.EUNAVAILABLE, "fetch failed")
			},
		}
		deps, stdout, stderr := newDeps(content)

		err := (&main.RawCmd{}).Run(deps)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "error: fetch failed\n", stderr.String())
	})
}
