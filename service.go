package llmsdoc

import (
	"context"
	"time"
)

// SearchResult is a section ranked against a query.
type SearchResult struct {
	Section      *Section `json:"section"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matchedTerms,omitempty"`
}

// DateRange bounds a date query. A zero Start or End leaves that side open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// Health is a point-in-time snapshot of the content cache.
type Health struct {
	Status     string       `json:"status"`
	CacheValid bool         `json:"cacheValid"`
	ExpiresAt  *time.Time   `json:"cacheExpiresAt"`
	Indexed    bool         `json:"searchIndexed"`
	Sections   int          `json:"sections"`
	Generation string       `json:"generation,omitempty"`
	Hash       string       `json:"contentHash,omitempty"`
	SourceURL  string       `json:"sourceUrl"`
	Config     HealthConfig `json:"config"`
}

// HealthConfig reports the active configuration.
type HealthConfig struct {
	CacheTTL    time.Duration `json:"cacheTtl"`
	HTTPTimeout time.Duration `json:"httpTimeout"`
	MaxAttempts int           `json:"httpMaxRetries"`
	RetryDelay  time.Duration `json:"httpRetryDelay"`
}

// ContentService exposes the cached, searchable document to front-ends.
type ContentService interface {
	// RawDocument fetches the source document directly, bypassing the cache.
	RawDocument(ctx context.Context) (string, error)

	// Content returns the cached parsed document, refreshing it when the
	// cache is empty, expired, or force is set. When a refresh fails and a
	// previous entry exists, the stale entry is returned without error.
	// Returns EUNAVAILABLE when the first-ever fetch fails.
	Content(ctx context.Context, force bool) (*ParsedContent, error)

	// Refresh forces a refresh cycle. Equivalent to Content(ctx, true).
	Refresh(ctx context.Context) (*ParsedContent, error)

	// SearchAll ranks every section against the query.
	SearchAll(ctx context.Context, query string, topK int) ([]SearchResult, error)

	// SearchCategory ranks sections of a single category against the query.
	SearchCategory(ctx context.Context, cat Category, query string, topK int) ([]SearchResult, error)

	// CategorySections returns sections whose subcategory equals name or
	// whose category contains it.
	CategorySections(ctx context.Context, name string) ([]*Section, error)

	// SectionsByDate returns dated sections within the range, newest first.
	// An empty category means all categories.
	SectionsByDate(ctx context.Context, r DateRange, cat Category) ([]*Section, error)

	// RecentSections returns sections published in the last days.
	RecentSections(ctx context.Context, days int, cat Category) ([]*Section, error)

	// SectionByTitle returns the first section whose title contains title,
	// case-insensitively. Returns ENOTFOUND if none matches.
	SectionByTitle(ctx context.Context, title string) (*Section, error)

	// FullSectionContent returns the complete markdown of a section,
	// falling back to the cached summary when it cannot be fetched.
	// Returns ENOTFOUND if no section matches title.
	FullSectionContent(ctx context.Context, title string) (string, error)

	// Summary returns a text overview of one category.
	Summary(ctx context.Context, cat Category) (string, error)

	// Health returns a snapshot of the cache state.
	Health(ctx context.Context) Health
}
