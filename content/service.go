// Package content implements llmsdoc.ContentService: a single-slot TTL cache
// over one remote llms.txt document, with a search index rebuilt on every
// refresh and stale fallback when a refresh fails.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jeongil-dev/llmsdoc"
	"github.com/jeongil-dev/llmsdoc/bm25"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a fetched document is served before refresh.
const DefaultCacheTTL = 60 * time.Minute

// Health statuses.
const (
	StatusHealthy = "healthy"
	StatusStale   = "stale"
	StatusEmpty   = "empty"
)

// Ensure Service implements llmsdoc.ContentService at compile time.
var _ llmsdoc.ContentService = (*Service)(nil)

// snapshot is one immutable cache entry. The index was built from
// content.All() and sections holds that same view.
type snapshot struct {
	content    *llmsdoc.ParsedContent
	sections   []*llmsdoc.Section
	index      *bm25.Engine
	expiresAt  time.Time
	generation string
}

// Service caches and queries the parsed document.
type Service struct {
	fetcher   llmsdoc.Fetcher
	parser    llmsdoc.Parser
	converter llmsdoc.Converter
	sourceURL string

	ttl          time.Duration
	now          func() time.Time
	logger       *slog.Logger
	healthConfig llmsdoc.HealthConfig
	searchOpts   []bm25.Option

	current atomic.Pointer[snapshot]
	group   singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithCacheTTL sets how long a snapshot stays fresh.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Service) {
		s.ttl = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the logger for refresh events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithConverter sets the converter applied to full-content bodies served
// as HTML.
func WithConverter(c llmsdoc.Converter) Option {
	return func(s *Service) {
		s.converter = c
	}
}

// WithHealthConfig sets the transport settings reported by Health.
func WithHealthConfig(c llmsdoc.HealthConfig) Option {
	return func(s *Service) {
		s.healthConfig = c
	}
}

// WithSearchOptions sets options for every search index the service builds.
func WithSearchOptions(opts ...bm25.Option) Option {
	return func(s *Service) {
		s.searchOpts = opts
	}
}

// NewService creates a Service serving the document at sourceURL.
func NewService(fetcher llmsdoc.Fetcher, parser llmsdoc.Parser, sourceURL string, opts ...Option) *Service {
	s := &Service{
		fetcher:   fetcher,
		parser:    parser,
		sourceURL: sourceURL,
		ttl:       DefaultCacheTTL,
		now:       time.Now,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthConfig.CacheTTL = s.ttl
	return s
}

// RawDocument fetches the source document, bypassing the cache.
func (s *Service) RawDocument(ctx context.Context) (string, error) {
	raw, err := s.fetcher.Fetch(ctx, s.sourceURL)
	if err != nil {
		return "", llmsdoc.WrapError(llmsdoc.EUNAVAILABLE, err, "failed to fetch %s", s.sourceURL)
	}
	return raw, nil
}

// Content returns the cached document, refreshing it when needed.
func (s *Service) Content(ctx context.Context, force bool) (*llmsdoc.ParsedContent, error) {
	snap, err := s.snapshot(ctx, force)
	if err != nil {
		return nil, err
	}
	return snap.content, nil
}

// Refresh forces a refresh cycle.
func (s *Service) Refresh(ctx context.Context) (*llmsdoc.ParsedContent, error) {
	return s.Content(ctx, true)
}

// snapshot returns a fresh snapshot, the stale one when a refresh fails,
// or an EUNAVAILABLE error when nothing was ever cached.
func (s *Service) snapshot(ctx context.Context, force bool) (*snapshot, error) {
	if snap := s.current.Load(); !force && snap != nil && s.now().Before(snap.expiresAt) {
		return snap, nil
	}

	v, err, _ := s.group.Do("refresh", func() (any, error) {
		// Another caller may have refreshed since the check above.
		if snap := s.current.Load(); !force && snap != nil && s.now().Before(snap.expiresAt) {
			return snap, nil
		}
		return s.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*snapshot), nil
}

func (s *Service) refresh(ctx context.Context) (*snapshot, error) {
	raw, err := s.fetcher.Fetch(ctx, s.sourceURL)
	if err != nil {
		s.logger.Error("failed to fetch content", "url", s.sourceURL, "err", err)
		if prev := s.current.Load(); prev != nil {
			s.logger.Warn("returning stale cached content",
				"generation", prev.generation,
				"expired_at", prev.expiresAt,
			)
			return prev, nil
		}
		return nil, llmsdoc.WrapError(llmsdoc.EUNAVAILABLE, err, "no cached content available")
	}

	parsed := s.parser.Parse(raw)
	sections := parsed.All()

	texts := make([]string, len(sections))
	for i, sec := range sections {
		texts[i] = sec.FullText()
	}
	index := bm25.New(s.searchOpts...)
	index.Index(texts)

	snap := &snapshot{
		content:    parsed,
		sections:   sections,
		index:      index,
		expiresAt:  s.now().Add(s.ttl),
		generation: uuid.NewString(),
	}
	prev := s.current.Swap(snap)

	changed := prev == nil || prev.content.Hash != parsed.Hash
	s.logger.Info("content refreshed",
		"sections", len(sections),
		"generation", snap.generation,
		"hash", parsed.Hash,
		"changed", changed,
	)

	return snap, nil
}

// SearchAll ranks every section against query.
func (s *Service) SearchAll(ctx context.Context, query string, topK int) ([]llmsdoc.SearchResult, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return snap.search(query, topK, ""), nil
}

// SearchCategory ranks the whole corpus, keeps sections of cat and returns
// at most topK of them.
func (s *Service) SearchCategory(ctx context.Context, cat llmsdoc.Category, query string, topK int) ([]llmsdoc.SearchResult, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return snap.search(query, topK, cat), nil
}

func (snap *snapshot) search(query string, topK int, cat llmsdoc.Category) []llmsdoc.SearchResult {
	if topK <= 0 {
		topK = bm25.DefaultTopK
	}

	limit := topK
	if cat != "" {
		limit = max(len(snap.sections), 1)
	}

	var results []llmsdoc.SearchResult
	for _, hit := range snap.index.Search(query, limit) {
		sec := snap.sections[hit.Doc]
		if cat != "" && sec.Category != cat {
			continue
		}
		results = append(results, llmsdoc.SearchResult{
			Section:      sec,
			Score:        hit.Score,
			MatchedTerms: hit.Terms,
		})
		if len(results) == topK {
			break
		}
	}
	return results
}

// CategorySections returns sections whose subcategory equals name or whose
// category contains it. Matching is case-insensitive.
func (s *Service) CategorySections(ctx context.Context, name string) ([]*llmsdoc.Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, llmsdoc.Errorf(llmsdoc.EINVALID, "category is required")
	}

	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	var out []*llmsdoc.Section
	for _, sec := range snap.sections {
		if sec.Subcategory == name || strings.Contains(strings.ToLower(string(sec.Category)), name) {
			out = append(out, sec)
		}
	}
	return out, nil
}

// SectionsByDate returns sections of cat (all when empty) within r, newest
// first. When r has a bound, undated sections are excluded; otherwise they
// sort last.
func (s *Service) SectionsByDate(ctx context.Context, r llmsdoc.DateRange, cat llmsdoc.Category) ([]*llmsdoc.Section, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	var out []*llmsdoc.Section
	for _, sec := range snap.sections {
		if cat != "" && sec.Category != cat {
			continue
		}
		if !r.IsZero() && (!sec.HasDate() || !r.Contains(sec.PublishedAt)) {
			continue
		}
		out = append(out, sec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out, nil
}

// RecentSections returns sections published within the last days calendar
// days, today included. Publication dates carry no zone, so the window is
// built from the local calendar date of now.
func (s *Service) RecentSections(ctx context.Context, days int, cat llmsdoc.Category) ([]*llmsdoc.Section, error) {
	if days <= 0 {
		return nil, llmsdoc.Errorf(llmsdoc.EINVALID, "days must be positive, got %d", days)
	}
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return s.SectionsByDate(ctx, llmsdoc.DateRange{
		Start: today.AddDate(0, 0, 1-days),
		End:   today,
	}, cat)
}

// SectionByTitle returns the first section, in group order, whose title
// contains title case-insensitively.
func (s *Service) SectionByTitle(ctx context.Context, title string) (*llmsdoc.Section, error) {
	needle := strings.ToLower(strings.TrimSpace(title))
	if needle == "" {
		return nil, llmsdoc.Errorf(llmsdoc.EINVALID, "title is required")
	}

	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	for _, sec := range snap.sections {
		if strings.Contains(strings.ToLower(sec.Title), needle) {
			return sec, nil
		}
	}
	return nil, llmsdoc.Errorf(llmsdoc.ENOTFOUND, "post not found: %q", title)
}

// FullSectionContent fetches the complete body of a section. Fetch
// failures fall back to the cached body with a note.
func (s *Service) FullSectionContent(ctx context.Context, title string) (string, error) {
	sec, err := s.SectionByTitle(ctx, title)
	if err != nil {
		return "", err
	}

	if sec.FullContentURL == "" {
		return fmt.Sprintf("# %s\n\n%s\n\n(Full content URL not available)", sec.Title, sec.Content), nil
	}

	s.logger.Info("fetching full content", "title", sec.Title, "url", sec.FullContentURL)
	body, err := s.fetcher.Fetch(ctx, sec.FullContentURL)
	if err != nil {
		s.logger.Error("failed to fetch full content", "title", sec.Title, "err", err)
		return fmt.Sprintf("# %s\n\n%s\n\n(Failed to fetch full content: %v)", sec.Title, sec.Content, err), nil
	}

	if s.converter != nil && looksLikeHTML(body) {
		md, err := s.converter.Convert(body)
		if err != nil {
			s.logger.Warn("failed to convert full content", "title", sec.Title, "err", err)
			return body, nil
		}
		return md, nil
	}
	return body, nil
}

func looksLikeHTML(body string) bool {
	head := strings.ToLower(strings.TrimSpace(body))
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// Summary returns a text overview of one category.
func (s *Service) Summary(ctx context.Context, cat llmsdoc.Category) (string, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return "", err
	}
	return llmsdoc.FormatSummary(cat, snap.content.Sections(cat)), nil
}

// Health reports the cache state without triggering a refresh.
func (s *Service) Health(ctx context.Context) llmsdoc.Health {
	h := llmsdoc.Health{
		Status:    StatusEmpty,
		SourceURL: s.sourceURL,
		Config:    s.healthConfig,
	}

	snap := s.current.Load()
	if snap == nil {
		return h
	}

	expiresAt := snap.expiresAt
	h.ExpiresAt = &expiresAt
	h.CacheValid = s.now().Before(snap.expiresAt)
	h.Indexed = snap.index.Indexed()
	h.Sections = len(snap.sections)
	h.Generation = snap.generation
	h.Hash = snap.content.Hash
	h.Status = StatusStale
	if h.CacheValid {
		h.Status = StatusHealthy
	}
	return h
}
