package mock

import (
	"context"

	"github.com/jeongil-dev/llmsdoc"
)

var _ llmsdoc.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of llmsdoc.ContentService.
type ContentService struct {
	RawDocumentFn        func(ctx context.Context) (string, error)
	ContentFn            func(ctx context.Context, force bool) (*llmsdoc.ParsedContent, error)
	RefreshFn            func(ctx context.Context) (*llmsdoc.ParsedContent, error)
	SearchAllFn          func(ctx context.Context, query string, topK int) ([]llmsdoc.SearchResult, error)
	SearchCategoryFn     func(ctx context.Context, cat llmsdoc.Category, query string, topK int) ([]llmsdoc.SearchResult, error)
	CategorySectionsFn   func(ctx context.Context, name string) ([]*llmsdoc.Section, error)
	SectionsByDateFn     func(ctx context.Context, r llmsdoc.DateRange, cat llmsdoc.Category) ([]*llmsdoc.Section, error)
	RecentSectionsFn     func(ctx context.Context, days int, cat llmsdoc.Category) ([]*llmsdoc.Section, error)
	SectionByTitleFn     func(ctx context.Context, title string) (*llmsdoc.Section, error)
	FullSectionContentFn func(ctx context.Context, title string) (string, error)
	SummaryFn            func(ctx context.Context, cat llmsdoc.Category) (string, error)
	HealthFn             func(ctx context.Context) llmsdoc.Health
}

func (s *ContentService) RawDocument(ctx context.Context) (string, error) {
	return s.RawDocumentFn(ctx)
}

func (s *ContentService) Content(ctx context.Context, force bool) (*llmsdoc.ParsedContent, error) {
	return s.ContentFn(ctx, force)
}

func (s *ContentService) Refresh(ctx context.Context) (*llmsdoc.ParsedContent, error) {
	return s.RefreshFn(ctx)
}

func (s *ContentService) SearchAll(ctx context.Context, query string, topK int) ([]llmsdoc.SearchResult, error) {
	return s.SearchAllFn(ctx, query, topK)
}

func (s *ContentService) SearchCategory(ctx context.Context, cat llmsdoc.Category, query string, topK int) ([]llmsdoc.SearchResult, error) {
	return s.SearchCategoryFn(ctx, cat, query, topK)
}

func (s *ContentService) CategorySections(ctx context.Context, name string) ([]*llmsdoc.Section, error) {
	return s.CategorySectionsFn(ctx, name)
}

func (s *ContentService) SectionsByDate(ctx context.Context, r llmsdoc.DateRange, cat llmsdoc.Category) ([]*llmsdoc.Section, error) {
	return s.SectionsByDateFn(ctx, r, cat)
}

func (s *ContentService) RecentSections(ctx context.Context, days int, cat llmsdoc.Category) ([]*llmsdoc.Section, error) {
	return s.RecentSectionsFn(ctx, days, cat)
}

func (s *ContentService) SectionByTitle(ctx context.Context, title string) (*llmsdoc.Section, error) {
	return s.SectionByTitleFn(ctx, title)
}

func (s *ContentService) FullSectionContent(ctx context.Context, title string) (string, error) {
	return s.FullSectionContentFn(ctx, title)
}

func (s *ContentService) Summary(ctx context.Context, cat llmsdoc.Category) (string, error) {
	return s.SummaryFn(ctx, cat)
}

func (s *ContentService) Health(ctx context.Context) llmsdoc.Health {
	return s.HealthFn(ctx)
}
