package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jeongil-dev/llmsdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool defaults.
const (
	defaultTopK = 10
	defaultDays = 30
)

// SearchInput is the input schema for the search tools.
type SearchInput struct {
	Query string `json:"query" jsonschema:"search query, e.g. 'kubernetes migration' or 'git convention'"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// CategoryInput is the input schema for the get_category_posts tool.
type CategoryInput struct {
	Category string `json:"category" jsonschema:"blog category: backend, infrastructure, architecture, culture, reflection, trends"`
}

// RecentInput is the input schema for the get_recent_posts tool.
type RecentInput struct {
	Days     int    `json:"days,omitempty" jsonschema:"number of days to look back (default 30)"`
	Category string `json:"category,omitempty" jsonschema:"optional category filter: documentation, tech_blog, reflections, trends"`
}

// TitleInput is the input schema for the post lookup tools.
type TitleInput struct {
	Title string `json:"title" jsonschema:"post title, partial and case-insensitive match"`
}

// EmptyInput is the input schema for tools without arguments.
type EmptyInput struct{}

// HealthOutput is the output schema for the health_check tool.
type HealthOutput struct {
	Status         string       `json:"status"`
	CacheValid     bool         `json:"cache_valid"`
	CacheExpiresAt string       `json:"cache_expires_at,omitempty"`
	SearchIndexed  bool         `json:"search_indexed"`
	Sections       int          `json:"sections"`
	Generation     string       `json:"generation,omitempty"`
	ContentHash    string       `json:"content_hash,omitempty"`
	SourceURL      string       `json:"source_url"`
	Config         HealthConfig `json:"config"`
}

// HealthConfig reports the active configuration in health_check.
type HealthConfig struct {
	CacheTTLMinutes float64 `json:"cache_ttl_minutes"`
	HTTPTimeout     float64 `json:"http_timeout"`
	HTTPMaxRetries  int     `json:"http_max_retries"`
	HTTPRetryDelay  float64 `json:"http_retry_delay"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_all",
		Description: "Search across all blog content (documentation, tech blog, reflections, trends) with BM25 ranking.",
	}, s.handleSearchAll)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documentation",
		Description: "Search development guidelines and conventions: coding rules, architecture patterns, Git workflows.",
	}, s.handleSearchDocumentation)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_experience",
		Description: "Search tech blog posts for past experiences and real-world problem solving.",
	}, s.handleSearchExperience)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_category_posts",
		Description: "Get all posts from a tech blog category.",
	}, s.handleCategoryPosts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recent_posts",
		Description: "Get posts published in the last N days, newest first.",
	}, s.handleRecentPosts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_post",
		Description: "Get the cached summary of a post by title.",
	}, s.handleGetPost)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_full_post",
		Description: "Fetch the complete markdown of a post by title.",
	}, s.handleGetFullPost)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refresh_content",
		Description: "Force refresh the cached blog content.",
	}, s.handleRefresh)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "health_check",
		Description: "Report cache state and configuration.",
	}, s.handleHealth)
}

func (s *Server) fail(tool string, err error) (*mcp.CallToolResult, any, error) {
	s.logger.Error("tool failed", "tool", tool, "err", err)
	return errorResult(err), nil, nil
}

func (s *Server) handleSearchAll(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, any, error) {
	results, err := s.content.SearchAll(ctx, input.Query, topK(input.TopK))
	if err != nil {
		return s.fail("search_all", err)
	}
	if len(results) == 0 {
		return textResult(fmt.Sprintf("No results found for query: '%s'", input.Query)), nil, nil
	}
	return textResult(formatSearchAll(input.Query, results)), nil, nil
}

func (s *Server) handleSearchDocumentation(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, any, error) {
	results, err := s.content.SearchCategory(ctx, llmsdoc.CategoryDocumentation, input.Query, topK(input.TopK))
	if err != nil {
		return s.fail("search_documentation", err)
	}
	if len(results) == 0 {
		return textResult(fmt.Sprintf("No documentation found for query: '%s'", input.Query)), nil, nil
	}
	heading := fmt.Sprintf("# Documentation Search Results for '%s' (Top %d)", input.Query, len(results))
	return textResult(formatSectionList(heading, sectionsOf(results))), nil, nil
}

func (s *Server) handleSearchExperience(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, any, error) {
	results, err := s.content.SearchCategory(ctx, llmsdoc.CategoryBlog, input.Query, topK(input.TopK))
	if err != nil {
		return s.fail("search_experience", err)
	}
	if len(results) == 0 {
		return textResult(fmt.Sprintf("No experiences found for query: '%s'", input.Query)), nil, nil
	}
	heading := fmt.Sprintf("# Experience Search Results for '%s' (Top %d)", input.Query, len(results))
	return textResult(formatSectionList(heading, sectionsOf(results))), nil, nil
}

func (s *Server) handleCategoryPosts(ctx context.Context, _ *mcp.CallToolRequest, input CategoryInput) (*mcp.CallToolResult, any, error) {
	sections, err := s.content.CategorySections(ctx, input.Category)
	if err != nil {
		return s.fail("get_category_posts", err)
	}
	if len(sections) == 0 {
		return textResult(fmt.Sprintf("No posts found in category: '%s'", input.Category)), nil, nil
	}
	heading := fmt.Sprintf("# Tech Blog Posts - %s Category (%d posts)", titleCase(input.Category), len(sections))
	return textResult(formatSectionList(heading, sections)), nil, nil
}

func (s *Server) handleRecentPosts(ctx context.Context, _ *mcp.CallToolRequest, input RecentInput) (*mcp.CallToolResult, any, error) {
	days := input.Days
	if days <= 0 {
		days = defaultDays
	}

	var cat llmsdoc.Category
	if input.Category != "" {
		c, ok := llmsdoc.ParseCategory(input.Category)
		if !ok {
			return s.fail("get_recent_posts", llmsdoc.Errorf(llmsdoc.EINVALID, "unknown category: %q", input.Category))
		}
		cat = c
	}

	sections, err := s.content.RecentSections(ctx, days, cat)
	if err != nil {
		return s.fail("get_recent_posts", err)
	}
	if len(sections) == 0 {
		return textResult(fmt.Sprintf("No posts found in the last %d days", days)), nil, nil
	}

	heading := fmt.Sprintf("# Recent Posts (Last %d Days)", days)
	if cat != "" {
		heading = fmt.Sprintf("# Recent Posts in %s (Last %d Days)", cat, days)
	}
	return textResult(formatRecent(heading, sections)), nil, nil
}

func (s *Server) handleGetPost(ctx context.Context, _ *mcp.CallToolRequest, input TitleInput) (*mcp.CallToolResult, any, error) {
	section, err := s.content.SectionByTitle(ctx, input.Title)
	if llmsdoc.ErrorCode(err) == llmsdoc.ENOTFOUND {
		return textResult(fmt.Sprintf("No post found matching title: '%s'", input.Title)), nil, nil
	} else if err != nil {
		return s.fail("get_post", err)
	}
	return textResult(formatSection(section)), nil, nil
}

func (s *Server) handleGetFullPost(ctx context.Context, _ *mcp.CallToolRequest, input TitleInput) (*mcp.CallToolResult, any, error) {
	body, err := s.content.FullSectionContent(ctx, input.Title)
	if llmsdoc.ErrorCode(err) == llmsdoc.ENOTFOUND {
		return textResult(fmt.Sprintf("No post found matching title: '%s'", input.Title)), nil, nil
	} else if err != nil {
		return s.fail("get_full_post", err)
	}
	return textResult(body), nil, nil
}

func (s *Server) handleRefresh(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
	c, err := s.content.Refresh(ctx)
	if err != nil {
		return s.fail("refresh_content", err)
	}
	return textResult(fmt.Sprintf(
		"Blog content refreshed from %s (%d sections, fetched at %s)",
		c.SourceURL, c.Len(), c.FetchedAt.Format(time.RFC3339),
	)), nil, nil
}

func (s *Server) handleHealth(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, HealthOutput, error) {
	h := s.content.Health(ctx)

	out := HealthOutput{
		Status:        h.Status,
		CacheValid:    h.CacheValid,
		SearchIndexed: h.Indexed,
		Sections:      h.Sections,
		Generation:    h.Generation,
		ContentHash:   h.Hash,
		SourceURL:     h.SourceURL,
		Config: HealthConfig{
			CacheTTLMinutes: h.Config.CacheTTL.Minutes(),
			HTTPTimeout:     h.Config.HTTPTimeout.Seconds(),
			HTTPMaxRetries:  h.Config.MaxAttempts,
			HTTPRetryDelay:  h.Config.RetryDelay.Seconds(),
		},
	}
	if h.ExpiresAt != nil {
		out.CacheExpiresAt = h.ExpiresAt.Format(time.RFC3339)
	}
	return nil, out, nil
}

func topK(k int) int {
	if k <= 0 {
		return defaultTopK
	}
	return k
}

func sectionsOf(results []llmsdoc.SearchResult) []*llmsdoc.Section {
	out := make([]*llmsdoc.Section, len(results))
	for i, r := range results {
		out[i] = r.Section
	}
	return out
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
