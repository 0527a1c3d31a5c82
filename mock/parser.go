package mock

import "github.com/jeongil-dev/llmsdoc"

var _ llmsdoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of llmsdoc.Parser.
type Parser struct {
	ParseFn func(raw string) *llmsdoc.ParsedContent
}

func (p *Parser) Parse(raw string) *llmsdoc.ParsedContent {
	return p.ParseFn(raw)
}
