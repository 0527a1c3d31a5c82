// Package llmsdoc serves a remote llms.txt document to AI assistants.
// It fetches the document, parses it into categorized sections, indexes
// the sections for BM25 keyword search, and keeps the result in a
// time-bounded cache that falls back to stale data when a refresh fails.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after what they wrap (e.g., http/, bm25/, htmltomarkdown/, mcp/).
package llmsdoc

// Version is the build version, overridden at link time.
var Version = "dev"
