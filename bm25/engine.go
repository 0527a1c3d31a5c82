// Package bm25 implements Okapi BM25 keyword ranking over an in-memory
// corpus of short documents.
package bm25

import (
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Default scoring parameters.
const (
	DefaultK1 = 1.5
	DefaultB  = 0.75

	// DefaultTopK is used when Search is called with topK <= 0.
	DefaultTopK = 10
)

// Hit is a document ranked against a query.
type Hit struct {
	// Doc is the index of the document in the slice passed to Index.
	Doc   int
	Score float64

	// Terms lists the query terms found in the document, in query order.
	Terms []string
}

// Engine ranks documents with BM25. It is safe for concurrent use.
type Engine struct {
	mu sync.RWMutex

	k1     float64
	b      float64
	logger *slog.Logger

	indexed bool
	docs    []map[string]int // term frequencies per document
	lengths []int
	avgLen  float64
	df      map[string]int
}

// Option configures an Engine.
type Option func(*Engine)

// WithParams sets the k1 and b parameters.
func WithParams(k1, b float64) Option {
	return func(e *Engine) {
		e.k1 = k1
		e.b = b
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an empty Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		k1:     DefaultK1,
		b:      DefaultB,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Index replaces the corpus with docs.
func (e *Engine) Index(docs []string) {
	freqs := make([]map[string]int, len(docs))
	lengths := make([]int, len(docs))
	df := make(map[string]int)
	total := 0

	for i, doc := range docs {
		tokens := Tokenize(doc)
		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		freqs[i] = tf
		lengths[i] = len(tokens)
		total += len(tokens)
	}

	var avgLen float64
	if len(docs) > 0 {
		avgLen = float64(total) / float64(len(docs))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.indexed = true
	e.docs = freqs
	e.lengths = lengths
	e.avgLen = avgLen
	e.df = df
}

// Indexed reports whether Index has been called.
func (e *Engine) Indexed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.indexed
}

// Len returns the number of indexed documents.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.docs)
}

// Search returns up to topK documents with a positive score, best first.
// Documents with equal scores keep their index order. Searching before
// Index returns nil.
func (e *Engine) Search(query string, topK int) []Hit {
	if topK <= 0 {
		topK = DefaultTopK
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.indexed {
		e.logger.Warn("search before index", "query", query)
		return nil
	}

	terms := uniqueTerms(Tokenize(query))
	if len(terms) == 0 {
		return nil
	}

	n := float64(len(e.docs))
	var hits []Hit
	for i, tf := range e.docs {
		var score float64
		var matched []string
		for _, term := range terms {
			freq, ok := tf[term]
			if !ok {
				continue
			}
			matched = append(matched, term)
			score += e.idf(term, n) * e.termScore(float64(freq), float64(e.lengths[i]))
		}
		if score > 0 {
			hits = append(hits, Hit{Doc: i, Score: score, Terms: matched})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

func (e *Engine) idf(term string, n float64) float64 {
	df := float64(e.df[term])
	return math.Log((n-df+0.5)/(df+0.5) + 1)
}

func (e *Engine) termScore(freq, docLen float64) float64 {
	norm := 1.0
	if e.avgLen > 0 {
		norm = 1 - e.b + e.b*docLen/e.avgLen
	}
	return freq * (e.k1 + 1) / (freq + e.k1*norm)
}

// Tokenize lower-cases text and splits it into maximal runs of letters,
// digits, underscores and Hangul syllables.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTokenRune(r)
	})
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || (r >= 0xAC00 && r <= 0xD7A3)
}

func uniqueTerms(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
