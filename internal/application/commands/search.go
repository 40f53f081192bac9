package commands

import (
	"context"
	"sort"
	"strings"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

// SearchHit is one entry matching a search, with a relevance score
type SearchHit struct {
	Document string
	Path     domain.Path
	Label    string
	Name     string
	Score    int
}

// SearchCommand searches entry keys and display names across documents
// with fuzzy matching. An empty Document searches every document.
type SearchCommand struct {
	session  *application.Session
	Document string
	Query    string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(session *application.Session, document, query string) *SearchCommand {
	return &SearchCommand{
		session:  session,
		Document: document,
		Query:    query,
	}
}

// Execute runs the search command and returns scored, sorted hits
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchHit, error) {
	query := strings.TrimSpace(c.Query)
	if len(query) < 2 {
		return nil, nil
	}

	specs := c.session.Catalog()
	if c.Document != "" {
		spec, err := c.session.Spec(c.Document)
		if err != nil {
			return nil, err
		}
		specs = domain.Catalog{spec}
	}

	var hits []SearchHit
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := c.session.Document(spec.Name)
		if err != nil {
			return nil, err
		}
		for _, entry := range domain.BuildIndex(spec.Layout, doc) {
			hits = append(hits, SearchHit{
				Document: spec.Name,
				Path:     entry.Path,
				Label:    entry.Label,
				Name:     displayName(doc, entry.Path),
			})
		}
	}

	return FuzzySort(hits, query), nil
}

// displayName returns the entry's name field, if it has a string one
func displayName(doc *domain.Node, path domain.Path) string {
	entry, err := domain.Resolve(doc, path)
	if err != nil {
		return ""
	}
	name, ok := entry.Get("name")
	if !ok || name.Kind() != domain.KindString {
		return ""
	}
	return name.StringValue()
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && isSeparator(target[i-1]) {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

func isSeparator(b byte) bool {
	return b == ' ' || b == '_' || b == '/' || b == ':' || b == '-'
}

// FuzzySort scores hits against the query, drops non-matches and sorts by
// score descending. Ties keep document order.
func FuzzySort(hits []SearchHit, query string) []SearchHit {
	scored := make([]SearchHit, 0, len(hits))

	for _, h := range hits {
		best := max(FuzzyScore(h.Path.Last(), query), FuzzyScore(h.Label, query), FuzzyScore(h.Name, query))
		if best > 0 {
			h.Score = best
			scored = append(scored, h)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
