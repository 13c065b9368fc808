// Package search finds help items across every page of a library.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"helpdock/internal/content"
)

// Entry locates one help item.
type Entry struct {
	Slug         string       `json:"slug"`
	PageTitle    string       `json:"page_title"`
	Category     int          `json:"category"`
	CategoryName string       `json:"category_name"`
	Item         content.Item `json:"item"`
}

// Result is a ranked match.
type Result struct {
	Entry
	Score          int   `json:"score"`
	MatchedIndexes []int `json:"-"`
}

// Index is a flat, searchable list of every item in a library.
type Index struct {
	entries []Entry
	keys    []string
}

// NewIndex flattens lib into an Index.
func NewIndex(lib *content.Library) *Index {
	ix := &Index{}
	for _, p := range lib.Pages() {
		for ci, c := range p.Categories {
			for _, it := range c.Items {
				ix.entries = append(ix.entries, Entry{
					Slug:         p.Slug,
					PageTitle:    p.Title,
					Category:     ci,
					CategoryName: c.Name,
					Item:         it,
				})
				ix.keys = append(ix.keys, it.Title+" "+c.Name+" "+it.Description)
			}
		}
	}
	return ix
}

// Len implements fuzzy.Source.
func (ix *Index) Len() int { return len(ix.entries) }

// String implements fuzzy.Source.
func (ix *Index) String(i int) string { return ix.keys[i] }

// Entries returns every indexed entry in page order.
func (ix *Index) Entries() []Entry { return ix.entries }

// Search returns the best matches for query, best first. A limit of zero or
// less returns every match.
func (ix *Index) Search(query string, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" || len(ix.entries) == 0 {
		return nil
	}
	matches := fuzzy.FindFrom(query, ix)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Result, len(matches))
	for i, m := range matches {
		out[i] = Result{
			Entry:          ix.entries[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return out
}
