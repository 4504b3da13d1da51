// Package listview implements the in-memory filtering, sorting and bulk
// selection shared by the campaigns and contacts list views. One
// generic engine serves both item shapes through per-call field
// accessors.
package listview

import (
	"sort"
	"strings"
	"time"
)

// Sort keys
const (
	SortByName        = "name"
	SortByCreated     = "created"
	SortByUpdated     = "updated"
	SortByPerformance = "performance"
)

// Query describes one view request. Empty/zero dimensions are unset.
type Query struct {
	Text           string
	StatusEquals   string
	CampaignEquals string
	SortKey        string
}

// Fields supplies the accessors the engine needs for an item type.
// Accessors for dimensions a type does not have may be nil; the
// corresponding query dimension then matches everything.
type Fields[T any] struct {
	Searchable func(T) []string
	Status     func(T) string
	Campaign   func(T) string
	Name       func(T) string
	CreatedAt  func(T) time.Time
	UpdatedAt  func(T) time.Time
	ReplyRate  func(T) float64
}

// View filters items by the query's ANDed predicates, preserving input
// order, then applies a stable sort for the query's sort key. Applying
// the same query twice is a fixed point.
func View[T any](items []T, q Query, f Fields[T]) []T {
	needle := strings.ToLower(q.Text)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesText(item, needle, f.Searchable) {
			continue
		}
		if q.StatusEquals != "" && f.Status != nil && f.Status(item) != q.StatusEquals {
			continue
		}
		if q.CampaignEquals != "" && f.Campaign != nil && f.Campaign(item) != q.CampaignEquals {
			continue
		}
		out = append(out, item)
	}

	sortItems(out, q.SortKey, f)
	return out
}

func matchesText[T any](item T, needle string, searchable func(T) []string) bool {
	if needle == "" || searchable == nil {
		return true
	}
	for _, field := range searchable(item) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortItems[T any](items []T, sortKey string, f Fields[T]) {
	switch sortKey {
	case SortByName:
		if f.Name == nil {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(f.Name(items[i])) < strings.ToLower(f.Name(items[j]))
		})
	case SortByCreated:
		if f.CreatedAt == nil {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return f.CreatedAt(items[i]).After(f.CreatedAt(items[j]))
		})
	case SortByUpdated:
		if f.UpdatedAt == nil {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return f.UpdatedAt(items[i]).After(f.UpdatedAt(items[j]))
		})
	case SortByPerformance:
		if f.ReplyRate == nil {
			return
		}
		sort.SliceStable(items, func(i, j int) bool {
			return f.ReplyRate(items[i]) > f.ReplyRate(items[j])
		})
	}
}
