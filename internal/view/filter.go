// Package view derives the visible slice of a mirrored collection from the
// current search text, status filter, date filter and page number. It is
// pure computation over an already-fetched snapshot; no network is involved.
package view

import "strings"

// Query holds the operator's current filter state. Empty fields pass through.
type Query struct {
	Search string
	Status string
	Date   string
	Page   int
}

// Projection tells the filter how to read one record. Status and Date may be
// nil for resources without those filters.
type Projection[T any] struct {
	SearchText func(T) string
	Status     func(T) string
	Date       func(T) string
}

// Page is one visible slice of the filtered collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	Current    int `json:"current_page"`
}

// Apply filters, paginates and slices the records. Predicates run in
// sequence: case-insensitive substring search over the projected searchable
// text, then exact status match, then exact date match. The requested page is
// clamped into [1, totalPages]; a page that fell out of range (a filter shrank
// the result set) resets to 1. An empty result yields totalPages 0 and an
// empty slice.
func Apply[T any](records []T, q Query, p Projection[T], pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = 10
	}

	filtered := make([]T, 0, len(records))
	needle := strings.ToLower(q.Search)
	for _, rec := range records {
		if needle != "" && p.SearchText != nil &&
			!strings.Contains(strings.ToLower(p.SearchText(rec)), needle) {
			continue
		}
		if q.Status != "" && (p.Status == nil || p.Status(rec) != q.Status) {
			continue
		}
		if q.Date != "" && (p.Date == nil || p.Date(rec) != q.Date) {
			continue
		}
		filtered = append(filtered, rec)
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	current := q.Page
	if current < 1 || current > totalPages {
		current = 1
	}
	if totalPages == 0 {
		return Page[T]{Items: []T{}, TotalItems: 0, TotalPages: 0, Current: current}
	}

	start := (current - 1) * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page[T]{
		Items:      filtered[start:end],
		TotalItems: len(filtered),
		TotalPages: totalPages,
		Current:    current,
	}
}
