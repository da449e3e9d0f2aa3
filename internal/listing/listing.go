// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package listing implements the client-side shaping of fetched lists:
// substring search, field sorting with direction toggling, and fixed-size
// pagination. Everything operates on data already in memory; the API is never
// consulted and inputs are never mutated.
package listing

import (
	"sort"
	"strings"

	"datahive/admincli/internal/backend"
)

// Direction is a sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sortable category fields.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCreatedAt   = "createdAt"
)

// Sort tracks the active sort field and direction for a table view.
type Sort struct {
	Field     string
	Direction Direction
}

// Toggle selects a sort field. Re-selecting the active field flips the
// direction; selecting a new field resets the direction to ascending.
func (s *Sort) Toggle(field string) {
	if field == s.Field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Field = field
	s.Direction = Ascending
}

// SortCategories returns a sorted copy of cats ordered by the given sort.
// Unknown fields fall back to name.
func SortCategories(cats []backend.Category, s Sort) []backend.Category {
	out := make([]backend.Category, len(cats))
	copy(out, cats)

	key := func(c backend.Category) string {
		switch s.Field {
		case FieldDescription:
			return c.Description
		case FieldCreatedAt:
			return c.CreatedAt
		default:
			return c.Name
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s.Direction == Descending {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

// FilterCategories returns the categories whose name or description contains
// term, case-insensitively. An empty term returns everything.
func FilterCategories(cats []backend.Category, term string) []backend.Category {
	if term == "" {
		return cats
	}
	out := make([]backend.Category, 0, len(cats))
	for _, c := range cats {
		if containsFold(c.Name, term) || containsFold(c.Description, term) {
			out = append(out, c)
		}
	}
	return out
}

// FilterLeads returns the leads matching term on name or email
// (case-insensitive) or phone (plain substring). An empty term matches all.
func FilterLeads(leads []backend.Lead, term string) []backend.Lead {
	if term == "" {
		return leads
	}
	out := make([]backend.Lead, 0, len(leads))
	for _, l := range leads {
		if containsFold(l.Name, term) || containsFold(l.Email, term) || strings.Contains(l.Phone, term) {
			out = append(out, l)
		}
	}
	return out
}

// FilterLeadsByCategory returns the leads classified under the given
// category id. An empty id matches all.
func FilterLeadsByCategory(leads []backend.Lead, categoryID string) []backend.Lead {
	if categoryID == "" {
		return leads
	}
	out := make([]backend.Lead, 0, len(leads))
	for _, l := range leads {
		if l.Category.ID == categoryID {
			out = append(out, l)
		}
	}
	return out
}

// Paginate slices items into the requested 1-based page of the given size.
// It returns the page contents and the total page count. Pages out of range
// yield an empty slice; totalPages is at least 1 so views always have a
// footer to print.
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size <= 0 {
		size = 1
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		return nil, totalPages
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// IsDuplicateCategoryName reports whether name matches an existing category
// case-insensitively after trimming surrounding whitespace. Used to reject a
// duplicate before any network call is made.
func IsDuplicateCategoryName(cats []backend.Category, name string) bool {
	trimmed := strings.TrimSpace(name)
	for _, c := range cats {
		if strings.EqualFold(strings.TrimSpace(c.Name), trimmed) {
			return true
		}
	}
	return false
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
