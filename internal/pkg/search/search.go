// Package search implements the shared filter/sort/paginate pipeline used by
// every entity listing. The same algorithm runs over any in-memory candidate
// set; remote data sources that push filtering down to an upstream backend
// return the same Page envelope so callers cannot tell the variants apart.
package search

import "sort"

// Direction is a sort direction.
type Direction string

const (
	// Asc sorts ascending (the default).
	Asc Direction = "asc"
	// Desc sorts descending, as the exact mirror of Asc.
	Desc Direction = "desc"
)

// Pagination defaults and bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params carries pagination and sorting options for one search call.
// Page is 0-based.
type Params struct {
	Page        int
	Size        int
	SortBy      string
	SortDir     Direction
	Unpaginated bool
}

// Normalized returns a copy of p with page and size clamped to valid values.
func (p Params) Normalized() Params {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 || p.Size > MaxPageSize {
		p.Size = DefaultPageSize
	}
	if p.SortDir != Desc {
		p.SortDir = Asc
	}
	return p
}

// Page is the uniform paginated envelope. The JSON field names are the wire
// contract of the search endpoints and must not change.
type Page[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

// Schema describes how one entity type takes part in the pipeline: which text
// fields the free-text filter scans and which keys it can be sorted by.
type Schema[T any] struct {
	SearchFields func(T) []string
	SortKeys     map[string]func(T) Value
}

// Run applies the whole pipeline over items: keep entries matching the
// predicate, sort them stably by params.SortBy, then slice out the requested
// page. A nil predicate keeps everything; an unknown or empty sort key
// preserves source order. The input slice is never mutated.
func Run[T any](items []T, matches func(T) bool, schema Schema[T], params Params) Page[T] {
	params = params.Normalized()

	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if matches == nil || matches(it) {
			filtered = append(filtered, it)
		}
	}

	if params.SortBy != "" {
		if key, ok := schema.SortKeys[params.SortBy]; ok {
			sortStable(filtered, key, params.SortDir)
		}
	}

	return Paginate(filtered, params)
}

// Paginate slices an already filtered and ordered set into the requested page
// and fills in the envelope totals.
func Paginate[T any](filtered []T, params Params) Page[T] {
	params = params.Normalized()
	total := len(filtered)

	if params.Unpaginated {
		return Page[T]{
			Content:       filtered,
			TotalElements: total,
			TotalPages:    1,
			Number:        0,
			Size:          total,
			First:         true,
			Last:          true,
		}
	}

	start := params.Page * params.Size
	end := start + params.Size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	totalPages := (total + params.Size - 1) / params.Size

	return Page[T]{
		Content:       filtered[start:end],
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        params.Page,
		Size:          params.Size,
		First:         params.Page == 0,
		Last:          (params.Page+1)*params.Size >= total,
	}
}

// sortStable orders items by the given key. Records missing the key sort after
// records that have it, in either direction.
func sortStable[T any](items []T, key func(T) Value, dir Direction) {
	sort.SliceStable(items, func(i, j int) bool {
		vi, vj := key(items[i]), key(items[j])
		if vi.Missing() || vj.Missing() {
			// present-before-missing regardless of direction
			return !vi.Missing() && vj.Missing()
		}
		c := vi.Compare(vj)
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
}
