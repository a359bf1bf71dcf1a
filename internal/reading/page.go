package reading

import (
	"errors"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

var ErrInvalidPage = errors.New("page and pageSize must be positive integers")

type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest applies defaults for absent values.
func NewPageRequest(page, pageSize *int) PageRequest {
	req := PageRequest{Page: DefaultPage, PageSize: DefaultPageSize}
	if page != nil {
		req.Page = *page
	}
	if pageSize != nil {
		req.PageSize = *pageSize
	}
	return req
}

func (r PageRequest) Validate() error {
	if r.Page < 1 || r.PageSize < 1 {
		return ErrInvalidPage
	}
	return nil
}

// Page is the list envelope shared by every collection.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Paginate cuts one page out of items. Pages past the end are empty, not an
// error. Invalid requests fall back to the defaults.
func Paginate[T any](items []T, req PageRequest) Page[T] {
	if req.Validate() != nil {
		req = NewPageRequest(nil, nil)
	}

	total := len(items)
	totalPages := total / req.PageSize
	if total%req.PageSize != 0 {
		totalPages++
	}
	page := Page[T]{
		Data:       []T{},
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}

	if req.Page > totalPages {
		return page
	}

	start := (req.Page - 1) * req.PageSize
	end := min(start+req.PageSize, total)
	page.Data = append(page.Data, items[start:end]...)

	return page
}

// Predicate reports whether a record passes a filter.
type Predicate[T any] func(T) bool

// Filter keeps the items that pass every predicate, evaluated in order.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	result := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue outer
			}
		}
		result = append(result, item)
	}

	return result
}

// containsAny is a case-sensitive substring match over fields. An empty
// search matches everything.
func containsAny(search string, fields ...string) bool {
	if search == "" {
		return true
	}

	for _, field := range fields {
		if strings.Contains(field, search) {
			return true
		}
	}

	return false
}

// equalOrAny matches when want is empty or equal to got.
func equalOrAny[T comparable](want, got T) bool {
	var zero T
	return want == zero || want == got
}

func intOrAny(want *int, got int) bool {
	return want == nil || *want == got
}
