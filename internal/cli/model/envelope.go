package model

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// Default pagination values used when the caller leaves them unset.
const (
	DefaultPage     = 0
	DefaultPageSize = 10
	// DefaultShortListSize applies to featured and top-viewed lists.
	DefaultShortListSize = 5
)

// Response is the envelope the CMS wraps around single records and plain lists.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
	Total   int    `json:"total,omitempty"`
}

// Ack is a response whose data the client does not interpret.
type Ack = Response[json.RawMessage]

// Page is the envelope of paginated list endpoints.
type Page[T any] struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Data          []T    `json:"data"`
	CurrentPage   int    `json:"currentPage"`
	TotalPages    int    `json:"totalPages"`
	TotalElements int64  `json:"totalElements"`
	PageSize      int    `json:"pageSize"`
	HasNext       bool   `json:"hasNext"`
	HasPrevious   bool   `json:"hasPrevious"`
	Keyword       string `json:"keyword,omitempty"`
}

// Pagination selects a page of a list endpoint. The zero value means page 0 of size 10.
type Pagination struct {
	Page int
	Size int
}

// Defaults returns p with unset or invalid values replaced by the defaults.
func (p Pagination) Defaults() Pagination {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

// Values encodes the pagination as page and size query parameters.
func (p Pagination) Values() url.Values {
	p = p.Defaults()
	v := url.Values{}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("size", strconv.Itoa(p.Size))
	return v
}

// Filters are free-form query parameters for the manager search endpoint.
type Filters map[string]string

// BlogSearch is the typed form of the manager search filters.
type BlogSearch struct {
	Keyword       string
	CategoryID    int64
	Status        BlogStatus
	Featured      *bool
	AuthorID      int64
	SortBy        string
	SortDirection string
}

// Filters converts the search into query filters, leaving out empty fields.
func (s BlogSearch) Filters() Filters {
	f := Filters{}
	if s.Keyword != "" {
		f["keyword"] = s.Keyword
	}
	if s.CategoryID > 0 {
		f["categoryId"] = strconv.FormatInt(s.CategoryID, 10)
	}
	if s.Status != "" {
		f["status"] = string(s.Status)
	}
	if s.Featured != nil {
		f["featured"] = strconv.FormatBool(*s.Featured)
	}
	if s.AuthorID > 0 {
		f["authorId"] = strconv.FormatInt(s.AuthorID, 10)
	}
	if s.SortBy != "" {
		f["sortBy"] = s.SortBy
	}
	if s.SortDirection != "" {
		f["sortDirection"] = s.SortDirection
	}
	return f
}
