// Package pagination resolves a requested page number against a collection size.
//
// Out-of-range requests never fail: a number above the last page resolves to the
// last page, anything below 1 (or not a number) resolves to the first page.
package pagination

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the page size of every list view.
const DefaultPageSize = 5

// lastPage is the page parameter value that always selects the final page.
const lastPage = "last"

// Request is a parsed page query parameter.
type Request struct {
	Number int
	Last   bool
	Size   int
}

// ParseRequest reads the raw `page` parameter.
func ParseRequest(raw string, size int) Request {
	if size < 1 {
		size = DefaultPageSize
	}
	raw = strings.TrimSpace(raw)
	if raw == lastPage {
		return Request{Last: true, Size: size}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = 1
	}
	return Request{Number: n, Size: size}
}

// Window is a request resolved against a known total.
type Window struct {
	Number   int
	NumPages int
	Size     int
	Offset   int
	Total    int64
}

// Resolve clamps the request into [1, NumPages]. An empty collection still has one page.
func Resolve(total int64, req Request) Window {
	size := req.Size
	if size < 1 {
		size = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}

	number := req.Number
	if req.Last {
		number = numPages
	}
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	return Window{
		Number:   number,
		NumPages: numPages,
		Size:     size,
		Offset:   (number - 1) * size,
		Total:    total,
	}
}

// Limit is the maximum number of rows to fetch for the window.
func (w Window) Limit() int {
	return w.Size
}

// Meta is the pagination block handed to views.
type Meta struct {
	Number         int   `json:"number"`
	NumPages       int   `json:"num_pages"`
	PageSize       int   `json:"page_size"`
	Count          int64 `json:"count"`
	IsPaginated    bool  `json:"is_paginated"`
	HasNext        bool  `json:"has_next"`
	HasPrevious    bool  `json:"has_previous"`
	NextNumber     int   `json:"next_page_number,omitempty"`
	PreviousNumber int   `json:"previous_page_number,omitempty"`
}

// Meta derives the view metadata.
func (w Window) Meta() Meta {
	m := Meta{
		Number:      w.Number,
		NumPages:    w.NumPages,
		PageSize:    w.Size,
		Count:       w.Total,
		IsPaginated: w.NumPages > 1,
		HasNext:     w.Number < w.NumPages,
		HasPrevious: w.Number > 1,
	}
	if m.HasNext {
		m.NextNumber = w.Number + 1
	}
	if m.HasPrevious {
		m.PreviousNumber = w.Number - 1
	}
	return m
}

// Page is one bounded slice of a collection plus its metadata.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Pagination Meta `json:"pagination"`
}

// NewPage pairs fetched items with the window they were fetched for.
func NewPage[T any](items []T, w Window) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: w.Meta()}
}

// Slice paginates a collection that is already filtered and ordered in memory.
func Slice[T any](all []T, req Request) Page[T] {
	w := Resolve(int64(len(all)), req)
	end := w.Offset + w.Limit()
	if end > len(all) {
		end = len(all)
	}
	start := w.Offset
	if start > end {
		start = end
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return NewPage(items, w)
}
