// Package listing holds the pagination/search plumbing shared by every
// admin list surface (artists, albums, tracks, events, live sets). One
// parametrized implementation instead of five copies.
package listing

import (
	"context"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params describes one list request: a 1-based page, a free-text search
// term and stable ordering. Seq is an opaque client counter echoed back in
// Meta so callers can discard responses that arrive out of order.
type Params struct {
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"page_size" json:"page_size"`
	Search   string `form:"search" json:"search"`
	SortBy   string `form:"sort_by" json:"sort_by"`
	Order    string `form:"order" json:"order"`
	Seq      int64  `form:"seq" json:"seq"`
}

// Meta is the pagination block returned with every list response.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	Seq        int64 `json:"seq,omitempty"`
}

// Normalize clamps the params into a usable range. A page beyond the last
// is left alone: the query simply returns zero rows, never an error.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.Search = strings.TrimSpace(p.Search)
}

// Offset converts the 1-based page into a row offset.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// SortColumn whitelists the sort column; anything unrecognised falls back
// to def. Never interpolate user input into ORDER BY without this.
func (p Params) SortColumn(allowed map[string]bool, def string) string {
	if p.SortBy != "" && allowed[p.SortBy] {
		return p.SortBy
	}
	return def
}

// SortOrder returns ASC or DESC, defaulting to def.
func (p Params) SortOrder(def string) string {
	switch strings.ToUpper(p.Order) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	}
	return def
}

// NewMeta computes total pages as ceil(total/size).
func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: total,
		TotalPages: totalPages,
		Seq:        p.Seq,
	}
}

// EscapeLike escapes ILIKE wildcards in user-supplied search terms.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// Fetch loads one page of rows plus the total matching count.
type Fetch[T any] func(ctx context.Context, p Params) ([]T, int64, error)

// FetchAfterDelete refetches the current page after a row was deleted.
// When the page comes back empty and it is not the first page, the caller
// would be stranded on an empty page, so step back one page and refetch.
func FetchAfterDelete[T any](ctx context.Context, p Params, fetch Fetch[T]) ([]T, Meta, error) {
	rows, total, err := fetch(ctx, p)
	if err != nil {
		return nil, Meta{}, err
	}

	if len(rows) == 0 && p.Page > 1 {
		p.Page--
		rows, total, err = fetch(ctx, p)
		if err != nil {
			return nil, Meta{}, err
		}
	}

	return rows, NewMeta(p, total), nil
}
