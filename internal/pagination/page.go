package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

// Request holds offset pagination parameters.
type Request struct {
	Page     int
	PageSize int
}

// NewRequest clamps page and size into valid ranges.
func NewRequest(page, pageSize int) Request {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	// Offset must stay representable.
	if maxPage := math.MaxInt/pageSize + 1; page > maxPage {
		page = maxPage
	}
	return Request{Page: page, PageSize: pageSize}
}

// FromQuery parses raw query values, falling back to defaults on garbage.
func FromQuery(page, pageSize string) Request {
	p, _ := strconv.Atoi(page)
	s, _ := strconv.Atoi(pageSize)
	return NewRequest(p, s)
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.PageSize
}

func (r Request) Limit() int {
	return r.PageSize
}

type Result struct {
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

func NewResult(total int64, req Request) Result {
	totalPages := 0
	if total > 0 && req.PageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.PageSize)))
	}
	return Result{
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}
}
