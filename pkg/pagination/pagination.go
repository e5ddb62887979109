package pagination

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps (MaxPage-1)*MaxPageSize inside a 32-bit int.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Params selects one page of an ordered sequence. Page is 1-based.
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// WithDefaults fills zero values. Negative values are left for Validate to reject.
func (p Params) WithDefaults() Params {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

func (p Params) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Required, validation.Min(1), validation.Max(MaxPage)),
		validation.Field(&p.PageSize, validation.Required, validation.Min(1), validation.Max(MaxPageSize)),
	)
}

// Offset is never negative and saturates at math.MaxInt instead of overflowing.
func (p Params) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

func (p Params) Limit() int {
	return max(p.PageSize, 0)
}

func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Page[T]{
		Items:      items,
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

// Paginate cuts the page described by p out of an already ordered slice.
func Paginate[T any](ordered []T, p Params) Page[T] {
	total := int64(len(ordered))
	from := min(p.Offset(), len(ordered))
	to := from + min(p.Limit(), len(ordered)-from)
	return NewPage(ordered[from:to], total, p)
}

func Map[T, R any](page Page[T], f func(item T) R) Page[R] {
	return Page[R]{
		Items: lo.Map(page.Items, func(item T, _ int) R {
			return f(item)
		}),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}
