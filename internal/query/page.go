package query

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a 1-based page window. Values built with NewPage are always in range.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps number to at least 1 and size into [1, MaxPageSize].
// A size of zero or less selects DefaultPageSize. Number is capped so that
// Offset cannot overflow.
func NewPage(number, size int) Page {
	if number < DefaultPage {
		number = DefaultPage
	}

	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}

	if maxNumber := math.MaxInt / size; number > maxNumber {
		number = maxNumber
	}

	return Page{Number: number, Size: size}
}

// Offset saturates at math.MaxInt for windows not built with NewPage.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

func (p Page) TotalPages(total int) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	pages := total / p.Size
	if total%p.Size > 0 {
		pages++
	}
	return pages
}

func (p Page) HasNext(total int) bool {
	return p.Number < p.TotalPages(total)
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}
