package service

// Pagination limits for collection endpoints.
const (
	DefaultResultsPerPage = 10
	MaxResultsPerPage     = 300
)

// Page describes one requested slice of a collection.
type Page struct {
	// Number is 1-based. Values below 1 are treated as 1.
	Number int

	// ResultsPerPage is clamped to [1, MaxResultsPerPage]; zero or negative
	// values fall back to DefaultResultsPerPage.
	ResultsPerPage int
}

// Normalize applies the default page size and the hard cap.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.ResultsPerPage <= 0 {
		p.ResultsPerPage = DefaultResultsPerPage
	}
	if p.ResultsPerPage > MaxResultsPerPage {
		p.ResultsPerPage = MaxResultsPerPage
	}
	return p
}

// Limit returns the SQL LIMIT for the page.
func (p Page) Limit() uint64 {
	return uint64(p.ResultsPerPage)
}

// Offset returns the SQL OFFSET for the page.
func (p Page) Offset() uint64 {
	return uint64(p.Number-1) * uint64(p.ResultsPerPage)
}

// TotalPages computes the page count for a collection of total rows.
func (p Page) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(p.ResultsPerPage)
	if total%int64(p.ResultsPerPage) != 0 {
		pages++
	}
	return int(pages)
}
