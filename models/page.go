package models

// PageSize is the fixed number of responses per admin search page.
const PageSize = 20

// Page is one bounded, ordered slice of admin search results plus the
// pagination metadata the dashboard needs to render navigation controls.
//
// Page numbers are 1-based. Requesting a page beyond the last available
// one yields an empty Responses slice with TotalRecords and TotalPages
// still reflecting the full result set.
type Page struct {
	// Responses holds at most PageSize rows, ordered by creation
	// timestamp descending (most recent first).
	Responses []Response `json:"responses"`

	// Number is the 1-based page number that was requested.
	Number int `json:"page"`

	// TotalRecords is the total number of rows matching the search query.
	TotalRecords int `json:"total_records"`

	// TotalPages is ceil(TotalRecords / PageSize).
	TotalPages int `json:"total_pages"`

	// HasPrev reports whether a previous page exists (Number > 1).
	HasPrev bool `json:"has_prev"`

	// HasNext reports whether a next page exists (Number < TotalPages).
	HasNext bool `json:"has_next"`
}

// EmptyPage returns a zero-result Page for the given page number.
// Used both for queries matching nothing and for the deliberate
// degrade-to-empty behavior when the store fails during a search.
func EmptyPage(number int) Page {
	return Page{Responses: []Response{}, Number: number}
}
