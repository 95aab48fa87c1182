package entity

import (
	"math"
	"time"
)

// StatusFilter selects transactions by their active flag
type StatusFilter string

// Status filters
const (
	StatusActive    StatusFilter = "active"
	StatusCancelled StatusFilter = "cancelled"
	StatusAll       StatusFilter = "all"
)

// SortOrder orders listings by creation time
type SortOrder string

// Sort orders
const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

// Listing limits
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// TransactionFilter is a parsed listing query scoped to one tenant
type TransactionFilter struct {
	TenantID      string
	Type          *TransactionType
	Category      *Category
	PaymentMethod *PaymentMethod
	Source        *Source
	Status        StatusFilter
	CustomerRef   string
	Search        string
	From          *time.Time
	To            *time.Time
	Page          int
	Limit         int
	SortOrder     SortOrder
}

// MaxPage is the last page whose offset fits in an int for the given limit
func MaxPage(limit int) int {
	if limit < 1 {
		limit = 1
	}
	return math.MaxInt / limit
}

// Offset returns the number of rows to skip for the requested page.
// Pages beyond MaxPage are clamped to it.
func (f TransactionFilter) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	return (min(f.Page, MaxPage(f.Limit)) - 1) * f.Limit
}

// TransactionPage is one page of a listing
type TransactionPage struct {
	Items []*Transaction
	Total int64
	Page  int
	Limit int
}

// TotalPages returns how many pages the listing spans
func (p TransactionPage) TotalPages() int {
	if p.Limit <= 0 || p.Total == 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
