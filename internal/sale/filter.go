package sale

import (
	"strconv"
	"strings"
)

// Date range filter values recognized by the store. The dashboard also offers
// "Today", which has never had a matching predicate; rows are not filtered
// when it is selected.
const (
	DateLast7Days  = "Last 7 Days"
	DateLast30Days = "Last 30 Days"
	DateThisYear   = "This Year"
)

// Sort columns accepted by ListSales. Anything else sorts by the surrogate id.
const (
	SortCustomerName  = "customer_name"
	SortDate          = "date"
	SortQuantity      = "quantity"
	SortTotalAmount   = "total_amount"
	SortTransactionID = "transaction_id"
	SortID            = "id"
)

// AgeRange is an inclusive [Min, Max] bound on customer age.
type AgeRange struct {
	Min int
	Max int
}

// ParseAgeRange parses a "<min>-<max>" string. ok is false for anything
// malformed (missing separator, non-numeric parts), in which case the caller
// applies no age predicate. Parsing is total: bad input never reaches the
// query layer.
func ParseAgeRange(s string) (AgeRange, bool) {
	minPart, maxPart, found := strings.Cut(s, "-")
	if !found {
		return AgeRange{}, false
	}

	minAge, err := strconv.Atoi(strings.TrimSpace(minPart))
	if err != nil {
		return AgeRange{}, false
	}

	maxAge, err := strconv.Atoi(strings.TrimSpace(maxPart))
	if err != nil {
		return AgeRange{}, false
	}

	return AgeRange{Min: minAge, Max: maxAge}, true
}

// TagPattern builds the ILIKE pattern used for multi-tag filtering. The
// selected tags are rejoined into one comma-separated literal and matched as
// a single substring, so {A,B} only matches rows whose tag string contains
// "A,B" in that order. Loose and order-sensitive, but it is the behavior the
// dashboard has always had; if per-tag matching is ever wanted, this is the
// one place to change.
func TagPattern(tags []string) string {
	return "%" + strings.Join(tags, ",") + "%"
}

// ListFilter is the open set of optional row constraints. Zero values mean
// "no constraint".
type ListFilter struct {
	Regions    []string
	Genders    []string
	Categories []string
	Payments   []string
	Tags       []string
	AgeRange   *AgeRange
	DateRange  string
	Search     string
}

// ListQuery is a ListFilter plus sorting and pagination.
type ListQuery struct {
	Filter   ListFilter
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}
