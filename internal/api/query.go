package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is the dashboard's single source of truth: the full filter, sort and
// pagination state, encodable to the server's query string and decodable back
// without loss.
type Query struct {
	Page       int
	Limit      int
	Regions    []string
	Genders    []string
	Categories []string
	Payments   []string
	Tags       []string
	AgeRange   string
	Date       string
	Search     string
	SortBy     string
	SortDesc   bool
}

// Values encodes the listing query string. Page and limit are always present;
// filters only when set, sortOrder only alongside sortBy. That is the shape
// the server's parse-or-default handler expects.
func (q Query) Values() url.Values {
	v := q.FilterValues()

	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))

	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)

		order := "asc"
		if q.SortDesc {
			order = "desc"
		}

		v.Set("sortOrder", order)
	}

	return v
}

// FilterValues encodes only the filter subset, which is what the stats
// endpoint takes.
func (q Query) FilterValues() url.Values {
	v := url.Values{}

	setList := func(key string, list []string) {
		if len(list) > 0 {
			v.Set(key, strings.Join(list, ","))
		}
	}

	setList("region", q.Regions)
	setList("gender", q.Genders)
	setList("category", q.Categories)
	setList("payment", q.Payments)
	setList("tags", q.Tags)

	if q.AgeRange != "" {
		v.Set("ageRange", q.AgeRange)
	}

	if q.Date != "" {
		v.Set("date", q.Date)
	}

	if q.Search != "" {
		v.Set("search", q.Search)
	}

	return v
}

// ParseQuery rebuilds a Query from its encoded form. Values()/ParseQuery are
// inverses for any state Values can produce.
func ParseQuery(v url.Values) Query {
	splitList := func(key string) []string {
		if s := v.Get(key); s != "" {
			return strings.Split(s, ",")
		}

		return nil
	}

	return Query{
		Page:       parsePositiveInt(v.Get("page"), 1),
		Limit:      parsePositiveInt(v.Get("limit"), 20),
		Regions:    splitList("region"),
		Genders:    splitList("gender"),
		Categories: splitList("category"),
		Payments:   splitList("payment"),
		Tags:       splitList("tags"),
		AgeRange:   v.Get("ageRange"),
		Date:       v.Get("date"),
		Search:     v.Get("search"),
		SortBy:     v.Get("sortBy"),
		SortDesc:   v.Get("sortOrder") == "desc",
	}
}

func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}

	return n
}
