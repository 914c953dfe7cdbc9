package store

import (
	"fmt"
	"strings"

	"github.com/roshinjimmy/sales-management-system/internal/sale"
)

// sortColumns whitelists ORDER BY targets. Sorting goes through this map so a
// sortBy value can never inject an arbitrary column expression. Numeric
// columns are stored in their imported text form and cast for ordering.
var sortColumns = map[string]string{
	sale.SortCustomerName:  "LOWER(customer_name)",
	sale.SortDate:          "date",
	sale.SortQuantity:      "quantity::int",
	sale.SortTotalAmount:   "total_amount::numeric",
	sale.SortTransactionID: "transaction_id::bigint",
	sale.SortID:            "id",
}

// orderColumn resolves a requested sort column, falling back to the surrogate
// id for anything not in the whitelist.
func orderColumn(sortBy string) string {
	if col, ok := sortColumns[sortBy]; ok {
		return col
	}

	return sortColumns[sale.SortID]
}

// searchColumns are OR-matched against a single shared pattern parameter.
var searchColumns = []string{
	"transaction_id",
	"customer_name",
	"phone_number",
	"product_name",
	"product_category",
	"tags",
	"employee_name",
}

// filterClause translates a ListFilter into a WHERE clause (empty string when
// no filter is set) and its ordered parameter list. The same clause and args
// serve both the data query and the count query; the caller appends LIMIT and
// OFFSET parameters after these. Predicates are appended in a fixed order so
// placeholder numbering and the args slice stay in lockstep.
func filterClause(f sale.ListFilter) (string, []any) {
	var conds []string

	var args []any

	place := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Regions) > 0 {
		conds = append(conds, "customer_region = ANY("+place(f.Regions)+")")
	}

	if len(f.Genders) > 0 {
		conds = append(conds, "gender = ANY("+place(f.Genders)+")")
	}

	if len(f.Categories) > 0 {
		conds = append(conds, "product_category = ANY("+place(f.Categories)+")")
	}

	if len(f.Payments) > 0 {
		conds = append(conds, "payment_method = ANY("+place(f.Payments)+")")
	}

	if len(f.Tags) > 0 {
		conds = append(conds, "tags ILIKE "+place(sale.TagPattern(f.Tags)))
	}

	if f.AgeRange != nil {
		lo := place(f.AgeRange.Min)
		hi := place(f.AgeRange.Max)
		conds = append(conds, "age BETWEEN "+lo+" AND "+hi)
	}

	// "Today" is offered by the dashboard but has no predicate here; rows are
	// not filtered when it is selected.
	switch f.DateRange {
	case sale.DateLast7Days:
		conds = append(conds, "date >= NOW() - INTERVAL '7 days'")
	case sale.DateLast30Days:
		conds = append(conds, "date >= NOW() - INTERVAL '30 days'")
	case sale.DateThisYear:
		conds = append(conds, "EXTRACT(YEAR FROM date) = EXTRACT(YEAR FROM NOW())")
	}

	if strings.TrimSpace(f.Search) != "" {
		p := place("%" + f.Search + "%")

		ors := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			ors[i] = col + " ILIKE " + p
		}

		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}
