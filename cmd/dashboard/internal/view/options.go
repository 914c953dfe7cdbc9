package view

// Filter options offered by the dashboard. "Today" is listed even though the
// server defines no predicate for it; selecting it leaves the rows unfiltered.
var (
	regionOptions   = []string{"North", "South", "East", "West"}
	genderOptions   = []string{"Male", "Female", "Other"}
	ageOptions      = []string{"18-25", "26-35", "36-45", "46-60", "60+"}
	categoryOptions = []string{"Electronics", "Clothing", "Groceries", "Accessories"}
	tagOptions      = []string{"New", "Sale", "Popular", "Limited"}
	paymentOptions  = []string{"Cash", "Credit Card", "UPI", "Net Banking"}
	dateOptions     = []string{"Today", "Last 7 Days", "Last 30 Days", "This Year"}
)

type sortOption struct {
	label string
	value string
}

var sortOptions = []sortOption{
	{label: "None", value: ""},
	{label: "Customer Name", value: "customer_name"},
	{label: "Date", value: "date"},
	{label: "Quantity", value: "quantity"},
	{label: "Total Amount", value: "total_amount"},
}

// cycleValue steps through options, wrapping back to "" (no filter) after the
// last one.
func cycleValue(options []string, current string) string {
	for i, opt := range options {
		if opt != current {
			continue
		}

		if i == len(options)-1 {
			return ""
		}

		return options[i+1]
	}

	return options[0]
}

// cycleSort steps through the sort options by value.
func cycleSort(current string) string {
	for i, opt := range sortOptions {
		if opt.value != current {
			continue
		}

		return sortOptions[(i+1)%len(sortOptions)].value
	}

	return sortOptions[0].value
}

func sortLabel(value string) string {
	for _, opt := range sortOptions {
		if opt.value == value {
			return opt.label
		}
	}

	return "None"
}
