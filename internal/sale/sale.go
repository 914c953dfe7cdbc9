package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents one imported sales transaction row.
//
// TransactionID is the business-meaningful external key; ID is the
// database-assigned surrogate used for default ordering. Numeric columns are
// stored in their imported text representation and cast explicitly when a
// numeric sort is requested.
type Sale struct {
	ID                 int64
	TransactionID      string
	Date               *time.Time
	CustomerID         string
	CustomerName       string
	PhoneNumber        string
	Gender             string
	Age                *int
	CustomerRegion     string
	CustomerType       string
	ProductID          string
	ProductName        string
	Brand              string
	ProductCategory    string
	Tags               string
	Quantity           int
	PricePerUnit       decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalAmount        decimal.Decimal
	FinalAmount        decimal.Decimal
	PaymentMethod      string
	OrderStatus        string
	DeliveryType       string
	StoreID            string
	StoreLocation      string
	SalespersonID      string
	EmployeeName       string
}

// CreateParams carries one CSV row's worth of data into the store.
type CreateParams struct {
	TransactionID      string
	Date               *time.Time
	CustomerID         string
	CustomerName       string
	PhoneNumber        string
	Gender             string
	Age                *int
	CustomerRegion     string
	CustomerType       string
	ProductID          string
	ProductName        string
	Brand              string
	ProductCategory    string
	Tags               string
	Quantity           int
	PricePerUnit       decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalAmount        decimal.Decimal
	FinalAmount        decimal.Decimal
	PaymentMethod      string
	OrderStatus        string
	DeliveryType       string
	StoreID            string
	StoreLocation      string
	SalespersonID      string
	EmployeeName       string
}

// Stats holds the aggregate sums over a (possibly filtered) row set.
// Sums over an empty set are SQL NULL and stay NULL here; callers decide
// how to default them.
type Stats struct {
	TotalUnits  decimal.NullDecimal
	TotalAmount decimal.NullDecimal
	TotalFinal  decimal.NullDecimal
}
