// Package salescsv parses the bulk sales export consumed by cmd/import.
// The file is a plain comma-separated dump with one header row; columns are
// located by header name so reordered exports still parse.
package salescsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/roshinjimmy/sales-management-system/internal/encoding"
	"github.com/roshinjimmy/sales-management-system/internal/sale"
)

// Header names as they appear in the export.
const (
	colTransactionID = "Transaction ID"
	colDate          = "Date"
	colCustomerID    = "Customer ID"
	colCustomerName  = "Customer Name"
	colPhoneNumber   = "Phone Number"
	colGender        = "Gender"
	colAge           = "Age"
	colRegion        = "Customer Region"
	colCustomerType  = "Customer Type"
	colProductID     = "Product ID"
	colProductName   = "Product Name"
	colBrand         = "Brand"
	colCategory      = "Product Category"
	colTags          = "Tags"
	colQuantity      = "Quantity"
	colPricePerUnit  = "Price per Unit"
	colDiscount      = "Discount Percentage"
	colTotalAmount   = "Total Amount"
	colFinalAmount   = "Final Amount"
	colPayment       = "Payment Method"
	colOrderStatus   = "Order Status"
	colDeliveryType  = "Delivery Type"
	colStoreID       = "Store ID"
	colStoreLocation = "Store Location"
	colSalespersonID = "Salesperson ID"
	colEmployeeName  = "Employee Name"
)

// dateLayouts are tried in order; a date that matches none of them imports
// as NULL rather than failing the row.
var dateLayouts = []string{
	time.DateOnly,
	"02-01-2006",
	"02/01/2006",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// colIndex maps header names to their position in the row.
type colIndex map[string]int

func (c colIndex) cell(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// Parse streams the CSV and returns one CreateParams per usable data row.
// Rows without a transaction id or with unparsable numeric fields are
// skipped; a skipped row never aborts the rest of the file.
func (p *Parser) Parse(r io.Reader) ([]sale.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(colIndex, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{colTransactionID, colDate, colTotalAmount} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var params []sale.CreateParams

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			// Malformed CSV line; skip it and keep going.
			continue
		}

		cp, ok := parseRow(cols, row)
		if !ok {
			continue
		}

		params = append(params, cp)
	}

	return params, nil
}

func parseRow(cols colIndex, row []string) (sale.CreateParams, bool) {
	txID := cols.cell(row, colTransactionID)
	if txID == "" {
		return sale.CreateParams{}, false
	}

	quantity, err := strconv.Atoi(cols.cell(row, colQuantity))
	if err != nil {
		return sale.CreateParams{}, false
	}

	totalAmount, err := decimal.NewFromString(cols.cell(row, colTotalAmount))
	if err != nil {
		return sale.CreateParams{}, false
	}

	finalAmount, err := decimal.NewFromString(cols.cell(row, colFinalAmount))
	if err != nil {
		return sale.CreateParams{}, false
	}

	pricePerUnit, err := decimal.NewFromString(cols.cell(row, colPricePerUnit))
	if err != nil {
		return sale.CreateParams{}, false
	}

	// Discount defaults to zero when absent or unparsable.
	discount, err := decimal.NewFromString(cols.cell(row, colDiscount))
	if err != nil {
		discount = decimal.Zero
	}

	return sale.CreateParams{
		TransactionID:      txID,
		Date:               parseDate(cols.cell(row, colDate)),
		CustomerID:         cols.cell(row, colCustomerID),
		CustomerName:       cols.cell(row, colCustomerName),
		PhoneNumber:        cols.cell(row, colPhoneNumber),
		Gender:             cols.cell(row, colGender),
		Age:                parseAge(cols.cell(row, colAge)),
		CustomerRegion:     cols.cell(row, colRegion),
		CustomerType:       cols.cell(row, colCustomerType),
		ProductID:          cols.cell(row, colProductID),
		ProductName:        cols.cell(row, colProductName),
		Brand:              cols.cell(row, colBrand),
		ProductCategory:    cols.cell(row, colCategory),
		Tags:               cols.cell(row, colTags),
		Quantity:           quantity,
		PricePerUnit:       pricePerUnit,
		DiscountPercentage: discount,
		TotalAmount:        totalAmount,
		FinalAmount:        finalAmount,
		PaymentMethod:      cols.cell(row, colPayment),
		OrderStatus:        cols.cell(row, colOrderStatus),
		DeliveryType:       cols.cell(row, colDeliveryType),
		StoreID:            cols.cell(row, colStoreID),
		StoreLocation:      cols.cell(row, colStoreLocation),
		SalespersonID:      cols.cell(row, colSalespersonID),
		EmployeeName:       cols.cell(row, colEmployeeName),
	}, true
}

// parseDate returns nil for empty or unrecognized dates; the row still
// imports with a NULL date.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

// parseAge returns nil for empty or non-numeric ages.
func parseAge(s string) *int {
	if s == "" {
		return nil
	}

	age, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &age
}
