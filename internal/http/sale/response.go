package sale

import (
	"github.com/shopspring/decimal"

	"github.com/roshinjimmy/sales-management-system/internal/sale"
)

type listResponse struct {
	Data       []saleResponse `json:"data"`
	TotalPages int64          `json:"totalPages"`
}

// saleResponse is the client-facing row shape. Only a subset of the persisted
// columns is exposed; date is truncated to YYYY-MM-DD and stays null when the
// row has no date.
type saleResponse struct {
	TransactionID string          `json:"transactionId"`
	Date          *string         `json:"date"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	Phone         string          `json:"phone"`
	Gender        string          `json:"gender"`
	Age           *int            `json:"age"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
	Region        string          `json:"region"`
	ProductID     string          `json:"productId"`
	Employee      string          `json:"employee"`
}

func toResponse(s *sale.Sale) saleResponse {
	resp := saleResponse{
		TransactionID: s.TransactionID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Phone:         s.PhoneNumber,
		Gender:        s.Gender,
		Age:           s.Age,
		Category:      s.ProductCategory,
		Quantity:      s.Quantity,
		Amount:        s.TotalAmount,
		Region:        s.CustomerRegion,
		ProductID:     s.ProductID,
		Employee:      s.EmployeeName,
	}

	if s.Date != nil {
		d := s.Date.Format("2006-01-02")
		resp.Date = &d
	}

	return resp
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}

// statsResponse passes NULL sums through as JSON null; defaulting to zero is
// the client's job.
type statsResponse struct {
	TotalUnits  *decimal.Decimal `json:"total_units"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	TotalFinal  *decimal.Decimal `json:"total_final"`
}

func toStatsResponse(stats *sale.Stats) statsResponse {
	return statsResponse{
		TotalUnits:  nullable(stats.TotalUnits),
		TotalAmount: nullable(stats.TotalAmount),
		TotalFinal:  nullable(stats.TotalFinal),
	}
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}

	return &d.Decimal
}
