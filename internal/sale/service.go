package sale

import (
	"context"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	ListSales(ctx context.Context, q ListQuery) ([]*Sale, error)
	CountSales(ctx context.Context, f ListFilter) (int64, error)
	SumStats(ctx context.Context, f ListFilter) (*Stats, error)
	InsertSale(ctx context.Context, params CreateParams) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Page is one page of listing results together with the page count for the
// whole filtered set.
type Page struct {
	Sales      []*Sale
	TotalRows  int64
	TotalPages int64
}

// List runs the data query and the count query back to back and derives the
// page count. The two queries share the same predicate but are not wrapped in
// a transaction; rows only ever change through the offline importer, never
// while serving.
func (s *Service) List(ctx context.Context, q ListQuery) (*Page, error) {
	if q.Page < 1 {
		q.Page = DefaultPage
	}

	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}

	sales, err := s.repo.ListSales(ctx, q)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountSales(ctx, q.Filter)
	if err != nil {
		return nil, err
	}

	limit := int64(q.Limit)

	return &Page{
		Sales:      sales,
		TotalRows:  total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// Stats aggregates quantity, total amount and final amount over the filtered
// set. Empty sets yield NULL sums, passed through untouched.
func (s *Service) Stats(ctx context.Context, f ListFilter) (*Stats, error) {
	return s.repo.SumStats(ctx, f)
}

// Insert stores one imported row.
func (s *Service) Insert(ctx context.Context, params CreateParams) error {
	return s.repo.InsertSale(ctx, params)
}
