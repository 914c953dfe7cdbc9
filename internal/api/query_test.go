package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roshinjimmy/sales-management-system/internal/api"
)

func TestQuery_RoundTrip(t *testing.T) {
	type testCase struct {
		name  string
		query api.Query
	}

	base := api.Query{Page: 1, Limit: 20}

	withRegions := base
	withRegions.Regions = []string{"North", "South"}

	withGender := base
	withGender.Genders = []string{"Female"}

	withCategories := base
	withCategories.Categories = []string{"Electronics", "Clothing"}

	withPayments := base
	withPayments.Payments = []string{"Credit Card"}

	withTags := base
	withTags.Tags = []string{"New", "Sale"}

	withAge := base
	withAge.AgeRange = "18-25"

	withDate := base
	withDate.Date = "Last 7 Days"

	withSearch := base
	withSearch.Search = "911"

	withSort := base
	withSort.SortBy = "date"
	withSort.SortDesc = true

	everything := api.Query{
		Page:       3,
		Limit:      50,
		Regions:    []string{"West"},
		Genders:    []string{"Male"},
		Categories: []string{"Groceries"},
		Payments:   []string{"UPI", "Cash"},
		Tags:       []string{"Popular"},
		AgeRange:   "26-35",
		Date:       "This Year",
		Search:     "sharma",
		SortBy:     "total_amount",
		SortDesc:   false,
	}

	tests := []testCase{
		{name: "Defaults", query: base},
		{name: "Regions", query: withRegions},
		{name: "Gender", query: withGender},
		{name: "Categories", query: withCategories},
		{name: "Payments", query: withPayments},
		{name: "Tags", query: withTags},
		{name: "AgeRange", query: withAge},
		{name: "Date", query: withDate},
		{name: "Search", query: withSearch},
		{name: "Sort", query: withSort},
		{name: "Everything", query: everything},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.query, api.ParseQuery(tt.query.Values()))
		})
	}
}

func TestQuery_FilterValuesOmitsPagination(t *testing.T) {
	q := api.Query{Page: 3, Limit: 50, Regions: []string{"North"}, SortBy: "date"}
	v := q.FilterValues()

	assert.Equal(t, "North", v.Get("region"))
	assert.Empty(t, v.Get("page"))
	assert.Empty(t, v.Get("limit"))
	assert.Empty(t, v.Get("sortBy"))
}

func TestClient_ListTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "South", r.URL.Query().Get("region"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{
				"transactionId": "100042",
				"date":          "2024-03-15",
				"customerName":  "Priya Sharma",
				"amount":        "1499.50",
			}},
			"totalPages": 3,
		})
	}))
	defer srv.Close()

	result, err := api.New(srv.URL).ListTransactions(context.Background(), api.Query{
		Page: 2, Limit: 20, Regions: []string{"South"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TotalPages)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "100042", result.Data[0].TransactionID)
	require.NotNil(t, result.Data[0].Date)
	assert.Equal(t, "2024-03-15", *result.Data[0].Date)
}

func TestClient_Stats_NullSums(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions/stats", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_units":null,"total_amount":null,"total_final":null}`))
	}))
	defer srv.Close()

	stats, err := api.New(srv.URL).Stats(context.Background(), api.Query{})
	require.NoError(t, err)

	assert.Nil(t, stats.TotalUnits)
	assert.Nil(t, stats.TotalAmount)
	assert.Nil(t, stats.TotalFinal)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := api.New(srv.URL).ListTransactions(context.Background(), api.Query{Page: 1, Limit: 20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
