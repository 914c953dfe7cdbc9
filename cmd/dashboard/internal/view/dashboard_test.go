package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roshinjimmy/sales-management-system/internal/api"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_FilterChangeResetsPage(t *testing.T) {
	m := NewModel(nil)
	m.query.Page = 3
	m.totalPages = 5

	next, cmd := m.Update(keyRune('1'))

	got, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, 1, got.query.Page)
	assert.Equal(t, []string{"North"}, got.query.Regions)
	assert.Equal(t, m.seq+1, got.seq)
	assert.NotNil(t, cmd)
}

func TestModel_FilterCyclesBackToUnset(t *testing.T) {
	m := NewModel(nil)
	m.query.Genders = []string{"Other"}

	next, _ := m.Update(keyRune('2'))

	got := next.(Model)
	assert.Empty(t, got.query.Genders)
}

func TestModel_PageChangePreservesFilters(t *testing.T) {
	m := NewModel(nil)
	m.query.Regions = []string{"West"}
	m.query.Search = "Priya"
	m.totalPages = 4

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})

	got := next.(Model)
	assert.Equal(t, 2, got.query.Page)
	assert.Equal(t, []string{"West"}, got.query.Regions)
	assert.Equal(t, "Priya", got.query.Search)
	assert.NotNil(t, cmd)
}

func TestModel_PageClampedToRange(t *testing.T) {
	m := NewModel(nil)
	m.totalPages = 1

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})

	got := next.(Model)
	assert.Equal(t, 1, got.query.Page)
	assert.Nil(t, cmd)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	got = next.(Model)
	assert.Equal(t, 1, got.query.Page)
	assert.Nil(t, cmd)
}

func TestModel_StaleListResponseDiscarded(t *testing.T) {
	m := NewModel(nil)
	m.seq = 5

	next, _ := m.Update(listLoadedMsg{
		seq:    4,
		result: &api.ListResult{Data: []api.Transaction{{TransactionID: "old"}}, TotalPages: 9},
	})

	got := next.(Model)
	assert.Empty(t, got.rows)
	assert.Zero(t, got.totalPages)
	assert.True(t, got.loading)
}

func TestModel_CurrentListResponseApplied(t *testing.T) {
	m := NewModel(nil)
	m.seq = 5

	next, _ := m.Update(listLoadedMsg{
		seq:    5,
		result: &api.ListResult{Data: []api.Transaction{{TransactionID: "TXN1001", Quantity: 2}}, TotalPages: 3},
	})

	got := next.(Model)
	require.Len(t, got.rows, 1)
	assert.Equal(t, "TXN1001", got.rows[0].TransactionID)
	assert.EqualValues(t, 3, got.totalPages)
	assert.False(t, got.loading)
}

func TestModel_StaleStatsResponseDiscarded(t *testing.T) {
	m := NewModel(nil)
	m.seq = 2

	sum := decimal.NewFromInt(100)

	next, _ := m.Update(statsLoadedMsg{seq: 1, stats: &api.Stats{TotalUnits: &sum}})

	got := next.(Model)
	assert.Nil(t, got.stats)
}

func TestModel_ListErrorKeepsRows(t *testing.T) {
	m := NewModel(nil)
	m.rows = []api.Transaction{{TransactionID: "TXN1001"}}

	next, _ := m.Update(listLoadedMsg{seq: m.seq, err: assert.AnError})

	got := next.(Model)
	assert.Len(t, got.rows, 1)
	assert.NotEmpty(t, got.status)
}

func TestModel_StaleSearchDebounceIgnored(t *testing.T) {
	m := NewModel(nil)
	m.searchGen = 3
	m.search.SetValue("lap")

	next, cmd := m.Update(searchDebounceMsg{gen: 2})

	got := next.(Model)
	assert.Empty(t, got.query.Search)
	assert.Nil(t, cmd)
}

func TestModel_SearchDebounceAppliesLatestValue(t *testing.T) {
	m := NewModel(nil)
	m.searchGen = 3
	m.search.SetValue("laptop")
	m.query.Page = 2

	next, cmd := m.Update(searchDebounceMsg{gen: 3})

	got := next.(Model)
	assert.Equal(t, "laptop", got.query.Search)
	assert.Equal(t, 1, got.query.Page)
	assert.NotNil(t, cmd)
}

func TestCycleValue(t *testing.T) {
	opts := []string{"a", "b"}

	assert.Equal(t, "a", cycleValue(opts, ""))
	assert.Equal(t, "b", cycleValue(opts, "a"))
	assert.Equal(t, "", cycleValue(opts, "b"))
}

func TestCycleSort(t *testing.T) {
	assert.Equal(t, "customer_name", cycleSort(""))
	assert.Equal(t, "date", cycleSort("customer_name"))
	assert.Equal(t, "", cycleSort("total_amount"))
}

func TestFormatSum(t *testing.T) {
	assert.Equal(t, "0", FormatSum(nil))

	d := decimal.RequireFromString("930.00")
	assert.Equal(t, "930.00", FormatSum(&d))
}
