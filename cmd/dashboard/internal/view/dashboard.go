package view

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roshinjimmy/sales-management-system/internal/api"
)

const (
	fetchTimeout   = 30 * time.Second
	searchDebounce = 400 * time.Millisecond
	pageLimit      = 20
)

// Model is the dashboard screen. The api.Query field is the single source of
// truth for filter/sort/page state; every change to it re-issues both fetches
// with a fresh sequence number, and responses carrying a stale sequence are
// discarded so a slow fetch can never overwrite a newer one.
type Model struct {
	client *api.Client

	query api.Query
	seq   int64

	search    textinput.Model
	searchGen int

	table      table.Model
	spinner    spinner.Model
	rows       []api.Transaction
	stats      *api.Stats
	totalPages int64
	loading    bool
	status     string
}

func NewModel(client *api.Client) Model {
	columns := []table.Column{
		{Title: "Transaction ID", Width: 14},
		{Title: "Date", Width: 10},
		{Title: "Customer ID", Width: 11},
		{Title: "Customer Name", Width: 18},
		{Title: "Phone Number", Width: 12},
		{Title: "Gender", Width: 7},
		{Title: "Age", Width: 4},
		{Title: "Product Category", Width: 16},
		{Title: "Qty", Width: 4},
		{Title: "Total Amount", Width: 12},
		{Title: "Customer Region", Width: 15},
		{Title: "Product ID", Width: 10},
		{Title: "Employee Name", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(pageLimit),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "Name, Phone No."
	search.CharLimit = 64
	search.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:  client,
		query:   api.Query{Page: 1, Limit: pageLimit},
		seq:     1,
		search:  search,
		table:   t,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listCmd(m.seq), m.statsCmd(m.seq))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.seq != m.seq {
			// Superseded by a newer fetch.
			return m, nil
		}

		m.loading = false

		if msg.err != nil {
			// Previous rows stay on screen.
			m.status = fmt.Sprintf("Fetch error: %v", msg.err)
			return m, nil
		}

		m.status = ""
		m.rows = msg.result.Data
		m.totalPages = msg.result.TotalPages
		m.refreshTable()

		return m, nil

	case statsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}

		if msg.err != nil {
			return m, nil
		}

		m.stats = msg.stats

		return m, nil

	case searchDebounceMsg:
		if msg.gen != m.searchGen {
			return m, nil
		}

		if m.search.Value() == m.query.Search {
			return m, nil
		}

		return m.applyFilter(func(q *api.Query) {
			q.Search = m.search.Value()
		})

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return m, nil
		}

		before := m.search.Value()

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)

		if m.search.Value() == before {
			return m, cmd
		}

		// Debounce: only the latest edit generation triggers a fetch.
		m.searchGen++
		gen := m.searchGen

		return m, tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{gen: gen}
		}))
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "left":
		return m.setPage(m.query.Page - 1)
	case "right":
		return m.setPage(m.query.Page + 1)
	case "r":
		return m.refetch()
	case "1":
		return m.applyFilter(func(q *api.Query) {
			q.Regions = cycleList(regionOptions, q.Regions)
		})
	case "2":
		return m.applyFilter(func(q *api.Query) {
			q.Genders = cycleList(genderOptions, q.Genders)
		})
	case "3":
		return m.applyFilter(func(q *api.Query) {
			q.AgeRange = cycleValue(ageOptions, q.AgeRange)
		})
	case "4":
		return m.applyFilter(func(q *api.Query) {
			q.Categories = cycleList(categoryOptions, q.Categories)
		})
	case "5":
		return m.applyFilter(func(q *api.Query) {
			q.Tags = cycleList(tagOptions, q.Tags)
		})
	case "6":
		return m.applyFilter(func(q *api.Query) {
			q.Payments = cycleList(paymentOptions, q.Payments)
		})
	case "7":
		return m.applyFilter(func(q *api.Query) {
			q.Date = cycleValue(dateOptions, q.Date)
		})
	case "s":
		return m.applyFilter(func(q *api.Query) {
			q.SortBy = cycleSort(q.SortBy)
		})
	case "o":
		return m.applyFilter(func(q *api.Query) {
			q.SortDesc = !q.SortDesc
		})
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// applyFilter mutates the query, resets the page to 1 and refetches. Every
// filter change goes through here so the page reset is uniform.
func (m Model) applyFilter(mutate func(*api.Query)) (tea.Model, tea.Cmd) {
	mutate(&m.query)
	m.query.Page = 1

	return m.refetch()
}

// setPage changes only the page; filters are left untouched.
func (m Model) setPage(page int) (tea.Model, tea.Cmd) {
	if page < 1 {
		page = 1
	}

	if m.totalPages > 0 && int64(page) > m.totalPages {
		page = int(m.totalPages)
	}

	if page == m.query.Page {
		return m, nil
	}

	m.query.Page = page

	return m.refetch()
}

// refetch issues the listing and stats fetches in parallel under a new
// sequence number.
func (m Model) refetch() (tea.Model, tea.Cmd) {
	m.seq++
	m.loading = true

	return m, tea.Batch(m.listCmd(m.seq), m.statsCmd(m.seq), m.spinner.Tick)
}

func (m Model) listCmd(seq int64) tea.Cmd {
	client := m.client
	query := m.query

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		result, err := client.ListTransactions(ctx, query)

		return listLoadedMsg{seq: seq, result: result, err: err}
	}
}

func (m Model) statsCmd(seq int64) tea.Cmd {
	client := m.client
	query := m.query

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		stats, err := client.Stats(ctx, query)

		return statsLoadedMsg{seq: seq, stats: stats, err: err}
	}
}

func (m *Model) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))

	for _, tx := range m.rows {
		date := "-"
		if tx.Date != nil {
			date = *tx.Date
		}

		age := "-"
		if tx.Age != nil {
			age = strconv.Itoa(*tx.Age)
		}

		rows = append(rows, table.Row{
			tx.TransactionID,
			date,
			orDash(tx.CustomerID),
			orDash(tx.CustomerName),
			orDash(tx.Phone),
			orDash(tx.Gender),
			age,
			orDash(tx.Category),
			strconv.Itoa(tx.Quantity),
			tx.Amount.String(),
			orDash(tx.Region),
			orDash(tx.ProductID),
			orDash(tx.Employee),
		})
	}

	m.table.SetRows(rows)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	cardStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

func (m Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("Sales Management System"),
		"   ",
		m.search.View(),
	)

	filterBar := fmt.Sprintf(
		"[1] Region: %s | [2] Gender: %s | [3] Age: %s | [4] Category: %s | [5] Tags: %s | [6] Payment: %s | [7] Date: %s",
		activeStyle.Render(labelOrAll(m.query.Regions)),
		activeStyle.Render(labelOrAll(m.query.Genders)),
		activeStyle.Render(stringOrAll(m.query.AgeRange)),
		activeStyle.Render(labelOrAll(m.query.Categories)),
		activeStyle.Render(labelOrAll(m.query.Tags)),
		activeStyle.Render(labelOrAll(m.query.Payments)),
		activeStyle.Render(stringOrAll(m.query.Date)),
	)

	order := "asc"
	if m.query.SortDesc {
		order = "desc"
	}

	sortBar := fmt.Sprintf("[s] Sort: %s | [o] Order: %s",
		activeStyle.Render(sortLabel(m.query.SortBy)),
		activeStyle.Render(order),
	)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Total Units Sold", m.statValue(func(s *api.Stats) string { return FormatSum(s.TotalUnits) })),
		m.card("Total Amount", m.statValue(func(s *api.Stats) string { return FormatSum(s.TotalAmount) })),
		m.card("Total Final", m.statValue(func(s *api.Stats) string { return FormatSum(s.TotalFinal) })),
	)

	body := m.table.View()
	if m.loading {
		body = m.spinner.View() + " Loading transactions..."
	}

	pager := fmt.Sprintf("Page %d/%d  (←/→ to change page)", m.query.Page, max(m.totalPages, 1))

	// The full request state as a URL query string, exactly what the server
	// receives.
	request := faintStyle.Render("/api/transactions?" + m.query.Values().Encode())

	lines := []string{header, "", filterBar, sortBar, "", cards, "", body, "", pager, request}

	if m.status != "" {
		lines = append(lines, faintStyle.Render(m.status))
	}

	lines = append(lines, faintStyle.Render("q: quit | /: search | r: refresh"))

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

func (m Model) card(title, value string) string {
	return cardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			faintStyle.Render(title),
			titleStyle.Render(value),
		),
	)
}

func (m Model) statValue(pick func(*api.Stats) string) string {
	if m.stats == nil {
		return "0"
	}

	return pick(m.stats)
}

// cycleList cycles a single-selection list filter through its options,
// wrapping back to unset after the last one.
func cycleList(options []string, current []string) []string {
	cur := ""
	if len(current) > 0 {
		cur = current[0]
	}

	next := cycleValue(options, cur)
	if next == "" {
		return nil
	}

	return []string{next}
}

// Messages

type listLoadedMsg struct {
	seq    int64
	result *api.ListResult
	err    error
}

type statsLoadedMsg struct {
	seq   int64
	stats *api.Stats
	err   error
}

type searchDebounceMsg struct {
	gen int
}
