package sale

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/roshinjimmy/sales-management-system/internal/sale"
)

type Handler struct {
	svc *sale.Service
}

func NewHandler(svc *sale.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/stats", h.stats)
}

// parsePositiveInt is parse-or-default: anything that is not a positive
// integer falls back to def. Requests never fail on bad pagination input.
func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}

	return n
}

// splitList turns a comma-separated query value into its parts. An absent
// value means no constraint.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, ",")
}

// parseFilter reads the shared filter subset of the query string. Malformed
// values degrade to "no constraint"; nothing here ever errors.
func parseFilter(values url.Values) sale.ListFilter {
	f := sale.ListFilter{
		Regions:    splitList(values.Get("region")),
		Genders:    splitList(values.Get("gender")),
		Categories: splitList(values.Get("category")),
		Payments:   splitList(values.Get("payment")),
		Tags:       splitList(values.Get("tags")),
		DateRange:  values.Get("date"),
		Search:     values.Get("search"),
	}

	if s := values.Get("ageRange"); s != "" {
		if r, ok := sale.ParseAgeRange(s); ok {
			f.AgeRange = &r
		}
	}

	return f
}

func parseListQuery(values url.Values) sale.ListQuery {
	return sale.ListQuery{
		Filter:   parseFilter(values),
		SortBy:   values.Get("sortBy"),
		SortDesc: values.Get("sortOrder") == "desc",
		Page:     parsePositiveInt(values.Get("page"), sale.DefaultPage),
		Limit:    parsePositiveInt(values.Get("limit"), sale.DefaultLimit),
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), parseListQuery(r.URL.Query()))
	if err != nil {
		serverError(w, "query failed", err)
		return
	}

	writeJSON(w, listResponse{
		Data:       toResponseList(page.Sales),
		TotalPages: page.TotalPages,
	})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), parseFilter(r.URL.Query()))
	if err != nil {
		serverError(w, "stats query failed", err)
		return
	}

	writeJSON(w, toStatsResponse(stats))
}

// serverError logs the database error server-side and hands the client a
// generic 500 with no detail.
func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	_ = json.NewEncoder(w).Encode(map[string]string{"error": "server error"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
