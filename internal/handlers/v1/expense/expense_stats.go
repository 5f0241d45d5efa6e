package expense

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ExpenseStatsInput is the Huma input for expense statistics. It accepts
// the same filters as the list endpoint; cursor and limit do not apply.
type ExpenseStatsInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	FilterParams
}

// CategoryStat is one entry of the per-category breakdown.
type CategoryStat struct {
	CategoryID  int64  `json:"categoryID" doc:"Category id"`
	TotalAmount string `json:"totalAmount" doc:"Sum of amounts in this category"`
}

// DailyStat is one entry of the per-day breakdown.
type DailyStat struct {
	Date        string `json:"date" doc:"Expense date, YYYY-MM-DD"`
	TotalAmount string `json:"totalAmount" doc:"Sum of amounts on this date"`
	Count       int64  `json:"count" doc:"Number of expenses on this date"`
}

// ExpenseStatsResponseBody is the response body for expense statistics.
type ExpenseStatsResponseBody struct {
	TotalAmount string         `json:"totalAmount" doc:"Sum of all matching amounts, 0.00 when nothing matches"`
	Count       int64          `json:"count" doc:"Number of matching expenses"`
	ByCategory  []CategoryStat `json:"byCategory" doc:"Per-category totals"`
	ByDate      []DailyStat    `json:"byDate" doc:"Per-day totals, ascending by date"`
}

// ExpenseStatsOutput is the Huma output for expense statistics.
type ExpenseStatsOutput struct {
	Body ExpenseStatsResponseBody
}

// expenseAggregator is the interface for expense statistics.
type expenseAggregator interface {
	Statistics(ctx context.Context, userID int64, req service.FilterRequest) (*service.Stats, error)
}

// ExpenseStatsHandler handles GET /v1/expense/stats.
type ExpenseStatsHandler struct {
	ExpenseService expenseAggregator
}

// NewExpenseStatsHandler creates a new ExpenseStatsHandler.
func NewExpenseStatsHandler(svc expenseAggregator) *ExpenseStatsHandler {
	return &ExpenseStatsHandler{ExpenseService: svc}
}

// Register registers the expense statistics endpoint with the Huma API.
func (h *ExpenseStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expense-stats",
		Method:      http.MethodGet,
		Path:        "/v1/expense/stats",
		Summary:     "Expense statistics",
		Description: "Aggregates every expense matching the filter: total, count, per-category and per-day breakdowns.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ExpenseStatsHandler) handle(ctx context.Context, input *ExpenseStatsInput) (*ExpenseStatsOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	req, err := input.FilterParams.parse()
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("expenseStatsMs")
	}
	stats, err := h.ExpenseService.Statistics(ctx, input.UserID, req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to aggregate expenses")
	}

	resp := ExpenseStatsResponseBody{
		TotalAmount: stats.TotalAmount.StringFixed(2),
		Count:       stats.Count,
		ByCategory:  make([]CategoryStat, 0, len(stats.ByCategory)),
		ByDate:      make([]DailyStat, len(stats.ByDate)),
	}
	for categoryID, total := range stats.ByCategory {
		resp.ByCategory = append(resp.ByCategory, CategoryStat{
			CategoryID:  categoryID,
			TotalAmount: total.StringFixed(2),
		})
	}
	sort.Slice(resp.ByCategory, func(i, j int) bool {
		return resp.ByCategory[i].CategoryID < resp.ByCategory[j].CategoryID
	})
	for i, day := range stats.ByDate {
		resp.ByDate[i] = DailyStat{
			Date:        day.Date.Format(time.DateOnly),
			TotalAmount: day.TotalAmount.StringFixed(2),
			Count:       day.Count,
		}
	}

	return &ExpenseStatsOutput{Body: resp}, nil
}
