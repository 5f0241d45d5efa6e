package expense

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// FilterParams is the query-string filter shared by the list and the
// statistics endpoints. Everything is optional; values arrive as strings
// and are parsed here so a bad value maps to a 400 with a field name.
type FilterParams struct {
	CategoryID    string `query:"categoryId" doc:"Filter by category id"`
	Category      string `query:"category" doc:"Filter by category name"`
	CategoryMatch string `query:"categoryMatch" doc:"Category name match mode: exact (default) or like"`
	FromDate      string `query:"fromDate" doc:"Inclusive lower bound on expense date, YYYY-MM-DD"`
	ToDate        string `query:"toDate" doc:"Inclusive upper bound on expense date, YYYY-MM-DD"`
	MinAmount     string `query:"minAmount" doc:"Inclusive lower bound on amount"`
	MaxAmount     string `query:"maxAmount" doc:"Inclusive upper bound on amount"`
	HasReceipt    string `query:"hasReceipt" doc:"true keeps only expenses with a receipt, false only those without"`
	TeamID        string `query:"teamId" doc:"Restrict to the caller's expenses shared with this team"`
	Search        string `query:"search" doc:"Case-insensitive substring match on the description"`
}

// parse translates the raw query strings into a service filter request.
func (p *FilterParams) parse() (service.FilterRequest, error) {
	req := service.FilterRequest{
		Category:      p.Category,
		CategoryMatch: p.CategoryMatch,
		Search:        p.Search,
	}

	id, err := parseOptionalInt64(p.CategoryID)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
	}
	req.CategoryID = id

	teamID, err := parseOptionalInt64(p.TeamID)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid teamId", err)
	}
	req.TeamID = teamID

	req.FromDate, err = parseOptionalDate(p.FromDate)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid fromDate", err)
	}
	req.ToDate, err = parseOptionalDate(p.ToDate)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid toDate", err)
	}

	req.MinAmount, err = parseOptionalDecimal(p.MinAmount)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid minAmount", err)
	}
	req.MaxAmount, err = parseOptionalDecimal(p.MaxAmount)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid maxAmount", err)
	}

	if p.HasReceipt != "" {
		hasReceipt, parseErr := strconv.ParseBool(p.HasReceipt)
		if parseErr != nil {
			return req, huma.NewError(http.StatusBadRequest, "invalid hasReceipt", parseErr)
		}
		req.HasReceipt = &hasReceipt
	}

	return req, nil
}

func parseOptionalInt64(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseOptionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListExpensesInput is the Huma input for listing the caller's expenses.
type ListExpensesInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	FilterParams
	Cursor string `query:"cursor" doc:"Opaque cursor from a previous response"`
	Limit  int    `query:"limit" doc:"Page size, clamped to [1,100], default 20"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body PageBody
}

// expenseLister is the interface for filtered expense listing.
type expenseLister interface {
	List(ctx context.Context, userID int64, req service.FilterRequest) (*service.Page, error)
}

// ListExpensesHandler handles GET /v1/expense.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expense",
		Summary:     "List expenses",
		Description: "Returns a filtered, cursor-paginated page of the caller's expenses, newest first.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	req, err := input.FilterParams.parse()
	if err != nil {
		return nil, err
	}
	req.Cursor = input.Cursor
	req.Limit = input.Limit

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listExpensesMs")
	}
	page, err := h.ExpenseService.List(ctx, input.UserID, req)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to list expenses")
	}

	if logData != nil {
		logData.AddData("expenseCount", page.Size)
	}

	return &ListExpensesOutput{Body: PageFromService(page)}, nil
}
