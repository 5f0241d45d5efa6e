package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	expensev1 "github.com/carson-networks/expense-server/internal/handlers/v1/expense"
	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListTeamExpensesInput is the Huma input for listing a team's expenses.
type ListTeamExpensesInput struct {
	UserID int64  `header:"X-User-Id" doc:"Gateway-injected caller id"`
	TeamID int64  `path:"teamID" doc:"Team id"`
	Cursor string `query:"cursor" doc:"Opaque cursor from a previous response"`
	Limit  int    `query:"limit" doc:"Page size, clamped to [1,100], default 20"`
}

// ListTeamExpensesOutput is the Huma output for listing a team's expenses.
type ListTeamExpensesOutput struct {
	Body expensev1.PageBody
}

// teamExpenseLister is the interface for paging a team's expenses.
type teamExpenseLister interface {
	ListTeamExpenses(ctx context.Context, userID, teamID int64, cursor string, limit int) (*service.Page, error)
}

// ListTeamExpensesHandler handles GET /v1/team/{teamID}/expense.
type ListTeamExpensesHandler struct {
	ExpenseService teamExpenseLister
}

// NewListTeamExpensesHandler creates a new ListTeamExpensesHandler.
func NewListTeamExpensesHandler(svc teamExpenseLister) *ListTeamExpensesHandler {
	return &ListTeamExpensesHandler{ExpenseService: svc}
}

// Register registers the list team expenses endpoint with the Huma API.
func (h *ListTeamExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-team-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/team/{teamID}/expense",
		Summary:     "List team expenses",
		Description: "Returns a cursor-paginated page of all members' expenses in the team, newest first. Any role may read.",
		Tags:        []string{"Teams"},
	}, h.handle)
}

func (h *ListTeamExpensesHandler) handle(ctx context.Context, input *ListTeamExpensesInput) (*ListTeamExpensesOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTeamExpensesMs")
	}
	page, err := h.ExpenseService.ListTeamExpenses(ctx, input.UserID, input.TeamID, input.Cursor, input.Limit)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.Map(err, "failed to list team expenses")
	}

	if logData != nil {
		logData.AddData("expenseCount", page.Size)
	}

	return &ListTeamExpensesOutput{Body: expensev1.PageFromService(page)}, nil
}
