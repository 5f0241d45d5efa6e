package expense

import (
	"time"

	"github.com/carson-networks/expense-server/internal/service"
)

// Expense is the API response model for an expense.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID          int64  `json:"id" doc:"Expense id"`
	UserID      int64  `json:"userID" doc:"Id of the user who recorded the expense"`
	CategoryID  int64  `json:"categoryID" doc:"Category id"`
	TeamID      *int64 `json:"teamID,omitempty" doc:"Team id when the expense is shared with a team"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Description string `json:"description" doc:"Free-form description"`
	ExpenseDate string `json:"expenseDate" doc:"Expense date, YYYY-MM-DD"`
	HasReceipt  bool   `json:"hasReceipt" doc:"Whether a receipt is attached"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(e service.Expense) Expense {
	return Expense{
		ID:          e.ID,
		UserID:      e.UserID,
		CategoryID:  e.CategoryID,
		TeamID:      e.TeamID,
		Amount:      e.Amount.StringFixed(2),
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.Format(time.DateOnly),
		HasReceipt:  e.HasReceipt,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

// PageBody is the shared shape of every paginated expense response.
type PageBody struct {
	Expenses   []Expense `json:"expenses" doc:"Page of expenses"`
	NextCursor string    `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
	HasNext    bool      `json:"hasNext" doc:"Whether a following page exists"`
	Size       int       `json:"size" doc:"Number of expenses in this page"`
}

// PageFromService converts a service page into the response body shape.
func PageFromService(page *service.Page) PageBody {
	body := PageBody{
		Expenses:   make([]Expense, len(page.Items)),
		NextCursor: page.NextCursor,
		HasNext:    page.HasNext,
		Size:       page.Size,
	}
	for i, item := range page.Items {
		body.Expenses[i] = fromService(item)
	}
	return body
}
