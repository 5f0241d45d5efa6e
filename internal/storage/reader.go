package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

type Reader struct {
	Expenses   expense.IExpenseReader
	Categories category.ICategoryReader
	Teams      team.ITeamReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Expenses:   expense.NewReader(exec),
		Categories: category.NewReader(exec),
		Teams:      team.NewReader(exec),
	}
}
