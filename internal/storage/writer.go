package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

type Writer struct {
	tx         bob.Tx
	Expenses   expense.IExpenseWriter
	Categories category.ICategoryWriter
	Teams      team.ITeamWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:         tx,
		Expenses:   expense.NewWriter(tx),
		Categories: category.NewWriter(tx),
		Teams:      team.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
