package service

import (
	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	ACL           *TeamACL
	ExpenseFilter *ExpenseFilterService
	Team          *TeamService
	Category      *CategoryService
}

// NewService creates a new Service over the given storage.
func NewService(store *storage.Storage) *Service {
	acl := NewTeamACL(store.Reader.Teams)
	return &Service{
		ACL:           acl,
		ExpenseFilter: NewExpenseFilterService(store.Reader, acl),
		Team:          NewTeamService(store.Reader, acl),
		Category:      NewCategoryService(store.Reader),
	}
}
