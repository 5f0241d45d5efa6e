package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/handlers/v1/category"
	"github.com/carson-networks/expense-server/internal/handlers/v1/expense"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/handlers/v1/team"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("expense-server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	expense.NewListExpensesHandler(r.Service.ExpenseFilter).Register(humaAPI)
	expense.NewExpenseStatsHandler(r.Service.ExpenseFilter).Register(humaAPI)
	expense.NewCreateExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewUpdateExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewShareExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewAttachReceiptHandler(r.Operator).Register(humaAPI)

	team.NewCreateTeamHandler(r.Operator).Register(humaAPI)
	team.NewListTeamsHandler(r.Service.Team).Register(humaAPI)
	team.NewGetTeamHandler(r.Service.Team).Register(humaAPI)
	team.NewUpdateTeamHandler(r.Operator).Register(humaAPI)
	team.NewDeleteTeamHandler(r.Operator).Register(humaAPI)
	team.NewAddMemberHandler(r.Operator).Register(humaAPI)
	team.NewChangeMemberRoleHandler(r.Operator).Register(humaAPI)
	team.NewRemoveMemberHandler(r.Operator).Register(humaAPI)
	team.NewListTeamExpensesHandler(r.Service.ExpenseFilter).Register(humaAPI)

	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
