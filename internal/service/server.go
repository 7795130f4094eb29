package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/auth"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/draft"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/ledger"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/metrics"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/middleware"
	"github.com/AntrikshRawat/spend-manager-f-sub000/pkg/api"
)

// Deps are the collaborators of the Connect services.
type Deps struct {
	Ledger   *ledger.Ledger
	Registry *draft.Registry
	JWT      *auth.JWTManager
	Metrics  *metrics.Metrics

	// Transactions receives submitted drafts. Defaults to Ledger.
	Transactions draft.TransactionService
}

// Register mounts the Connect services on mux and returns the draft service,
// whose sweeper the caller runs.
func Register(mux *http.ServeMux, deps Deps) *DraftService {
	transactions := deps.Transactions
	if transactions == nil {
		transactions = deps.Ledger
	}

	observe := connect.WithInterceptors(
		middleware.MetricsInterceptor(deps.Metrics),
		middleware.LoggingInterceptor(),
	)
	authenticated := connect.WithInterceptors(
		middleware.MetricsInterceptor(deps.Metrics),
		middleware.RequireAuth(deps.JWT),
		middleware.LoggingInterceptor(),
	)

	memberPath, memberHandler := api.NewMemberServiceHandler(NewMemberService(deps.Ledger, deps.JWT), observe)
	mux.Handle(memberPath, memberHandler)

	accountPath, accountHandler := api.NewAccountServiceHandler(NewAccountService(deps.Ledger), authenticated)
	mux.Handle(accountPath, accountHandler)

	draftSvc := NewDraftService(deps.Registry, deps.Ledger, transactions, deps.Metrics)
	draftPath, draftHandler := api.NewDraftServiceHandler(draftSvc, authenticated)
	mux.Handle(draftPath, draftHandler)

	return draftSvc
}
