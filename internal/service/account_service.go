package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/draft"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/ledger"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/middleware"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/models"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/storage"
	"github.com/AntrikshRawat/spend-manager-f-sub000/pkg/api"
)

var _ api.AccountServiceHandler = (*AccountService)(nil)

// AccountService implements the Connect AccountService. Only members of an
// account can read it.
type AccountService struct {
	ledger *ledger.Ledger
}

// NewAccountService creates a new AccountService backed by the ledger.
func NewAccountService(l *ledger.Ledger) *AccountService {
	return &AccountService{ledger: l}
}

// CreateAccount creates an account. The caller must be one of its members.
func (s *AccountService) CreateAccount(ctx context.Context, req *connect.Request[api.CreateAccountRequest]) (*connect.Response[api.CreateAccountResponse], error) {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	slog.Info("CreateAccount request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.MemberIDs),
	)

	if !containsID(req.Msg.MemberIDs, memberID) {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you must be a member of the account you create"))
	}

	account, err := s.ledger.CreateAccount(ctx, req.Msg.Name, req.Msg.MemberIDs)
	if err != nil {
		slog.Error("CreateAccount failed", "error", err)
		return nil, invalidArgumentOr(err)
	}

	slog.Info("Account created", "account_id", account.ID)

	out, err := s.toAPIAccount(ctx, account)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.CreateAccountResponse{Account: out}), nil
}

// GetAccount returns an account with its members in order.
func (s *AccountService) GetAccount(ctx context.Context, req *connect.Request[api.GetAccountRequest]) (*connect.Response[api.GetAccountResponse], error) {
	account, err := s.authorize(ctx, req.Msg.AccountID)
	if err != nil {
		return nil, err
	}

	out, err := s.toAPIAccount(ctx, account)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.GetAccountResponse{Account: out}), nil
}

// ListTransactions returns an account's transactions, newest first.
func (s *AccountService) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	if _, err := s.authorize(ctx, req.Msg.AccountID); err != nil {
		return nil, err
	}

	txns, err := s.ledger.ListTransactions(ctx, req.Msg.AccountID)
	if err != nil {
		slog.Error("ListTransactions failed", "account_id", req.Msg.AccountID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.Transaction, len(txns))
	for i, txn := range txns {
		out[i] = api.Transaction{
			ID:             txn.ID,
			AccountID:      txn.AccountID,
			Description:    txn.Description,
			Amount:         txn.Amount,
			Payer:          txn.Payer,
			Split:          txn.Split,
			MemberExpenses: txn.MemberExpenses,
			CreatedAt:      txn.CreatedAt,
		}
	}

	slog.Info("ListTransactions successful", "account_id", req.Msg.AccountID, "count", len(out))
	return connect.NewResponse(&api.ListTransactionsResponse{Transactions: out}), nil
}

// GetBalances returns net balances and the debts that settle them.
func (s *AccountService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	account, err := s.authorize(ctx, req.Msg.AccountID)
	if err != nil {
		return nil, err
	}

	balances, debts, err := s.ledger.Balances(ctx, account.ID)
	if err != nil {
		slog.Error("GetBalances failed", "account_id", account.ID, "error", err)
		return nil, toConnectError(err)
	}

	names, err := s.ledger.DisplayNames(ctx, account.Members)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.GetBalancesResponse{
		Balances: make([]api.Balance, len(balances)),
		Debts:    make([]api.Debt, len(debts)),
	}
	for i, b := range balances {
		resp.Balances[i] = api.Balance{
			MemberID:    b.MemberID,
			DisplayName: displayName(names, b.MemberID),
			NetBalance:  b.NetBalance,
			TotalPaid:   b.TotalPaid,
			TotalOwed:   b.TotalOwed,
		}
	}
	for i, d := range debts {
		resp.Debts[i] = api.Debt{From: d.From, To: d.To, Amount: d.Amount}
	}

	slog.Info("GetBalances successful", "account_id", account.ID, "debts", len(debts))
	return connect.NewResponse(resp), nil
}

func (s *AccountService) authorize(ctx context.Context, accountID string) (*models.Account, error) {
	memberID := middleware.GetMemberID(ctx)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}

	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Error("GetAccount failed", "account_id", accountID, "error", err)
		}
		return nil, toConnectError(err)
	}
	if !account.HasMember(memberID) {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you are not a member of this account"))
	}
	return account, nil
}

func (s *AccountService) toAPIAccount(ctx context.Context, account *models.Account) (*api.Account, error) {
	names, err := s.ledger.DisplayNames(ctx, account.Members)
	if err != nil {
		return nil, err
	}
	members := make([]api.Member, len(account.Members))
	for i, id := range account.Members {
		members[i] = api.Member{ID: id, DisplayName: displayName(names, id)}
	}
	return &api.Account{
		ID:        account.ID,
		Name:      account.Name,
		Members:   members,
		CreatedAt: account.CreatedAt,
	}, nil
}

// invalidArgumentOr reports ledger rule violations as invalid arguments.
func invalidArgumentOr(err error) *connect.Error {
	var rejection *draft.RejectionError
	switch {
	case errors.As(err, &rejection):
		return connect.NewError(connect.CodeInvalidArgument, errors.New(rejection.Reason))
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
