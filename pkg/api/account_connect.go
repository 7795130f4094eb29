package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// AccountServiceName is the fully-qualified name of the AccountService.
const AccountServiceName = "spendmanager.v1.AccountService"

// Procedure paths of the AccountService.
const (
	AccountServiceCreateAccountProcedure    = "/spendmanager.v1.AccountService/CreateAccount"
	AccountServiceGetAccountProcedure       = "/spendmanager.v1.AccountService/GetAccount"
	AccountServiceListTransactionsProcedure = "/spendmanager.v1.AccountService/ListTransactions"
	AccountServiceGetBalancesProcedure      = "/spendmanager.v1.AccountService/GetBalances"
)

// AccountServiceHandler manages accounts and reads their transactions and balances.
type AccountServiceHandler interface {
	CreateAccount(context.Context, *connect.Request[CreateAccountRequest]) (*connect.Response[CreateAccountResponse], error)
	GetAccount(context.Context, *connect.Request[GetAccountRequest]) (*connect.Response[GetAccountResponse], error)
	ListTransactions(context.Context, *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
}

// NewAccountServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAccountServiceHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(AccountServiceCreateAccountProcedure, connect.NewUnaryHandler(AccountServiceCreateAccountProcedure, svc.CreateAccount, opts...))
	mux.Handle(AccountServiceGetAccountProcedure, connect.NewUnaryHandler(AccountServiceGetAccountProcedure, svc.GetAccount, opts...))
	mux.Handle(AccountServiceListTransactionsProcedure, connect.NewUnaryHandler(AccountServiceListTransactionsProcedure, svc.ListTransactions, opts...))
	mux.Handle(AccountServiceGetBalancesProcedure, connect.NewUnaryHandler(AccountServiceGetBalancesProcedure, svc.GetBalances, opts...))
	return "/" + AccountServiceName + "/", mux
}

// AccountServiceClient is a client for the AccountService.
type AccountServiceClient struct {
	createAccount    *connect.Client[CreateAccountRequest, CreateAccountResponse]
	getAccount       *connect.Client[GetAccountRequest, GetAccountResponse]
	listTransactions *connect.Client[ListTransactionsRequest, ListTransactionsResponse]
	getBalances      *connect.Client[GetBalancesRequest, GetBalancesResponse]
}

// NewAccountServiceClient constructs a client for the AccountService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewAccountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AccountServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &AccountServiceClient{
		createAccount: connect.NewClient[CreateAccountRequest, CreateAccountResponse](httpClient, baseURL+AccountServiceCreateAccountProcedure, opts...),
		getAccount: connect.NewClient[GetAccountRequest, GetAccountResponse](httpClient, baseURL+AccountServiceGetAccountProcedure, opts...),
		listTransactions: connect.NewClient[ListTransactionsRequest, ListTransactionsResponse](httpClient, baseURL+AccountServiceListTransactionsProcedure, opts...),
		getBalances: connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+AccountServiceGetBalancesProcedure, opts...),
	}
}

// CreateAccount calls spendmanager.v1.AccountService.CreateAccount.
func (c *AccountServiceClient) CreateAccount(ctx context.Context, req *connect.Request[CreateAccountRequest]) (*connect.Response[CreateAccountResponse], error) {
	return c.createAccount.CallUnary(ctx, req)
}

// GetAccount calls spendmanager.v1.AccountService.GetAccount.
func (c *AccountServiceClient) GetAccount(ctx context.Context, req *connect.Request[GetAccountRequest]) (*connect.Response[GetAccountResponse], error) {
	return c.getAccount.CallUnary(ctx, req)
}

// ListTransactions calls spendmanager.v1.AccountService.ListTransactions.
func (c *AccountServiceClient) ListTransactions(ctx context.Context, req *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

// GetBalances calls spendmanager.v1.AccountService.GetBalances.
func (c *AccountServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}
