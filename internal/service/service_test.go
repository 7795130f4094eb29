package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/auth"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/draft"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/ledger"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/metrics"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/storage/sqlite"
	"github.com/AntrikshRawat/spend-manager-f-sub000/pkg/api"
)

// switchableTransactions forwards to the ledger unless err is set.
type switchableTransactions struct {
	next draft.TransactionService

	mu  sync.Mutex
	err error
}

func (s *switchableTransactions) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *switchableTransactions) CreateTransaction(ctx context.Context, p draft.Payload) (draft.Receipt, error) {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return draft.Receipt{}, err
	}
	return s.next.CreateTransaction(ctx, p)
}

type testEnv struct {
	server       *httptest.Server
	metrics      *metrics.Metrics
	transactions *switchableTransactions
	members      *api.MemberServiceClient

	accountID string
	ids       map[string]string // display name -> member ID
	tokens    map[string]string // display name -> bearer token
}

// bearer returns a client interceptor that authenticates as the given token.
func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// setupTestServer starts the services over a temporary SQLite database and
// registers Alice, Bob and Carol sharing one account.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	l := ledger.New(store, nil)
	env := &testEnv{
		metrics:      metrics.New(),
		transactions: &switchableTransactions{next: l},
		ids:          make(map[string]string),
		tokens:       make(map[string]string),
	}

	mux := http.NewServeMux()
	Register(mux, Deps{
		Ledger:       l,
		Registry:     draft.NewRegistry(0, time.Hour),
		JWT:          auth.NewJWTManager("test-secret", time.Hour),
		Metrics:      env.metrics,
		Transactions: env.transactions,
	})
	env.server = httptest.NewServer(mux)
	env.members = api.NewMemberServiceClient(http.DefaultClient, env.server.URL)

	t.Cleanup(func() {
		env.server.Close()
		store.Close()
	})

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		env.register(t, name)
	}

	resp, err := env.accounts("Alice").CreateAccount(context.Background(), connect.NewRequest(&api.CreateAccountRequest{
		Name:      "Flat",
		MemberIDs: []string{env.ids["Alice"], env.ids["Bob"], env.ids["Carol"]},
	}))
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	env.accountID = resp.Msg.Account.ID

	return env
}

func (e *testEnv) register(t *testing.T, name string) {
	t.Helper()
	resp, err := e.members.CreateMember(context.Background(), connect.NewRequest(&api.CreateMemberRequest{
		Email:       name + "@example.com",
		DisplayName: name,
	}))
	if err != nil {
		t.Fatalf("CreateMember(%s) failed: %v", name, err)
	}
	e.ids[name] = resp.Msg.Member.ID
	e.tokens[name] = resp.Msg.Token
}

func (e *testEnv) drafts(name string) *api.DraftServiceClient {
	return api.NewDraftServiceClient(http.DefaultClient, e.server.URL,
		connect.WithInterceptors(bearer(e.tokens[name])))
}

func (e *testEnv) accounts(name string) *api.AccountServiceClient {
	return api.NewAccountServiceClient(http.DefaultClient, e.server.URL,
		connect.WithInterceptors(bearer(e.tokens[name])))
}

func (e *testEnv) openDraft(t *testing.T, client *api.DraftServiceClient) *api.Draft {
	t.Helper()
	resp, err := client.OpenDraft(context.Background(), connect.NewRequest(&api.OpenDraftRequest{
		AccountID:   e.accountID,
		Description: "Groceries",
	}))
	if err != nil {
		t.Fatalf("OpenDraft failed: %v", err)
	}
	return resp.Msg.Draft
}

func shares(d *api.Draft) []string {
	out := make([]string, len(d.Participants))
	for i, p := range d.Participants {
		out[i] = p.Share
	}
	return out
}

func assertShares(t *testing.T, d *api.Draft, want ...string) {
	t.Helper()
	got := shares(d)
	if len(got) != len(want) {
		t.Fatalf("expected %d shares, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("shares = %v, want %v", got, want)
		}
	}
}

func assertCode(t *testing.T, err error, want connect.Code) *connect.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %v", err)
	}
	if connectErr.Code() != want {
		t.Fatalf("expected code %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
	return connectErr
}

func TestOpenDraft(t *testing.T) {
	env := setupTestServer(t)
	d := env.openDraft(t, env.drafts("Alice"))

	if d.State != "init" || d.Mode != "manual" {
		t.Errorf("expected init/manual, got %s/%s", d.State, d.Mode)
	}
	if d.Payer != env.ids["Alice"] {
		t.Errorf("expected Alice as payer, got %s", d.Payer)
	}
	if !d.Split {
		t.Error("expected split enabled by default")
	}
	if d.Description != "Groceries" {
		t.Errorf("expected description Groceries, got %q", d.Description)
	}
	names := []string{"Alice", "Bob", "Carol"}
	for i, p := range d.Participants {
		if p.DisplayName != names[i] || !p.Included || p.Share != "" {
			t.Errorf("participant %d: unexpected %+v", i, p)
		}
	}

	if got := testutil.ToFloat64(env.metrics.DraftsOpened); got != 1 {
		t.Errorf("expected 1 draft opened, got %v", got)
	}
}

func TestEqualSplitFlow(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Alice")
	ctx := context.Background()
	d := env.openDraft(t, client)

	resp, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: "100"}))
	if err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	if resp.Msg.Draft.State != "manual" {
		t.Errorf("expected manual after amount, got %s", resp.Msg.Draft.State)
	}

	resp, err = client.SetEqualSplit(ctx, connect.NewRequest(&api.SetEqualSplitRequest{DraftID: d.ID, Enabled: true}))
	if err != nil {
		t.Fatalf("SetEqualSplit failed: %v", err)
	}
	if resp.Msg.Draft.State != "equal" {
		t.Errorf("expected equal state, got %s", resp.Msg.Draft.State)
	}
	assertShares(t, resp.Msg.Draft, "34", "33", "33")

	resp, err = client.SetParticipantIncluded(ctx, connect.NewRequest(&api.SetParticipantIncludedRequest{
		DraftID: d.ID, Index: 2, Included: false,
	}))
	if err != nil {
		t.Fatalf("SetParticipantIncluded failed: %v", err)
	}
	assertShares(t, resp.Msg.Draft, "50", "50", "0")

	resp, err = client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: "101"}))
	if err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	assertShares(t, resp.Msg.Draft, "51", "50", "0")

	submit, err := client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID}))
	if err != nil {
		t.Fatalf("SubmitDraft failed: %v", err)
	}
	if submit.Msg.TransactionID == "" {
		t.Fatal("expected transaction ID")
	}

	// Submitted drafts are gone.
	_, err = client.GetDraft(ctx, connect.NewRequest(&api.GetDraftRequest{DraftID: d.ID}))
	assertCode(t, err, connect.CodeNotFound)

	list, err := env.accounts("Bob").ListTransactions(ctx, connect.NewRequest(&api.ListTransactionsRequest{AccountID: env.accountID}))
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list.Msg.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(list.Msg.Transactions))
	}
	txn := list.Msg.Transactions[0]
	if txn.ID != submit.Msg.TransactionID || txn.Amount != 101 || txn.Description != "Groceries" {
		t.Errorf("unexpected transaction %+v", txn)
	}
	want := []int64{51, 50, 0}
	for i := range want {
		if txn.MemberExpenses[i] != want[i] {
			t.Errorf("member expenses = %v, want %v", txn.MemberExpenses, want)
			break
		}
	}

	if got := testutil.ToFloat64(env.metrics.Submissions.WithLabelValues(metrics.OutcomeAccepted)); got != 1 {
		t.Errorf("expected 1 accepted submission, got %v", got)
	}
}

func TestManualShareMismatch(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Alice")
	ctx := context.Background()
	d := env.openDraft(t, client)

	if _, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: "100"})); err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	for i, share := range []string{"50", "30"} {
		if _, err := client.SetShare(ctx, connect.NewRequest(&api.SetShareRequest{DraftID: d.ID, Index: i, Share: share})); err != nil {
			t.Fatalf("SetShare failed: %v", err)
		}
	}

	_, err := client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID}))
	connectErr := assertCode(t, err, connect.CodeFailedPrecondition)
	if connectErr.Message() != "shares add up to 80, but the amount is 100" {
		t.Errorf("unexpected message %q", connectErr.Message())
	}

	details := connectErr.Details()
	if len(details) != 1 {
		t.Fatalf("expected 1 error detail, got %d", len(details))
	}
	value, err := details[0].Value()
	if err != nil {
		t.Fatalf("failed to decode detail: %v", err)
	}
	fields, ok := value.(*structpb.Struct)
	if !ok {
		t.Fatalf("expected Struct detail, got %T", value)
	}
	if fields.Fields["sum"].GetNumberValue() != 80 || fields.Fields["total"].GetNumberValue() != 100 {
		t.Errorf("unexpected detail %v", fields)
	}

	// The roster stays editable and a corrected draft goes through.
	resp, err := client.SetShare(ctx, connect.NewRequest(&api.SetShareRequest{DraftID: d.ID, Index: 2, Share: "20"}))
	if err != nil {
		t.Fatalf("SetShare failed: %v", err)
	}
	assertShares(t, resp.Msg.Draft, "50", "30", "20")

	if _, err := client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID})); err != nil {
		t.Fatalf("SubmitDraft failed: %v", err)
	}

	if got := testutil.ToFloat64(env.metrics.Submissions.WithLabelValues(metrics.OutcomeInvalid)); got != 1 {
		t.Errorf("expected 1 invalid submission, got %v", got)
	}
	if got := testutil.ToFloat64(env.metrics.ValidationFailures.WithLabelValues("share_mismatch")); got != 1 {
		t.Errorf("expected 1 share mismatch, got %v", got)
	}
}

func TestSetAmountValidation(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Alice")
	ctx := context.Background()
	d := env.openDraft(t, client)

	tests := []struct {
		amount  string
		message string
	}{
		{amount: "100001", message: "amount 100,001 exceeds the limit of 100,000"},
		{amount: "0", message: "amount must be greater than zero"},
		{amount: "12.5", message: `amount must be a whole non-negative number: "12.5"`},
		{amount: "abc", message: `amount must be a whole non-negative number: "abc"`},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			_, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: tt.amount}))
			connectErr := assertCode(t, err, connect.CodeInvalidArgument)
			if connectErr.Message() != tt.message {
				t.Errorf("message = %q, want %q", connectErr.Message(), tt.message)
			}
		})
	}

	// Rejected amounts leave the draft untouched.
	resp, err := client.GetDraft(ctx, connect.NewRequest(&api.GetDraftRequest{DraftID: d.ID}))
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if resp.Msg.Draft.State != "init" || resp.Msg.Draft.Amount != "" {
		t.Errorf("expected untouched draft, got %+v", resp.Msg.Draft)
	}

	if got := testutil.ToFloat64(env.metrics.ValidationFailures.WithLabelValues("amount_out_of_range")); got != 2 {
		t.Errorf("expected 2 out-of-range failures, got %v", got)
	}
}

func TestParticipantErrors(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Alice")
	ctx := context.Background()
	d := env.openDraft(t, client)

	_, err := client.SetShare(ctx, connect.NewRequest(&api.SetShareRequest{DraftID: d.ID, Index: 7, Share: "1"}))
	assertCode(t, err, connect.CodeInvalidArgument)

	if _, err := client.SetParticipantIncluded(ctx, connect.NewRequest(&api.SetParticipantIncludedRequest{
		DraftID: d.ID, Index: 1, Included: false,
	})); err != nil {
		t.Fatalf("SetParticipantIncluded failed: %v", err)
	}
	_, err = client.SetShare(ctx, connect.NewRequest(&api.SetShareRequest{DraftID: d.ID, Index: 1, Share: "5"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestSinglePayerSubmit(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Bob")
	ctx := context.Background()
	d := env.openDraft(t, client)

	if _, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: "40"})); err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	if _, err := client.SetSplit(ctx, connect.NewRequest(&api.SetSplitRequest{DraftID: d.ID, Split: false})); err != nil {
		t.Fatalf("SetSplit failed: %v", err)
	}
	if _, err := client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID})); err != nil {
		t.Fatalf("SubmitDraft failed: %v", err)
	}

	list, err := env.accounts("Bob").ListTransactions(ctx, connect.NewRequest(&api.ListTransactionsRequest{AccountID: env.accountID}))
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	txn := list.Msg.Transactions[0]
	if txn.Split || txn.Payer != env.ids["Bob"] || len(txn.MemberExpenses) != 1 || txn.MemberExpenses[0] != 40 {
		t.Errorf("unexpected single-payer transaction %+v", txn)
	}
}

func TestSubmitServiceFailures(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Alice")
	ctx := context.Background()
	d := env.openDraft(t, client)

	if _, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: "60"})); err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	if _, err := client.SetEqualSplit(ctx, connect.NewRequest(&api.SetEqualSplitRequest{DraftID: d.ID, Enabled: true})); err != nil {
		t.Fatalf("SetEqualSplit failed: %v", err)
	}

	env.transactions.fail(draft.Reject("account is archived"))
	_, err := client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID}))
	connectErr := assertCode(t, err, connect.CodeFailedPrecondition)
	if connectErr.Message() != "account is archived" {
		t.Errorf("expected rejection reason verbatim, got %q", connectErr.Message())
	}

	env.transactions.fail(errors.New("connection refused"))
	_, err = client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID}))
	connectErr = assertCode(t, err, connect.CodeUnavailable)
	if connectErr.Message() != errUnavailable.Error() {
		t.Errorf("expected generic message, got %q", connectErr.Message())
	}

	// Still editable after both failures.
	resp, err := client.GetDraft(ctx, connect.NewRequest(&api.GetDraftRequest{DraftID: d.ID}))
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if resp.Msg.Draft.State != "equal" {
		t.Errorf("expected equal state after failures, got %s", resp.Msg.Draft.State)
	}
	assertShares(t, resp.Msg.Draft, "20", "20", "20")

	env.transactions.fail(nil)
	if _, err := client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID})); err != nil {
		t.Fatalf("SubmitDraft failed: %v", err)
	}

	if got := testutil.ToFloat64(env.metrics.Submissions.WithLabelValues(metrics.OutcomeRejected)); got != 1 {
		t.Errorf("expected 1 rejected submission, got %v", got)
	}
	if got := testutil.ToFloat64(env.metrics.Submissions.WithLabelValues(metrics.OutcomeTransport)); got != 1 {
		t.Errorf("expected 1 transport failure, got %v", got)
	}
}

func TestRefreshParticipants(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Alice")
	ctx := context.Background()
	d := env.openDraft(t, client)

	if _, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: "30"})); err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	if _, err := client.SetEqualSplit(ctx, connect.NewRequest(&api.SetEqualSplitRequest{DraftID: d.ID, Enabled: true})); err != nil {
		t.Fatalf("SetEqualSplit failed: %v", err)
	}

	resp, err := client.RefreshParticipants(ctx, connect.NewRequest(&api.RefreshParticipantsRequest{DraftID: d.ID}))
	if err != nil {
		t.Fatalf("RefreshParticipants failed: %v", err)
	}
	if resp.Msg.Draft.Mode != "manual" {
		t.Errorf("expected manual mode after refresh, got %s", resp.Msg.Draft.Mode)
	}
	assertShares(t, resp.Msg.Draft, "", "", "")
	if resp.Msg.Draft.Amount != "30" {
		t.Errorf("expected amount kept, got %q", resp.Msg.Draft.Amount)
	}
}

func TestCloseDraft(t *testing.T) {
	env := setupTestServer(t)
	client := env.drafts("Alice")
	ctx := context.Background()
	d := env.openDraft(t, client)

	if _, err := client.CloseDraft(ctx, connect.NewRequest(&api.CloseDraftRequest{DraftID: d.ID})); err != nil {
		t.Fatalf("CloseDraft failed: %v", err)
	}

	_, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: "10"}))
	assertCode(t, err, connect.CodeNotFound)
	_, err = client.CloseDraft(ctx, connect.NewRequest(&api.CloseDraftRequest{DraftID: d.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestDraftAccessControl(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	d := env.openDraft(t, env.drafts("Alice"))

	// Other members cannot see Alice's draft.
	_, err := env.drafts("Bob").GetDraft(ctx, connect.NewRequest(&api.GetDraftRequest{DraftID: d.ID}))
	assertCode(t, err, connect.CodeNotFound)

	// Non-members cannot open drafts on the account.
	env.register(t, "Dave")
	_, err = env.drafts("Dave").OpenDraft(ctx, connect.NewRequest(&api.OpenDraftRequest{AccountID: env.accountID}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = env.drafts("Dave").OpenDraft(ctx, connect.NewRequest(&api.OpenDraftRequest{AccountID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)

	// Requests without a token are refused.
	anonymous := api.NewDraftServiceClient(http.DefaultClient, env.server.URL)
	_, err = anonymous.GetDraft(ctx, connect.NewRequest(&api.GetDraftRequest{DraftID: d.ID}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestAccountService(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	resp, err := env.accounts("Carol").GetAccount(ctx, connect.NewRequest(&api.GetAccountRequest{AccountID: env.accountID}))
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	account := resp.Msg.Account
	if account.Name != "Flat" || len(account.Members) != 3 {
		t.Fatalf("unexpected account %+v", account)
	}
	if account.Members[0].DisplayName != "Alice" || account.Members[2].DisplayName != "Carol" {
		t.Errorf("expected members in creation order, got %+v", account.Members)
	}

	env.register(t, "Dave")
	_, err = env.accounts("Dave").GetAccount(ctx, connect.NewRequest(&api.GetAccountRequest{AccountID: env.accountID}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = env.accounts("Dave").CreateAccount(ctx, connect.NewRequest(&api.CreateAccountRequest{
		Name:      "Not mine",
		MemberIDs: []string{env.ids["Alice"]},
	}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = env.accounts("Dave").CreateAccount(ctx, connect.NewRequest(&api.CreateAccountRequest{
		Name:      "Ghosts",
		MemberIDs: []string{env.ids["Dave"], "ghost"},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = env.members.CreateMember(ctx, connect.NewRequest(&api.CreateMemberRequest{
		Email:       "Alice@example.com",
		DisplayName: "Alice again",
	}))
	assertCode(t, err, connect.CodeAlreadyExists)
}

func TestGetBalances(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	submit := func(name, amount string) {
		t.Helper()
		client := env.drafts(name)
		d := env.openDraft(t, client)
		if _, err := client.SetAmount(ctx, connect.NewRequest(&api.SetAmountRequest{DraftID: d.ID, Amount: amount})); err != nil {
			t.Fatalf("SetAmount failed: %v", err)
		}
		if _, err := client.SetEqualSplit(ctx, connect.NewRequest(&api.SetEqualSplitRequest{DraftID: d.ID, Enabled: true})); err != nil {
			t.Fatalf("SetEqualSplit failed: %v", err)
		}
		if _, err := client.SubmitDraft(ctx, connect.NewRequest(&api.SubmitDraftRequest{DraftID: d.ID})); err != nil {
			t.Fatalf("SubmitDraft failed: %v", err)
		}
	}

	// Alice pays 90 and Bob pays 30, both split three ways.
	submit("Alice", "90")
	submit("Bob", "30")

	resp, err := env.accounts("Carol").GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{AccountID: env.accountID}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}

	net := make(map[string]int64)
	for _, b := range resp.Msg.Balances {
		net[b.DisplayName] = b.NetBalance
	}
	if net["Alice"] != 50 || net["Bob"] != -10 || net["Carol"] != -40 {
		t.Errorf("unexpected balances %v", net)
	}

	var settled int64
	for _, debt := range resp.Msg.Debts {
		if debt.To != env.ids["Alice"] {
			t.Errorf("expected every debt to go to Alice, got %+v", debt)
		}
		settled += debt.Amount
	}
	if settled != 50 {
		t.Errorf("expected debts to settle 50, got %d", settled)
	}
}
