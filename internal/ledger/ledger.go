// Package ledger is the transaction service and member directory behind drafts.
//
// It enforces the business rules a structurally valid allocation can still
// break (payer membership, alignment with the account's member order, sums),
// persists accepted transactions, and aggregates balances across them.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/calculator"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/draft"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/models"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/notify"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/storage"
)

var (
	_ draft.TransactionService = (*Ledger)(nil)
	_ draft.Directory          = (*Ledger)(nil)
)

// Ledger implements draft.TransactionService and draft.Directory over a store.
type Ledger struct {
	store     storage.Store
	publisher notify.Publisher
	now       func() time.Time
}

// New returns a ledger. A nil publisher discards events.
func New(store storage.Store, publisher notify.Publisher) *Ledger {
	if publisher == nil {
		publisher = notify.Nop{}
	}
	return &Ledger{store: store, publisher: publisher, now: time.Now}
}

// CreateTransaction checks payload against the account and persists it.
// Rule violations are returned as *draft.RejectionError; storage failures are
// returned unchanged.
func (l *Ledger) CreateTransaction(ctx context.Context, p draft.Payload) (draft.Receipt, error) {
	account, err := l.store.GetAccount(ctx, p.AccountID)
	if errors.Is(err, storage.ErrNotFound) {
		return draft.Receipt{}, draft.Reject("account %s does not exist", p.AccountID)
	}
	if err != nil {
		return draft.Receipt{}, fmt.Errorf("load account: %w", err)
	}

	if err := checkPayload(account, p); err != nil {
		slog.Warn("CreateTransaction rejected", "account_id", p.AccountID, "payer", p.Payer, "error", err)
		return draft.Receipt{}, err
	}

	txn := &models.Transaction{
		AccountID:      account.ID,
		Description:    strings.TrimSpace(p.Description),
		Amount:         p.Amount,
		Payer:          p.Payer,
		Split:          p.Split,
		MemberExpenses: append([]int64(nil), p.MemberExpenses...),
		CreatedAt:      l.now().Unix(),
	}
	if err := l.store.CreateTransaction(ctx, txn); err != nil {
		return draft.Receipt{}, fmt.Errorf("store transaction: %w", err)
	}

	slog.Info("Transaction created",
		"transaction_id", txn.ID,
		"account_id", txn.AccountID,
		"amount", txn.Amount,
		"split", txn.Split,
	)

	// Push delivery is best effort; the transaction is already committed.
	event := &notify.TransactionCreated{
		TransactionID: txn.ID,
		AccountID:     txn.AccountID,
		Payer:         txn.Payer,
		Amount:        txn.Amount,
		Timestamp:     time.Unix(txn.CreatedAt, 0).UTC(),
	}
	if err := l.publisher.PublishTransactionCreated(ctx, event); err != nil {
		slog.Error("Failed to publish transaction event", "transaction_id", txn.ID, "error", err)
	}

	return draft.Receipt{TransactionID: txn.ID, CreatedAt: txn.CreatedAt}, nil
}

func checkPayload(account *models.Account, p draft.Payload) error {
	if p.Amount <= 0 {
		return draft.Reject("amount must be positive")
	}
	if !account.HasMember(p.Payer) {
		return draft.Reject("payer %s is not a member of %s", p.Payer, account.Name)
	}

	if !p.Split {
		if len(p.MemberExpenses) != 1 || p.MemberExpenses[0] != p.Amount {
			return draft.Reject("a single-payer transaction carries exactly one expense equal to the amount")
		}
		return nil
	}

	if len(p.MemberExpenses) != len(account.Members) {
		return draft.Reject("expected %d member expenses, got %d", len(account.Members), len(p.MemberExpenses))
	}
	var sum int64
	for i, amount := range p.MemberExpenses {
		if amount < 0 {
			return draft.Reject("member expense %d is negative", i)
		}
		sum += amount
	}
	if sum != p.Amount {
		return draft.Reject("member expenses add up to %d, amount is %d", sum, p.Amount)
	}
	return nil
}

// AccountMembers returns the account's members in their fixed order.
// Members missing from the directory fall back to their ID as display name.
func (l *Ledger) AccountMembers(ctx context.Context, accountID string) ([]draft.Member, error) {
	account, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	names, err := l.DisplayNames(ctx, account.Members)
	if err != nil {
		return nil, err
	}

	members := make([]draft.Member, len(account.Members))
	for i, id := range account.Members {
		name, ok := names[id]
		if !ok {
			name = id
		}
		members[i] = draft.Member{ID: id, DisplayName: name}
	}
	return members, nil
}

// DisplayNames maps member IDs to display names.
func (l *Ledger) DisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	found, err := l.store.GetMembersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(found))
	for id, m := range found {
		names[id] = m.DisplayName
	}
	return names, nil
}

// CreateMember registers a member in the directory.
func (l *Ledger) CreateMember(ctx context.Context, email, displayName string) (*models.Member, error) {
	email = strings.TrimSpace(email)
	displayName = strings.TrimSpace(displayName)
	if email == "" || displayName == "" {
		return nil, draft.Reject("email and display name are required")
	}

	member := models.NewMember(email, displayName)
	if err := l.store.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// CreateAccount creates an account whose member order is fixed from now on.
func (l *Ledger) CreateAccount(ctx context.Context, name string, memberIDs []string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, draft.Reject("account name is required")
	}
	if len(memberIDs) == 0 {
		return nil, draft.Reject("an account needs at least one member")
	}

	seen := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		if seen[id] {
			return nil, draft.Reject("member %s listed twice", id)
		}
		seen[id] = true
	}

	found, err := l.store.GetMembersByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range memberIDs {
		if _, ok := found[id]; !ok {
			return nil, draft.Reject("member %s does not exist", id)
		}
	}

	account := &models.Account{Name: name, Members: memberIDs}
	if err := l.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount returns an account by ID.
func (l *Ledger) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	return l.store.GetAccount(ctx, accountID)
}

// ListTransactions returns an account's transactions, newest first.
func (l *Ledger) ListTransactions(ctx context.Context, accountID string) ([]*models.Transaction, error) {
	if _, err := l.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return l.store.ListTransactionsByAccount(ctx, accountID)
}

// Balances aggregates an account's transactions into net balances and a
// simplified list of who pays whom.
func (l *Ledger) Balances(ctx context.Context, accountID string) ([]calculator.MemberBalance, []calculator.DebtEdge, error) {
	account, err := l.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	txns, err := l.store.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	forBalance := make([]calculator.TransactionForBalance, len(txns))
	for i, txn := range txns {
		forBalance[i] = calculator.TransactionForBalance{
			Payer:  txn.Payer,
			Amount: txn.Amount,
			Owed:   txn.Owed(account.Members),
		}
	}

	balances, edges := calculator.CalculateAccountBalances(forBalance)
	return balances, edges, nil
}
