package models

// Transaction is one persisted expense of an account.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// AccountID is the account the transaction belongs to.
	AccountID string

	// Description is free text entered with the expense.
	Description string

	// Amount is the total paid, in whole currency units.
	Amount int64

	// Payer is the member ID of whoever paid.
	Payer string

	// Split is false when the payer carries the whole amount.
	Split bool

	// MemberExpenses holds what each member owes. For split transactions it is
	// aligned with Account.Members; otherwise it has a single entry equal to Amount.
	MemberExpenses []int64

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64
}

// Owed returns the amount owed by each member, keyed by member ID.
// Single-payer transactions put the whole amount on the payer.
func (t *Transaction) Owed(members []string) map[string]int64 {
	owed := make(map[string]int64, len(members))
	if !t.Split {
		owed[t.Payer] = t.Amount
		return owed
	}
	for i, amount := range t.MemberExpenses {
		if i < len(members) && amount != 0 {
			owed[members[i]] += amount
		}
	}
	return owed
}
