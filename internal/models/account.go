package models

// Account is a shared expense account.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string

	// Name is the display name of the account (e.g., "Flat 4B", "Ski trip").
	Name string

	// Members is the ordered list of member IDs. The order is fixed at creation
	// and is the positional key for Transaction.MemberExpenses.
	Members []string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// HasMember reports whether memberID belongs to the account.
func (a *Account) HasMember(memberID string) bool {
	for _, m := range a.Members {
		if m == memberID {
			return true
		}
	}
	return false
}
