// Package api defines the spendmanager.v1 wire messages and the Connect
// handler and client constructors for its services.
package api

// Participant is one row of a draft's roster.
type Participant struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Included    bool   `json:"included"`
	Share       string `json:"share"`
}

// Draft is the rendered state of an open transaction form.
type Draft struct {
	ID           string        `json:"id"`
	AccountID    string        `json:"accountId"`
	Payer        string        `json:"payer"`
	Description  string        `json:"description,omitempty"`
	Amount       string        `json:"amount"`
	Total        int64         `json:"total"`
	Split        bool          `json:"split"`
	State        string        `json:"state"`
	Mode         string        `json:"mode"`
	InFlight     bool          `json:"inFlight,omitempty"`
	Participants []Participant `json:"participants"`
}

// DraftResponse is returned by every draft mutation.
type DraftResponse struct {
	Draft *Draft `json:"draft"`
}

type OpenDraftRequest struct {
	AccountID   string `json:"accountId"`
	Description string `json:"description,omitempty"`
}

type GetDraftRequest struct {
	DraftID string `json:"draftId"`
}

type SetDescriptionRequest struct {
	DraftID     string `json:"draftId"`
	Description string `json:"description"`
}

type SetAmountRequest struct {
	DraftID string `json:"draftId"`
	Amount  string `json:"amount"`
}

type SetSplitRequest struct {
	DraftID string `json:"draftId"`
	Split   bool   `json:"split"`
}

type SetParticipantIncludedRequest struct {
	DraftID  string `json:"draftId"`
	Index    int    `json:"index"`
	Included bool   `json:"included"`
}

type SetShareRequest struct {
	DraftID string `json:"draftId"`
	Index   int    `json:"index"`
	Share   string `json:"share"`
}

type SetEqualSplitRequest struct {
	DraftID string `json:"draftId"`
	Enabled bool   `json:"enabled"`
}

// RefreshParticipantsRequest reloads the account's members into the draft.
type RefreshParticipantsRequest struct {
	DraftID string `json:"draftId"`
}

type SubmitDraftRequest struct {
	DraftID string `json:"draftId"`
}

type SubmitDraftResponse struct {
	TransactionID string `json:"transactionId"`
	CreatedAt     int64  `json:"createdAt"`
}

type CloseDraftRequest struct {
	DraftID string `json:"draftId"`
}

type CloseDraftResponse struct{}

// Member is a directory entry.
type Member struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

type CreateMemberRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// CreateMemberResponse carries the bearer token for the new member.
type CreateMemberResponse struct {
	Member *Member `json:"member"`
	Token  string  `json:"token"`
}

// Account is a group of members sharing expenses. Members keep their order.
type Account struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []Member `json:"members"`
	CreatedAt int64    `json:"createdAt"`
}

type CreateAccountRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}

type CreateAccountResponse struct {
	Account *Account `json:"account"`
}

type GetAccountRequest struct {
	AccountID string `json:"accountId"`
}

type GetAccountResponse struct {
	Account *Account `json:"account"`
}

// Transaction is a persisted expense.
type Transaction struct {
	ID             string  `json:"id"`
	AccountID      string  `json:"accountId"`
	Description    string  `json:"description,omitempty"`
	Amount         int64   `json:"amount"`
	Payer          string  `json:"payer"`
	Split          bool    `json:"split"`
	MemberExpenses []int64 `json:"memberExpenses"`
	CreatedAt      int64   `json:"createdAt"`
}

type ListTransactionsRequest struct {
	AccountID string `json:"accountId"`
}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// Balance is a member's position across an account's transactions.
// Positive NetBalance means the member is owed money.
type Balance struct {
	MemberID    string `json:"memberId"`
	DisplayName string `json:"displayName"`
	NetBalance  int64  `json:"netBalance"`
	TotalPaid   int64  `json:"totalPaid"`
	TotalOwed   int64  `json:"totalOwed"`
}

// Debt is one payment that settles part of the balances.
type Debt struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type GetBalancesRequest struct {
	AccountID string `json:"accountId"`
}

type GetBalancesResponse struct {
	Balances []Balance `json:"balances"`
	Debts    []Debt    `json:"debts"`
}
