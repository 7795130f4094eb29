package notify

import (
	"encoding/json"
	"time"
)

// TransactionCreated announces a newly persisted transaction. Consumers fetch
// the full record by ID; only what is needed to route a push is included.
type TransactionCreated struct {
	TransactionID string    `json:"transaction_id"`
	AccountID     string    `json:"account_id"`
	Payer         string    `json:"payer"`
	Amount        int64     `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *TransactionCreated) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionCreatedFromJSON decodes a message published by Client.
func TransactionCreatedFromJSON(data []byte) (*TransactionCreated, error) {
	var msg TransactionCreated
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
