// Package models defines the persisted domain models of the spend manager.
//
// # Models
//
//   - Member: a person who can take part in transactions
//   - Account: a shared account with an ordered member list
//   - Transaction: one expense, with the amount each member owes
//
// # Design Principles
//
// 1. **Amounts are whole currency units** stored as int64, never floats
// 2. **Order is data**: Account.Members order defines the position of each
//    entry in Transaction.MemberExpenses
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
//
// Drafts being edited are not models; they live in package draft and are never
// persisted.
package models
