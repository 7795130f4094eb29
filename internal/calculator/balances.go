// Package calculator aggregates persisted transactions into account balances.
package calculator

import "sort"

// TransactionForBalance is a transaction reduced to what balance calculation needs.
type TransactionForBalance struct {
	Payer  string
	Amount int64
	Owed   map[string]int64 // member ID -> share of Amount
}

// MemberBalance represents the balance information for one account member.
type MemberBalance struct {
	MemberID   string
	NetBalance int64 // Positive = owed money, Negative = owes money
	TotalPaid  int64 // Total amount paid across all transactions
	TotalOwed  int64 // Total amount this member owes
}

// DebtEdge represents a debt from one member to another.
type DebtEdge struct {
	From   string // Member who owes
	To     string // Member who is owed
	Amount int64
}

// CalculateAccountBalances computes balances across an account's transactions.
// It returns per-member balances sorted by member ID and a simplified list of
// debts that settles every balance.
//
// Algorithm:
//   - For each transaction: payer contributed +amount, each member owes their share
//   - Aggregate: net_balance = total_paid - total_owed
//   - Debt list: greedy matching of the largest debtor with the largest creditor
func CalculateAccountBalances(txns []TransactionForBalance) ([]MemberBalance, []DebtEdge) {
	balances := make(map[string]*MemberBalance)
	get := func(id string) *MemberBalance {
		b, ok := balances[id]
		if !ok {
			b = &MemberBalance{MemberID: id}
			balances[id] = b
		}
		return b
	}

	for _, txn := range txns {
		if txn.Payer == "" {
			continue
		}
		get(txn.Payer).TotalPaid += txn.Amount
		for member, share := range txn.Owed {
			get(member).TotalOwed += share
		}
	}

	memberBalances := make([]MemberBalance, 0, len(balances))
	var creditors, debtors []MemberBalance
	for _, b := range balances {
		b.NetBalance = b.TotalPaid - b.TotalOwed
		memberBalances = append(memberBalances, *b)
		switch {
		case b.NetBalance > 0:
			creditors = append(creditors, *b)
		case b.NetBalance < 0:
			debtors = append(debtors, *b)
		}
	}

	sort.Slice(memberBalances, func(i, j int) bool {
		return memberBalances[i].MemberID < memberBalances[j].MemberID
	})
	sort.Slice(creditors, func(i, j int) bool {
		return largerFirst(creditors[i].NetBalance, creditors[j].NetBalance, creditors[i].MemberID, creditors[j].MemberID)
	})
	sort.Slice(debtors, func(i, j int) bool {
		return largerFirst(-debtors[i].NetBalance, -debtors[j].NetBalance, debtors[i].MemberID, debtors[j].MemberID)
	})

	var edges []DebtEdge
	i, j := 0, 0
	owes := make([]int64, len(debtors))
	for k, d := range debtors {
		owes[k] = -d.NetBalance
	}
	owed := make([]int64, len(creditors))
	for k, c := range creditors {
		owed[k] = c.NetBalance
	}

	for i < len(debtors) && j < len(creditors) {
		amount := min(owes[i], owed[j])
		if amount > 0 {
			edges = append(edges, DebtEdge{
				From:   debtors[i].MemberID,
				To:     creditors[j].MemberID,
				Amount: amount,
			})
		}

		owes[i] -= amount
		owed[j] -= amount
		if owes[i] == 0 {
			i++
		}
		if owed[j] == 0 {
			j++
		}
	}

	return memberBalances, edges
}

// largerFirst orders by amount descending, then ID ascending for stable output.
func largerFirst(a, b int64, idA, idB string) bool {
	if a != b {
		return a > b
	}
	return idA < idB
}
