// Package allocation splits a transaction amount across its participants.
//
// A Roster holds the participants of one transaction while it is being edited:
// who they are, whether they take part, and the share text the user sees. The
// roster carries an explicit Mode. In ModeEqual every change of the total or of
// the inclusion set re-runs ComputeEqualShares and overwrites the shares; in
// ModeManual typed shares are never rewritten.
//
// Amounts are whole currency units. Equal splits hand the remainder of the
// integer division to the lowest-indexed included participants, so
//
//	ComputeEqualShares(100, []bool{true, true, true}) // [34 33 33]
//	ComputeEqualShares(101, []bool{true, true, true}) // [34 34 33]
//
// Validate is the gate before submission: the total must be in range and, for
// split transactions, the shares must sum to it exactly.
//
// Nothing in this package performs I/O or blocks.
package allocation
