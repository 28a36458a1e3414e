// Package rebalance provides the ledger and the arithmetic needed to rebalance
// an investment portfolio toward target weights.
//
// A Ledger records, for each asset class, the amount currently invested and an
// optional target expressed as a percentage of the total portfolio value.
// Once targets are set, the ledger derives the buy and sell adjustments that
// bring every asset class to its ideal amount.
//
// The core functionalities include:
//   - Ledger Management: adding asset classes, setting their current
//     allocation and their target weight.
//   - Rebalancing: computing the adjustment of each asset class against the
//     common portfolio total, ignoring adjustments below a cent.
//   - Reporting: summarizing current weights and drift from targets, and
//     encoding the whole report as JSON.
//
// All monetary values are exact fixed-point decimals, never binary floating
// point, so that amounts entered by the user are read back exactly.
//
// This package serves as the foundational logic for the `rebal` command-line
// tool.
package rebalance
