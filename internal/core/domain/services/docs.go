// Package services contains stateless domain services that coordinate
// behavior across aggregates and ports. EscrowAccounting couples the
// package lifecycle to the ledger: it holds the price at creation and
// settles it exactly once on a terminal transition.
package services
