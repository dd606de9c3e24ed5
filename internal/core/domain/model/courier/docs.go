// Package courier contains the Courier aggregate: a registered delivery
// courier keyed by the principal that registered, carrying a display name
// and an accumulated rating ledger (total and count of submissions).
package courier
