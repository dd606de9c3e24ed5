// Package kernel contains the shared value objects of the delivery network
// domain: Principal, the authenticated identity of a caller or account, and
// Address, the bounded-length location text carried by packages.
//
// Value objects here are immutable and validated at construction. The zero
// value of each type is invalid and fails Validate; aggregates rely on that
// to reject records that bypassed a constructor.
package kernel
