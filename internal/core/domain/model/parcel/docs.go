// Package parcel contains the Package aggregate, the heart of the delivery
// network. A package is posted by a sender with an escrowed price, accepted
// and transported by a courier, and settled exactly once: escrow is released
// to the courier on delivery or refunded to the sender on cancellation.
//
// The aggregate enforces the lifecycle state machine
//
//	Created ──> Accepted ──> Delivered
//	   │            │            │
//	   │            └────────────┼──> Disputed
//	   └──> Cancelled            │
//	   └─────────────────────────┘
//
// together with the authorization rules of each transition: only the sender
// may cancel, only the assigned courier may report location or completion,
// and only the sender or recipient may file a dispute. Escrow settlement
// state lives on the aggregate so that a package can never be both released
// and refunded.
package parcel
