// Package order provides the Order aggregate root and its lifecycle state
// machine for the FastDelivery system.
//
// The package includes:
//   - Order: the aggregate root holding customer data, line items, the
//     derived total, and the delivery lifecycle state
//   - Item: a line-item value object (name, quantity, unit price)
//   - Status: the PENDING -> IN_DELIVERY -> DELIVERED lifecycle enum
//
// Key business rules:
//   - Orders must reference a store and carry a non-empty item list; every
//     violated field is reported, not just the first
//   - The total is the sum of price x qty over all items, computed once at
//     creation and never recomputed
//   - Approve and Deliver apply regardless of the current status; there is
//     no guard against re-approval or repeated delivery, and deliveredAt is
//     overwritten on a repeated Deliver
//   - storeID and courierID are weak references: their existence is never
//     verified against the store or courier registries
package order
