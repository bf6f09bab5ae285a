// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Entity references between aggregates (Order.storeID, Order.courierID) are
// plain UUIDs with no enforced existence guarantee; the kernel deliberately
// offers no foreign-key abstraction.
package kernel
