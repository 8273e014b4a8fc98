// Package catalog defines the food donation record and the pure operations
// over the item list.
//
// # Core Types
//
// FoodItem:
//   - A single donation: title, description, category, free-text quantity,
//     expiry date, pickup location
//   - ID and PostedAt are stamped at creation and never change
//   - PostedBy is copied from the posting profile at creation time; later
//     profile changes never update past posts
//
// Category:
//   - Closed set: fruits, vegetables, dairy, bakery, meals, other
//   - CategoryAll exists only as a filter value, never on an item
//
// Draft:
//   - The unsaved item form; Validate enforces required-field presence and
//     nothing more
//
// # Operations
//
// Filter(items, term, category) is pure and order-preserving. Both
// constraints must hold: category is "all" or an exact match, and the term
// (case-insensitive) must be a substring of the title or description.
// Calling it twice with identical inputs yields identical results.
//
// Seed() is the initialization policy for an empty store: a fixed
// two-item catalog, returned as fresh copies. It lives here rather than in
// the persistence layer so both the seeded and the loaded branch can be
// exercised deterministically in tests.
package catalog
