// Package state provides the state container for the foodshare session.
//
// # Overview
//
// The Store is the single place where application state changes: the
// active profile, the catalog, and session counters. The UI never mutates
// shared data directly; it calls transition methods and re-renders from
// Snapshot. This keeps every transition independently testable.
//
// # Transitions
//
//	Unauthenticated ──Login(role)──> Authenticated
//	Authenticated ──Logout()──> Unauthenticated
//	AddItem(draft): validate, stamp, append, persist
//
// Login and Logout are total; they cannot fail. AddItem fails only on
// validation, never on persistence.
//
// # Persistence Semantics
//
// Every catalog mutation writes the full catalog through the configured
// Saver. A write failure is deliberately swallowed: the in-memory catalog
// keeps the new item, the failure is logged, and Snapshot.LastSaveFailed
// lets the UI show a non-blocking notice. There is exactly one writer (the
// UI event loop), so no write ordering issues arise.
//
// # Concurrency Model
//
// All access goes through an RWMutex and both Snapshot and the transition
// methods copy item slices defensively, following the single-writer /
// multiple-reader pattern. The UI event loop is effectively single
// threaded, but Bubble Tea commands may read concurrently, and the copies
// keep rendered data immune to later mutations either way.
package state
