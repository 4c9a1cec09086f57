// Package driven defines the interfaces that core services call OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - ContentSource: lists repository entries and fetches file contents
//     (implemented by the GitHub connector)
//   - DocumentSink: index setup and batched inserts into the corpus store
//     (implemented by the MongoDB adapter; an in-memory adapter exists
//     for tests)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
