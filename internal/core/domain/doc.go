// Package domain defines the core entities of the codecorpus pipeline.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - RepositoryDescriptor: static identity of one repository to ingest
//   - Catalog: the language-keyed mapping of repositories
//   - FileEntry: one item from a repository contents listing
//   - IngestionRecord: one corpus document handed to the sink
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
