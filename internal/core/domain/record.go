package domain

import (
	"strings"
	"time"
)

// EntryTypeFile is the listing entry type for regular files.
const EntryTypeFile = "file"

// FileEntry is one item from a repository's top-level contents listing.
// Entries are transient: the walker filters them and discards the rest.
type FileEntry struct {
	// Name is the base name of the entry.
	Name string

	// Path is the path of the entry relative to the repository root.
	Path string

	// Type is the entry kind ("file" or "dir").
	Type string
}

// IsFile reports whether the entry is a regular file.
func (e FileEntry) IsFile() bool {
	return e.Type == EntryTypeFile
}

// IngestionRecord is one corpus document: a single source file's content
// together with its repository context. Records are built by the walker,
// handed to the ingestor by value and written to the sink in batches.
type IngestionRecord struct {
	// RepoName is the display name of the owning repository.
	RepoName string

	// RepoURL is the repository origin URL.
	RepoURL string

	// FileName is the base name of the file.
	FileName string

	// FilePath is the file path relative to the repository root.
	FilePath string

	// Language is the repository's primary language tag.
	Language string

	// Content is the decoded file content. Never empty: empty fetches
	// are dropped before a record is built.
	Content string

	// Topics are the repository's topic tags.
	Topics []string

	// Frameworks are the repository's framework tags.
	Frameworks []string

	// Stars is the repository popularity metric.
	Stars int

	// Size is the content length in bytes.
	Size int

	// Extension is the final dot-separated suffix of the file name.
	Extension string

	// RunID identifies the ingestion run that produced this record.
	// Stamped by the ingestor before insertion.
	RunID string

	// CreatedAt is when the record was built.
	CreatedAt time.Time
}

// NewIngestionRecord builds a record for a fetched file.
// The caller guarantees content is non-empty.
func NewIngestionRecord(repo RepositoryDescriptor, entry FileEntry, content string) IngestionRecord {
	return IngestionRecord{
		RepoName:   repo.Name,
		RepoURL:    repo.URL,
		FileName:   entry.Name,
		FilePath:   entry.Path,
		Language:   repo.Language,
		Content:    content,
		Topics:     repo.Topics,
		Frameworks: repo.Frameworks,
		Stars:      repo.Stars,
		Size:       len(content),
		Extension:  FileExtension(entry.Name),
		CreatedAt:  time.Now(),
	}
}

// FileExtension returns the final dot-separated suffix of a file name,
// without the dot. A name with no dot is returned unchanged.
func FileExtension(name string) string {
	parts := strings.Split(name, ".")
	return parts[len(parts)-1]
}
