package domain

// RepositoryDescriptor identifies one remote repository to ingest.
// Descriptors are supplied by the static catalog and never mutated.
type RepositoryDescriptor struct {
	// URL is the repository origin URL (e.g. https://github.com/django/django).
	URL string

	// Name is the display name of the repository.
	Name string

	// Description is a free-text summary.
	Description string

	// Language is the primary language tag (catalog key).
	Language string

	// Stars is the popularity metric at catalog time.
	Stars int

	// Topics are the repository's topic tags.
	Topics []string

	// Frameworks are the framework tags associated with the repository.
	Frameworks []string
}

// Catalog maps a language tag to the repositories to ingest for it.
type Catalog map[string][]RepositoryDescriptor

// Flatten returns every repository in the catalog as a single slice.
// Order across languages is not significant.
func (c Catalog) Flatten() []RepositoryDescriptor {
	var repos []RepositoryDescriptor
	for _, descriptors := range c {
		repos = append(repos, descriptors...)
	}
	return repos
}
