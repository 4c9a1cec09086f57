// Package github implements the ContentSource port against the GitHub
// contents API.
//
// The package comprises three pieces:
//
//   - Client: the rate-limited transport. A single shared go-github client
//     behind an oauth2 token source with a 30 second per-request timeout.
//     Every remote call first acquires a permit from a process-wide counting
//     pool (ceiling 3), so at most three listing or fetch calls are in
//     flight at any instant regardless of how many walks run concurrently.
//
//   - ListEntries: one permit-guarded call to GET /repos/{owner}/{repo}/contents
//     returning the repository's top-level entries.
//
//   - FetchFile: one permit-guarded call per file. 404 yields empty content
//     (the file is treated as absent), 403 is presumed to be a rate limit
//     and triggers a fixed 60 second cooldown followed by a retry of the
//     identical request, repeated until success, 404 or an unrecoverable
//     transport error. The permit is held across the cooldown so a cooling
//     call still counts against the ceiling. Any other failure is terminal
//     for that file and yields empty content.
//
// # Rate Limiting
//
// The cooldown is deliberately fixed rather than derived from the
// Retry-After hint; adaptive backoff is a known gap, not an oversight.
// There is no retry cap: a sustained rate limit stalls the affected call
// indefinitely rather than dropping data.
//
// # Authentication
//
// A personal access token supplied via configuration. Requests carry the
// token as a bearer-style Authorization header through oauth2's transport.
package github
