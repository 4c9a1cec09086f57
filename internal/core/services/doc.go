// Package services contains the core pipeline logic: the per-repository
// walker and the catalog-wide ingestor.
//
// Services depend only on domain types and driven ports. The walker turns
// one repository into a slice of ingestion records; the ingestor fans the
// walker out over the whole catalog, joins all walks regardless of
// individual failure and writes the results to the sink in bounded batches.
package services
