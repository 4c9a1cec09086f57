// Command codecorpus ingests source files from the verified repository
// catalog into the code-search corpus. It runs one ingestion pass and
// exits: zero on completion, non-zero on any unrecovered error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mongostore "github.com/thothlabs/codecorpus/internal/adapters/driven/storage/mongo"
	"github.com/thothlabs/codecorpus/internal/catalog"
	"github.com/thothlabs/codecorpus/internal/config"
	"github.com/thothlabs/codecorpus/internal/connectors/github"
	"github.com/thothlabs/codecorpus/internal/core/services"
	"github.com/thothlabs/codecorpus/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codecorpus",
		Short: "Populate the code-search corpus from the verified repository catalog",
		Long: `codecorpus walks a fixed catalog of repositories, fetches every
top-level source file matching the ingestion extensions through the
rate-limited contents API and stores the results as searchable documents
in the corpus collection.

Configuration comes entirely from the environment; see package
internal/config for the variable names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sink, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.Database, cfg.Collection, logger)
	if err != nil {
		return fmt.Errorf("connect sink: %w", err)
	}
	// The sink connection is released on every exit path, success or not.
	defer func() { _ = sink.Close(context.Background()) }()

	if err := sink.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("index setup: %w", err)
	}

	source := github.NewClient(cfg.GithubToken, logger)
	ingestor := services.NewIngestor(source, sink, logger)

	count, err := ingestor.Run(ctx, catalog.Default())
	if err != nil {
		return err
	}

	logger.Info("Data ingestion complete", zap.Int("records", count))
	return nil
}
