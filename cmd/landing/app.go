package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tervahagn/landing/internal/config"
	"github.com/tervahagn/landing/internal/database"
	"github.com/tervahagn/landing/internal/domain"
	"github.com/tervahagn/landing/internal/emitter"
	"github.com/tervahagn/landing/internal/logger"
	"github.com/tervahagn/landing/internal/repository"
	"github.com/tervahagn/landing/internal/service"
	"github.com/tervahagn/landing/internal/static"
	"github.com/urfave/cli/v2"
	"github.com/viant/afs"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "landing",
		Usage:     "Overwrite the Social Scheduler landing page with the embedded document",
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LANDING_LOG_LEVEL"},
			},
			// No EnvVars: a DATABASE_URL exported for another application must
			// never redirect or block the landing page write.
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL URL of the emission ledger (ledger disabled when empty)",
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(c.App.ErrWriter, logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "emit",
				Usage:  "Write the landing page (default)",
				Action: runEmit,
			},
			{
				Name:   "verify",
				Usage:  "Check that the landing page on disk matches the embedded document",
				Action: runVerify,
			},
			{
				Name:      "history",
				Usage:     "List recorded emissions, or show one by ID",
				ArgsUsage: "[ID]",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:    "limit",
						Aliases: []string{"n"},
						Value:   config.DefaultHistoryLimit,
						Usage:   "Maximum number of emissions to list (must be positive)",
					},
					&cli.BoolFlag{
						Name:  "latest",
						Usage: "Show only the most recent emission",
					},
				},
				Action: runHistory,
			},
		},
		Action: runEmit,
	}
}

func runEmit(c *cli.Context) error {
	ctx := c.Context

	var ledger *lazyLedger
	if databaseURL := c.String("database-url"); databaseURL != "" {
		ledger = &lazyLedger{databaseURL: databaseURL}
		defer ledger.Close()
	}

	svc := service.NewEmitService(emitter.New(config.DefaultTargetPath, static.IndexHTML), ledger.orNil())
	if _, err := svc.Emit(ctx); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Successfully overwrote %s\n", static.Filename)
	return nil
}

func runVerify(c *cli.Context) error {
	v, err := service.NewVerifier(afs.New()).Verify(c.Context, config.DefaultTargetPath, static.IndexHTML)
	if err != nil {
		return err
	}
	if !v.Match {
		return fmt.Errorf("%w: %s has fingerprint %s (%d bytes), expected %s",
			domain.ErrTargetMismatch, v.TargetPath, v.Actual, v.ActualBytes, v.Expected)
	}

	fmt.Fprintf(c.App.Writer, "%s is up to date\n", static.Filename)
	return nil
}

func runHistory(c *cli.Context) error {
	ctx := c.Context

	databaseURL := c.String("database-url")
	if databaseURL == "" {
		return domain.ErrLedgerDisabled
	}

	limit := c.Uint64("limit")
	if limit == 0 {
		return fmt.Errorf("%w: got 0", domain.ErrInvalidLimit)
	}

	db, err := openLedger(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewEmissionRepository(db.Pool())

	if id := c.Args().First(); id != "" {
		e, err := repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("emission %s: %w", id, err)
		}
		printEmission(c, e)
		return nil
	}

	if c.Bool("latest") {
		e, err := repo.Latest(ctx)
		if err != nil {
			return fmt.Errorf("latest emission: %w", err)
		}
		printEmission(c, e)
		return nil
	}

	emissions, err := repo.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(emissions) == 0 {
		slog.Info("no emissions recorded")
	}
	for _, e := range emissions {
		printEmission(c, e)
	}
	return nil
}

func openLedger(ctx context.Context, databaseURL string) (*database.DB, error) {
	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func printEmission(c *cli.Context, e *domain.Emission) {
	fmt.Fprintf(c.App.Writer, "%s  %s  %s  %d bytes  %s\n",
		e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"), e.ID, e.Fingerprint, e.Bytes, e.TargetPath)
}
