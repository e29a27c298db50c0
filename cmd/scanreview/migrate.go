package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/scanreview-backend/internal/config"
	"github.com/heartmarshall/scanreview-backend/migrations"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
				results, err := p.Up(ctx)
				if err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s).\n", len(results))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("migration status: %w", err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%-10s %-40s %-10s %s\n", "VERSION", "FILE", "STATE", "APPLIED AT")
				for _, s := range statuses {
					appliedAt := ""
					if s.State == goose.StateApplied {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(out, "%-10d %-40s %-10s %s\n", s.Source.Version, s.Source.Path, s.State, appliedAt)
				}
				return nil
			})
		},
	})

	return cmd
}

func withProvider(ctx context.Context, fn func(context.Context, *goose.Provider) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	return fn(ctx, p)
}
