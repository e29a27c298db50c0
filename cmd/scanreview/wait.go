package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/scanreview-backend/internal/service/status"
)

func waitCmd() *cobra.Command {
	var (
		remote      remoteFlags
		interval    = status.DefaultInterval
		maxAttempts = status.DefaultMaxAttempts
	)

	cmd := &cobra.Command{
		Use:   "wait <case-id>",
		Short: "Poll a case until analysis completes, fails or times out",
		Long: "Poll a case until analysis completes, fails or times out.\n\n" +
			"Unless --interval or --max-attempts are given, the cadence published by the server is used.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("case id: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c := remote.client()
			if !cmd.Flags().Changed("interval") || !cmd.Flags().Changed("max-attempts") {
				contract, err := c.Contract(ctx)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("interval") {
					interval = contract.PollInterval
				}
				if !cmd.Flags().Changed("max-attempts") {
					maxAttempts = contract.MaxAttempts
				}
			}

			res, err := c.WaitForResult(ctx, caseID, interval, maxAttempts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s after %d attempt(s)\n", res.Outcome, res.Attempts)
			return res.Outcome.Err()
		},
	}

	remote.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", interval, "poll interval")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", maxAttempts, "attempt ceiling")
	return cmd
}
