package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var (
		remote   remoteFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the caller's unread notification count whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c := remote.client()
			if interval <= 0 {
				contract, err := c.Contract(ctx)
				if err != nil {
					return err
				}
				interval = contract.NotificationInterval
			}

			err := c.WatchUnread(ctx, interval, func(n int) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s unread=%d\n", time.Now().Format(time.TimeOnly), n)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	remote.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval (defaults to the server's notification interval)")
	return cmd
}
