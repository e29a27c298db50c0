package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/scanreview-backend/internal/auth"
	"github.com/heartmarshall/scanreview-backend/internal/config"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// tokenCmd mints a token for service accounts such as the analysis worker.
func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with the configured secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(subject)
			if err != nil {
				return fmt.Errorf("subject: %w", err)
			}
			r := domain.Role(role)
			if !r.IsValid() {
				return fmt.Errorf("role %q: must be patient, doctor or operator", role)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			tok, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).Sign(userID, r, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "user id the token is issued for")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleOperator), "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
