package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/scanreview-backend/internal/app"
	"github.com/heartmarshall/scanreview-backend/internal/client"
	"github.com/heartmarshall/scanreview-backend/internal/config"
)

// remoteFlags are shared by subcommands that talk to a running server.
type remoteFlags struct {
	baseURL string
	token   string
}

func (f *remoteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.baseURL, "url", "http://localhost:8080", "API base URL")
	cmd.Flags().StringVar(&f.token, "token", "", "bearer token (defaults to $SCANREVIEW_TOKEN)")
}

func (f *remoteFlags) client() *client.Client {
	token := f.token
	if token == "" {
		token = os.Getenv("SCANREVIEW_TOKEN")
	}
	logger := app.NewLogger(config.LogConfig{Level: "warn", Format: "text"})
	return client.New(f.baseURL, token, logger)
}
