// Command cleanup-notifications removes read notifications older than the
// configured retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/scanreview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scanreview-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/scanreview-backend/internal/app"
	"github.com/heartmarshall/scanreview-backend/internal/config"
	notificationsvc "github.com/heartmarshall/scanreview-backend/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notificationsvc.NewService(logger, notification.New(pool))
	retention := time.Duration(cfg.Notification.RetentionDays) * 24 * time.Hour

	deleted, err := svc.PurgeRead(ctx, retention)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Duration("retention", retention),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", retention),
	)
}
