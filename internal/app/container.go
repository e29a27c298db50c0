package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scanreview-backend/internal/adapter/events/kafkaevents"
	"github.com/heartmarshall/scanreview-backend/internal/adapter/postgres"
	assignmentrepo "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres/assignment"
	messagerepo "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres/message"
	notificationrepo "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres/notification"
	resultrepo "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres/result"
	caserepo "github.com/heartmarshall/scanreview-backend/internal/adapter/postgres/scancase"
	"github.com/heartmarshall/scanreview-backend/internal/adapter/queue/sqsqueue"
	"github.com/heartmarshall/scanreview-backend/internal/adapter/storage/s3blob"
	"github.com/heartmarshall/scanreview-backend/internal/auth"
	"github.com/heartmarshall/scanreview-backend/internal/config"
	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/assignment"
	"github.com/heartmarshall/scanreview-backend/internal/service/messaging"
	"github.com/heartmarshall/scanreview-backend/internal/service/notification"
	"github.com/heartmarshall/scanreview-backend/internal/service/result"
	"github.com/heartmarshall/scanreview-backend/internal/service/scancase"
	"github.com/heartmarshall/scanreview-backend/internal/service/status"
	"github.com/heartmarshall/scanreview-backend/internal/transport/dataloader"
	"github.com/heartmarshall/scanreview-backend/internal/transport/middleware"
	"github.com/heartmarshall/scanreview-backend/internal/transport/rest"
	"github.com/heartmarshall/scanreview-backend/internal/transport/ws"
)

type blobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type analysisQueue interface {
	EnqueueAnalysis(ctx context.Context, c domain.Case) error
}

// App is the wired service graph behind the HTTP handler.
type App struct {
	Handler http.Handler

	// Hub and Dispatcher are exposed for tests that observe fan-out.
	Hub        *ws.Hub
	Dispatcher *notification.Dispatcher

	limiter     *middleware.RateLimiter
	closers     []func() error
	stopTimeout time.Duration
	log         *slog.Logger
}

// New builds repositories, services and transport on top of pool. Object
// storage, the analysis queue and the event stream are wired only when
// configured.
func New(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*App, error) {
	a := &App{stopTimeout: cfg.Server.ShutdownTimeout, log: logger}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	cases := caserepo.New(pool)
	results := resultrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	messages := messagerepo.New(pool)
	notifications := notificationrepo.New(pool)

	// Optional infrastructure.
	var blobs blobStore
	if cfg.Storage.Bucket != "" {
		client, err := s3blob.NewClient(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("storage client: %w", err)
		}
		blobs = s3blob.New(client, cfg.Storage.Bucket)
	}

	var queue analysisQueue
	if cfg.Queue.QueueName != "" || cfg.Queue.QueueURL != "" {
		client, err := sqsqueue.NewClient(ctx, cfg.Queue)
		if err != nil {
			return nil, fmt.Errorf("queue client: %w", err)
		}
		q, err := sqsqueue.New(ctx, client, cfg.Queue)
		if err != nil {
			return nil, fmt.Errorf("analysis queue: %w", err)
		}
		queue = q
	}

	hub := ws.NewHub(logger)
	publishers := []notification.Publisher{hub}
	if len(cfg.Events.BrokerList()) > 0 {
		pub := kafkaevents.New(kafkaevents.NewWriter(cfg.Events), cfg.Events.WriteTimeout)
		publishers = append(publishers, pub)
		a.closers = append(a.closers, pub.Close)
	}

	// Services.
	notificationSvc := notification.NewService(logger, notifications)
	dispatcher := notification.NewDispatcher(logger, notificationSvc,
		cfg.Notification.QueueSize, cfg.Notification.Workers, publishers...)

	caseSvc := scancase.NewService(logger, cases, results, txm, dispatcher, blobs, queue, scancase.UploadPolicy{
		Extensions: cfg.Upload.Extensions(),
		MaxBytes:   cfg.Upload.MaxBytes,
	})
	resultSvc := result.NewService(logger, results)
	assignmentSvc := assignment.NewService(logger, assignments, cases, dispatcher)
	messagingSvc := messaging.NewService(logger, messages, assignments, dispatcher)
	statusSvc := status.NewService(logger, cases, assignments)

	// Transport.
	access := rest.NewCaseAccess(caseSvc, assignmentSvc)
	wsHandler := ws.NewHandler(hub, access, cfg.CORS.AllowedOrigins, logger)

	health := rest.NewHealthHandler(pool, BuildVersion(), rest.Check{
		Name:     "notifications",
		Required: true,
		Probe: func(context.Context) error {
			if !dispatcher.Started() {
				return errors.New("dispatcher not running")
			}
			return nil
		},
	})

	contract := status.Contract{
		PollInterval:         cfg.Status.PollInterval,
		MaxAttempts:          cfg.Status.MaxAttempts,
		ChatInterval:         cfg.Status.ChatInterval,
		NotificationInterval: cfg.Status.NotificationInterval,
	}

	mux := http.NewServeMux()
	rest.Routes{
		Health:        health,
		Cases:         rest.NewCaseHandler(caseSvc, statusSvc, access, cfg.Upload.MaxBytes, logger),
		Results:       rest.NewResultHandler(resultSvc, access, logger),
		Assignments:   rest.NewAssignmentHandler(assignmentSvc, access, logger),
		Messages:      rest.NewMessageHandler(messagingSvc, logger),
		Notifications: rest.NewNotificationHandler(notificationSvc, logger),
		Polling:       rest.NewPollingHandler(contract),
		WebSocket:     wsHandler.Connect,
		Loaders:       dataloader.Middleware(&dataloader.Repos{Assignment: assignments, Result: results}),
	}.Register(mux)

	a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	a.Handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier),
		a.limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(mux)

	a.Hub = hub
	a.Dispatcher = dispatcher
	return a, nil
}

// Start launches background workers.
func (a *App) Start() {
	a.Dispatcher.Start()
}

// Close drains the notification queue and releases infrastructure clients.
func (a *App) Close() {
	a.Dispatcher.Stop(a.stopTimeout)
	a.limiter.Stop()
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn("close failed", slog.String("error", err.Error()))
		}
	}
	if n := a.Dispatcher.Dropped(); n > 0 {
		a.log.Warn("notification events dropped", slog.Int64("count", n))
	}
}
