package scancase

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

type caseRepo interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error)
	ListUnassigned(ctx context.Context) ([]domain.Case, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Case, error)
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, to domain.CaseStatus, from []domain.CaseStatus) (*domain.Case, bool, error)
	UpdateStorageRef(ctx context.Context, id uuid.UUID, ref string) (*domain.Case, bool, error)
}

type resultRepo interface {
	Upsert(ctx context.Context, scanID uuid.UUID, findings domain.Findings) (*domain.Result, bool, error)
}

type blobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type analysisQueue interface {
	EnqueueAnalysis(ctx context.Context, c domain.Case) error
}

type eventEmitter interface {
	Emit(ev domain.Event)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 200

	// casAttempts bounds re-reads when a concurrent writer moves the case
	// between the guarded update and the classification read.
	casAttempts = 3
)

// UploadPolicy restricts what UploadScan accepts.
type UploadPolicy struct {
	Extensions []string
	MaxBytes   int64
}

// Service owns the case lifecycle: creation, storage reference and the
// forward-only status machine.
type Service struct {
	cases   caseRepo
	results resultRepo
	tx      txManager
	events  eventEmitter
	blobs   blobStore
	queue   analysisQueue
	policy  UploadPolicy
	log     *slog.Logger
}

// NewService creates a new case service. blobs and queue may be nil when
// object storage or the analysis queue is not configured.
func NewService(
	log *slog.Logger,
	cases caseRepo,
	results resultRepo,
	tx txManager,
	events eventEmitter,
	blobs blobStore,
	queue analysisQueue,
	policy UploadPolicy,
) *Service {
	return &Service{
		cases:   cases,
		results: results,
		tx:      tx,
		events:  events,
		blobs:   blobs,
		queue:   queue,
		policy:  policy,
		log:     log.With("service", "scancase"),
	}
}

// SetStatusResult reports whether SetStatus changed anything.
type SetStatusResult struct {
	Case    *domain.Case
	Changed bool
}
