package result

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	UpsertFunc      func(ctx context.Context, scanID uuid.UUID, findings domain.Findings) (*domain.Result, bool, error)
	GetByScanIDFunc func(ctx context.Context, scanID uuid.UUID) (*domain.Result, error)

	calls struct {
		Upsert []struct {
			Ctx      context.Context
			ScanID   uuid.UUID
			Findings domain.Findings
		}
		GetByScanID []struct {
			Ctx    context.Context
			ScanID uuid.UUID
		}
	}
	lockUpsert      sync.RWMutex
	lockGetByScanID sync.RWMutex
}

func (mock *resultRepoMock) Upsert(ctx context.Context, scanID uuid.UUID, findings domain.Findings) (*domain.Result, bool, error) {
	if mock.UpsertFunc == nil {
		panic("resultRepoMock.UpsertFunc: method is nil but resultRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ScanID   uuid.UUID
		Findings domain.Findings
	}{
		Ctx:      ctx,
		ScanID:   scanID,
		Findings: findings,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, scanID, findings)
}

func (mock *resultRepoMock) UpsertCalls() []struct {
	Ctx      context.Context
	ScanID   uuid.UUID
	Findings domain.Findings
} {
	var calls []struct {
		Ctx      context.Context
		ScanID   uuid.UUID
		Findings domain.Findings
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *resultRepoMock) GetByScanID(ctx context.Context, scanID uuid.UUID) (*domain.Result, error) {
	if mock.GetByScanIDFunc == nil {
		panic("resultRepoMock.GetByScanIDFunc: method is nil but resultRepo.GetByScanID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ScanID uuid.UUID
	}{
		Ctx:    ctx,
		ScanID: scanID,
	}
	mock.lockGetByScanID.Lock()
	mock.calls.GetByScanID = append(mock.calls.GetByScanID, callInfo)
	mock.lockGetByScanID.Unlock()
	return mock.GetByScanIDFunc(ctx, scanID)
}

func (mock *resultRepoMock) GetByScanIDCalls() []struct {
	Ctx    context.Context
	ScanID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ScanID uuid.UUID
	}
	mock.lockGetByScanID.RLock()
	calls = mock.calls.GetByScanID
	mock.lockGetByScanID.RUnlock()
	return calls
}
