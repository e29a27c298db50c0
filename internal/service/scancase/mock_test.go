package scancase

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	CreateFunc              func(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	ListByPatientFunc       func(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error)
	ListUnassignedFunc      func(ctx context.Context) ([]domain.Case, error)
	ListRecentFunc          func(ctx context.Context, limit int) ([]domain.Case, error)
	CompareAndSetStatusFunc func(ctx context.Context, id uuid.UUID, to domain.CaseStatus, from []domain.CaseStatus) (*domain.Case, bool, error)
	UpdateStorageRefFunc    func(ctx context.Context, id uuid.UUID, ref string) (*domain.Case, bool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Case
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByPatient []struct {
			Ctx       context.Context
			PatientID uuid.UUID
		}
		ListUnassigned []struct {
			Ctx context.Context
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
		CompareAndSetStatus []struct {
			Ctx  context.Context
			ID   uuid.UUID
			To   domain.CaseStatus
			From []domain.CaseStatus
		}
		UpdateStorageRef []struct {
			Ctx context.Context
			ID  uuid.UUID
			Ref string
		}
	}
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockListByPatient       sync.RWMutex
	lockListUnassigned      sync.RWMutex
	lockListRecent          sync.RWMutex
	lockCompareAndSetStatus sync.RWMutex
	lockUpdateStorageRef    sync.RWMutex
}

func (mock *caseRepoMock) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	if mock.CreateFunc == nil {
		panic("caseRepoMock.CreateFunc: method is nil but caseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Case
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *caseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Case
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Case
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *caseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	if mock.GetByIDFunc == nil {
		panic("caseRepoMock.GetByIDFunc: method is nil but caseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *caseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *caseRepoMock) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error) {
	if mock.ListByPatientFunc == nil {
		panic("caseRepoMock.ListByPatientFunc: method is nil but caseRepo.ListByPatient was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		PatientID uuid.UUID
	}{
		Ctx:       ctx,
		PatientID: patientID,
	}
	mock.lockListByPatient.Lock()
	mock.calls.ListByPatient = append(mock.calls.ListByPatient, callInfo)
	mock.lockListByPatient.Unlock()
	return mock.ListByPatientFunc(ctx, patientID)
}

func (mock *caseRepoMock) ListByPatientCalls() []struct {
	Ctx       context.Context
	PatientID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		PatientID uuid.UUID
	}
	mock.lockListByPatient.RLock()
	calls = mock.calls.ListByPatient
	mock.lockListByPatient.RUnlock()
	return calls
}

func (mock *caseRepoMock) ListUnassigned(ctx context.Context) ([]domain.Case, error) {
	if mock.ListUnassignedFunc == nil {
		panic("caseRepoMock.ListUnassignedFunc: method is nil but caseRepo.ListUnassigned was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUnassigned.Lock()
	mock.calls.ListUnassigned = append(mock.calls.ListUnassigned, callInfo)
	mock.lockListUnassigned.Unlock()
	return mock.ListUnassignedFunc(ctx)
}

func (mock *caseRepoMock) ListUnassignedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListUnassigned.RLock()
	calls = mock.calls.ListUnassigned
	mock.lockListUnassigned.RUnlock()
	return calls
}

func (mock *caseRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.Case, error) {
	if mock.ListRecentFunc == nil {
		panic("caseRepoMock.ListRecentFunc: method is nil but caseRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *caseRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockListRecent.RLock()
	calls = mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *caseRepoMock) CompareAndSetStatus(ctx context.Context, id uuid.UUID, to domain.CaseStatus, from []domain.CaseStatus) (*domain.Case, bool, error) {
	if mock.CompareAndSetStatusFunc == nil {
		panic("caseRepoMock.CompareAndSetStatusFunc: method is nil but caseRepo.CompareAndSetStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		To   domain.CaseStatus
		From []domain.CaseStatus
	}{
		Ctx:  ctx,
		ID:   id,
		To:   to,
		From: from,
	}
	mock.lockCompareAndSetStatus.Lock()
	mock.calls.CompareAndSetStatus = append(mock.calls.CompareAndSetStatus, callInfo)
	mock.lockCompareAndSetStatus.Unlock()
	return mock.CompareAndSetStatusFunc(ctx, id, to, from)
}

func (mock *caseRepoMock) CompareAndSetStatusCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	To   domain.CaseStatus
	From []domain.CaseStatus
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		To   domain.CaseStatus
		From []domain.CaseStatus
	}
	mock.lockCompareAndSetStatus.RLock()
	calls = mock.calls.CompareAndSetStatus
	mock.lockCompareAndSetStatus.RUnlock()
	return calls
}

func (mock *caseRepoMock) UpdateStorageRef(ctx context.Context, id uuid.UUID, ref string) (*domain.Case, bool, error) {
	if mock.UpdateStorageRefFunc == nil {
		panic("caseRepoMock.UpdateStorageRefFunc: method is nil but caseRepo.UpdateStorageRef was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Ref string
	}{
		Ctx: ctx,
		ID:  id,
		Ref: ref,
	}
	mock.lockUpdateStorageRef.Lock()
	mock.calls.UpdateStorageRef = append(mock.calls.UpdateStorageRef, callInfo)
	mock.lockUpdateStorageRef.Unlock()
	return mock.UpdateStorageRefFunc(ctx, id, ref)
}

func (mock *caseRepoMock) UpdateStorageRefCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Ref string
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		Ref string
	}
	mock.lockUpdateStorageRef.RLock()
	calls = mock.calls.UpdateStorageRef
	mock.lockUpdateStorageRef.RUnlock()
	return calls
}

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	UpsertFunc func(ctx context.Context, scanID uuid.UUID, findings domain.Findings) (*domain.Result, bool, error)

	calls struct {
		Upsert []struct {
			Ctx      context.Context
			ScanID   uuid.UUID
			Findings domain.Findings
		}
	}
	lockUpsert sync.RWMutex
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

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	PutFunc func(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			Body        io.Reader
			Size        int64
			ContentType string
		}
	}
	lockPut sync.RWMutex
}

func (mock *blobStoreMock) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		Body        io.Reader
		Size        int64
		ContentType string
	}{
		Ctx:         ctx,
		Key:         key,
		Body:        body,
		Size:        size,
		ContentType: contentType,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, body, size, contentType)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
} {
	var calls []struct {
		Ctx         context.Context
		Key         string
		Body        io.Reader
		Size        int64
		ContentType string
	}
	mock.lockPut.RLock()
	calls = mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

var _ analysisQueue = &analysisQueueMock{}

type analysisQueueMock struct {
	EnqueueAnalysisFunc func(ctx context.Context, c domain.Case) error

	calls struct {
		EnqueueAnalysis []struct {
			Ctx context.Context
			C   domain.Case
		}
	}
	lockEnqueueAnalysis sync.RWMutex
}

func (mock *analysisQueueMock) EnqueueAnalysis(ctx context.Context, c domain.Case) error {
	if mock.EnqueueAnalysisFunc == nil {
		panic("analysisQueueMock.EnqueueAnalysisFunc: method is nil but analysisQueue.EnqueueAnalysis was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Case
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockEnqueueAnalysis.Lock()
	mock.calls.EnqueueAnalysis = append(mock.calls.EnqueueAnalysis, callInfo)
	mock.lockEnqueueAnalysis.Unlock()
	return mock.EnqueueAnalysisFunc(ctx, c)
}

func (mock *analysisQueueMock) EnqueueAnalysisCalls() []struct {
	Ctx context.Context
	C   domain.Case
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Case
	}
	mock.lockEnqueueAnalysis.RLock()
	calls = mock.calls.EnqueueAnalysis
	mock.lockEnqueueAnalysis.RUnlock()
	return calls
}

var _ eventEmitter = &eventEmitterMock{}

type eventEmitterMock struct {
	EmitFunc func(ev domain.Event)

	calls struct {
		Emit []struct {
			Ev domain.Event
		}
	}
	lockEmit sync.RWMutex
}

func (mock *eventEmitterMock) Emit(ev domain.Event) {
	if mock.EmitFunc == nil {
		panic("eventEmitterMock.EmitFunc: method is nil but eventEmitter.Emit was just called")
	}
	callInfo := struct {
		Ev domain.Event
	}{
		Ev: ev,
	}
	mock.lockEmit.Lock()
	mock.calls.Emit = append(mock.calls.Emit, callInfo)
	mock.lockEmit.Unlock()
	mock.EmitFunc(ev)
}

func (mock *eventEmitterMock) EmitCalls() []struct {
	Ev domain.Event
} {
	var calls []struct {
		Ev domain.Event
	}
	mock.lockEmit.RLock()
	calls = mock.calls.Emit
	mock.lockEmit.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
