package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/internal/service/assignment"
	"github.com/heartmarshall/scanreview-backend/internal/service/messaging"
	"github.com/heartmarshall/scanreview-backend/internal/service/result"
	"github.com/heartmarshall/scanreview-backend/internal/service/scancase"
)

var _ caseService = &caseServiceMock{}

type caseServiceMock struct {
	CreateCaseFunc       func(ctx context.Context, input scancase.CreateCaseInput) (*domain.Case, error)
	UploadScanFunc       func(ctx context.Context, input scancase.UploadScanInput) (*domain.Case, error)
	SetStatusFunc        func(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus) (*scancase.SetStatusResult, error)
	CompleteAnalysisFunc func(ctx context.Context, input scancase.CompleteAnalysisInput) (*scancase.SetStatusResult, error)
	RequestAnalysisFunc  func(ctx context.Context, caseID uuid.UUID) error
	ListByPatientFunc    func(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error)
	ListUnassignedFunc   func(ctx context.Context) ([]domain.Case, error)
	ListRecentFunc       func(ctx context.Context, limit int) ([]domain.Case, error)

	calls struct {
		CreateCase []struct {
			Ctx   context.Context
			Input scancase.CreateCaseInput
		}
		UploadScan []struct {
			Ctx   context.Context
			Input scancase.UploadScanInput
		}
		SetStatus []struct {
			Ctx    context.Context
			CaseID uuid.UUID
			Status domain.CaseStatus
		}
		CompleteAnalysis []struct {
			Ctx   context.Context
			Input scancase.CompleteAnalysisInput
		}
		RequestAnalysis []struct {
			Ctx    context.Context
			CaseID uuid.UUID
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
	}
	lockCreateCase       sync.RWMutex
	lockUploadScan       sync.RWMutex
	lockSetStatus        sync.RWMutex
	lockCompleteAnalysis sync.RWMutex
	lockRequestAnalysis  sync.RWMutex
	lockListByPatient    sync.RWMutex
	lockListUnassigned   sync.RWMutex
	lockListRecent       sync.RWMutex
}

func (mock *caseServiceMock) CreateCase(ctx context.Context, input scancase.CreateCaseInput) (*domain.Case, error) {
	if mock.CreateCaseFunc == nil {
		panic("caseServiceMock.CreateCaseFunc: method is nil but caseService.CreateCase was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scancase.CreateCaseInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateCase.Lock()
	mock.calls.CreateCase = append(mock.calls.CreateCase, callInfo)
	mock.lockCreateCase.Unlock()
	return mock.CreateCaseFunc(ctx, input)
}

func (mock *caseServiceMock) CreateCaseCalls() []struct {
	Ctx   context.Context
	Input scancase.CreateCaseInput
} {
	var calls []struct {
		Ctx   context.Context
		Input scancase.CreateCaseInput
	}
	mock.lockCreateCase.RLock()
	calls = mock.calls.CreateCase
	mock.lockCreateCase.RUnlock()
	return calls
}

func (mock *caseServiceMock) UploadScan(ctx context.Context, input scancase.UploadScanInput) (*domain.Case, error) {
	if mock.UploadScanFunc == nil {
		panic("caseServiceMock.UploadScanFunc: method is nil but caseService.UploadScan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scancase.UploadScanInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUploadScan.Lock()
	mock.calls.UploadScan = append(mock.calls.UploadScan, callInfo)
	mock.lockUploadScan.Unlock()
	return mock.UploadScanFunc(ctx, input)
}

func (mock *caseServiceMock) UploadScanCalls() []struct {
	Ctx   context.Context
	Input scancase.UploadScanInput
} {
	var calls []struct {
		Ctx   context.Context
		Input scancase.UploadScanInput
	}
	mock.lockUploadScan.RLock()
	calls = mock.calls.UploadScan
	mock.lockUploadScan.RUnlock()
	return calls
}

func (mock *caseServiceMock) SetStatus(ctx context.Context, caseID uuid.UUID, status domain.CaseStatus) (*scancase.SetStatusResult, error) {
	if mock.SetStatusFunc == nil {
		panic("caseServiceMock.SetStatusFunc: method is nil but caseService.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
		Status domain.CaseStatus
	}{
		Ctx:    ctx,
		CaseID: caseID,
		Status: status,
	}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, caseID, status)
}

func (mock *caseServiceMock) SetStatusCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
	Status domain.CaseStatus
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
		Status domain.CaseStatus
	}
	mock.lockSetStatus.RLock()
	calls = mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *caseServiceMock) CompleteAnalysis(ctx context.Context, input scancase.CompleteAnalysisInput) (*scancase.SetStatusResult, error) {
	if mock.CompleteAnalysisFunc == nil {
		panic("caseServiceMock.CompleteAnalysisFunc: method is nil but caseService.CompleteAnalysis was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input scancase.CompleteAnalysisInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCompleteAnalysis.Lock()
	mock.calls.CompleteAnalysis = append(mock.calls.CompleteAnalysis, callInfo)
	mock.lockCompleteAnalysis.Unlock()
	return mock.CompleteAnalysisFunc(ctx, input)
}

func (mock *caseServiceMock) CompleteAnalysisCalls() []struct {
	Ctx   context.Context
	Input scancase.CompleteAnalysisInput
} {
	var calls []struct {
		Ctx   context.Context
		Input scancase.CompleteAnalysisInput
	}
	mock.lockCompleteAnalysis.RLock()
	calls = mock.calls.CompleteAnalysis
	mock.lockCompleteAnalysis.RUnlock()
	return calls
}

func (mock *caseServiceMock) RequestAnalysis(ctx context.Context, caseID uuid.UUID) error {
	if mock.RequestAnalysisFunc == nil {
		panic("caseServiceMock.RequestAnalysisFunc: method is nil but caseService.RequestAnalysis was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}{
		Ctx:    ctx,
		CaseID: caseID,
	}
	mock.lockRequestAnalysis.Lock()
	mock.calls.RequestAnalysis = append(mock.calls.RequestAnalysis, callInfo)
	mock.lockRequestAnalysis.Unlock()
	return mock.RequestAnalysisFunc(ctx, caseID)
}

func (mock *caseServiceMock) RequestAnalysisCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}
	mock.lockRequestAnalysis.RLock()
	calls = mock.calls.RequestAnalysis
	mock.lockRequestAnalysis.RUnlock()
	return calls
}

func (mock *caseServiceMock) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]domain.Case, error) {
	if mock.ListByPatientFunc == nil {
		panic("caseServiceMock.ListByPatientFunc: method is nil but caseService.ListByPatient was just called")
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

func (mock *caseServiceMock) ListByPatientCalls() []struct {
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

func (mock *caseServiceMock) ListUnassigned(ctx context.Context) ([]domain.Case, error) {
	if mock.ListUnassignedFunc == nil {
		panic("caseServiceMock.ListUnassignedFunc: method is nil but caseService.ListUnassigned was just called")
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

func (mock *caseServiceMock) ListUnassignedCalls() []struct {
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

func (mock *caseServiceMock) ListRecent(ctx context.Context, limit int) ([]domain.Case, error) {
	if mock.ListRecentFunc == nil {
		panic("caseServiceMock.ListRecentFunc: method is nil but caseService.ListRecent was just called")
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

func (mock *caseServiceMock) ListRecentCalls() []struct {
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

var _ statusPoller = &statusPollerMock{}

type statusPollerMock struct {
	PollStatusFunc func(ctx context.Context, caseID uuid.UUID) (*domain.StatusSnapshot, error)

	calls struct {
		PollStatus []struct {
			Ctx    context.Context
			CaseID uuid.UUID
		}
	}
	lockPollStatus sync.RWMutex
}

func (mock *statusPollerMock) PollStatus(ctx context.Context, caseID uuid.UUID) (*domain.StatusSnapshot, error) {
	if mock.PollStatusFunc == nil {
		panic("statusPollerMock.PollStatusFunc: method is nil but statusPoller.PollStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}{
		Ctx:    ctx,
		CaseID: caseID,
	}
	mock.lockPollStatus.Lock()
	mock.calls.PollStatus = append(mock.calls.PollStatus, callInfo)
	mock.lockPollStatus.Unlock()
	return mock.PollStatusFunc(ctx, caseID)
}

func (mock *statusPollerMock) PollStatusCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}
	mock.lockPollStatus.RLock()
	calls = mock.calls.PollStatus
	mock.lockPollStatus.RUnlock()
	return calls
}

var _ resultService = &resultServiceMock{}

type resultServiceMock struct {
	WriteFunc func(ctx context.Context, input result.WriteInput) (*result.WriteResult, error)
	GetFunc   func(ctx context.Context, caseID uuid.UUID) (*domain.Result, error)

	calls struct {
		Write []struct {
			Ctx   context.Context
			Input result.WriteInput
		}
		Get []struct {
			Ctx    context.Context
			CaseID uuid.UUID
		}
	}
	lockWrite sync.RWMutex
	lockGet   sync.RWMutex
}

func (mock *resultServiceMock) Write(ctx context.Context, input result.WriteInput) (*result.WriteResult, error) {
	if mock.WriteFunc == nil {
		panic("resultServiceMock.WriteFunc: method is nil but resultService.Write was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input result.WriteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockWrite.Lock()
	mock.calls.Write = append(mock.calls.Write, callInfo)
	mock.lockWrite.Unlock()
	return mock.WriteFunc(ctx, input)
}

func (mock *resultServiceMock) WriteCalls() []struct {
	Ctx   context.Context
	Input result.WriteInput
} {
	var calls []struct {
		Ctx   context.Context
		Input result.WriteInput
	}
	mock.lockWrite.RLock()
	calls = mock.calls.Write
	mock.lockWrite.RUnlock()
	return calls
}

func (mock *resultServiceMock) Get(ctx context.Context, caseID uuid.UUID) (*domain.Result, error) {
	if mock.GetFunc == nil {
		panic("resultServiceMock.GetFunc: method is nil but resultService.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}{
		Ctx:    ctx,
		CaseID: caseID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, caseID)
}

func (mock *resultServiceMock) GetCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

var _ assignmentService = &assignmentServiceMock{}

type assignmentServiceMock struct {
	ClaimFunc        func(ctx context.Context, input assignment.ClaimInput) (*domain.ClaimResult, error)
	CompleteFunc     func(ctx context.Context, assignmentID uuid.UUID, doctorID uuid.UUID) (*domain.Assignment, error)
	GetByScanFunc    func(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error)
	ListByDoctorFunc func(ctx context.Context, doctorID uuid.UUID) ([]domain.Assignment, error)

	calls struct {
		Claim []struct {
			Ctx   context.Context
			Input assignment.ClaimInput
		}
		Complete []struct {
			Ctx          context.Context
			AssignmentID uuid.UUID
			DoctorID     uuid.UUID
		}
		GetByScan []struct {
			Ctx    context.Context
			ScanID uuid.UUID
		}
		ListByDoctor []struct {
			Ctx      context.Context
			DoctorID uuid.UUID
		}
	}
	lockClaim        sync.RWMutex
	lockComplete     sync.RWMutex
	lockGetByScan    sync.RWMutex
	lockListByDoctor sync.RWMutex
}

func (mock *assignmentServiceMock) Claim(ctx context.Context, input assignment.ClaimInput) (*domain.ClaimResult, error) {
	if mock.ClaimFunc == nil {
		panic("assignmentServiceMock.ClaimFunc: method is nil but assignmentService.Claim was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input assignment.ClaimInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx, input)
}

func (mock *assignmentServiceMock) ClaimCalls() []struct {
	Ctx   context.Context
	Input assignment.ClaimInput
} {
	var calls []struct {
		Ctx   context.Context
		Input assignment.ClaimInput
	}
	mock.lockClaim.RLock()
	calls = mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Complete(ctx context.Context, assignmentID uuid.UUID, doctorID uuid.UUID) (*domain.Assignment, error) {
	if mock.CompleteFunc == nil {
		panic("assignmentServiceMock.CompleteFunc: method is nil but assignmentService.Complete was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		AssignmentID uuid.UUID
		DoctorID     uuid.UUID
	}{
		Ctx:          ctx,
		AssignmentID: assignmentID,
		DoctorID:     doctorID,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, assignmentID, doctorID)
}

func (mock *assignmentServiceMock) CompleteCalls() []struct {
	Ctx          context.Context
	AssignmentID uuid.UUID
	DoctorID     uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		AssignmentID uuid.UUID
		DoctorID     uuid.UUID
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) GetByScan(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error) {
	if mock.GetByScanFunc == nil {
		panic("assignmentServiceMock.GetByScanFunc: method is nil but assignmentService.GetByScan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ScanID uuid.UUID
	}{
		Ctx:    ctx,
		ScanID: scanID,
	}
	mock.lockGetByScan.Lock()
	mock.calls.GetByScan = append(mock.calls.GetByScan, callInfo)
	mock.lockGetByScan.Unlock()
	return mock.GetByScanFunc(ctx, scanID)
}

func (mock *assignmentServiceMock) GetByScanCalls() []struct {
	Ctx    context.Context
	ScanID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ScanID uuid.UUID
	}
	mock.lockGetByScan.RLock()
	calls = mock.calls.GetByScan
	mock.lockGetByScan.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]domain.Assignment, error) {
	if mock.ListByDoctorFunc == nil {
		panic("assignmentServiceMock.ListByDoctorFunc: method is nil but assignmentService.ListByDoctor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DoctorID uuid.UUID
	}{
		Ctx:      ctx,
		DoctorID: doctorID,
	}
	mock.lockListByDoctor.Lock()
	mock.calls.ListByDoctor = append(mock.calls.ListByDoctor, callInfo)
	mock.lockListByDoctor.Unlock()
	return mock.ListByDoctorFunc(ctx, doctorID)
}

func (mock *assignmentServiceMock) ListByDoctorCalls() []struct {
	Ctx      context.Context
	DoctorID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		DoctorID uuid.UUID
	}
	mock.lockListByDoctor.RLock()
	calls = mock.calls.ListByDoctor
	mock.lockListByDoctor.RUnlock()
	return calls
}

var _ messagingService = &messagingServiceMock{}

type messagingServiceMock struct {
	SendFunc    func(ctx context.Context, input messaging.SendInput) (*domain.Message, error)
	HistoryFunc func(ctx context.Context, input messaging.HistoryInput) ([]domain.Message, error)

	calls struct {
		Send []struct {
			Ctx   context.Context
			Input messaging.SendInput
		}
		History []struct {
			Ctx   context.Context
			Input messaging.HistoryInput
		}
	}
	lockSend    sync.RWMutex
	lockHistory sync.RWMutex
}

func (mock *messagingServiceMock) Send(ctx context.Context, input messaging.SendInput) (*domain.Message, error) {
	if mock.SendFunc == nil {
		panic("messagingServiceMock.SendFunc: method is nil but messagingService.Send was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input messaging.SendInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, input)
}

func (mock *messagingServiceMock) SendCalls() []struct {
	Ctx   context.Context
	Input messaging.SendInput
} {
	var calls []struct {
		Ctx   context.Context
		Input messaging.SendInput
	}
	mock.lockSend.RLock()
	calls = mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

func (mock *messagingServiceMock) History(ctx context.Context, input messaging.HistoryInput) ([]domain.Message, error) {
	if mock.HistoryFunc == nil {
		panic("messagingServiceMock.HistoryFunc: method is nil but messagingService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input messaging.HistoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, input)
}

func (mock *messagingServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	Input messaging.HistoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input messaging.HistoryInput
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListForFunc     func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	UnreadCountFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkReadFunc    func(ctx context.Context, notificationID uuid.UUID, userID uuid.UUID) (*domain.Notification, error)
	MarkAllReadFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		ListFor []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		UnreadCount []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		MarkRead []struct {
			Ctx            context.Context
			NotificationID uuid.UUID
			UserID         uuid.UUID
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListFor     sync.RWMutex
	lockUnreadCount sync.RWMutex
	lockMarkRead    sync.RWMutex
	lockMarkAllRead sync.RWMutex
}

func (mock *notificationServiceMock) ListFor(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if mock.ListForFunc == nil {
		panic("notificationServiceMock.ListForFunc: method is nil but notificationService.ListFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
	}
	mock.lockListFor.Lock()
	mock.calls.ListFor = append(mock.calls.ListFor, callInfo)
	mock.lockListFor.Unlock()
	return mock.ListForFunc(ctx, userID, limit)
}

func (mock *notificationServiceMock) ListForCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockListFor.RLock()
	calls = mock.calls.ListFor
	mock.lockListFor.RUnlock()
	return calls
}

func (mock *notificationServiceMock) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.UnreadCountFunc == nil {
		panic("notificationServiceMock.UnreadCountFunc: method is nil but notificationService.UnreadCount was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockUnreadCount.Lock()
	mock.calls.UnreadCount = append(mock.calls.UnreadCount, callInfo)
	mock.lockUnreadCount.Unlock()
	return mock.UnreadCountFunc(ctx, userID)
}

func (mock *notificationServiceMock) UnreadCountCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockUnreadCount.RLock()
	calls = mock.calls.UnreadCount
	mock.lockUnreadCount.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkRead(ctx context.Context, notificationID uuid.UUID, userID uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationServiceMock.MarkReadFunc: method is nil but notificationService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		NotificationID uuid.UUID
		UserID         uuid.UUID
	}{
		Ctx:            ctx,
		NotificationID: notificationID,
		UserID:         userID,
	}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, notificationID, userID)
}

func (mock *notificationServiceMock) MarkReadCalls() []struct {
	Ctx            context.Context
	NotificationID uuid.UUID
	UserID         uuid.UUID
} {
	var calls []struct {
		Ctx            context.Context
		NotificationID uuid.UUID
		UserID         uuid.UUID
	}
	mock.lockMarkRead.RLock()
	calls = mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationServiceMock.MarkAllReadFunc: method is nil but notificationService.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx, userID)
}

func (mock *notificationServiceMock) MarkAllReadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockMarkAllRead.RLock()
	calls = mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

var _ caseGetter = &caseGetterMock{}

type caseGetterMock struct {
	GetFunc func(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			CaseID uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *caseGetterMock) Get(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	if mock.GetFunc == nil {
		panic("caseGetterMock.GetFunc: method is nil but caseGetter.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}{
		Ctx:    ctx,
		CaseID: caseID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, caseID)
}

func (mock *caseGetterMock) GetCalls() []struct {
	Ctx    context.Context
	CaseID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		CaseID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

var _ assignmentByScanGetter = &assignmentByScanGetterMock{}

type assignmentByScanGetterMock struct {
	GetByScanFunc func(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error)

	calls struct {
		GetByScan []struct {
			Ctx    context.Context
			ScanID uuid.UUID
		}
	}
	lockGetByScan sync.RWMutex
}

func (mock *assignmentByScanGetterMock) GetByScan(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error) {
	if mock.GetByScanFunc == nil {
		panic("assignmentByScanGetterMock.GetByScanFunc: method is nil but assignmentByScanGetter.GetByScan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ScanID uuid.UUID
	}{
		Ctx:    ctx,
		ScanID: scanID,
	}
	mock.lockGetByScan.Lock()
	mock.calls.GetByScan = append(mock.calls.GetByScan, callInfo)
	mock.lockGetByScan.Unlock()
	return mock.GetByScanFunc(ctx, scanID)
}

func (mock *assignmentByScanGetterMock) GetByScanCalls() []struct {
	Ctx    context.Context
	ScanID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ScanID uuid.UUID
	}
	mock.lockGetByScan.RLock()
	calls = mock.calls.GetByScan
	mock.lockGetByScan.RUnlock()
	return calls
}
