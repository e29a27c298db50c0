package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateFunc           func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	MarkReadFunc         func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Notification, error)
	MarkAllReadFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	CountUnreadFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteReadBeforeFunc func(ctx context.Context, threshold time.Time) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			N   *domain.Notification
		}
		MarkRead []struct {
			Ctx    context.Context
			ID     uuid.UUID
			UserID uuid.UUID
		}
		MarkAllRead []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		CountUnread []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteReadBefore []struct {
			Ctx       context.Context
			Threshold time.Time
		}
	}
	lockCreate           sync.RWMutex
	lockMarkRead         sync.RWMutex
	lockMarkAllRead      sync.RWMutex
	lockListByUser       sync.RWMutex
	lockCountUnread      sync.RWMutex
	lockDeleteReadBefore sync.RWMutex
}

func (mock *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if mock.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but notificationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Notification
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Notification
} {
	var calls []struct {
		Ctx context.Context
		N   *domain.Notification
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		ID:     id,
		UserID: userID,
	}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id, userID)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}
	mock.lockMarkRead.RLock()
	calls = mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationRepoMock.MarkAllReadFunc: method is nil but notificationRepo.MarkAllRead was just called")
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

func (mock *notificationRepoMock) MarkAllReadCalls() []struct {
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

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
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
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *notificationRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *notificationRepoMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("notificationRepoMock.CountUnreadFunc: method is nil but notificationRepo.CountUnread was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, userID)
}

func (mock *notificationRepoMock) CountUnreadCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCountUnread.RLock()
	calls = mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *notificationRepoMock) DeleteReadBefore(ctx context.Context, threshold time.Time) (int64, error) {
	if mock.DeleteReadBeforeFunc == nil {
		panic("notificationRepoMock.DeleteReadBeforeFunc: method is nil but notificationRepo.DeleteReadBefore was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Threshold time.Time
	}{
		Ctx:       ctx,
		Threshold: threshold,
	}
	mock.lockDeleteReadBefore.Lock()
	mock.calls.DeleteReadBefore = append(mock.calls.DeleteReadBefore, callInfo)
	mock.lockDeleteReadBefore.Unlock()
	return mock.DeleteReadBeforeFunc(ctx, threshold)
}

func (mock *notificationRepoMock) DeleteReadBeforeCalls() []struct {
	Ctx       context.Context
	Threshold time.Time
} {
	var calls []struct {
		Ctx       context.Context
		Threshold time.Time
	}
	mock.lockDeleteReadBefore.RLock()
	calls = mock.calls.DeleteReadBefore
	mock.lockDeleteReadBefore.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, input NotifyInput) (*domain.Notification, error)

	calls struct {
		Notify []struct {
			Ctx   context.Context
			Input NotifyInput
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, input NotifyInput) (*domain.Notification, error) {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input NotifyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, input)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Ctx   context.Context
	Input NotifyInput
} {
	var calls []struct {
		Ctx   context.Context
		Input NotifyInput
	}
	mock.lockNotify.RLock()
	calls = mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}

var _ Publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(ctx context.Context, ev domain.Event) error

	calls struct {
		Publish []struct {
			Ctx context.Context
			Ev  domain.Event
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(ctx context.Context, ev domain.Event) error {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but Publisher.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.Event
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, ev)
}

func (mock *publisherMock) PublishCalls() []struct {
	Ctx context.Context
	Ev  domain.Event
} {
	var calls []struct {
		Ctx context.Context
		Ev  domain.Event
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
