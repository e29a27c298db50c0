package rest

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
	"github.com/heartmarshall/scanreview-backend/pkg/ctxutil"
)

type caseGetter interface {
	Get(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)
}

type assignmentByScanGetter interface {
	GetByScan(ctx context.Context, scanID uuid.UUID) (*domain.Assignment, error)
}

// CaseAccess decides who may read a case. Patients see their own cases,
// doctors see the cases assigned to them plus unclaimed completed cases,
// operators see everything.
type CaseAccess struct {
	cases       caseGetter
	assignments assignmentByScanGetter
}

// NewCaseAccess creates a CaseAccess.
func NewCaseAccess(cases caseGetter, assignments assignmentByScanGetter) *CaseAccess {
	return &CaseAccess{cases: cases, assignments: assignments}
}

// Case loads the case if the caller in ctx may read it.
func (a *CaseAccess) Case(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := a.cases.Get(ctx, caseID)
	if err != nil {
		return nil, err
	}

	switch domain.Role(ctxutil.UserRoleFromCtx(ctx)) {
	case domain.RoleOperator:
		return c, nil
	case domain.RolePatient:
		if c.PatientID == userID {
			return c, nil
		}
	case domain.RoleDoctor:
		assigned, err := a.assignments.GetByScan(ctx, caseID)
		switch {
		case err == nil:
			if assigned.DoctorID == userID {
				return c, nil
			}
		case errors.Is(err, domain.ErrNotFound):
			if c.Status == domain.CaseStatusCompleted {
				return c, nil
			}
		default:
			return nil, err
		}
	}
	return nil, domain.ErrForbidden
}

// CanObserve reports whether the caller in ctx may read the case.
func (a *CaseAccess) CanObserve(ctx context.Context, caseID uuid.UUID) error {
	_, err := a.Case(ctx, caseID)
	return err
}
