package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scanreview-backend/internal/domain"
)

// SeedCase inserts a case for a fresh patient in the given status.
func SeedCase(t *testing.T, pool *pgxpool.Pool, status domain.CaseStatus) domain.Case {
	t.Helper()
	return SeedCaseFor(t, pool, uuid.New(), status)
}

// SeedCaseFor inserts a case owned by patientID in the given status.
func SeedCaseFor(t *testing.T, pool *pgxpool.Pool, patientID uuid.UUID, status domain.CaseStatus) domain.Case {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Case{
		ID:         uuid.New(),
		PatientID:  patientID,
		StorageRef: "seed/" + uuid.New().String()[:8] + ".zip",
		Status:     status,
		UploadedAt: now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cases (id, patient_id, storage_ref, status, uploaded_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.PatientID, c.StorageRef, string(c.Status), c.UploadedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase: %v", err)
	}
	return c
}

// SeedAssignment binds doctorID to an existing case, bypassing the claim guard.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, c domain.Case, doctorID uuid.UUID) domain.Assignment {
	t.Helper()

	a := domain.Assignment{
		ID:         uuid.New(),
		ScanID:     c.ID,
		DoctorID:   doctorID,
		Status:     domain.AssignmentStatusAssigned,
		AcceptedAt: time.Now().UTC().Truncate(time.Microsecond),
		PatientID:  c.PatientID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO assignments (id, scan_id, doctor_id, status, accepted_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.ScanID, a.DoctorID, string(a.Status), a.AcceptedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssignment: %v", err)
	}
	return a
}

// SeedResult writes findings for a case.
func SeedResult(t *testing.T, pool *pgxpool.Pool, caseID uuid.UUID, findings domain.Findings) {
	t.Helper()

	raw, err := json.Marshal(findings)
	if err != nil {
		t.Fatalf("testhelper: marshal findings: %v", err)
	}
	_, err = pool.Exec(context.Background(),
		`INSERT INTO results (scan_id, findings, generated_at) VALUES ($1, $2, now())`,
		caseID, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedResult: %v", err)
	}
}

// SeedNotification inserts an unread notification for userID.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, typ domain.NotificationType, createdAt time.Time) domain.Notification {
	t.Helper()

	n := domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Message:   "seeded " + string(typ),
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO notifications (id, user_id, type, message, is_read, created_at)
		 VALUES ($1, $2, $3, $4, false, $5)`,
		n.ID, n.UserID, string(n.Type), n.Message, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification: %v", err)
	}
	return n
}
