package repository

import (
	"context"
	"time"

	"rentdesk/internal/infra/db"
	"rentdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(pool db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

const createJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)`

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, createJobSQL, kind, topic, payload, pgconv.Timestamptz(runAt))
	if err != nil {
		return wrapWriteErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue locks a batch of runnable jobs so concurrent dispatchers never
// pick the same job twice.
const claimDueSQL = `
UPDATE notification_jobs
SET status = 'processing', attempts = attempts + 1, updated_at = now()
WHERE id IN (
	SELECT id FROM notification_jobs
	WHERE status = 'pending' AND run_at <= $1
	ORDER BY run_at
	LIMIT $2
	FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, attempts`

func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]*NotificationJob, error) {
	rows, err := r.db.Query(ctx, claimDueSQL, pgconv.Timestamptz(now), limit)
	if err != nil {
		return nil, wrapWriteErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []*NotificationJob
	for rows.Next() {
		var (
			job   NotificationJob
			runAt pgtype.Timestamptz
		)
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &runAt, &job.Attempts); err != nil {
			return nil, wrapWriteErr("failed to scan notification job", err)
		}
		job.RunAt = runAt.Time
		jobs = append(jobs, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapWriteErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

const markSentSQL = `
UPDATE notification_jobs SET status = 'sent', updated_at = now() WHERE id = $1`

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, markSentSQL, id); err != nil {
		return wrapWriteErr("failed to mark notification job sent", err)
	}
	return nil
}

const markFailedSQL = `
UPDATE notification_jobs SET status = 'pending', last_error = $2, updated_at = now() WHERE id = $1`

// MarkFailed records the error and releases the job for a later attempt.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if _, err := r.db.Exec(ctx, markFailedSQL, id, reason); err != nil {
		return wrapWriteErr("failed to mark notification job failed", err)
	}
	return nil
}
