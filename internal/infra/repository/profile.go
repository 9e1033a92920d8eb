package repository

import (
	"context"

	"rentdesk/internal/domain/customer"
	"rentdesk/internal/infra/db"
)

type ProfileRepository struct {
	db db.DBTX
}

func NewProfileRepository(pool db.DBTX) *ProfileRepository {
	return &ProfileRepository{db: pool}
}

const upsertProfileSQL = `
INSERT INTO profiles (phone, full_name, role, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (phone) DO UPDATE
SET full_name = EXCLUDED.full_name,
    updated_at = now()`

// Upsert is keyed on phone: the same guest booking twice refreshes their
// name rather than creating a second record.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *customer.Profile) error {
	_, err := r.db.Exec(ctx, upsertProfileSQL, profile.Phone(), profile.FullName(), profile.Role())
	if err != nil {
		return wrapWriteErr("failed to upsert customer profile", err)
	}
	return nil
}
