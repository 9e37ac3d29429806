package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO job_descriptions (id, owner_id, title, company, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.OwnerID,
		job.Title,
		job.Company,
		job.Description,
		job.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Job, error) {
	const query = `
SELECT id, owner_id, title, company, description, created_at
FROM job_descriptions
WHERE owner_id = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var rec Job
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Company, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) Get(ctx context.Context, ownerID, id string) (Job, error) {
	const query = `
SELECT id, owner_id, title, company, description, created_at
FROM job_descriptions
WHERE id = $1 AND owner_id = $2`

	var rec Job
	err := r.DB.QueryRowContext(ctx, query, id, ownerID).
		Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Company, &rec.Description, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return rec, nil
}

func (r *PGRepo) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM job_descriptions WHERE id = $1 AND owner_id = $2`

	res, err := r.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
