package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resumeforge/resume/model"
)

// PGRepo implements Repo using Postgres. The document payload is stored as
// JSONB alongside the dashboard metadata columns.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, owner_id, name, template, document, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	doc, err := json.Marshal(resume.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.OwnerID,
		resume.Name,
		resume.Template,
		doc,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	const query = `
SELECT id, owner_id, name, template, document, created_at, updated_at
FROM resumes
WHERE owner_id = $1 AND deleted_at IS NULL
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		rec, err := scanResume(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) Get(ctx context.Context, ownerID, id string) (Resume, error) {
	const query = `
SELECT id, owner_id, name, template, document, created_at, updated_at
FROM resumes
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

	rec, err := scanResume(r.DB.QueryRowContext(ctx, query, id, ownerID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return rec, nil
}

func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET name = $3, template = $4, document = $5, updated_at = $6
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

	doc, err := json.Marshal(resume.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.OwnerID,
		resume.Name,
		resume.Template,
		doc,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, ownerID, id string) error {
	const query = `
UPDATE resumes
SET deleted_at = $3
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

	res, err := r.DB.ExecContext(ctx, query, id, ownerID, time.Now().UTC())
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanResume(scan func(dest ...any) error) (Resume, error) {
	var rec Resume
	var doc []byte
	if err := scan(&rec.ID, &rec.OwnerID, &rec.Name, &rec.Template, &doc, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return Resume{}, err
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &rec.Document); err != nil {
			return Resume{}, fmt.Errorf("unmarshal document: %w", err)
		}
	} else {
		rec.Document = model.Document{}
	}
	return rec, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
