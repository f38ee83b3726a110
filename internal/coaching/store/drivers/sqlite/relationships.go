package sqlite

import (
	"context"
	"strings"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
)

type relationshipsRepo struct {
	db dbtx
}

const relationshipColumns = `
	id, coach_id, runner_id, status, kind, initiated_by, created_at, updated_at`

func (r *relationshipsRepo) CreateRelationship(ctx context.Context, rel domain.Relationship) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO relationships (id, coach_id, runner_id, status, kind, initiated_by)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rel.ID, rel.CoachID, rel.RunnerID, string(rel.Status), string(rel.Kind), rel.InitiatedBy,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *relationshipsRepo) GetRelationshipByID(ctx context.Context, id string) (domain.Relationship, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+relationshipColumns+` FROM relationships WHERE id = ?`, id)
	return scanRelationship(row)
}

func (r *relationshipsRepo) GetCurrentRelationship(ctx context.Context, coachID, runnerID string) (domain.Relationship, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+relationshipColumns+`
		FROM relationships
		WHERE coach_id = ? AND runner_id = ? AND status != 'inactive'`,
		coachID, runnerID,
	)
	return scanRelationship(row)
}

func (r *relationshipsRepo) UpdateRelationshipStatus(ctx context.Context, id string, status domain.RelationshipStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE relationships
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *relationshipsRepo) ListRelationshipsByUser(ctx context.Context, userID string) ([]domain.Relationship, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+relationshipColumns+`
		FROM relationships
		WHERE coach_id = ? OR runner_id = ?
		ORDER BY created_at DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Relationship
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	return out, rows.Err()
}

func scanRelationship(row rowScanner) (domain.Relationship, error) {
	var rel domain.Relationship
	var status, kind string

	err := row.Scan(
		&rel.ID, &rel.CoachID, &rel.RunnerID, &status, &kind,
		&rel.InitiatedBy, &rel.CreatedAt, &rel.UpdatedAt,
	)
	if err != nil {
		return domain.Relationship{}, mapNotFound(err)
	}

	rel.Status = domain.RelationshipStatus(status)
	rel.Kind = domain.RelationshipKind(kind)
	return rel, nil
}
