package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `
	id, inviter_id, email, role, message, token_hash, expires_at,
	status, resend_count, last_resent_at, accepted_by, created_at, updated_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (id, inviter_id, email, role, message, token_hash, expires_at, status, resend_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.InviterID, inv.Email, string(inv.Role), inv.Message,
		inv.TokenHash, inv.ExpiresAt.UTC(), string(inv.Status), inv.ResendCount,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash)
	return scanInvitation(row)
}

func (r *invitationsRepo) RotateInvitationToken(
	ctx context.Context,
	id, newHash string,
	expiresAt, resentAt time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET token_hash = ?, expires_at = ?, resend_count = resend_count + 1,
		    last_resent_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'pending'`,
		newHash, expiresAt.UTC(), resentAt.UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *invitationsRepo) UpdateInvitationStatus(
	ctx context.Context,
	id string,
	from, to domain.InvitationStatus,
	acceptedBy string,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, accepted_by = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ?`,
		string(to), mapStringNull(acceptedBy), id, string(from),
	)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *invitationsRepo) ListInvitationsByInviter(ctx context.Context, inviterID string) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE inviter_id = ? ORDER BY created_at DESC`,
		inviterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) DeleteInvitationsExpiredBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE expires_at < ?`, cutoff.UTC())
	return err
}

// requireOneRow maps a zero-row conditional update to ErrStaleStatus.
func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrStaleStatus
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var inv domain.Invitation
	var role, status string
	var lastResent sql.NullTime
	var acceptedBy sql.NullString

	err := row.Scan(
		&inv.ID, &inv.InviterID, &inv.Email, &role, &inv.Message,
		&inv.TokenHash, &inv.ExpiresAt, &status, &inv.ResendCount,
		&lastResent, &acceptedBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	inv.Role = domain.Role(role)
	inv.Status = domain.InvitationStatus(status)
	inv.LastResentAt = mapNullTimePtr(lastResent)
	inv.AcceptedBy = mapNullString(acceptedBy)
	return inv, nil
}
