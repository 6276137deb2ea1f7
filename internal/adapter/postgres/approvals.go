package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

const approvalColumns = `a.id, a.campaign_id, c.client_id, a.task_id, a.item_name, a.description, a.item_type,
	a.status, a.explanation, a.cta_description, a.platform_specs, a.preview_url, a.preview_type,
	a.due_date, a.created_by_user_id, a.approved_by_user_id, a.created_at, a.updated_at,
	a.approved_at, a.rejected_at`

const approvalFrom = ` FROM approval_requests a JOIN campaigns c ON c.id = a.campaign_id`

func scanApproval(row pgx.Row) (domain.ApprovalRequest, error) {
	var a domain.ApprovalRequest
	err := row.Scan(&a.ID, &a.CampaignID, &a.ClientID, &a.TaskID, &a.ItemName, &a.Description, &a.ItemType,
		&a.Status, &a.Explanation, &a.CTADescription, &a.PlatformSpecs, &a.PreviewURL, &a.PreviewType,
		&a.DueDate, &a.CreatedByUserID, &a.ApprovedByUserID, &a.CreatedAt, &a.UpdatedAt,
		&a.ApprovedAt, &a.RejectedAt)
	return a, err
}

func getApproval(ctx context.Context, q querier, id uuid.UUID, lock bool) (*domain.ApprovalRequest, error) {
	stmt := `SELECT ` + approvalColumns + approvalFrom + ` WHERE a.id = $1`
	if lock {
		stmt += ` FOR UPDATE OF a`
	}
	a, err := scanApproval(q.QueryRow(ctx, stmt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get approval request: %w", err)
	}
	return &a, nil
}

func lockApproval(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.ApprovalRequest, error) {
	a, err := getApproval(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NotFound("approval request", id)
	}
	return a, nil
}

func (s *Store) CreateApprovalRequest(ctx context.Context, a *domain.ApprovalRequest) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO approval_requests (id, campaign_id, task_id, item_name, description, item_type, status,
		    explanation, cta_description, platform_specs, preview_url, preview_type, due_date,
		    created_by_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.CampaignID, a.TaskID, a.ItemName, a.Description, a.ItemType, a.Status,
		a.Explanation, a.CTADescription, a.PlatformSpecs, a.PreviewURL, a.PreviewType, a.DueDate,
		a.CreatedByUserID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert approval request: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetApprovalRequest(ctx context.Context, id uuid.UUID) (*domain.ApprovalRequest, error) {
	return getApproval(ctx, s.pool, id, false)
}

func (s *Store) ListApprovalRequests(ctx context.Context, f port.ApprovalFilter) ([]domain.ApprovalRequest, int64, error) {
	var q query
	if f.ClientID != nil {
		q.and("c.client_id = " + q.arg(*f.ClientID))
	}
	if f.CampaignID != nil {
		q.and("a.campaign_id = " + q.arg(*f.CampaignID))
	}
	if f.Status != nil {
		q.and("a.status = " + q.arg(string(*f.Status)))
	}
	if f.TeamScoped {
		ids := make([]string, len(f.AssignedCampaigns))
		for i, id := range f.AssignedCampaigns {
			ids[i] = id.String()
		}
		q.and("a.campaign_id = ANY(" + q.arg(ids) + "::uuid[])")
	}
	if f.Search != "" {
		p := q.arg(likePattern(f.Search))
		q.and("(a.item_name ILIKE " + p + " OR a.description ILIKE " + p + ")")
	}

	var total int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*)`+approvalFrom+q.whereSQL(), q.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count approval requests: %w", err)
	}

	stmt := `SELECT ` + approvalColumns + approvalFrom + q.whereSQL() + ` ORDER BY a.created_at DESC, a.id` + q.page(f.PageRequest)
	rows, err := s.pool.Query(ctx, stmt, q.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list approval requests: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApprovalRequest, error) {
		return scanApproval(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan approval requests: %w", err)
	}
	return items, total, nil
}

func (s *Store) UpdateApprovalRequest(ctx context.Context, id uuid.UUID, patch domain.ApprovalPatch, at time.Time) (*domain.ApprovalRequest, error) {
	var out *domain.ApprovalRequest
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		a, err := lockApproval(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = a.Apply(patch, at); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			UPDATE approval_requests SET item_name = $2, description = $3, item_type = $4, explanation = $5,
			    cta_description = $6, platform_specs = $7, preview_url = $8, preview_type = $9,
			    due_date = $10, updated_at = $11
			WHERE id = $1`,
			a.ID, a.ItemName, a.Description, a.ItemType, a.Explanation,
			a.CTADescription, a.PlatformSpecs, a.PreviewURL, a.PreviewType, a.DueDate, a.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update approval request: %w", err)
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func insertComment(ctx context.Context, q querier, c domain.ApprovalComment) error {
	_, err := q.Exec(ctx, `
		INSERT INTO approval_comments (id, approval_request_id, comment, action, created_by_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.ApprovalRequestID, c.Comment, c.Action, c.CreatedByUserID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert approval comment: %w", err)
	}
	return nil
}

// DecideApprovalRequest locks the request, so of two racing decisions the
// second sees the first one's status and fails the Pending check.
func (s *Store) DecideApprovalRequest(ctx context.Context, cmd port.DecideCmd) (*domain.ApprovalRequest, *domain.ApprovalComment, error) {
	var (
		out     *domain.ApprovalRequest
		comment domain.ApprovalComment
	)
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		a, err := lockApproval(ctx, tx, cmd.RequestID)
		if err != nil {
			return err
		}
		if comment, err = a.Decide(cmd.Action, cmd.Comment, cmd.By, cmd.At); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `
			UPDATE approval_requests SET status = $2, approved_by_user_id = $3, updated_at = $4,
			    approved_at = $5, rejected_at = $6
			WHERE id = $1 AND status = 'Pending'`,
			a.ID, a.Status, a.ApprovedByUserID, a.UpdatedAt, a.ApprovedAt, a.RejectedAt)
		if err != nil {
			return fmt.Errorf("decide approval request: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.Conflict(domain.CodeApprovalAlreadyFinalized,
				fmt.Sprintf("approval request %s is already finalized", a.ID))
		}
		if err = insertComment(ctx, tx, comment); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, &comment, nil
}

func (s *Store) AppendComment(ctx context.Context, c domain.ApprovalComment) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := lockApproval(ctx, tx, c.ApprovalRequestID); err != nil {
			return err
		}
		return insertComment(ctx, tx, c)
	})
}

// ListComments orders comments with equal timestamps by insertion.
func (s *Store) ListComments(ctx context.Context, requestID uuid.UUID) ([]domain.ApprovalComment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, approval_request_id, comment, action, created_by_user_id, created_at
		FROM approval_comments WHERE approval_request_id = $1
		ORDER BY created_at, seq`, requestID)
	if err != nil {
		return nil, fmt.Errorf("list approval comments: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApprovalComment, error) {
		var c domain.ApprovalComment
		err := row.Scan(&c.ID, &c.ApprovalRequestID, &c.Comment, &c.Action, &c.CreatedByUserID, &c.CreatedAt)
		return c, err
	})
}

func (s *Store) DeleteApprovalRequest(ctx context.Context, id uuid.UUID) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := lockApproval(ctx, tx, id); err != nil {
			return err
		}
		var comments int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM approval_comments WHERE approval_request_id = $1`, id).Scan(&comments); err != nil {
			return fmt.Errorf("count approval comments: %w", err)
		}
		if comments > 0 {
			return domain.Referential(domain.CodeApprovalHasComments,
				fmt.Sprintf("approval request has %d comment(s) and cannot be deleted", comments))
		}
		if _, err := tx.Exec(ctx, `DELETE FROM approval_requests WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete approval request: %w", err)
		}
		return nil
	})
}
