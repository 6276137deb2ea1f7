package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
)

const approvalColumns = `a.id, a.campaign_id, c.client_id, a.task_id, a.item_name, a.description, a.item_type,
	a.status, a.explanation, a.cta_description, a.platform_specs, a.preview_url, a.preview_type,
	a.due_date, a.created_by_user_id, a.approved_by_user_id, a.created_at, a.updated_at,
	a.approved_at, a.rejected_at`

const approvalFrom = ` FROM approval_requests a JOIN campaigns c ON c.id = a.campaign_id`

func scanApproval(row rowScanner) (domain.ApprovalRequest, error) {
	var (
		a                                        domain.ApprovalRequest
		createdAt                                int64
		dueDate, updatedAt, approvedAt, rejected sql.NullInt64
	)
	err := row.Scan(&a.ID, &a.CampaignID, &a.ClientID, &a.TaskID, &a.ItemName, &a.Description, &a.ItemType,
		&a.Status, &a.Explanation, &a.CTADescription, &a.PlatformSpecs, &a.PreviewURL, &a.PreviewType,
		&dueDate, &a.CreatedByUserID, &a.ApprovedByUserID, &createdAt, &updatedAt,
		&approvedAt, &rejected)
	if err != nil {
		return a, err
	}
	a.DueDate = timePtr(dueDate)
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = timePtr(updatedAt)
	a.ApprovedAt = timePtr(approvedAt)
	a.RejectedAt = timePtr(rejected)
	return a, nil
}

func getApproval(ctx context.Context, q queryer, id uuid.UUID) (*domain.ApprovalRequest, error) {
	row := q.QueryRowContext(ctx, `SELECT `+approvalColumns+approvalFrom+` WHERE a.id = ?`, id)
	a, err := scanApproval(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get approval request: %w", err)
	}
	return &a, nil
}

func mustApproval(ctx context.Context, q queryer, id uuid.UUID) (*domain.ApprovalRequest, error) {
	a, err := getApproval(ctx, q, id)
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO approval_requests (id, campaign_id, task_id, item_name, description, item_type, status,
		    explanation, cta_description, platform_specs, preview_url, preview_type, due_date,
		    created_by_user_id, created_at)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12, ?13, ?14, ?15)`,
		a.ID, a.CampaignID, a.TaskID, a.ItemName, a.Description, a.ItemType, a.Status,
		a.Explanation, a.CTADescription, a.PlatformSpecs, a.PreviewURL, a.PreviewType, nullMillis(a.DueDate),
		a.CreatedByUserID, toMillis(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert approval request: %w", mapError(err))
	}
	return nil
}

func (s *Store) GetApprovalRequest(ctx context.Context, id uuid.UUID) (*domain.ApprovalRequest, error) {
	return getApproval(ctx, s.db, id)
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
		q.and("a.status = " + q.arg(*f.Status))
	}
	if f.TeamScoped {
		ids := make([]string, len(f.AssignedCampaigns))
		for i, id := range f.AssignedCampaigns {
			ids[i] = id.String()
		}
		q.in("a.campaign_id", ids)
	}
	if f.Search != "" {
		p := q.arg(likePattern(f.Search))
		q.and("(a.item_name LIKE " + p + " OR a.description LIKE " + p + ")")
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+approvalFrom+q.whereSQL(), q.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count approval requests: %w", err)
	}

	stmt := `SELECT ` + approvalColumns + approvalFrom + q.whereSQL() + ` ORDER BY a.created_at DESC, a.id` + q.page(f.PageRequest)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list approval requests: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ApprovalRequest, 0)
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan approval request: %w", err)
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func saveApproval(ctx context.Context, tx *sql.Tx, a *domain.ApprovalRequest) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE approval_requests SET item_name = ?2, description = ?3, item_type = ?4, status = ?5,
		    explanation = ?6, cta_description = ?7, platform_specs = ?8, preview_url = ?9, preview_type = ?10,
		    due_date = ?11, approved_by_user_id = ?12, updated_at = ?13, approved_at = ?14, rejected_at = ?15
		WHERE id = ?1`,
		a.ID, a.ItemName, a.Description, a.ItemType, a.Status,
		a.Explanation, a.CTADescription, a.PlatformSpecs, a.PreviewURL, a.PreviewType,
		nullMillis(a.DueDate), a.ApprovedByUserID, nullMillis(a.UpdatedAt), nullMillis(a.ApprovedAt), nullMillis(a.RejectedAt))
	if err != nil {
		return fmt.Errorf("update approval request: %w", err)
	}
	return nil
}

func (s *Store) UpdateApprovalRequest(ctx context.Context, id uuid.UUID, patch domain.ApprovalPatch, at time.Time) (*domain.ApprovalRequest, error) {
	var out *domain.ApprovalRequest
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		a, err := mustApproval(ctx, tx, id)
		if err != nil {
			return err
		}
		if err = a.Apply(patch, at); err != nil {
			return err
		}
		if err = saveApproval(ctx, tx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func insertComment(ctx context.Context, q queryer, c domain.ApprovalComment) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO approval_comments (id, approval_request_id, comment, action, created_by_user_id, created_at)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6)`,
		c.ID, c.ApprovalRequestID, c.Comment, c.Action, c.CreatedByUserID, toMillis(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert approval comment: %w", err)
	}
	return nil
}

// DecideApprovalRequest guards the status change on the row still being
// Pending, so of two racing decisions exactly one is recorded.
func (s *Store) DecideApprovalRequest(ctx context.Context, cmd port.DecideCmd) (*domain.ApprovalRequest, *domain.ApprovalComment, error) {
	var (
		out     *domain.ApprovalRequest
		comment domain.ApprovalComment
	)
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		a, err := mustApproval(ctx, tx, cmd.RequestID)
		if err != nil {
			return err
		}
		if comment, err = a.Decide(cmd.Action, cmd.Comment, cmd.By, cmd.At); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE approval_requests SET status = ?2, approved_by_user_id = ?3, updated_at = ?4,
			    approved_at = ?5, rejected_at = ?6
			WHERE id = ?1 AND status = 'Pending'`,
			a.ID, a.Status, a.ApprovedByUserID, nullMillis(a.UpdatedAt), nullMillis(a.ApprovedAt), nullMillis(a.RejectedAt))
		if err != nil {
			return fmt.Errorf("decide approval request: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("decide approval request: %w", err)
		} else if n == 0 {
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
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := mustApproval(ctx, tx, c.ApprovalRequestID); err != nil {
			return err
		}
		return insertComment(ctx, tx, c)
	})
}

// ListComments orders by insertion within the same millisecond.
func (s *Store) ListComments(ctx context.Context, requestID uuid.UUID) ([]domain.ApprovalComment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, approval_request_id, comment, action, created_by_user_id, created_at
		FROM approval_comments WHERE approval_request_id = ?
		ORDER BY created_at, rowid`, requestID)
	if err != nil {
		return nil, fmt.Errorf("list approval comments: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ApprovalComment, 0)
	for rows.Next() {
		var (
			c         domain.ApprovalComment
			createdAt int64
		)
		if err = rows.Scan(&c.ID, &c.ApprovalRequestID, &c.Comment, &c.Action, &c.CreatedByUserID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan approval comment: %w", err)
		}
		c.CreatedAt = fromMillis(createdAt)
		items = append(items, c)
	}
	return items, rows.Err()
}

func (s *Store) DeleteApprovalRequest(ctx context.Context, id uuid.UUID) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := mustApproval(ctx, tx, id); err != nil {
			return err
		}
		var comments int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM approval_comments WHERE approval_request_id = ?`, id).Scan(&comments); err != nil {
			return fmt.Errorf("count approval comments: %w", err)
		}
		if comments > 0 {
			return domain.Referential(domain.CodeApprovalHasComments,
				fmt.Sprintf("approval request has %d comment(s) and cannot be deleted", comments))
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM approval_requests WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete approval request: %w", err)
		}
		return nil
	})
}
