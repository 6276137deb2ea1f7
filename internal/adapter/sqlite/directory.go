package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-ops/internal/core/domain"
)

// GetClient returns a client by id.
func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, email, created_at FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

// FindClientByEmail matches case-insensitively.
func (s *Store) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, email, created_at FROM clients WHERE lower(email) = lower(?)`, email)
	return scanClient(row)
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		c         domain.Client
		createdAt int64
	)
	err := row.Scan(&c.ID, &c.Name, &c.Email, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}
	c.CreatedAt = fromMillis(createdAt)
	return &c, nil
}

const campaignColumns = `c.id, c.name, c.client_id, c.service_id, c.budget, c.status, c.created_at`

func scanCampaign(row rowScanner, extra ...any) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		serviceID uuid.NullUUID
		createdAt int64
	)
	dest := append([]any{&c.ID, &c.Name, &c.ClientID, &serviceID, &c.Budget, &c.Status, &createdAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return c, err
	}
	if serviceID.Valid {
		c.ServiceID = &serviceID.UUID
	}
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = ?`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// GetTask returns a task by id.
func (s *Store) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var t domain.Task
	err := s.db.QueryRowContext(ctx, `SELECT id, campaign_id, title, status FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.CampaignID, &t.Title, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// ListBillableCampaigns lists campaigns with the price of their service,
// oldest first.
func (s *Store) ListBillableCampaigns(ctx context.Context, clientID *uuid.UUID) ([]domain.BillableCampaign, error) {
	var q query
	if clientID != nil {
		q.and("c.client_id = " + q.arg(*clientID))
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+campaignColumns+`, s.price
		FROM campaigns c LEFT JOIN services s ON s.id = c.service_id`+q.whereSQL()+`
		ORDER BY c.created_at, c.id`, q.args...)
	if err != nil {
		return nil, fmt.Errorf("list billable campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.BillableCampaign
	for rows.Next() {
		var price decimal.NullDecimal
		c, err := scanCampaign(rows, &price)
		if err != nil {
			return nil, fmt.Errorf("scan billable campaign: %w", err)
		}
		out = append(out, domain.BillableCampaign{Campaign: c, ServicePrice: price})
	}
	return out, rows.Err()
}

// ListAssignedCampaignIDs returns the campaigns userID is assigned to.
func (s *Store) ListAssignedCampaignIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT campaign_id FROM campaign_assignments WHERE user_id = ? ORDER BY campaign_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) UpsertClient(ctx context.Context, c domain.Client) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, email, created_at) VALUES (?1, ?2, ?3, ?4)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, email = excluded.email`,
		c.ID, c.Name, c.Email, toMillis(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("upsert client: %w", err)
	}
	return nil
}

func (s *Store) UpsertService(ctx context.Context, sv domain.Service) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO services (id, name, price) VALUES (?1, ?2, ?3)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, price = excluded.price`,
		sv.ID, sv.Name, sv.Price)
	if err != nil {
		return fmt.Errorf("upsert service: %w", err)
	}
	return nil
}

func (s *Store) UpsertCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO campaigns (id, name, client_id, service_id, budget, status, created_at)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7)
		ON CONFLICT (id) DO UPDATE SET
		    name = excluded.name, client_id = excluded.client_id, service_id = excluded.service_id,
		    budget = excluded.budget, status = excluded.status`,
		c.ID, c.Name, c.ClientID, c.ServiceID, c.Budget, c.Status, toMillis(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("upsert campaign: %w", mapError(err))
	}
	return nil
}

func (s *Store) UpsertTask(ctx context.Context, t domain.Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, campaign_id, title, status) VALUES (?1, ?2, ?3, ?4)
		ON CONFLICT (id) DO UPDATE SET campaign_id = excluded.campaign_id, title = excluded.title, status = excluded.status`,
		t.ID, t.CampaignID, t.Title, t.Status)
	if err != nil {
		return fmt.Errorf("upsert task: %w", mapError(err))
	}
	return nil
}

func (s *Store) AssignTeamMember(ctx context.Context, campaignID, userID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO campaign_assignments (campaign_id, user_id) VALUES (?, ?)
		ON CONFLICT DO NOTHING`, campaignID, userID)
	if err != nil {
		return fmt.Errorf("assign team member: %w", mapError(err))
	}
	return nil
}
