package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"agency-ops/internal/core/domain"
)

// GetClient returns a client by id.
func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var c domain.Client
	err := s.pool.QueryRow(ctx, `SELECT id, name, email, created_at FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// FindClientByEmail matches case-insensitively.
func (s *Store) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var c domain.Client
	err := s.pool.QueryRow(ctx, `SELECT id, name, email, created_at FROM clients WHERE lower(email) = lower($1)`, email).
		Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &c, nil
}

// GetCampaign returns a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, client_id, service_id, budget, status, created_at
		FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.ClientID, &c.ServiceID, &c.Budget, &c.Status, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
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
	err := s.pool.QueryRow(ctx, `SELECT id, campaign_id, title, status FROM tasks WHERE id = $1`, id).
		Scan(&t.ID, &t.CampaignID, &t.Title, &t.Status)
	if errors.Is(err, pgx.ErrNoRows) {
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
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.name, c.client_id, c.service_id, c.budget, c.status, c.created_at, s.price
		FROM campaigns c LEFT JOIN services s ON s.id = c.service_id`+q.whereSQL()+`
		ORDER BY c.created_at, c.id`, q.args...)
	if err != nil {
		return nil, fmt.Errorf("list billable campaigns: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BillableCampaign, error) {
		var (
			b     domain.BillableCampaign
			price decimal.NullDecimal
		)
		err := row.Scan(&b.ID, &b.Name, &b.ClientID, &b.ServiceID, &b.Budget, &b.Status, &b.CreatedAt, &price)
		b.ServicePrice = price
		return b, err
	})
}

// ListAssignedCampaignIDs returns the campaigns userID is assigned to.
func (s *Store) ListAssignedCampaignIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.pool.Query(ctx, `SELECT campaign_id FROM campaign_assignments WHERE user_id = $1 ORDER BY campaign_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (s *Store) UpsertClient(ctx context.Context, c domain.Client) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO clients (id, name, email, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email`,
		c.ID, c.Name, c.Email, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert client: %w", err)
	}
	return nil
}

func (s *Store) UpsertService(ctx context.Context, sv domain.Service) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO services (id, name, price) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price`,
		sv.ID, sv.Name, sv.Price)
	if err != nil {
		return fmt.Errorf("upsert service: %w", err)
	}
	return nil
}

func (s *Store) UpsertCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO campaigns (id, name, client_id, service_id, budget, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
		    name = EXCLUDED.name, client_id = EXCLUDED.client_id, service_id = EXCLUDED.service_id,
		    budget = EXCLUDED.budget, status = EXCLUDED.status`,
		c.ID, c.Name, c.ClientID, c.ServiceID, c.Budget, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert campaign: %w", mapError(err))
	}
	return nil
}

func (s *Store) UpsertTask(ctx context.Context, t domain.Task) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO tasks (id, campaign_id, title, status) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET campaign_id = EXCLUDED.campaign_id, title = EXCLUDED.title, status = EXCLUDED.status`,
		t.ID, t.CampaignID, t.Title, t.Status)
	if err != nil {
		return fmt.Errorf("upsert task: %w", mapError(err))
	}
	return nil
}

func (s *Store) AssignTeamMember(ctx context.Context, campaignID, userID uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO campaign_assignments (campaign_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, campaignID, userID)
	if err != nil {
		return fmt.Errorf("assign team member: %w", mapError(err))
	}
	return nil
}
