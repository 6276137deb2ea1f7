package port

import (
	"context"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
)

// Directory reads the Campaign/Client aggregate owned by CRUD outside the
// ledger and the approval workflow. Getters return nil, nil when the row
// does not exist.
type Directory interface {
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	// FindClientByEmail resolves the client record a client actor acts for.
	FindClientByEmail(ctx context.Context, email string) (*domain.Client, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	// ListBillableCampaigns lists campaigns joined with their service price.
	// A nil clientID lists every campaign.
	ListBillableCampaigns(ctx context.Context, clientID *uuid.UUID) ([]domain.BillableCampaign, error)
	// ListAssignedCampaignIDs returns the campaigns a team user works on.
	ListAssignedCampaignIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// DirectoryWriter is the minimal write side of the directory used for
// seeding demo data and tests. Upserts are keyed by id.
type DirectoryWriter interface {
	UpsertClient(ctx context.Context, c domain.Client) error
	UpsertService(ctx context.Context, s domain.Service) error
	UpsertCampaign(ctx context.Context, c domain.Campaign) error
	UpsertTask(ctx context.Context, t domain.Task) error
	AssignTeamMember(ctx context.Context, campaignID, userID uuid.UUID) error
}
