package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
)

// ApprovalUseCase is the deliverable approval workflow.
type ApprovalUseCase interface {
	CreateApprovalRequest(ctx context.Context, who domain.Identity, in CreateApprovalInput) (*domain.ApprovalRequest, error)
	// UpdateApprovalRequest edits content fields; status never changes.
	UpdateApprovalRequest(ctx context.Context, who domain.Identity, id uuid.UUID, patch domain.ApprovalPatch) (*domain.ApprovalRequest, error)
	// ProcessApproval records the owning client's decision on a Pending
	// request together with exactly one audit comment.
	ProcessApproval(ctx context.Context, who domain.Identity, id uuid.UUID, in DecisionInput) (*domain.ApprovalRequest, error)
	AddComment(ctx context.Context, who domain.Identity, id uuid.UUID, text string) (*domain.ApprovalComment, error)
	DeleteApprovalRequest(ctx context.Context, who domain.Identity, id uuid.UUID) error
	GetApprovalRequest(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.ApprovalRequest, error)
	ListApprovalRequests(ctx context.Context, who domain.Identity, f ApprovalFilter) (domain.Page[domain.ApprovalRequest], error)
	ListApprovalRequestsByCampaign(ctx context.Context, who domain.Identity, campaignID uuid.UUID) ([]domain.ApprovalRequest, error)
	ListComments(ctx context.Context, who domain.Identity, id uuid.UUID) ([]domain.ApprovalComment, error)
}

// CreateApprovalInput submits a deliverable for sign-off.
type CreateApprovalInput struct {
	CampaignID     uuid.UUID
	TaskID         *uuid.UUID
	ItemName       string
	Description    *string
	ItemType       *string
	Explanation    *string
	CTADescription *string
	PlatformSpecs  *string
	PreviewURL     *string
	PreviewType    *string
	DueDate        *time.Time
}

// DecisionInput is the raw client decision; Action is validated by the
// use case.
type DecisionInput struct {
	Action  string
	Comment string
}
