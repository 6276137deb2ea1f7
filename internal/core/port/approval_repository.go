package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
)

// ApprovalRepository persists approval requests and their comment trail.
// Comments can only be appended and listed; the schema rejects updates and
// deletes of comment rows.
type ApprovalRepository interface {
	CreateApprovalRequest(ctx context.Context, a *domain.ApprovalRequest) error
	GetApprovalRequest(ctx context.Context, id uuid.UUID) (*domain.ApprovalRequest, error)
	ListApprovalRequests(ctx context.Context, f ApprovalFilter) ([]domain.ApprovalRequest, int64, error)
	UpdateApprovalRequest(ctx context.Context, id uuid.UUID, patch domain.ApprovalPatch, at time.Time) (*domain.ApprovalRequest, error)
	// DecideApprovalRequest applies the decision and appends its comment in
	// one transaction.
	DecideApprovalRequest(ctx context.Context, cmd DecideCmd) (*domain.ApprovalRequest, *domain.ApprovalComment, error)
	AppendComment(ctx context.Context, c domain.ApprovalComment) error
	// ListComments returns the trail oldest first.
	ListComments(ctx context.Context, requestID uuid.UUID) ([]domain.ApprovalComment, error)
	// DeleteApprovalRequest removes a request without comments.
	DeleteApprovalRequest(ctx context.Context, id uuid.UUID) error
}

// ApprovalFilter scopes approval request lists. When TeamScoped is set only
// requests of AssignedCampaigns are returned.
type ApprovalFilter struct {
	domain.PageRequest
	ClientID          *uuid.UUID
	CampaignID        *uuid.UUID
	Status            *domain.ApprovalStatus
	TeamScoped        bool
	AssignedCampaigns []uuid.UUID
}

// DecideCmd carries one client decision.
type DecideCmd struct {
	RequestID uuid.UUID
	Action    domain.ApprovalAction
	Comment   string
	By        uuid.UUID
	At        time.Time
}
