package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/policy"
	"agency-ops/internal/core/port"
)

// ApprovalUseCase implements port.ApprovalUseCase.
type ApprovalUseCase struct {
	approvals port.ApprovalRepository
	dir       port.Directory
	actors    actorResolver
	gate      *policy.Gate
	logger    *slog.Logger
	opts      options
}

func NewApprovalUseCase(approvals port.ApprovalRepository, dir port.Directory, gate *policy.Gate, logger *slog.Logger, opts ...Option) *ApprovalUseCase {
	return &ApprovalUseCase{
		approvals: approvals,
		dir:       dir,
		actors:    actorResolver{dir: dir},
		gate:      gate,
		logger:    logger,
		opts:      applyOptions(opts),
	}
}

func (u *ApprovalUseCase) CreateApprovalRequest(ctx context.Context, who domain.Identity, in port.CreateApprovalInput) (*domain.ApprovalRequest, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if err = u.gate.Authorize(policy.OpCreate, policy.Collection(policy.KindApprovalRequest), actor); err != nil {
		return nil, err
	}
	if in.CampaignID == uuid.Nil {
		return nil, domain.Validation("campaignId", "campaign is required")
	}
	camp, err := u.dir.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if camp == nil {
		return nil, domain.Validation("campaignId", fmt.Sprintf("campaign %s does not exist", in.CampaignID))
	}
	if err = u.gate.Authorize(policy.OpCreate, policy.Owned(policy.KindApprovalRequest, camp.ClientID, &camp.ID), actor); err != nil {
		return nil, err
	}
	if in.TaskID != nil {
		task, err := u.dir.GetTask(ctx, *in.TaskID)
		if err != nil {
			return nil, fmt.Errorf("get task: %w", err)
		}
		if task == nil || task.CampaignID != camp.ID {
			return nil, domain.Validation("taskId", fmt.Sprintf("task %s does not belong to campaign %s", *in.TaskID, camp.ID))
		}
	}

	a := domain.ApprovalRequest{
		ID:              uuid.New(),
		CampaignID:      camp.ID,
		ClientID:        camp.ClientID,
		TaskID:          in.TaskID,
		ItemName:        strings.TrimSpace(in.ItemName),
		Description:     in.Description,
		ItemType:        in.ItemType,
		Status:          domain.ApprovalPending,
		Explanation:     in.Explanation,
		CTADescription:  in.CTADescription,
		PlatformSpecs:   in.PlatformSpecs,
		PreviewURL:      in.PreviewURL,
		PreviewType:     in.PreviewType,
		DueDate:         in.DueDate,
		CreatedByUserID: who.UserID,
		CreatedAt:       u.opts.now(),
	}
	if err = a.Validate(); err != nil {
		return nil, err
	}
	if err = u.approvals.CreateApprovalRequest(ctx, &a); err != nil {
		return nil, err
	}
	u.logger.Info("approval request created",
		logID("approval_request_id", a.ID),
		logID("campaign_id", a.CampaignID),
		slog.String("item_name", a.ItemName),
		logID("created_by", who.UserID),
	)
	return &a, nil
}

func (u *ApprovalUseCase) UpdateApprovalRequest(ctx context.Context, who domain.Identity, id uuid.UUID, patch domain.ApprovalPatch) (*domain.ApprovalRequest, error) {
	if _, err := u.authorizeRequest(ctx, who, policy.OpUpdate, id); err != nil {
		return nil, err
	}
	a, err := u.approvals.UpdateApprovalRequest(ctx, id, patch, u.opts.now())
	if err != nil {
		return nil, err
	}
	u.logger.Info("approval request updated", logID("approval_request_id", id), logID("updated_by", who.UserID))
	return a, nil
}

// ProcessApproval records the owning client's decision. The status change
// and its comment are written in one repository transaction.
func (u *ApprovalUseCase) ProcessApproval(ctx context.Context, who domain.Identity, id uuid.UUID, in port.DecisionInput) (*domain.ApprovalRequest, error) {
	if _, err := u.authorizeRequest(ctx, who, policy.OpDecide, id); err != nil {
		return nil, err
	}
	action, err := domain.ParseDecision(in.Action)
	if err != nil {
		return nil, err
	}
	a, c, err := u.approvals.DecideApprovalRequest(ctx, port.DecideCmd{
		RequestID: id,
		Action:    action,
		Comment:   in.Comment,
		By:        who.UserID,
		At:        u.opts.now(),
	})
	if err != nil {
		if domain.IsCode(err, domain.CodeApprovalAlreadyFinalized) {
			u.logger.Warn("decision on finalized approval request",
				logID("approval_request_id", id),
				slog.String("action", string(action)),
			)
		}
		return nil, err
	}
	u.logger.Info("approval request decided",
		logID("approval_request_id", a.ID),
		slog.String("status", string(a.Status)),
		logID("comment_id", c.ID),
		logID("decided_by", who.UserID),
	)
	return a, nil
}

// AddComment appends a note that does not change the request status.
func (u *ApprovalUseCase) AddComment(ctx context.Context, who domain.Identity, id uuid.UUID, text string) (*domain.ApprovalComment, error) {
	if _, err := u.authorizeRequest(ctx, who, policy.OpComment, id); err != nil {
		return nil, err
	}
	c, err := domain.NewNote(id, text, who.UserID, u.opts.now())
	if err != nil {
		return nil, err
	}
	if err = u.approvals.AppendComment(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("approval comment added",
		logID("approval_request_id", id),
		logID("comment_id", c.ID),
		logID("by", who.UserID),
	)
	return &c, nil
}

func (u *ApprovalUseCase) DeleteApprovalRequest(ctx context.Context, who domain.Identity, id uuid.UUID) error {
	if _, err := u.authorizeRequest(ctx, who, policy.OpDelete, id); err != nil {
		return err
	}
	if err := u.approvals.DeleteApprovalRequest(ctx, id); err != nil {
		return err
	}
	u.logger.Info("approval request deleted", logID("approval_request_id", id), logID("by", who.UserID))
	return nil
}

func (u *ApprovalUseCase) GetApprovalRequest(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.ApprovalRequest, error) {
	return u.authorizeRequest(ctx, who, policy.OpRead, id)
}

// ListApprovalRequests pages the requests visible to the caller. The scope
// always comes from the actor; a campaignId in the filter only narrows it.
func (u *ApprovalUseCase) ListApprovalRequests(ctx context.Context, who domain.Identity, f port.ApprovalFilter) (domain.Page[domain.ApprovalRequest], error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return domain.Page[domain.ApprovalRequest]{}, err
	}
	if err = u.gate.Authorize(policy.OpRead, policy.Collection(policy.KindApprovalRequest), actor); err != nil {
		return domain.Page[domain.ApprovalRequest]{}, err
	}
	if err = scopeApprovals(actor, &f); err != nil {
		return domain.Page[domain.ApprovalRequest]{}, err
	}
	f.PageRequest = f.PageRequest.Normalize()
	items, total, err := u.approvals.ListApprovalRequests(ctx, f)
	if err != nil {
		return domain.Page[domain.ApprovalRequest]{}, fmt.Errorf("list approval requests: %w", err)
	}
	return domain.Page[domain.ApprovalRequest]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

// ListApprovalRequestsByCampaign returns every request of one campaign the
// caller may read, newest first.
func (u *ApprovalUseCase) ListApprovalRequestsByCampaign(ctx context.Context, who domain.Identity, campaignID uuid.UUID) ([]domain.ApprovalRequest, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	camp, err := u.dir.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if camp == nil {
		return nil, domain.NotFound("campaign", campaignID)
	}
	if err = u.gate.Authorize(policy.OpRead, policy.Owned(policy.KindApprovalRequest, camp.ClientID, &camp.ID), actor); err != nil {
		return nil, err
	}
	f := port.ApprovalFilter{CampaignID: &camp.ID}
	if err = scopeApprovals(actor, &f); err != nil {
		return nil, err
	}
	items, _, err := u.approvals.ListApprovalRequests(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list approval requests of campaign %s: %w", campaignID, err)
	}
	return items, nil
}

// ListComments returns the audit trail of a request, oldest first.
func (u *ApprovalUseCase) ListComments(ctx context.Context, who domain.Identity, id uuid.UUID) ([]domain.ApprovalComment, error) {
	if _, err := u.authorizeRequest(ctx, who, policy.OpRead, id); err != nil {
		return nil, err
	}
	comments, err := u.approvals.ListComments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (u *ApprovalUseCase) authorizeRequest(ctx context.Context, who domain.Identity, op policy.Operation, id uuid.UUID) (*domain.ApprovalRequest, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if err = u.gate.Authorize(op, policy.Collection(policy.KindApprovalRequest), actor); err != nil {
		return nil, err
	}
	a, err := u.approvals.GetApprovalRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get approval request: %w", err)
	}
	if a == nil {
		return nil, domain.NotFound("approval request", id)
	}
	if err = u.gate.Authorize(op, policy.Owned(policy.KindApprovalRequest, a.ClientID, &a.CampaignID), actor); err != nil {
		return nil, err
	}
	return a, nil
}

// scopeApprovals restricts f to what actor may see.
func scopeApprovals(actor policy.Actor, f *port.ApprovalFilter) error {
	switch {
	case actor.HasRole(domain.RoleAdmin):
		return nil
	case actor.HasRole(domain.RoleClient):
		scope, err := clientScope(actor)
		if err != nil {
			return err
		}
		f.ClientID = scope
		return nil
	case actor.HasRole(domain.RoleTeam):
		f.TeamScoped = true
		f.AssignedCampaigns = actor.AssignedCampaigns
		return nil
	}
	return domain.Forbidden("account has no approval scope")
}
