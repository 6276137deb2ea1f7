package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/policy"
	"agency-ops/internal/core/port"
)

// InvoiceUseCase implements port.InvoiceUseCase.
type InvoiceUseCase struct {
	invoices port.InvoiceRepository
	dir      port.Directory
	actors   actorResolver
	gate     *policy.Gate
	logger   *slog.Logger
	opts     options
}

// NewInvoiceUseCase wires the invoice ledger.
func NewInvoiceUseCase(invoices port.InvoiceRepository, dir port.Directory, gate *policy.Gate, logger *slog.Logger, opts ...Option) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices: invoices,
		dir:      dir,
		actors:   actorResolver{dir: dir},
		gate:     gate,
		logger:   logger,
		opts:     applyOptions(opts),
	}
}

// EnsureCampaignInvoices provisions a Draft invoice for each visible
// campaign without one. The repository re-checks under a campaign lock, so
// concurrent callers cannot both insert.
func (u *InvoiceUseCase) EnsureCampaignInvoices(ctx context.Context, who domain.Identity) ([]domain.Invoice, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if err = u.gate.Authorize(policy.OpProvision, policy.Collection(policy.KindInvoice), actor); err != nil {
		return nil, err
	}
	scope, err := clientScope(actor)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.dir.ListBillableCampaigns(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list billable campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return []domain.Invoice{}, nil
	}

	ids := make([]uuid.UUID, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	existing, err := u.invoices.ListInvoicesByCampaigns(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list campaign invoices: %w", err)
	}
	billed := make(map[uuid.UUID]bool, len(existing))
	for _, inv := range existing {
		if inv.CampaignID != nil {
			billed[*inv.CampaignID] = true
		}
	}

	// The snapshot may be stale once another caller provisions a campaign,
	// so any unbilled campaign forces a fresh read below.
	missing := 0
	now := u.opts.now()
	for _, c := range campaigns {
		if billed[c.ID] {
			continue
		}
		missing++
		draft := u.draftFor(c, who.UserID)
		inserted, err := u.invoices.EnsureCampaignInvoice(ctx, &draft)
		if err != nil {
			return nil, err
		}
		if inserted {
			u.logger.Info("campaign invoice provisioned",
				logID("invoice_id", draft.ID),
				slog.String("invoice_number", draft.InvoiceNumber),
				logID("campaign_id", c.ID),
				slog.String("total_amount", draft.TotalAmount.String()),
				slog.Time("at", now),
			)
		}
	}
	if missing == 0 {
		return existing, nil
	}
	return u.invoices.ListInvoicesByCampaigns(ctx, ids)
}

func (u *InvoiceUseCase) draftFor(c domain.BillableCampaign, by uuid.UUID) domain.Invoice {
	now := u.opts.now()
	due := now.AddDate(0, 0, u.opts.defaultDueDays)
	campaignID := c.ID
	notes := fmt.Sprintf("Campaign: %s", c.Name)
	inv := domain.Invoice{
		ID:              uuid.New(),
		ClientID:        c.ClientID,
		CampaignID:      &campaignID,
		Amount:          c.BillableAmount(),
		TaxAmount:       decimal.Zero,
		Status:          domain.InvoiceDraft,
		IssueDate:       now,
		DueDate:         &due,
		Notes:           &notes,
		CreatedByUserID: by,
	}
	inv.Recalculate()
	return inv
}

// CreateInvoice creates an explicit invoice for an existing client.
func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, who domain.Identity, in port.CreateInvoiceInput) (*domain.Invoice, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if err = u.gate.Authorize(policy.OpCreate, policy.Collection(policy.KindInvoice), actor); err != nil {
		return nil, err
	}
	if in.ClientID == uuid.Nil {
		return nil, domain.Validation("clientId", "client is required")
	}
	client, err := u.dir.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		return nil, domain.Validation("clientId", fmt.Sprintf("client %s does not exist", in.ClientID))
	}
	if in.CampaignID != nil {
		camp, err := u.dir.GetCampaign(ctx, *in.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("get campaign: %w", err)
		}
		if camp == nil {
			return nil, domain.Validation("campaignId", fmt.Sprintf("campaign %s does not exist", *in.CampaignID))
		}
		if camp.ClientID != client.ID {
			return nil, domain.Validation("campaignId", "campaign belongs to another client")
		}
	}

	now := u.opts.now()
	inv := domain.Invoice{
		ID:              uuid.New(),
		ClientID:        client.ID,
		CampaignID:      in.CampaignID,
		Amount:          in.Amount,
		TaxAmount:       in.TaxAmount,
		Status:          domain.InvoiceDraft,
		IssueDate:       now,
		DueDate:         in.DueDate,
		Notes:           in.Notes,
		CreatedByUserID: who.UserID,
	}
	if in.IssueDate != nil {
		inv.IssueDate = *in.IssueDate
	}
	inv.Recalculate()
	if err = inv.Validate(); err != nil {
		return nil, err
	}
	if err = u.invoices.CreateInvoice(ctx, &inv); err != nil {
		return nil, err
	}
	u.logger.Info("invoice created",
		logID("invoice_id", inv.ID),
		slog.String("invoice_number", inv.InvoiceNumber),
		logID("client_id", inv.ClientID),
		slog.String("total_amount", inv.TotalAmount.String()),
		logID("created_by", who.UserID),
	)
	return &inv, nil
}

// UpdateInvoice edits an invoice and recomputes its total.
func (u *InvoiceUseCase) UpdateInvoice(ctx context.Context, who domain.Identity, id uuid.UUID, patch domain.InvoicePatch) (*domain.Invoice, error) {
	if _, err := u.authorizeInvoice(ctx, who, policy.OpUpdate, id); err != nil {
		return nil, err
	}
	inv, err := u.invoices.UpdateInvoice(ctx, id, patch, u.opts.now())
	if err != nil {
		return nil, err
	}
	u.logger.Info("invoice updated",
		logID("invoice_id", inv.ID),
		slog.String("status", string(inv.Status)),
		slog.String("total_amount", inv.TotalAmount.String()),
		logID("updated_by", who.UserID),
	)
	return inv, nil
}

// MarkInvoiceSent moves the invoice to Sent.
func (u *InvoiceUseCase) MarkInvoiceSent(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.Invoice, error) {
	if _, err := u.authorizeInvoice(ctx, who, policy.OpUpdate, id); err != nil {
		return nil, err
	}
	inv, err := u.invoices.MarkInvoiceSent(ctx, id)
	if err != nil {
		return nil, err
	}
	u.logger.Info("invoice marked as sent", logID("invoice_id", id), logID("by", who.UserID))
	return inv, nil
}

// MarkInvoicePaid moves the invoice to Paid once completed payments cover
// its total, or unconditionally when forced.
func (u *InvoiceUseCase) MarkInvoicePaid(ctx context.Context, who domain.Identity, id uuid.UUID, in port.MarkPaidInput) (*domain.Invoice, error) {
	if _, err := u.authorizeInvoice(ctx, who, policy.OpUpdate, id); err != nil {
		return nil, err
	}
	paidDate := u.opts.now()
	if in.PaidDate != nil {
		paidDate = *in.PaidDate
	}
	inv, err := u.invoices.MarkInvoicePaid(ctx, id, paidDate, in.Force)
	if err != nil {
		return nil, err
	}
	u.logger.Info("invoice marked as paid",
		logID("invoice_id", id),
		slog.Bool("forced", in.Force),
		logID("by", who.UserID),
	)
	return inv, nil
}

// DeleteInvoice removes an invoice that has no payments.
func (u *InvoiceUseCase) DeleteInvoice(ctx context.Context, who domain.Identity, id uuid.UUID) error {
	inv, err := u.authorizeInvoice(ctx, who, policy.OpDelete, id)
	if err != nil {
		return err
	}
	if err = u.invoices.DeleteInvoice(ctx, id); err != nil {
		if domain.KindOf(err) == domain.KindReferentialIntegrity {
			u.logger.Warn("invoice delete blocked",
				logID("invoice_id", id),
				slog.String("code", string(domain.CodeOf(err))),
			)
		}
		return err
	}
	u.logger.Info("invoice deleted",
		logID("invoice_id", id),
		slog.String("invoice_number", inv.InvoiceNumber),
		logID("by", who.UserID),
	)
	return nil
}

// GetInvoice returns one invoice the caller may read.
func (u *InvoiceUseCase) GetInvoice(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.Invoice, error) {
	return u.authorizeInvoice(ctx, who, policy.OpRead, id)
}

// ListInvoices pages invoices; client callers only ever see their own.
func (u *InvoiceUseCase) ListInvoices(ctx context.Context, who domain.Identity, f port.InvoiceFilter) (domain.Page[domain.Invoice], error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return domain.Page[domain.Invoice]{}, err
	}
	if err = u.gate.Authorize(policy.OpRead, policy.Collection(policy.KindInvoice), actor); err != nil {
		return domain.Page[domain.Invoice]{}, err
	}
	scope, err := clientScope(actor)
	if err != nil {
		return domain.Page[domain.Invoice]{}, err
	}
	if scope != nil {
		f.ClientID = scope
	}
	f.PageRequest = f.PageRequest.Normalize()
	f.Now = u.opts.now()
	items, total, err := u.invoices.ListInvoices(ctx, f)
	if err != nil {
		return domain.Page[domain.Invoice]{}, fmt.Errorf("list invoices: %w", err)
	}
	return domain.Page[domain.Invoice]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

// authorizeInvoice checks op at collection level, loads the invoice and
// checks op against its owner.
func (u *InvoiceUseCase) authorizeInvoice(ctx context.Context, who domain.Identity, op policy.Operation, id uuid.UUID) (*domain.Invoice, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if err = u.gate.Authorize(op, policy.Collection(policy.KindInvoice), actor); err != nil {
		return nil, err
	}
	inv, err := u.invoices.GetInvoice(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv == nil {
		return nil, domain.NotFound("invoice", id)
	}
	if err = u.gate.Authorize(op, policy.Owned(policy.KindInvoice, inv.ClientID, inv.CampaignID), actor); err != nil {
		return nil, err
	}
	return inv, nil
}
