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

// PaymentUseCase implements port.PaymentUseCase.
type PaymentUseCase struct {
	payments port.PaymentRepository
	invoices port.InvoiceRepository
	actors   actorResolver
	gate     *policy.Gate
	logger   *slog.Logger
	opts     options
}

func NewPaymentUseCase(payments port.PaymentRepository, invoices port.InvoiceRepository, dir port.Directory, gate *policy.Gate, logger *slog.Logger, opts ...Option) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		invoices: invoices,
		actors:   actorResolver{dir: dir},
		gate:     gate,
		logger:   logger,
		opts:     applyOptions(opts),
	}
}

// CreatePayment records a payment against an invoice. The invoice cap and
// the paid check are enforced by the repository under the invoice lock.
func (u *PaymentUseCase) CreatePayment(ctx context.Context, who domain.Identity, in port.CreatePaymentInput) (*domain.Payment, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if err = u.gate.Authorize(policy.OpCreate, policy.Collection(policy.KindPayment), actor); err != nil {
		return nil, err
	}
	if in.InvoiceID == uuid.Nil {
		return nil, domain.Validation("invoiceId", "invoice is required")
	}
	inv, err := u.invoices.GetInvoice(ctx, in.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if inv == nil {
		return nil, domain.Validation("invoiceId", fmt.Sprintf("invoice %s does not exist", in.InvoiceID))
	}
	if err = u.gate.Authorize(policy.OpCreate, policy.Owned(policy.KindPayment, inv.ClientID, inv.CampaignID), actor); err != nil {
		return nil, err
	}

	status := domain.PaymentPending
	if strings.TrimSpace(in.Status) != "" {
		if status, err = domain.ParsePaymentStatus(in.Status); err != nil {
			return nil, err
		}
	}
	if status == domain.PaymentFailed {
		return nil, domain.Validation("status", "a payment cannot be recorded as Failed")
	}
	admin := actor.HasRole(domain.RoleAdmin)
	if !admin && status != domain.PaymentPending {
		return nil, domain.Forbidden("only administrators may record completed payments")
	}
	if !admin && in.Overpayment {
		return nil, domain.Forbidden("only administrators may accept overpayments")
	}

	now := u.opts.now()
	p := domain.Payment{
		ID:               uuid.New(),
		InvoiceID:        inv.ID,
		ClientID:         inv.ClientID,
		Amount:           in.Amount,
		Method:           strings.TrimSpace(in.Method),
		Status:           status,
		TransactionID:    in.TransactionID,
		PaymentReference: in.PaymentReference,
		Notes:            in.Notes,
		PaymentDate:      now,
		CreatedByUserID:  who.UserID,
		Overpayment:      in.Overpayment,
	}
	if in.PaymentDate != nil {
		p.PaymentDate = *in.PaymentDate
	}
	if status == domain.PaymentCompleted {
		by := who.UserID
		p.ProcessedDate = &now
		p.ProcessedByUserID = &by
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	if err = u.payments.CreatePayment(ctx, &p); err != nil {
		return nil, err
	}
	u.logger.Info("payment recorded",
		logID("payment_id", p.ID),
		slog.String("payment_number", p.PaymentNumber),
		logID("invoice_id", p.InvoiceID),
		slog.String("amount", p.Amount.String()),
		slog.String("status", string(p.Status)),
		slog.Bool("overpayment", p.Overpayment),
		logID("created_by", who.UserID),
	)
	return &p, nil
}

// ProcessPayment settles a pending payment as Completed or Failed.
func (u *PaymentUseCase) ProcessPayment(ctx context.Context, who domain.Identity, in port.ProcessPaymentInput) (*domain.Payment, error) {
	if _, err := u.authorizePayment(ctx, who, policy.OpProcess, in.PaymentID); err != nil {
		return nil, err
	}
	outcome, err := domain.ParsePaymentStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if outcome == domain.PaymentPending {
		return nil, domain.Validation("status", "payment can only be processed to Completed or Failed")
	}
	p, err := u.payments.ProcessPayment(ctx, port.ProcessPaymentCmd{
		PaymentID:     in.PaymentID,
		Outcome:       outcome,
		TransactionID: in.TransactionID,
		By:            who.UserID,
		At:            u.opts.now(),
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("payment processed",
		logID("payment_id", p.ID),
		slog.String("payment_number", p.PaymentNumber),
		slog.String("status", string(p.Status)),
		logID("processed_by", who.UserID),
	)
	return p, nil
}

func (u *PaymentUseCase) UpdatePayment(ctx context.Context, who domain.Identity, id uuid.UUID, patch domain.PaymentPatch) (*domain.Payment, error) {
	if _, err := u.authorizePayment(ctx, who, policy.OpUpdate, id); err != nil {
		return nil, err
	}
	p, err := u.payments.UpdatePayment(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	u.logger.Info("payment updated",
		logID("payment_id", p.ID),
		slog.String("amount", p.Amount.String()),
		logID("updated_by", who.UserID),
	)
	return p, nil
}

func (u *PaymentUseCase) DeletePayment(ctx context.Context, who domain.Identity, id uuid.UUID) error {
	p, err := u.authorizePayment(ctx, who, policy.OpDelete, id)
	if err != nil {
		return err
	}
	if err = u.payments.DeletePayment(ctx, id); err != nil {
		return err
	}
	u.logger.Info("payment deleted",
		logID("payment_id", id),
		slog.String("payment_number", p.PaymentNumber),
		logID("by", who.UserID),
	)
	return nil
}

func (u *PaymentUseCase) GetPayment(ctx context.Context, who domain.Identity, id uuid.UUID) (*domain.Payment, error) {
	return u.authorizePayment(ctx, who, policy.OpRead, id)
}

// ListPayments pages payments; client callers only ever see their own.
func (u *PaymentUseCase) ListPayments(ctx context.Context, who domain.Identity, f port.PaymentFilter) (domain.Page[domain.Payment], error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	if err = u.gate.Authorize(policy.OpRead, policy.Collection(policy.KindPayment), actor); err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	scope, err := clientScope(actor)
	if err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	if scope != nil {
		f.ClientID = scope
	}
	f.PageRequest = f.PageRequest.Normalize()
	items, total, err := u.payments.ListPayments(ctx, f)
	if err != nil {
		return domain.Page[domain.Payment]{}, fmt.Errorf("list payments: %w", err)
	}
	return domain.Page[domain.Payment]{Items: items, Total: total, Page: f.Page, PageSize: f.PageSize}, nil
}

func (u *PaymentUseCase) authorizePayment(ctx context.Context, who domain.Identity, op policy.Operation, id uuid.UUID) (*domain.Payment, error) {
	actor, err := u.actors.resolve(ctx, who)
	if err != nil {
		return nil, err
	}
	if err = u.gate.Authorize(op, policy.Collection(policy.KindPayment), actor); err != nil {
		return nil, err
	}
	p, err := u.payments.GetPayment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p == nil {
		return nil, domain.NotFound("payment", id)
	}
	if err = u.gate.Authorize(op, policy.Owned(policy.KindPayment, p.ClientID, nil), actor); err != nil {
		return nil, err
	}
	return p, nil
}
