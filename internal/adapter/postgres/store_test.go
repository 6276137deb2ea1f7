package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/port"
	"agency-ops/internal/db"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization", &pgconn.PgError{Code: codeSerializationFailure}, true},
		{"deadlock", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: codeDeadlockDetected}), true},
		{"number collision", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "invoices_number_key"}, true},
		{"other unique", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "invoices_pkey"}, false},
		{"plain error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestMapError(t *testing.T) {
	blocked := &pgconn.PgError{
		Code:           codeForeignKeyViolation,
		ConstraintName: "payments_invoice_id_fkey",
		Message:        `update or delete on table "invoices" violates foreign key constraint "payments_invoice_id_fkey" on table "payments"`,
	}
	assert.True(t, domain.IsCode(mapError(blocked), domain.CodeInvoiceHasPayments))

	campaign := &pgconn.PgError{
		Code:           codeForeignKeyViolation,
		ConstraintName: "invoices_campaign_id_fkey",
		Message:        `update or delete on table "campaigns" violates foreign key constraint "invoices_campaign_id_fkey" on table "invoices"`,
	}
	assert.True(t, domain.IsCode(mapError(campaign), domain.CodeInvoiceHasCampaigns))

	missing := &pgconn.PgError{
		Code:           codeForeignKeyViolation,
		ConstraintName: "invoices_client_id_fkey",
		Message:        `insert or update on table "invoices" violates foreign key constraint "invoices_client_id_fkey"`,
	}
	err := mapError(fmt.Errorf("insert invoice: %w", missing))
	assert.Equal(t, domain.KindReferentialIntegrity, domain.KindOf(err))
	assert.True(t, domain.IsCode(err, domain.CodeReferenceUnknown))

	other := fmt.Errorf("boom")
	assert.Same(t, other, mapError(other))
	assert.NoError(t, mapError(nil))
}

func TestQueryPlaceholders(t *testing.T) {
	var q query
	id := uuid.New()
	q.and("i.client_id = " + q.arg(id))
	p := q.arg("%x%")
	q.and("(i.notes ILIKE " + p + " OR cl.name ILIKE " + p + ")")

	assert.Equal(t, " WHERE i.client_id = $1 AND (i.notes ILIKE $2 OR cl.name ILIKE $2)", q.whereSQL())
	assert.Equal(t, " LIMIT $3 OFFSET $4", q.page(domain.PageRequest{Page: 3, PageSize: 10}))
	assert.Equal(t, []any{id, "%x%", 10, 20}, q.args)
	assert.Empty(t, q.page(domain.PageRequest{}))
}

// newIntegrationStore connects to TEST_POSTGRES_ADDR, a disposable database
// the test may migrate and fill.
func newIntegrationStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("TEST_POSTGRES_ADDR")
	if addr == "" {
		t.Skip("TEST_POSTGRES_ADDR is not set")
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewStore(pool, WithRetries(10))
}

func TestIntegrationLedger(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	client := domain.Client{ID: uuid.New(), Name: "Integration", Email: uuid.NewString() + "@example.com", CreatedAt: now}
	require.NoError(t, s.UpsertClient(ctx, client))
	campaign := domain.Campaign{
		ID: uuid.New(), Name: "Launch", ClientID: client.ID,
		Budget: decimal.NewNullDecimal(decimal.NewFromInt(5000)), Status: "active", CreatedAt: now,
	}
	require.NoError(t, s.UpsertCampaign(ctx, campaign))

	inserted := make([]bool, 6)
	var g errgroup.Group
	for i := range inserted {
		g.Go(func() error {
			draft := &domain.Invoice{
				ClientID: client.ID, CampaignID: &campaign.ID,
				Amount: decimal.NewFromInt(5000), TotalAmount: decimal.NewFromInt(5000),
				Status: domain.InvoiceDraft, IssueDate: now, CreatedByUserID: uuid.New(),
			}
			ok, err := s.EnsureCampaignInvoice(ctx, draft)
			inserted[i] = ok
			return err
		})
	}
	require.NoError(t, g.Wait())

	count := 0
	for _, ok := range inserted {
		if ok {
			count++
		}
	}
	assert.Equal(t, 1, count)

	invoices, err := s.ListInvoicesByCampaigns(ctx, []uuid.UUID{campaign.ID})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	inv := invoices[0]
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(5000)))

	p := &domain.Payment{
		InvoiceID: inv.ID, Amount: decimal.NewFromInt(5000), Method: "wire",
		Status: domain.PaymentPending, PaymentDate: now, CreatedByUserID: uuid.New(),
	}
	require.NoError(t, s.CreatePayment(ctx, p))
	_, err = s.ProcessPayment(ctx, port.ProcessPaymentCmd{PaymentID: p.ID, Outcome: domain.PaymentCompleted, By: uuid.New(), At: now})
	require.NoError(t, err)

	paid, err := s.MarkInvoicePaid(ctx, inv.ID, now, false)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, paid.Status)

	err = s.DeleteInvoice(ctx, inv.ID)
	assert.True(t, domain.IsCode(err, domain.CodeInvoiceHasPayments))
}

func TestIntegrationCommentsKeepInsertionOrder(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	client := domain.Client{ID: uuid.New(), Name: "Ordering", Email: uuid.NewString() + "@example.com", CreatedAt: now}
	require.NoError(t, s.UpsertClient(ctx, client))
	campaign := domain.Campaign{ID: uuid.New(), Name: "Teaser", ClientID: client.ID, Status: "active", CreatedAt: now}
	require.NoError(t, s.UpsertCampaign(ctx, campaign))

	req := &domain.ApprovalRequest{
		CampaignID: campaign.ID, ItemName: "Teaser cut", Status: domain.ApprovalPending,
		CreatedByUserID: uuid.New(), CreatedAt: now,
	}
	require.NoError(t, s.CreateApprovalRequest(ctx, req))

	var want []uuid.UUID
	for i := range 8 {
		c, err := domain.NewNote(req.ID, fmt.Sprintf("note %d", i), uuid.New(), now)
		require.NoError(t, err)
		require.NoError(t, s.AppendComment(ctx, c))
		want = append(want, c.ID)
	}

	comments, err := s.ListComments(ctx, req.ID)
	require.NoError(t, err)
	got := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		got = append(got, c.ID)
	}
	assert.Equal(t, want, got)
}
