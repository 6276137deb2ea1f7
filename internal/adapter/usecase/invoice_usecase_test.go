package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agency-ops/internal/core/domain"
	"agency-ops/internal/core/policy"
	"agency-ops/internal/core/port"
	"agency-ops/internal/core/port/mocks"
)

func newInvoiceUseCase(t *testing.T) (*InvoiceUseCase, *mocks.MockInvoiceRepository, *mocks.MockDirectory) {
	invoices := mocks.NewMockInvoiceRepository(t)
	dir := mocks.NewMockDirectory(t)
	return NewInvoiceUseCase(invoices, dir, policy.DefaultGate(), discardLogger(), testOptions()...), invoices, dir
}

// TestEnsureCampaignInvoicesCreatesMissingDrafts provisions a draft only for
// the campaign that has no invoice yet, priced from the service.
func TestEnsureCampaignInvoicesCreatesMissingDrafts(t *testing.T) {
	uc, invoices, dir := newInvoiceUseCase(t)
	who := clientIdentity("acme@client.test")
	client := &domain.Client{ID: uuid.New(), Name: "Acme", Email: who.Email}
	expectClient(dir, who, client)

	billed := domain.BillableCampaign{Campaign: domain.Campaign{
		ID: uuid.New(), Name: "Spring launch", ClientID: client.ID,
		Budget: decimal.NewNullDecimal(decimal.NewFromInt(5000)),
	}}
	unbilled := domain.BillableCampaign{
		Campaign:     domain.Campaign{ID: uuid.New(), Name: "Summer promo", ClientID: client.ID},
		ServicePrice: decimal.NewNullDecimal(decimal.NewFromInt(1200)),
	}
	dir.EXPECT().ListBillableCampaigns(mockAny, &client.ID).
		Return([]domain.BillableCampaign{billed, unbilled}, nil)

	ids := []uuid.UUID{billed.ID, unbilled.ID}
	existing := domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-2026-000001", ClientID: client.ID, CampaignID: &billed.ID}
	invoices.EXPECT().ListInvoicesByCampaigns(mockAny, ids).Return([]domain.Invoice{existing}, nil).Once()

	var provisioned domain.Invoice
	invoices.EXPECT().EnsureCampaignInvoice(mockAny, mock.AnythingOfType("*domain.Invoice")).
		Run(func(_ context.Context, draft *domain.Invoice) {
			draft.InvoiceNumber = "INV-2026-000002"
			provisioned = *draft
		}).
		Return(true, nil).Once()
	invoices.EXPECT().ListInvoicesByCampaigns(mockAny, ids).
		RunAndReturn(func(context.Context, []uuid.UUID) ([]domain.Invoice, error) {
			return []domain.Invoice{existing, provisioned}, nil
		}).Once()

	got, err := uc.EnsureCampaignInvoices(context.Background(), who)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, provisioned.CampaignID)
	assert.Equal(t, unbilled.ID, *provisioned.CampaignID)
	assert.Equal(t, client.ID, provisioned.ClientID)
	assert.Equal(t, domain.InvoiceDraft, provisioned.Status)
	assert.True(t, provisioned.Amount.Equal(decimal.NewFromInt(1200)))
	assert.True(t, provisioned.TaxAmount.IsZero())
	assert.True(t, provisioned.TotalAmount.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, testNow, provisioned.IssueDate)
	require.NotNil(t, provisioned.DueDate)
	assert.Equal(t, testNow.AddDate(0, 0, 14), *provisioned.DueDate)
	assert.Equal(t, who.UserID, provisioned.CreatedByUserID)
}

func TestEnsureCampaignInvoicesIsIdempotent(t *testing.T) {
	uc, invoices, dir := newInvoiceUseCase(t)
	who := adminIdentity()

	camp := domain.BillableCampaign{Campaign: domain.Campaign{
		ID: uuid.New(), ClientID: uuid.New(), Budget: decimal.NewNullDecimal(decimal.NewFromInt(5000)),
	}}
	dir.EXPECT().ListBillableCampaigns(mockAny, (*uuid.UUID)(nil)).Return([]domain.BillableCampaign{camp}, nil)
	existing := []domain.Invoice{{ID: uuid.New(), ClientID: camp.ClientID, CampaignID: &camp.ID}}
	invoices.EXPECT().ListInvoicesByCampaigns(mockAny, []uuid.UUID{camp.ID}).Return(existing, nil)

	got, err := uc.EnsureCampaignInvoices(context.Background(), who)
	require.NoError(t, err)
	assert.Equal(t, existing, got)
	invoices.AssertNotCalled(t, "EnsureCampaignInvoice", mock.Anything, mock.Anything)
}

// TestEnsureCampaignInvoicesLosesRace covers a campaign provisioned by
// another caller between the snapshot and the insert: nothing is inserted,
// yet the result still contains the other caller's invoice.
func TestEnsureCampaignInvoicesLosesRace(t *testing.T) {
	uc, invoices, dir := newInvoiceUseCase(t)
	who := adminIdentity()

	camp := domain.BillableCampaign{Campaign: domain.Campaign{
		ID: uuid.New(), ClientID: uuid.New(), Budget: decimal.NewNullDecimal(decimal.NewFromInt(5000)),
	}}
	ids := []uuid.UUID{camp.ID}
	dir.EXPECT().ListBillableCampaigns(mockAny, (*uuid.UUID)(nil)).Return([]domain.BillableCampaign{camp}, nil)
	invoices.EXPECT().ListInvoicesByCampaigns(mockAny, ids).Return(nil, nil).Once()
	invoices.EXPECT().EnsureCampaignInvoice(mockAny, mock.AnythingOfType("*domain.Invoice")).Return(false, nil).Once()

	winner := domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-2026-000001", ClientID: camp.ClientID, CampaignID: &camp.ID}
	invoices.EXPECT().ListInvoicesByCampaigns(mockAny, ids).Return([]domain.Invoice{winner}, nil).Once()

	got, err := uc.EnsureCampaignInvoices(context.Background(), who)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, winner.ID, got[0].ID)
}

func TestEnsureCampaignInvoicesNoCampaigns(t *testing.T) {
	uc, _, dir := newInvoiceUseCase(t)
	dir.EXPECT().ListBillableCampaigns(mockAny, (*uuid.UUID)(nil)).Return(nil, nil)

	got, err := uc.EnsureCampaignInvoices(context.Background(), adminIdentity())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnsureCampaignInvoicesDeniedForTeamMembers(t *testing.T) {
	uc, _, dir := newInvoiceUseCase(t)
	who := teamIdentity()
	expectAssignments(dir, who, uuid.New())

	_, err := uc.EnsureCampaignInvoices(context.Background(), who)
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestEnsureCampaignInvoicesClientWithoutRecord(t *testing.T) {
	uc, _, dir := newInvoiceUseCase(t)
	who := clientIdentity("stranger@client.test")
	expectClient(dir, who, nil)

	_, err := uc.EnsureCampaignInvoices(context.Background(), who)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestCreateInvoice(t *testing.T) {
	clientID := uuid.New()
	campaignID := uuid.New()

	t.Run("admin creates invoice with computed total", func(t *testing.T) {
		uc, invoices, dir := newInvoiceUseCase(t)
		who := adminIdentity()
		dir.EXPECT().GetClient(mockAny, clientID).Return(&domain.Client{ID: clientID}, nil)
		dir.EXPECT().GetCampaign(mockAny, campaignID).Return(&domain.Campaign{ID: campaignID, ClientID: clientID}, nil)
		invoices.EXPECT().CreateInvoice(mockAny, mock.AnythingOfType("*domain.Invoice")).
			Run(func(_ context.Context, inv *domain.Invoice) {
				inv.InvoiceNumber = "INV-2026-000001"
			}).
			Return(nil)

		inv, err := uc.CreateInvoice(context.Background(), who, port.CreateInvoiceInput{
			ClientID:   clientID,
			CampaignID: &campaignID,
			Amount:     decimal.NewFromInt(4000),
			TaxAmount:  decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
		assert.Equal(t, "INV-2026-000001", inv.InvoiceNumber)
		assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, domain.InvoiceDraft, inv.Status)
		assert.Equal(t, testNow, inv.IssueDate)
		assert.Equal(t, who.UserID, inv.CreatedByUserID)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		uc, _, dir := newInvoiceUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, &domain.Client{ID: clientID})

		_, err := uc.CreateInvoice(context.Background(), who, port.CreateInvoiceInput{ClientID: clientID})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("unknown client", func(t *testing.T) {
		uc, _, dir := newInvoiceUseCase(t)
		dir.EXPECT().GetClient(mockAny, clientID).Return(nil, nil)

		_, err := uc.CreateInvoice(context.Background(), adminIdentity(), port.CreateInvoiceInput{ClientID: clientID})
		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.KindValidation, derr.Kind)
		assert.Equal(t, "clientId", derr.Field)
	})

	t.Run("campaign of another client", func(t *testing.T) {
		uc, _, dir := newInvoiceUseCase(t)
		dir.EXPECT().GetClient(mockAny, clientID).Return(&domain.Client{ID: clientID}, nil)
		dir.EXPECT().GetCampaign(mockAny, campaignID).Return(&domain.Campaign{ID: campaignID, ClientID: uuid.New()}, nil)

		_, err := uc.CreateInvoice(context.Background(), adminIdentity(), port.CreateInvoiceInput{
			ClientID: clientID, CampaignID: &campaignID, Amount: decimal.NewFromInt(10),
		})
		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "campaignId", derr.Field)
	})

	t.Run("negative amount", func(t *testing.T) {
		uc, _, dir := newInvoiceUseCase(t)
		dir.EXPECT().GetClient(mockAny, clientID).Return(&domain.Client{ID: clientID}, nil)

		_, err := uc.CreateInvoice(context.Background(), adminIdentity(), port.CreateInvoiceInput{
			ClientID: clientID, Amount: decimal.NewFromInt(-1),
		})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestGetInvoiceOwnership(t *testing.T) {
	id := uuid.New()
	own := &domain.Client{ID: uuid.New()}

	t.Run("other client is forbidden", func(t *testing.T) {
		uc, invoices, dir := newInvoiceUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, own)
		invoices.EXPECT().GetInvoice(mockAny, id).Return(&domain.Invoice{ID: id, ClientID: uuid.New()}, nil)

		_, err := uc.GetInvoice(context.Background(), who, id)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("owner reads", func(t *testing.T) {
		uc, invoices, dir := newInvoiceUseCase(t)
		who := clientIdentity("acme@client.test")
		expectClient(dir, who, own)
		invoices.EXPECT().GetInvoice(mockAny, id).Return(&domain.Invoice{ID: id, ClientID: own.ID}, nil)

		inv, err := uc.GetInvoice(context.Background(), who, id)
		require.NoError(t, err)
		assert.Equal(t, id, inv.ID)
	})

	t.Run("missing invoice", func(t *testing.T) {
		uc, invoices, _ := newInvoiceUseCase(t)
		invoices.EXPECT().GetInvoice(mockAny, id).Return(nil, nil)

		_, err := uc.GetInvoice(context.Background(), adminIdentity(), id)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

// TestListInvoicesScopesClient ignores a foreign clientId in the query.
func TestListInvoicesScopesClient(t *testing.T) {
	uc, invoices, dir := newInvoiceUseCase(t)
	who := clientIdentity("acme@client.test")
	own := &domain.Client{ID: uuid.New()}
	expectClient(dir, who, own)

	foreign := uuid.New()
	invoices.EXPECT().ListInvoices(mockAny, mock.MatchedBy(func(f port.InvoiceFilter) bool {
		return f.ClientID != nil && *f.ClientID == own.ID &&
			f.Page == 1 && f.PageSize == domain.MaxPageSize && f.Now.Equal(testNow)
	})).Return([]domain.Invoice{{ClientID: own.ID}}, int64(1), nil)

	page, err := uc.ListInvoices(context.Background(), who, port.InvoiceFilter{
		PageRequest: domain.PageRequest{PageSize: 500},
		ClientID:    &foreign,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, domain.MaxPageSize, page.PageSize)
}

func TestMarkInvoicePaidDefaultsToNow(t *testing.T) {
	uc, invoices, _ := newInvoiceUseCase(t)
	id := uuid.New()
	invoices.EXPECT().GetInvoice(mockAny, id).Return(&domain.Invoice{ID: id, ClientID: uuid.New()}, nil)
	invoices.EXPECT().MarkInvoicePaid(mockAny, id, testNow, false).
		Return(nil, domain.Conflict(domain.CodeInvoiceNotCovered, "not covered"))

	_, err := uc.MarkInvoicePaid(context.Background(), adminIdentity(), id, port.MarkPaidInput{})
	assert.True(t, domain.IsCode(err, domain.CodeInvoiceNotCovered))
}

func TestMarkInvoiceSentForbiddenForClient(t *testing.T) {
	uc, _, dir := newInvoiceUseCase(t)
	who := clientIdentity("acme@client.test")
	expectClient(dir, who, &domain.Client{ID: uuid.New()})

	_, err := uc.MarkInvoiceSent(context.Background(), who, uuid.New())
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestDeleteInvoiceWithPayments(t *testing.T) {
	uc, invoices, _ := newInvoiceUseCase(t)
	id := uuid.New()
	invoices.EXPECT().GetInvoice(mockAny, id).Return(&domain.Invoice{ID: id, ClientID: uuid.New()}, nil)
	invoices.EXPECT().DeleteInvoice(mockAny, id).
		Return(domain.Referential(domain.CodeInvoiceHasPayments, "invoice has payments"))

	err := uc.DeleteInvoice(context.Background(), adminIdentity(), id)
	assert.Equal(t, domain.KindReferentialIntegrity, domain.KindOf(err))
	assert.True(t, domain.IsCode(err, domain.CodeInvoiceHasPayments))
}
