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

type paymentFixture struct {
	uc       *PaymentUseCase
	payments *mocks.MockPaymentRepository
	invoices *mocks.MockInvoiceRepository
	dir      *mocks.MockDirectory
}

func newPaymentFixture(t *testing.T) paymentFixture {
	f := paymentFixture{
		payments: mocks.NewMockPaymentRepository(t),
		invoices: mocks.NewMockInvoiceRepository(t),
		dir:      mocks.NewMockDirectory(t),
	}
	f.uc = NewPaymentUseCase(f.payments, f.invoices, f.dir, policy.DefaultGate(), discardLogger(), testOptions()...)
	return f
}

func TestCreatePaymentByClient(t *testing.T) {
	own := &domain.Client{ID: uuid.New()}
	inv := &domain.Invoice{ID: uuid.New(), ClientID: own.ID, TotalAmount: decimal.NewFromInt(5000), Status: domain.InvoiceSent}

	t.Run("recorded as pending", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := clientIdentity("acme@client.test")
		expectClient(f.dir, who, own)
		f.invoices.EXPECT().GetInvoice(mockAny, inv.ID).Return(inv, nil)
		f.payments.EXPECT().CreatePayment(mockAny, mock.AnythingOfType("*domain.Payment")).
			Run(func(_ context.Context, p *domain.Payment) {
				p.PaymentNumber = "PAY-2026-000001"
			}).
			Return(nil)

		p, err := f.uc.CreatePayment(context.Background(), who, port.CreatePaymentInput{
			InvoiceID: inv.ID,
			Amount:    decimal.NewFromInt(2000),
			Method:    " bank_transfer ",
		})
		require.NoError(t, err)
		assert.Equal(t, "PAY-2026-000001", p.PaymentNumber)
		assert.Equal(t, domain.PaymentPending, p.Status)
		assert.Equal(t, "bank_transfer", p.Method)
		assert.Equal(t, testNow, p.PaymentDate)
		assert.Nil(t, p.ProcessedDate)
		assert.Nil(t, p.ProcessedByUserID)
	})

	t.Run("cannot record completed", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := clientIdentity("acme@client.test")
		expectClient(f.dir, who, own)
		f.invoices.EXPECT().GetInvoice(mockAny, inv.ID).Return(inv, nil)

		_, err := f.uc.CreatePayment(context.Background(), who, port.CreatePaymentInput{
			InvoiceID: inv.ID, Amount: decimal.NewFromInt(10), Method: "card", Status: "Completed",
		})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("cannot flag overpayment", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := clientIdentity("acme@client.test")
		expectClient(f.dir, who, own)
		f.invoices.EXPECT().GetInvoice(mockAny, inv.ID).Return(inv, nil)

		_, err := f.uc.CreatePayment(context.Background(), who, port.CreatePaymentInput{
			InvoiceID: inv.ID, Amount: decimal.NewFromInt(10), Method: "card", Overpayment: true,
		})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("foreign invoice", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := clientIdentity("acme@client.test")
		expectClient(f.dir, who, own)
		foreign := &domain.Invoice{ID: uuid.New(), ClientID: uuid.New()}
		f.invoices.EXPECT().GetInvoice(mockAny, foreign.ID).Return(foreign, nil)

		_, err := f.uc.CreatePayment(context.Background(), who, port.CreatePaymentInput{
			InvoiceID: foreign.ID, Amount: decimal.NewFromInt(10), Method: "card",
		})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestCreatePaymentByAdmin(t *testing.T) {
	inv := &domain.Invoice{ID: uuid.New(), ClientID: uuid.New(), TotalAmount: decimal.NewFromInt(5000)}

	t.Run("completed payment is stamped as processed", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := adminIdentity()
		f.invoices.EXPECT().GetInvoice(mockAny, inv.ID).Return(inv, nil)
		f.payments.EXPECT().CreatePayment(mockAny, mock.AnythingOfType("*domain.Payment")).Return(nil)

		p, err := f.uc.CreatePayment(context.Background(), who, port.CreatePaymentInput{
			InvoiceID: inv.ID, Amount: decimal.NewFromInt(5000), Method: "wire", Status: "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentCompleted, p.Status)
		require.NotNil(t, p.ProcessedDate)
		assert.Equal(t, testNow, *p.ProcessedDate)
		require.NotNil(t, p.ProcessedByUserID)
		assert.Equal(t, who.UserID, *p.ProcessedByUserID)
	})

	t.Run("failed is not a creation status", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.invoices.EXPECT().GetInvoice(mockAny, inv.ID).Return(inv, nil)

		_, err := f.uc.CreatePayment(context.Background(), adminIdentity(), port.CreatePaymentInput{
			InvoiceID: inv.ID, Amount: decimal.NewFromInt(1), Method: "wire", Status: "Failed",
		})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("cap violation from the store", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.invoices.EXPECT().GetInvoice(mockAny, inv.ID).Return(inv, nil)
		f.payments.EXPECT().CreatePayment(mockAny, mock.AnythingOfType("*domain.Payment")).
			Return(domain.Conflict(domain.CodePaymentExceedsTotal, "exceeds"))

		_, err := f.uc.CreatePayment(context.Background(), adminIdentity(), port.CreatePaymentInput{
			InvoiceID: inv.ID, Amount: decimal.NewFromInt(6000), Method: "wire", Status: "Completed",
		})
		assert.True(t, domain.IsCode(err, domain.CodePaymentExceedsTotal))
	})

	t.Run("unknown invoice", func(t *testing.T) {
		f := newPaymentFixture(t)
		missing := uuid.New()
		f.invoices.EXPECT().GetInvoice(mockAny, missing).Return(nil, nil)

		_, err := f.uc.CreatePayment(context.Background(), adminIdentity(), port.CreatePaymentInput{
			InvoiceID: missing, Amount: decimal.NewFromInt(1), Method: "wire",
		})
		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "invoiceId", derr.Field)
	})

	t.Run("zero amount", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.invoices.EXPECT().GetInvoice(mockAny, inv.ID).Return(inv, nil)

		_, err := f.uc.CreatePayment(context.Background(), adminIdentity(), port.CreatePaymentInput{
			InvoiceID: inv.ID, Amount: decimal.Zero, Method: "wire",
		})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestProcessPayment(t *testing.T) {
	id := uuid.New()

	t.Run("admin completes", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := adminIdentity()
		txn := "txn-42"
		f.payments.EXPECT().GetPayment(mockAny, id).Return(&domain.Payment{ID: id, ClientID: uuid.New(), Status: domain.PaymentPending}, nil)
		f.payments.EXPECT().ProcessPayment(mockAny, port.ProcessPaymentCmd{
			PaymentID: id, Outcome: domain.PaymentCompleted, TransactionID: &txn, By: who.UserID, At: testNow,
		}).Return(&domain.Payment{ID: id, Status: domain.PaymentCompleted}, nil)

		p, err := f.uc.ProcessPayment(context.Background(), who, port.ProcessPaymentInput{PaymentID: id, Status: "Completed", TransactionID: &txn})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentCompleted, p.Status)
	})

	t.Run("second processing conflicts", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.payments.EXPECT().GetPayment(mockAny, id).Return(&domain.Payment{ID: id, ClientID: uuid.New()}, nil)
		f.payments.EXPECT().ProcessPayment(mockAny, mock.AnythingOfType("port.ProcessPaymentCmd")).
			Return(nil, domain.Conflict(domain.CodePaymentAlreadyProcessed, "already processed"))

		_, err := f.uc.ProcessPayment(context.Background(), adminIdentity(), port.ProcessPaymentInput{PaymentID: id, Status: "Failed"})
		assert.True(t, domain.IsCode(err, domain.CodePaymentAlreadyProcessed))
	})

	t.Run("pending is not an outcome", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.payments.EXPECT().GetPayment(mockAny, id).Return(&domain.Payment{ID: id, ClientID: uuid.New()}, nil)

		_, err := f.uc.ProcessPayment(context.Background(), adminIdentity(), port.ProcessPaymentInput{PaymentID: id, Status: "Pending"})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("client is forbidden", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := clientIdentity("acme@client.test")
		expectClient(f.dir, who, &domain.Client{ID: uuid.New()})

		_, err := f.uc.ProcessPayment(context.Background(), who, port.ProcessPaymentInput{PaymentID: id, Status: "Completed"})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("client with unknown status is still forbidden", func(t *testing.T) {
		f := newPaymentFixture(t)
		who := clientIdentity("acme@client.test")
		expectClient(f.dir, who, &domain.Client{ID: uuid.New()})

		_, err := f.uc.ProcessPayment(context.Background(), who, port.ProcessPaymentInput{PaymentID: id, Status: "Refunded"})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
		f.payments.AssertNotCalled(t, "GetPayment", mock.Anything, mock.Anything)
	})
}

func TestDeletePaymentSettlingPaidInvoice(t *testing.T) {
	f := newPaymentFixture(t)
	id := uuid.New()
	f.payments.EXPECT().GetPayment(mockAny, id).Return(&domain.Payment{ID: id, ClientID: uuid.New()}, nil)
	f.payments.EXPECT().DeletePayment(mockAny, id).Return(domain.Conflict(domain.CodePaymentSettlesInvoice, "settles"))

	err := f.uc.DeletePayment(context.Background(), adminIdentity(), id)
	assert.True(t, domain.IsCode(err, domain.CodePaymentSettlesInvoice))
}

func TestListPaymentsTeamMemberSeesNothing(t *testing.T) {
	f := newPaymentFixture(t)
	who := teamIdentity()
	expectAssignments(f.dir, who)

	_, err := f.uc.ListPayments(context.Background(), who, port.PaymentFilter{})
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestListPaymentsScopesClient(t *testing.T) {
	f := newPaymentFixture(t)
	who := clientIdentity("acme@client.test")
	own := &domain.Client{ID: uuid.New()}
	expectClient(f.dir, who, own)
	f.payments.EXPECT().ListPayments(mockAny, mock.MatchedBy(func(pf port.PaymentFilter) bool {
		return pf.ClientID != nil && *pf.ClientID == own.ID && pf.PageSize == domain.DefaultPageSize
	})).Return(nil, int64(0), nil)

	page, err := f.uc.ListPayments(context.Background(), who, port.PaymentFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}
