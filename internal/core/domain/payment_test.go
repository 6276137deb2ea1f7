package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayment(amount string) Payment {
	return Payment{
		ID:            uuid.New(),
		PaymentNumber: "PAY-2026-000001",
		InvoiceID:     uuid.New(),
		Amount:        dec(amount),
		Method:        "BankTransfer",
		Status:        PaymentPending,
		PaymentDate:   testNow,
	}
}

func TestPaymentValidate(t *testing.T) {
	assert.NoError(t, newPayment("10").Validate())

	p := newPayment("0")
	var de *Error
	require.ErrorAs(t, p.Validate(), &de)
	assert.Equal(t, "amount", de.Field)

	p = newPayment("10.001")
	require.ErrorAs(t, p.Validate(), &de)
	assert.Equal(t, "amount", de.Field)

	p = newPayment("1000000000000")
	require.ErrorAs(t, p.Validate(), &de)
	assert.Equal(t, "amount", de.Field)

	assert.NoError(t, newPayment("999999999999.99").Validate())
	assert.NoError(t, newPayment("12.500").Validate())

	p = newPayment("10")
	p.Method = "  "
	require.ErrorAs(t, p.Validate(), &de)
	assert.Equal(t, "method", de.Field)
}

func TestPaymentProcessOnce(t *testing.T) {
	by := uuid.New()
	p := newPayment("10")

	err := p.Process(PaymentPending, by, testNow)
	assert.Equal(t, KindValidation, KindOf(err))

	require.NoError(t, p.Process(PaymentCompleted, by, testNow))
	assert.Equal(t, PaymentCompleted, p.Status)
	assert.Equal(t, by, *p.ProcessedByUserID)
	assert.Equal(t, testNow, *p.ProcessedDate)

	err = p.Process(PaymentFailed, by, testNow)
	assert.True(t, IsCode(err, CodePaymentAlreadyProcessed))
	assert.Equal(t, PaymentCompleted, p.Status)
}

func TestPaymentApply(t *testing.T) {
	p := newPayment("10")
	method, ref := " Card ", "ref-9"
	amount := dec("12.50")

	require.NoError(t, p.Apply(PaymentPatch{Amount: &amount, Method: &method, PaymentReference: &ref}))
	assert.Equal(t, "Card", p.Method)
	assert.Equal(t, "ref-9", *p.PaymentReference)
	assert.True(t, p.Amount.Equal(amount))

	negative := dec("-1")
	assert.Equal(t, KindValidation, KindOf(p.Apply(PaymentPatch{Amount: &negative})))
	fraction := dec("0.125")
	assert.Equal(t, KindValidation, KindOf(p.Apply(PaymentPatch{Amount: &fraction})))
}

func TestPaymentCheckDelete(t *testing.T) {
	inv := newInvoice("100")
	p := newPayment("100")
	p.Status = PaymentCompleted

	assert.NoError(t, p.CheckDelete(inv))

	inv.Status = InvoicePaid
	assert.True(t, IsCode(p.CheckDelete(inv), CodePaymentSettlesInvoice))

	p.Status = PaymentFailed
	assert.NoError(t, p.CheckDelete(inv))
}

func TestPaymentCheckAmountChange(t *testing.T) {
	inv := newInvoice("100")
	inv.Status = InvoicePaid
	others := InvoiceBalance{Completed: dec("60"), Payments: 2}

	p := newPayment("40")
	p.Status = PaymentCompleted
	assert.NoError(t, p.CheckAmountChange(inv, others))

	p.Amount = dec("39.99")
	assert.True(t, IsCode(p.CheckAmountChange(inv, others), CodePaymentSettlesInvoice))

	p.Status = PaymentPending
	assert.NoError(t, p.CheckAmountChange(inv, others))

	p.Status = PaymentCompleted
	inv.Status = InvoiceSent
	assert.NoError(t, p.CheckAmountChange(inv, others))
}

func TestParsePaymentStatus(t *testing.T) {
	st, err := ParsePaymentStatus("FAILED")
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, st)

	_, err = ParsePaymentStatus("Refunded")
	assert.Error(t, err)
}
