package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentNumber(t *testing.T) {
	n := DocumentNumber{Prefix: InvoicePrefix, Year: 2026, Seq: 42}
	assert.Equal(t, "INV-2026-000042", n.String())

	got, err := ParseDocumentNumber("PAY-2027-1234567")
	require.NoError(t, err)
	assert.Equal(t, DocumentNumber{Prefix: PaymentPrefix, Year: 2027, Seq: 1234567}, got)

	for _, bad := range []string{"", "INV-2026", "INV-26-000001", "INV-2026-00001", "INV-2026-000000", "INV-20x6-000001"} {
		_, err := ParseDocumentNumber(bad)
		assert.Error(t, err, bad)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		in   PageRequest
		want PageRequest
	}{
		{PageRequest{}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{PageRequest{Page: 3, PageSize: 10}, PageRequest{Page: 3, PageSize: 10}},
		{PageRequest{Page: -2, PageSize: 1000}, PageRequest{Page: 1, PageSize: MaxPageSize}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize())
	}
	assert.Equal(t, 20, PageRequest{Page: 3, PageSize: 10}.Offset())
}
