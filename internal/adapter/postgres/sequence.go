package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"agency-ops/internal/core/domain"
)

var numberedTables = map[string]string{
	domain.InvoicePrefix: "invoices",
	domain.PaymentPrefix: "payments",
}

// nextNumber allocates the next document number of prefix for the year of
// at. The upsert locks the counter row until the transaction ends and is
// seeded from the highest stored number the first time a year is used.
func nextNumber(ctx context.Context, tx pgx.Tx, prefix string, at time.Time) (domain.DocumentNumber, error) {
	table, ok := numberedTables[prefix]
	if !ok {
		return domain.DocumentNumber{}, fmt.Errorf("unknown document prefix %q", prefix)
	}
	year := at.UTC().Year()
	stmt := fmt.Sprintf(`
		INSERT INTO document_sequences (prefix, year, last_value)
		VALUES ($1, $2, (SELECT COALESCE(MAX(number_seq), 0) + 1 FROM %s WHERE number_year = $2))
		ON CONFLICT (prefix, year) DO UPDATE
		   SET last_value = GREATEST(document_sequences.last_value + 1, EXCLUDED.last_value)
		RETURNING last_value`, table)

	var seq int64
	if err := tx.QueryRow(ctx, stmt, prefix, year).Scan(&seq); err != nil {
		return domain.DocumentNumber{}, fmt.Errorf("allocate %s number: %w", prefix, err)
	}
	return domain.DocumentNumber{Prefix: prefix, Year: year, Seq: seq}, nil
}
