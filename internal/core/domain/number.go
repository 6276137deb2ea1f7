package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Default document prefixes.
const (
	InvoicePrefix = "INV"
	PaymentPrefix = "PAY"
)

// DocumentNumber is a human readable, per-year sequential identifier of the
// form PREFIX-YYYY-NNNNNN.
type DocumentNumber struct {
	Prefix string
	Year   int
	Seq    int64
}

func (n DocumentNumber) String() string {
	return fmt.Sprintf("%s-%04d-%06d", n.Prefix, n.Year, n.Seq)
}

// ParseDocumentNumber parses the PREFIX-YYYY-NNNNNN form.
func ParseDocumentNumber(s string) (DocumentNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] == "" || len(parts[1]) != 4 || len(parts[2]) < 6 {
		return DocumentNumber{}, fmt.Errorf("malformed document number %q", s)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return DocumentNumber{}, fmt.Errorf("malformed year in %q: %w", s, err)
	}
	seq, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || seq <= 0 {
		return DocumentNumber{}, fmt.Errorf("malformed sequence in %q", s)
	}
	return DocumentNumber{Prefix: parts[0], Year: year, Seq: seq}, nil
}
