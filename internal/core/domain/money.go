package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary columns are NUMERIC(14,2).
const MoneyScale = 2

var moneyLimit = decimal.New(1, 12)

// checkMoney rejects values the ledger cannot store exactly.
func checkMoney(field string, v decimal.Decimal) error {
	if !v.Equal(v.Round(MoneyScale)) {
		return Validation(field, fmt.Sprintf("%s has more than %d decimal places", v, MoneyScale))
	}
	if v.Abs().GreaterThanOrEqual(moneyLimit) {
		return Validation(field, fmt.Sprintf("%s exceeds the maximum amount", v))
	}
	return nil
}
