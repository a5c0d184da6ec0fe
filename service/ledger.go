package service

import (
	"github.com/shopspring/decimal"

	"shopapi/models"
)

// Balance computes the running Spendly balance: credits add, debits subtract.
// The sum is commutative, so any fetch order gives the same result; an empty
// ledger yields 0. Decimal arithmetic keeps repeated cents from drifting.
func Balance(transactions []models.Transaction) float64 {
	balance := decimal.Zero
	for _, tx := range transactions {
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.Type == models.TransactionCredit {
			balance = balance.Add(amount)
		} else {
			balance = balance.Sub(amount)
		}
	}

	f, _ := balance.Float64()
	return f
}
