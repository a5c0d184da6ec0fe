package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction types for the Spendly ledger.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction is one immutable entry in the Spendly ledger.
type Transaction struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount float64            `bson:"amount" json:"amount"`
	Note   string             `bson:"note" json:"note"`
	Type   string             `bson:"type" json:"type"`
	Time   time.Time          `bson:"time" json:"time"`
}

// TransactionInput holds data for recording a transaction
type TransactionInput struct {
	Amount *float64 `json:"amount"`
	Note   string   `json:"note"`
	Type   string   `json:"type"`
}
