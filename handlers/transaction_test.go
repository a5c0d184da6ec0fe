package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/models"
	"shopapi/storage"
)

func transactionRouter(store storage.Store) *gin.Engine {
	r := gin.New()
	h := NewTransactionHandler(store)
	r.POST("/api/transactions", h.CreateTransaction)
	r.GET("/api/transactions", h.GetTransactions)
	return r
}

func TestGetTransactionsBalance(t *testing.T) {
	store := &fakeStore{
		findFn: func(ctx context.Context, collection string, filter any, sort any, out any) error {
			*out.(*[]models.Transaction) = []models.Transaction{
				{Amount: 100, Type: models.TransactionCredit, Note: "salary", Time: time.Now()},
				{Amount: 40, Type: models.TransactionDebit, Note: "groceries", Time: time.Now()},
			}
			return nil
		},
	}

	w := performRequest(t, transactionRouter(store), http.MethodGet, "/api/transactions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["balance"] != float64(60) {
		t.Errorf("balance = %v, want 60", body["balance"])
	}
	if txs, _ := body["transactions"].([]any); len(txs) != 2 {
		t.Errorf("transactions length = %d, want 2", len(txs))
	}
}

func TestGetTransactionsEmpty(t *testing.T) {
	w := performRequest(t, transactionRouter(&fakeStore{}), http.MethodGet, "/api/transactions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["balance"] != float64(0) {
		t.Errorf("balance = %v, want 0 on empty ledger", body["balance"])
	}
}

func TestCreateTransactionValidates(t *testing.T) {
	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing amount", map[string]any{"note": "x", "type": "credit"}},
		{"zero amount", map[string]any{"amount": 0, "note": "x", "type": "credit"}},
		{"missing note", map[string]any{"amount": 5, "type": "debit"}},
		{"bad type", map[string]any{"amount": 5, "note": "x", "type": "transfer"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			created := false
			store := &fakeStore{
				createFn: func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
					created = true
					return primitive.NewObjectID(), nil
				},
			}

			w := performRequest(t, transactionRouter(store), http.MethodPost, "/api/transactions", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", w.Code, w.Body.String())
			}
			if created {
				t.Error("invalid transaction must not be persisted")
			}
		})
	}
}

func TestCreateTransaction(t *testing.T) {
	w := performRequest(t, transactionRouter(&fakeStore{}), http.MethodPost, "/api/transactions", map[string]any{
		"amount": 250.5,
		"note":   "freelance invoice",
		"type":   "credit",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	tx, _ := body["transaction"].(map[string]any)
	if tx == nil || tx["amount"] != 250.5 {
		t.Errorf("transaction = %v", body["transaction"])
	}
}
