package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"shopapi/models"
	"shopapi/service"
	"shopapi/storage"
)

// TransactionHandler serves the Spendly ledger endpoints.
type TransactionHandler struct {
	store storage.Store
}

func NewTransactionHandler(store storage.Store) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// CreateTransaction records a ledger entry
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var input models.TransactionInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Amount == nil || *input.Amount <= 0 || input.Note == "" ||
		(input.Type != models.TransactionCredit && input.Type != models.TransactionDebit) {
		respondError(c, service.Invalid("invalid input"))
		return
	}

	tx := models.Transaction{
		Amount: *input.Amount,
		Note:   input.Note,
		Type:   input.Type,
		Time:   time.Now().UTC(),
	}

	id, err := h.store.Create(c.Request.Context(), storage.Transactions, tx)
	if err != nil {
		respondError(c, err)
		return
	}
	tx.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transaction saved",
		"transaction": tx,
	})
}

// GetTransactions returns the ledger, latest first, with the running balance
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	transactions := []models.Transaction{}

	sort := bson.D{{Key: "time", Value: -1}}
	if err := h.store.Find(c.Request.Context(), storage.Transactions, bson.M{}, sort, &transactions); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":      service.Balance(transactions),
		"transactions": transactions,
	})
}
