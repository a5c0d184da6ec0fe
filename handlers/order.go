package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/models"
	"shopapi/service"
	"shopapi/storage"
)

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	store   storage.Store
	taxRate decimal.Decimal
}

func NewOrderHandler(store storage.Store, taxRate decimal.Decimal) *OrderHandler {
	return &OrderHandler{store: store, taxRate: taxRate}
}

// OrderInput is the create-order request body. Totals are never read from the
// client; only items, payment method and shipping address are.
type OrderInput struct {
	UserID          string                   `json:"userId"`
	Items           []service.OrderItemInput `json:"items"`
	PaymentMethod   string                   `json:"paymentMethod"`
	ShippingAddress *models.ShippingAddress  `json:"shippingAddress"`
}

// CreateOrder validates the items, computes totals server-side and persists
// the order. Nothing is written if any item fails validation.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input OrderInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		respondError(c, service.Invalid("userId must be a valid id"))
		return
	}

	if len(input.Items) == 0 {
		respondError(c, service.Invalid("no items provided"))
		return
	}

	// Normalize and validate every line item
	items, err := service.NormalizeItems(input.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		respondError(c, service.Invalid("paymentMethod must be one of cash, card, upi"))
		return
	}

	// Compute totals server-side
	subtotal, tax, total := service.OrderTotals(items, h.taxRate)

	now := time.Now().UTC()
	order := models.Order{
		OrderID:         service.NewOrderID(now),
		UserID:          userID,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		Status:          models.OrderStatusPending,
		PaymentMethod:   paymentMethod,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       now,
	}

	id, err := h.store.Create(c.Request.Context(), storage.Orders, order)
	if err != nil {
		if storage.IsDuplicate(err) {
			// same-second order id collision; the client can simply retry
			respondError(c, service.Conflict("order id collision, please retry"))
			return
		}
		respondError(c, err)
		return
	}
	order.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// GetOrders retrieves all orders, latest first
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders := []models.Order{}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	if err := h.store.Find(c.Request.Context(), storage.Orders, bson.M{}, sort, &orders); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves a specific order by ID
func (h *OrderHandler) GetOrder(c *gin.Context) {
	// Get order ID from URL
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, service.Invalid("invalid order ID"))
		return
	}

	var order models.Order
	err = h.store.FindOne(c.Request.Context(), storage.Orders, bson.M{"_id": id}, &order)
	if err == storage.ErrNotFound {
		respondError(c, service.NotFound("order not found"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus moves an order through its lifecycle (admin only)
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	// Get order ID from URL
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, service.Invalid("invalid order ID"))
		return
	}

	var input models.OrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		respondError(c, service.Invalid("status must be one of pending, processing, shipped, delivered, cancelled"))
		return
	}

	update := bson.M{"$set": bson.M{"status": input.Status}}
	err = h.store.UpdateOne(c.Request.Context(), storage.Orders, bson.M{"_id": id}, update)
	if err == storage.ErrNotFound {
		respondError(c, service.NotFound("order not found"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "order status updated",
		"status":  input.Status,
	})
}
