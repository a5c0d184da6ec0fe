package service

import (
	"math"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/models"
)

// OrderItemInput is one raw line item as sent by the client. Quantity falls
// back to Qty when absent; both default to 1.
type OrderItemInput struct {
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	Image     string   `json:"image"`
	Price     *float64 `json:"price"`
	Quantity  *float64 `json:"quantity"`
	Qty       *float64 `json:"qty"`
}

// NormalizeItem validates and normalizes a raw line item. idx is the
// 1-based position used in error messages. It is side-effect free: a failed
// item never reaches the store.
func NormalizeItem(idx int, in OrderItemInput) (models.OrderItem, error) {
	productID, err := primitive.ObjectIDFromHex(in.ProductID)
	if err != nil {
		return models.OrderItem{}, Invalid("item %d: productId must be a valid id", idx)
	}

	if in.Name == "" {
		return models.OrderItem{}, Invalid("item %d: name is required", idx)
	}

	if in.Price == nil || math.IsNaN(*in.Price) || math.IsInf(*in.Price, 0) || *in.Price < 0 {
		return models.OrderItem{}, Invalid("item %d: price must be a non-negative number", idx)
	}

	// quantity falls back from "quantity" to "qty", defaulting to 1
	qty := 1.0
	switch {
	case in.Quantity != nil:
		qty = *in.Quantity
	case in.Qty != nil:
		qty = *in.Qty
	}
	// bound before converting: int(1e30) wraps
	if math.IsNaN(qty) || math.IsInf(qty, 0) || qty != math.Trunc(qty) || qty <= 0 || qty > math.MaxInt32 {
		return models.OrderItem{}, Invalid("item %d: quantity must be a positive integer", idx)
	}

	return models.OrderItem{
		ProductID: productID,
		Name:      in.Name,
		Size:      in.Size,
		Image:     in.Image,
		Price:     *in.Price,
		Quantity:  int(qty),
	}, nil
}

// NormalizeItems runs NormalizeItem over the whole sequence, failing on the
// first invalid item.
func NormalizeItems(items []OrderItemInput) ([]models.OrderItem, error) {
	normalized := make([]models.OrderItem, 0, len(items))
	for i, in := range items {
		item, err := NormalizeItem(i+1, in)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, item)
	}
	return normalized, nil
}

// OrderTotals computes subtotal, tax and total for normalized items.
//
// Rounding policy: line totals stay exact; the subtotal is the rounded sum of
// price x quantity, tax is the rounded subtotal x rate, and total is the
// rounded sum of the already-rounded subtotal and tax. All rounding is
// half-away-from-zero at 2 decimal places via decimal arithmetic, so the
// result is deterministic for a given item sequence and rate.
func OrderTotals(items []models.OrderItem, rate decimal.Decimal) (subtotal, tax, total float64) {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}

	sub := sum.Round(2)
	tx := sub.Mul(rate).Round(2)
	tot := sub.Add(tx).Round(2)

	subtotal, _ = sub.Float64()
	tax, _ = tx.Float64()
	total, _ = tot.Float64()
	return subtotal, tax, total
}
