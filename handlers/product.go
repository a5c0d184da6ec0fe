package handlers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopapi/models"
	"shopapi/service"
	"shopapi/storage"
)

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	store storage.Store
}

func NewProductHandler(store storage.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// validateProduct turns a raw input into a Product or a ValidationError.
func validateProduct(idx int, input models.ProductInput) (models.Product, error) {
	if input.Name == "" {
		return models.Product{}, service.Invalid("product %d: name is required", idx)
	}
	if input.Barcode == "" {
		return models.Product{}, service.Invalid("product %d: barcode is required", idx)
	}
	if input.Price == nil || *input.Price < 0 {
		return models.Product{}, service.Invalid("product %d: price must be a non-negative number", idx)
	}

	now := time.Now().UTC()
	return models.Product{
		Name:      input.Name,
		Barcode:   input.Barcode,
		Size:      input.Size,
		Image:     input.Image,
		Price:     *input.Price,
		Sale:      input.Sale,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CreateProduct adds a new product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.ProductInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := validateProduct(1, input)
	if err != nil {
		respondError(c, err)
		return
	}

	// Insert product into the store
	id, err := h.store.Create(c.Request.Context(), storage.Products, product)
	if err != nil {
		if storage.IsDuplicate(err) {
			respondError(c, service.Conflict("barcode already exists"))
			return
		}
		respondError(c, err)
		return
	}
	product.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product saved successfully!",
		"product": product,
	})
}

// GetAllProducts retrieves all products
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products := []models.Product{}

	if err := h.store.Find(c.Request.Context(), storage.Products, bson.M{}, nil, &products); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts looks up products by name, category or barcode
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter at least 3 characters"})
		return
	}

	// Case-insensitive substring match across the searchable fields
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"category": pattern},
		{"barcode": pattern},
	}}

	products := []models.Product{}
	if err := h.store.Find(c.Request.Context(), storage.Products, filter, nil, &products); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// BulkImport inserts a batch of products in one write
func (h *ProductHandler) BulkImport(c *gin.Context) {
	var input struct {
		Products []models.ProductInput `json:"products"`
	}

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil || input.Products == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid products format"})
		return
	}

	// Validate every product before any write happens
	docs := make([]any, 0, len(input.Products))
	for i, raw := range input.Products {
		product, err := validateProduct(i+1, raw)
		if err != nil {
			respondError(c, err)
			return
		}
		docs = append(docs, product)
	}

	// InsertMany errors on an empty batch
	if len(docs) == 0 {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Products imported",
			"count":   0,
		})
		return
	}

	count, err := h.store.CreateMany(c.Request.Context(), storage.Products, docs)
	if err != nil {
		if storage.IsDuplicate(err) {
			respondError(c, service.Conflict("duplicate barcode in import"))
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Products imported",
		"count":   count,
	})
}
