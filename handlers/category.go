package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"shopapi/models"
	"shopapi/service"
	"shopapi/storage"
	"shopapi/utils"
)

// CategoryHandler serves the product-category endpoints.
type CategoryHandler struct {
	store storage.Store
}

func NewCategoryHandler(store storage.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// CreateCategory saves a category from a multipart form. Each uploaded image
// (image, topicon, topbanner, topbannerbottom) is stored as a base64 data URI.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	name := c.PostForm("category")
	if name == "" {
		respondError(c, service.Invalid("category is required"))
		return
	}

	category := models.ProductCategory{
		Category:  name,
		TopList:   c.PostForm("toplist") == "true",
		CreatedAt: time.Now().UTC(),
	}

	fields := map[string]*string{
		"image":           &category.Image,
		"topicon":         &category.TopIcon,
		"topbanner":       &category.TopBanner,
		"topbannerbottom": &category.TopBannerBottom,
	}
	for field, dst := range fields {
		fh, err := c.FormFile(field)
		if err != nil {
			continue // optional upload
		}
		uri, err := utils.FileToDataURI(fh)
		if err != nil {
			respondError(c, service.Invalid("could not read %s upload", field))
			return
		}
		*dst = uri
	}

	id, err := h.store.Create(c.Request.Context(), storage.ProductCategories, category)
	if err != nil {
		respondError(c, err)
		return
	}
	category.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category saved",
		"category": category,
	})
}

// GetCategories retrieves all product categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories := []models.ProductCategory{}

	if err := h.store.Find(c.Request.Context(), storage.ProductCategories, bson.M{}, nil, &categories); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
