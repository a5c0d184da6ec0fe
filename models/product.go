package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents product data in the system
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Barcode   string             `bson:"barcode" json:"barcode"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price" json:"price"`
	Sale      bool               `bson:"sale" json:"sale"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// ProductInput holds data for creating a product
type ProductInput struct {
	Name     string   `json:"name"`
	Barcode  string   `json:"barcode"`
	Size     string   `json:"size"`
	Image    string   `json:"image"`
	Price    *float64 `json:"price"`
	Sale     bool     `json:"sale"`
	Category string   `json:"category"`
}
