package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCategory represents a storefront category. The image fields hold
// base64 data URIs built from multipart uploads.
type ProductCategory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category        string             `bson:"category" json:"category"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	TopList         bool               `bson:"toplist" json:"toplist"`
	TopIcon         string             `bson:"topicon,omitempty" json:"topicon,omitempty"`
	TopBanner       string             `bson:"topbanner,omitempty" json:"topbanner,omitempty"`
	TopBannerBottom string             `bson:"topbannerbottom,omitempty" json:"topbannerbottom,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
}
