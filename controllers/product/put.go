package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
	"github.com/shakibwebx/GadegtsHub-Server/models"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
)

// UpdateProductRequest is a partial update; nil fields stay untouched.
type UpdateProductRequest struct {
	Name                 *string                  `json:"name"`
	Description          *string                  `json:"description"`
	Price                *float64                 `json:"price"`
	Quantity             *int                     `json:"quantity"`
	RequiredPrescription *bool                    `json:"requiredPrescription"`
	Manufacturer         *string                  `json:"manufacturer"`
	ExpiryDate           *time.Time               `json:"expiryDate"`
	Type                 *models.ProductType      `json:"type"`
	Categories           []models.ProductCategory `json:"categories"`
	Symptoms             []string                 `json:"symptoms"`
	Discount             *float64                 `json:"discount"`
	ImageURL             *string                  `json:"imageUrl"`
	Supplier             *string                  `json:"supplier"`
	InStock              *bool                    `json:"inStock"`
	SKU                  *string                  `json:"sku"`
	Tags                 []string                 `json:"tags"`
}

// UpdateProduct applies a partial update to a non-deleted product.
func UpdateProduct(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.Error(apperror.NotFound("Product not found!"))
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		fields := bson.M{}
		if req.Name != nil {
			fields["name"] = *req.Name
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.Price != nil {
			if *req.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			fields["price"] = *req.Price
		}
		if req.Quantity != nil {
			if *req.Quantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
			fields["quantity"] = *req.Quantity
		}
		if req.RequiredPrescription != nil {
			fields["requiredPrescription"] = *req.RequiredPrescription
		}
		if req.Manufacturer != nil {
			fields["manufacturer"] = *req.Manufacturer
		}
		if req.ExpiryDate != nil {
			fields["expiryDate"] = *req.ExpiryDate
		}
		if req.Type != nil {
			if !req.Type.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
				return
			}
			fields["type"] = *req.Type
		}
		if req.Categories != nil {
			for _, category := range req.Categories {
				if !category.Valid() {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category: " + string(category)})
					return
				}
			}
			fields["categories"] = req.Categories
		}
		if req.Symptoms != nil {
			fields["symptoms"] = req.Symptoms
		}
		if req.Discount != nil {
			fields["discount"] = *req.Discount
		}
		if req.ImageURL != nil {
			fields["imageUrl"] = *req.ImageURL
		}
		if req.Supplier != nil {
			fields["supplier"] = *req.Supplier
		}
		if req.InStock != nil {
			fields["inStock"] = *req.InStock
		}
		if req.SKU != nil {
			fields["sku"] = *req.SKU
		}
		if req.Tags != nil {
			fields["tags"] = req.Tags
		}

		product, err := catalog.Update(c.Request.Context(), id, fields)
		if err != nil {
			c.Error(err)
			return
		}
		if product == nil {
			c.Error(apperror.NotFound("Product not found!"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product updated successfully!",
			"data":    product,
		})
	}
}
