package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
)

// GetProductByID returns a single non-deleted product.
func GetProductByID(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.Error(apperror.NotFound("Product not found!"))
			return
		}

		product, err := catalog.FindByID(c.Request.Context(), id)
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
			"message": "Product retrieved successfully!",
			"data":    product,
		})
	}
}
