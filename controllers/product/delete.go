package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
)

// DeleteProduct soft-deletes a product; it stays in the collection but
// disappears from every read path.
func DeleteProduct(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.Error(apperror.BadRequest("Failed to delete Product"))
			return
		}

		product, err := catalog.SoftDelete(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		if product == nil {
			c.Error(apperror.BadRequest("Failed to delete Product"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product deleted successfully!",
			"data":    product,
		})
	}
}
