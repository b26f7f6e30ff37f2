package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/shakibwebx/GadegtsHub-Server/controllers/product"
	"github.com/shakibwebx/GadegtsHub-Server/middleware"
	"github.com/shakibwebx/GadegtsHub-Server/models"
)

// SetupProductRoutes registers the /api/products/* endpoints. Reads are
// public; writes and the Excel export are admin-only.
func SetupProductRoutes(api *gin.RouterGroup, deps *Deps) {
	adminOnly := middleware.Auth(deps.Cfg.JWTSecret, deps.Accounts, models.RoleAdmin)

	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.Catalog))
		products.GET("/export", adminOnly, productControllers.ExportProductsToExcel(deps.Catalog))
		products.GET("/:id", productControllers.GetProductByID(deps.Catalog))

		products.POST("", adminOnly, productControllers.CreateProduct(deps.Catalog, deps.Uploader))
		products.PUT("/:id", adminOnly, productControllers.UpdateProduct(deps.Catalog))
		products.DELETE("/:id", adminOnly, productControllers.DeleteProduct(deps.Catalog))
	}
}
