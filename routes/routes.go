package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shakibwebx/GadegtsHub-Server/config"
	orderControllers "github.com/shakibwebx/GadegtsHub-Server/controllers/order"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
	"github.com/shakibwebx/GadegtsHub-Server/uploader"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Cfg      *config.Config
	Accounts *stores.AccountStore
	Catalog  *stores.CatalogStore
	Orders   *orderControllers.Service
	Uploader *uploader.Uploader
}

// SetupRoutes is the single entry-point that wires up all route groups
// under /api.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	api := r.Group("/api")

	SetupAuthRoutes(api, deps)
	SetupUserRoutes(api, deps)
	SetupProductRoutes(api, deps)
	SetupOrderRoutes(api, deps)
}
