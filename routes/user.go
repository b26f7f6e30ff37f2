package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/shakibwebx/GadegtsHub-Server/controllers/user"
	"github.com/shakibwebx/GadegtsHub-Server/middleware"
	"github.com/shakibwebx/GadegtsHub-Server/models"
)

// SetupUserRoutes registers the /api/users/* endpoints.
func SetupUserRoutes(api *gin.RouterGroup, deps *Deps) {
	users := api.Group("/users")
	{
		users.GET("", middleware.Auth(deps.Cfg.JWTSecret, deps.Accounts, models.RoleAdmin), userControllers.GetAllUsers(deps.Accounts))
		users.GET("/me", middleware.Auth(deps.Cfg.JWTSecret, deps.Accounts), userControllers.GetCurrentUser())
		users.GET("/email/:email", userControllers.GetUserByEmail(deps.Accounts))
		users.GET("/:id", userControllers.GetSingleUser(deps.Accounts))
		users.PATCH("/:id", userControllers.UpdateUser(deps.Accounts, deps.Uploader))
	}
}
