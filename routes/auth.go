package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shakibwebx/GadegtsHub-Server/auth"
)

// SetupAuthRoutes registers the public /api/auth/* endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, deps *Deps) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(deps.Accounts))
		authGroup.POST("/login", auth.LoginHandler(deps.Accounts, deps.Cfg.JWTSecret))
		authGroup.POST("/social-login", auth.SocialLoginHandler(deps.Accounts, deps.Cfg.JWTSecret))
	}
}
