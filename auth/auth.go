package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shakibwebx/GadegtsHub-Server/models"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
)

type RegisterRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
	Phone    string          `json:"phone"`
	Address  string          `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SocialLoginRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Image  string `json:"image"`
	Method string `json:"method"`
}

// issueJWT signs a 1-day token carrying the user's identity and role.
func issueJWT(secret string, u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"_id":   u.ID.Hex(),
		"email": u.Email,
		"role":  string(u.Role),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func publicUser(u *models.User) gin.H {
	return gin.H{
		"_id":     u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"role":    u.Role,
		"phone":   u.Phone,
		"address": u.Address,
		"image":   u.Image,
	}
}

// RegisterHandler creates a credentials account. The store hashes the
// password on save.
func RegisterHandler(accounts *stores.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and password are required"})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
			return
		}

		existing, err := accounts.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}

		role := req.Role
		if role != models.RoleAdmin {
			role = models.RoleUser
		}
		user := &models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Method:   models.MethodCredentials,
			Role:     role,
			Phone:    req.Phone,
			Address:  req.Address,
		}
		if err := accounts.Save(c.Request.Context(), user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    publicUser(user),
		})
	}
}

// LoginHandler checks credentials and returns a signed token.
func LoginHandler(accounts *stores.AccountStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
			return
		}

		user, err := accounts.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if user == nil || !accounts.ComparePassword(user, req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
			return
		}

		token, err := issueJWT(secret, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    publicUser(user),
			"token":   token,
		})
	}
}

// SocialLoginHandler upserts an account from an external provider profile
// and returns a signed token. New social accounts get a random
// placeholder password.
func SocialLoginHandler(accounts *stores.AccountStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SocialLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if req.Email == "" || req.Method == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and method are required"})
			return
		}

		user, err := accounts.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if user == nil {
			method := models.MethodCredentials
			switch req.Method {
			case string(models.MethodGithub):
				method = models.MethodGithub
			case string(models.MethodGoogle):
				method = models.MethodGoogle
			}

			name := req.Name
			if name == "" {
				name = strings.Split(req.Email, "@")[0]
			}

			user = &models.User{
				Name:     name,
				Email:    req.Email,
				Password: uuid.NewString(),
				Method:   method,
				Role:     models.RoleUser,
				Image:    req.Image,
			}
			if err := accounts.Save(c.Request.Context(), user); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
		} else if req.Image != "" && user.Image != req.Image {
			updated, err := accounts.UpdateProfile(c.Request.Context(), user.ID, stores.ProfileUpdate{Image: &req.Image})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			if updated != nil {
				user = updated
			}
		}

		token, err := issueJWT(secret, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    publicUser(user),
			"token":   token,
		})
	}
}
