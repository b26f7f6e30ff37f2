package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
	"github.com/shakibwebx/GadegtsHub-Server/models"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
	"github.com/shakibwebx/GadegtsHub-Server/uploader"
)

// GET /users
func GetAllUsers(accounts *stores.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := accounts.All(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /users/email/:email
func GetUserByEmail(accounts *stores.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := accounts.FindByEmail(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.Error(err)
			return
		}
		if user == nil {
			c.Error(apperror.NotFound("User not found"))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /users/:id
func GetSingleUser(accounts *stores.AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.Error(apperror.NotFound("User not found"))
			return
		}
		user, err := accounts.FindByID(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		if user == nil {
			c.Error(apperror.NotFound("User not found"))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /users/me
func GetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("user")
		if !ok {
			c.Error(apperror.Unauthorized("User not authenticated"))
			return
		}
		c.JSON(http.StatusOK, v.(*models.User))
	}
}

// PATCH /users/:id updates the profile from a multipart form. A new
// password is rehashed by the store; an attached image goes to
// Cloudinary.
func UpdateUser(accounts *stores.AccountStore, up *uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.Error(apperror.NotFound("User not found"))
			return
		}

		upd := stores.ProfileUpdate{}
		if v, ok := c.GetPostForm("name"); ok {
			upd.Name = &v
		}
		if v, ok := c.GetPostForm("phone"); ok {
			upd.Phone = &v
		}
		if v, ok := c.GetPostForm("address"); ok {
			upd.Address = &v
		}
		if v, ok := c.GetPostForm("password"); ok && v != "" {
			if len(v) < 6 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
				return
			}
			upd.Password = &v
		}

		if fileHeader, err := c.FormFile("image"); err == nil && up != nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
				return
			}
			defer file.Close()

			imageURL, err := up.Upload(c.Request.Context(), file, "user_profiles")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			upd.Image = &imageURL
		}

		user, err := accounts.UpdateProfile(c.Request.Context(), id, upd)
		if err != nil {
			c.Error(err)
			return
		}
		if user == nil {
			c.Error(apperror.NotFound("User not found"))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
