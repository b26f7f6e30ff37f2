package productcontroller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shakibwebx/GadegtsHub-Server/models"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
	"github.com/shakibwebx/GadegtsHub-Server/uploader"
)

// splitList turns a comma-separated form value into trimmed tokens.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func parseExpiryDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// CreateProduct creates a catalog product from a multipart form, with an
// optional image pushed to Cloudinary.
func CreateProduct(catalog *stores.CatalogStore, up *uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		manufacturer := c.PostForm("manufacturer")
		priceStr := c.PostForm("price")
		quantityStr := c.PostForm("quantity")
		expiryDateStr := c.PostForm("expiryDate")
		typeStr := c.PostForm("type")
		categoriesStr := c.PostForm("categories")
		if name == "" || manufacturer == "" || priceStr == "" || quantityStr == "" || expiryDateStr == "" || typeStr == "" || categoriesStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, manufacturer, price, quantity, expiryDate, type, and categories are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}
		expiryDate, err := parseExpiryDate(expiryDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiryDate"})
			return
		}

		productType := models.ProductType(typeStr)
		if !productType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
			return
		}

		var categories []models.ProductCategory
		for _, tok := range splitList(categoriesStr) {
			category := models.ProductCategory(tok)
			if !category.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category: " + tok})
				return
			}
			categories = append(categories, category)
		}
		if len(categories) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one category is required"})
			return
		}

		var discount float64
		if discountStr := c.PostForm("discount"); discountStr != "" {
			if discount, err = strconv.ParseFloat(discountStr, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
		}

		product := &models.Product{
			Name:                 name,
			Description:          c.PostForm("description"),
			Price:                price,
			Quantity:             quantity,
			RequiredPrescription: c.PostForm("requiredPrescription") == "true",
			Manufacturer:         manufacturer,
			ExpiryDate:           expiryDate,
			Type:                 productType,
			Categories:           categories,
			Symptoms:             splitList(c.PostForm("symptoms")),
			Discount:             discount,
			Supplier:             c.PostForm("supplier"),
			InStock:              c.PostForm("inStock") == "true",
			SKU:                  c.PostForm("sku"),
			Tags:                 splitList(c.PostForm("tags")),
		}

		// Optional image upload
		if fileHeader, err := c.FormFile("image"); err == nil && up != nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
				return
			}
			defer file.Close()

			imageURL, err := up.Upload(c.Request.Context(), file, "product_images")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			product.ImageURL = imageURL
		}

		created, err := catalog.Create(c.Request.Context(), product)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product is created successfully!",
			"data":    created,
		})
	}
}
