package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shakibwebx/GadegtsHub-Server/models"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
)

// GetProducts lists the catalog with search, filters and pagination.
func GetProducts(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := stores.ProductQuery{
			SearchTerm: c.Query("searchTerm"),
			Tags:       splitList(c.Query("tags")),
			Symptoms:   splitList(c.Query("symptoms")),
			Type:       models.ProductType(c.Query("type")),
			SortBy:     c.DefaultQuery("sortBy", "createdAt"),
			SortOrder:  strings.ToLower(c.DefaultQuery("sortOrder", "desc")),
		}
		if query.SortOrder != "asc" && query.SortOrder != "desc" {
			query.SortOrder = "desc"
		}

		for _, tok := range splitList(c.Query("categories")) {
			query.Categories = append(query.Categories, models.ProductCategory(tok))
		}

		if v := c.Query("inStock"); v != "" {
			inStock := v == "true"
			query.InStock = &inStock
		}
		if v := c.Query("requiredPrescription"); v != "" {
			required := v == "true"
			query.RequiredPrescription = &required
		}
		if v := c.Query("minPrice"); v != "" {
			minPrice, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			query.MinPrice = &minPrice
		}
		if v := c.Query("maxPrice"); v != "" {
			maxPrice, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			query.MaxPrice = &maxPrice
		}

		query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

		products, total, err := catalog.Find(c.Request.Context(), query)
		if err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Products retrieved successfully!",
			"data": gin.H{
				"data": products,
				"meta": gin.H{
					"total": total,
					"page":  query.Page,
					"limit": query.Limit,
				},
			},
		})
	}
}
