package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/shakibwebx/GadegtsHub-Server/models"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
)

// ExportProductsToExcel streams the non-deleted catalog as an xlsx file.
func ExportProductsToExcel(catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Manufacturer", "Type", "Categories",
			"Price", "Discount", "Quantity", "InStock", "SKU",
			"Supplier", "ExpiryDate", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID.Hex())
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Manufacturer)
			row.AddCell().SetValue(string(p.Type))
			row.AddCell().SetValue(joinCategories(p.Categories))
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Discount)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Supplier)
			row.AddCell().SetValue(p.ExpiryDate.Format("2006-01-02"))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func joinCategories(categories []models.ProductCategory) string {
	parts := make([]string, 0, len(categories))
	for _, category := range categories {
		parts = append(parts, string(category))
	}
	return strings.Join(parts, ",")
}
