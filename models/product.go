package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductType string
type ProductCategory string

const (
	// Product types
	ProductTypeSmartwatch ProductType = "Smartwatch"
	ProductTypeSmartphone ProductType = "Smartphone"
	ProductTypeLaptop     ProductType = "Laptop"
	ProductTypePC         ProductType = "PC"
	ProductTypeAirbuds    ProductType = "Airbuds"
	ProductTypeCamera     ProductType = "Camera"

	// Product categories
	CategoryWatch      ProductCategory = "Watch"
	CategoryPhone      ProductCategory = "Phone"
	CategoryMacbook    ProductCategory = "Macbook"
	CategoryComputer   ProductCategory = "Computer"
	CategoryHeadphones ProductCategory = "Headphones"
	CategoryDSLR       ProductCategory = "DSLR"
	CategoryMouse      ProductCategory = "mouse"
	CategoryKeyboard   ProductCategory = "keyboard"
	CategoryMonitor    ProductCategory = "monitor"
)

var productTypes = map[ProductType]bool{
	ProductTypeSmartwatch: true,
	ProductTypeSmartphone: true,
	ProductTypeLaptop:     true,
	ProductTypePC:         true,
	ProductTypeAirbuds:    true,
	ProductTypeCamera:     true,
}

var productCategories = map[ProductCategory]bool{
	CategoryWatch:      true,
	CategoryPhone:      true,
	CategoryMacbook:    true,
	CategoryComputer:   true,
	CategoryHeadphones: true,
	CategoryDSLR:       true,
	CategoryMouse:      true,
	CategoryKeyboard:   true,
	CategoryMonitor:    true,
}

func (t ProductType) Valid() bool { return productTypes[t] }

func (c ProductCategory) Valid() bool { return productCategories[c] }

// Product is the persisted catalog document. Deleted products stay in the
// collection with IsDeleted set; every read path filters them out.
type Product struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                 string             `bson:"name" json:"name"`
	Description          string             `bson:"description,omitempty" json:"description,omitempty"`
	Price                float64            `bson:"price" json:"price"`
	Quantity             int                `bson:"quantity" json:"quantity"`
	RequiredPrescription bool               `bson:"requiredPrescription" json:"requiredPrescription"`
	Manufacturer         string             `bson:"manufacturer" json:"manufacturer"`
	ExpiryDate           time.Time          `bson:"expiryDate" json:"expiryDate"`
	Type                 ProductType        `bson:"type" json:"type"`
	Categories           []ProductCategory  `bson:"categories" json:"categories"`
	Symptoms             []string           `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Discount             float64            `bson:"discount" json:"discount"`
	ImageURL             string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Supplier             string             `bson:"supplier,omitempty" json:"supplier,omitempty"`
	InStock              bool               `bson:"inStock" json:"inStock"`
	IsDeleted            bool               `bson:"isDeleted" json:"isDeleted"`
	SKU                  string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Tags                 []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectivePrice applies the percentage discount when one is set.
func (p *Product) EffectivePrice() float64 {
	if p.Discount > 0 {
		return p.Price - (p.Price * p.Discount / 100)
	}
	return p.Price
}
