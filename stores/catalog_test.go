package stores

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shakibwebx/GadegtsHub-Server/models"
)

func TestBuildProductFilterDefaults(t *testing.T) {
	filter := buildProductFilter(ProductQuery{})

	if len(filter) != 1 {
		t.Fatalf("expected only the soft-delete predicate, got %v", filter)
	}
	if filter["isDeleted"] != false {
		t.Errorf("isDeleted = %v, want false", filter["isDeleted"])
	}
}

func TestBuildProductFilterSearchTerm(t *testing.T) {
	filter := buildProductFilter(ProductQuery{SearchTerm: "watch"})

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected an $or clause, got %v", filter)
	}
	if len(or) != 6 {
		t.Errorf("expected 6 search branches, got %d", len(or))
	}

	regex := bson.M{"$regex": "watch", "$options": "i"}
	if !reflect.DeepEqual(or[0], bson.M{"name": regex}) {
		t.Errorf("name branch = %v", or[0])
	}
	if !reflect.DeepEqual(or[1], bson.M{"categories": bson.M{"$elemMatch": regex}}) {
		t.Errorf("categories branch = %v", or[1])
	}
	if filter["isDeleted"] != false {
		t.Error("search must still exclude soft-deleted products")
	}
}

func TestBuildProductFilterFields(t *testing.T) {
	inStock := true
	minPrice := 50.0
	maxPrice := 500.0
	filter := buildProductFilter(ProductQuery{
		Tags:       []string{"new", "sale"},
		InStock:    &inStock,
		Type:       models.ProductTypeSmartwatch,
		Categories: []models.ProductCategory{models.CategoryWatch},
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
	})

	if !reflect.DeepEqual(filter["tags"], bson.M{"$in": []string{"new", "sale"}}) {
		t.Errorf("tags = %v", filter["tags"])
	}
	if filter["inStock"] != true {
		t.Errorf("inStock = %v", filter["inStock"])
	}
	if filter["type"] != models.ProductTypeSmartwatch {
		t.Errorf("type = %v", filter["type"])
	}
	if !reflect.DeepEqual(filter["price"], bson.M{"$gte": 50.0, "$lte": 500.0}) {
		t.Errorf("price = %v", filter["price"])
	}
}

func TestBuildProductFilterPriceBoundsOnly(t *testing.T) {
	minPrice := 100.0
	filter := buildProductFilter(ProductQuery{MinPrice: &minPrice})
	if !reflect.DeepEqual(filter["price"], bson.M{"$gte": 100.0}) {
		t.Errorf("price = %v", filter["price"])
	}

	maxPrice := 250.0
	filter = buildProductFilter(ProductQuery{MaxPrice: &maxPrice})
	if !reflect.DeepEqual(filter["price"], bson.M{"$lte": 250.0}) {
		t.Errorf("price = %v", filter["price"])
	}
}

func TestNotDeletedInjectsPredicate(t *testing.T) {
	filter := notDeleted(bson.M{"name": "Pixel Watch"})
	if filter["isDeleted"] != false {
		t.Errorf("isDeleted = %v, want false", filter["isDeleted"])
	}
	if filter["name"] != "Pixel Watch" {
		t.Errorf("existing fields must be preserved, got %v", filter)
	}
}
