package stores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
	"github.com/shakibwebx/GadegtsHub-Server/models"
)

// CatalogStore persists products. Soft-deleted documents stay in the
// collection; every read method injects the isDeleted predicate so they
// never surface.
type CatalogStore struct {
	coll *mongo.Collection
}

func NewCatalogStore(db *mongo.Database) *CatalogStore {
	return &CatalogStore{coll: db.Collection("products")}
}

// ProductQuery is the search/filter/pagination input for Find.
type ProductQuery struct {
	SearchTerm           string
	Tags                 []string
	Symptoms             []string
	InStock              *bool
	RequiredPrescription *bool
	MinPrice             *float64
	MaxPrice             *float64
	Type                 models.ProductType
	Categories           []models.ProductCategory
	Page                 int
	Limit                int
	SortBy               string
	SortOrder            string
}

// notDeleted adds the soft-delete predicate to a filter.
func notDeleted(filter bson.M) bson.M {
	filter["isDeleted"] = false
	return filter
}

// Create inserts a product after checking the compound uniqueness of
// (name, manufacturer, type, categories, sku) among non-deleted products.
func (s *CatalogStore) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	existsFilter := bson.M{
		"name":         p.Name,
		"manufacturer": p.Manufacturer,
		"type":         p.Type,
		"categories":   bson.M{"$all": p.Categories},
		"sku":          p.SKU,
		"isDeleted":    false,
	}
	count, err := s.coll.CountDocuments(ctx, existsFilter)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.Conflict("This product already exists!")
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := s.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

// FindByID returns a non-deleted product, or nil when no such product
// exists.
func (s *CatalogStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := s.coll.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Find runs the catalog query and returns the page plus the total count
// of matching documents.
func (s *CatalogStore) Find(ctx context.Context, q ProductQuery) ([]models.Product, int64, error) {
	filter := buildProductFilter(q)

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortDir := -1
	if q.SortOrder == "asc" {
		sortDir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortDir}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update applies a partial update and returns the updated document, or
// nil when the product does not exist or is soft-deleted.
func (s *CatalogStore) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Product, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Product
	err := s.coll.FindOneAndUpdate(ctx, notDeleted(bson.M{"_id": id}), bson.M{"$set": fields}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SoftDelete flips the isDeleted flag. The document is excluded from all
// subsequent reads but never removed.
func (s *CatalogStore) SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Product
	err := s.coll.FindOneAndUpdate(
		ctx,
		notDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}},
		opts,
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// All returns every non-deleted product, newest first. Used by the Excel
// export.
func (s *CatalogStore) All(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, notDeleted(bson.M{}), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func buildProductFilter(q ProductQuery) bson.M {
	filter := notDeleted(bson.M{})

	if q.SearchTerm != "" {
		regex := bson.M{"$regex": q.SearchTerm, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"categories": bson.M{"$elemMatch": regex}},
			{"tags": bson.M{"$elemMatch": regex}},
			{"symptoms": bson.M{"$elemMatch": regex}},
			{"type": regex},
			{"manufacturer": regex},
		}
	}
	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$in": q.Tags}
	}
	if len(q.Symptoms) > 0 {
		filter["symptoms"] = bson.M{"$in": q.Symptoms}
	}
	if q.InStock != nil {
		filter["inStock"] = *q.InStock
	}
	if q.RequiredPrescription != nil {
		filter["requiredPrescription"] = *q.RequiredPrescription
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}
	if len(q.Categories) > 0 {
		filter["categories"] = bson.M{"$in": q.Categories}
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}
