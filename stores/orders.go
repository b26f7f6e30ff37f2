package stores

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shakibwebx/GadegtsHub-Server/models"
)

// OrderStore persists orders with their embedded user snapshot and
// transaction sub-record.
type OrderStore struct {
	coll *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{coll: db.Collection("orders")}
}

func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// SetTransaction stamps the pending transaction sub-record after a
// checkout session was opened.
func (s *OrderStore) SetTransaction(ctx context.Context, id primitive.ObjectID, tx models.Transaction) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"transaction": tx,
		"updatedAt":   time.Now(),
	}})
	return err
}

// FindByTransactionID returns the order whose embedded transaction id
// matches, or nil when none does.
func (s *OrderStore) FindByTransactionID(ctx context.Context, tranID string) (*models.Order, error) {
	var o models.Order
	err := s.coll.FindOne(ctx, bson.M{"transaction.id": tranID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var o models.Order
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Reconcile writes the verified gateway fields and the translated order
// status into the order matched by transaction id.
func (s *OrderStore) Reconcile(ctx context.Context, tranID string, tx models.Transaction, status string) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"transaction.id": tranID}, bson.M{"$set": bson.M{
		"transaction.bank_status":       tx.BankStatus,
		"transaction.sp_code":           tx.SPCode,
		"transaction.sp_message":        tx.SPMessage,
		"transaction.transactionStatus": tx.TransactionStatus,
		"transaction.method":            tx.Method,
		"transaction.date_time":         tx.DateTime,
		"status":                        status,
		"updatedAt":                     time.Now(),
	}})
	return err
}

// UpdateStatus is the direct admin override. Returns nil when the id does
// not resolve.
func (s *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o models.Order
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		opts,
	).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderStore) All(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Revenue sums totalPrice across all orders, paid or not. Returns 0 when
// the collection is empty.
func (s *OrderStore) Revenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$totalPrice"},
		}}},
	}
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}
