package stores

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/shakibwebx/GadegtsHub-Server/models"
)

// AccountStore persists users. Password hashing happens here, on write:
// Save hashes the plaintext it is given, and UpdateProfile rehashes only
// when a new password is supplied, so a re-save without a password change
// never rehashes.
type AccountStore struct {
	coll       *mongo.Collection
	saltRounds int
}

func NewAccountStore(db *mongo.Database, saltRounds int) *AccountStore {
	if saltRounds <= 0 {
		saltRounds = 10
	}
	return &AccountStore{coll: db.Collection("users"), saltRounds: saltRounds}
}

// ProfileUpdate holds the mutable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name     *string
	Phone    *string
	Address  *string
	Password *string
	Image    *string
}

// Save inserts a new user, normalizing the email and hashing the
// plaintext password.
func (s *AccountStore) Save(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.saltRounds)
	if err != nil {
		return err
	}
	u.Password = string(hashed)

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByEmail returns the user with the given email, or nil when none
// exists.
func (s *AccountStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AccountStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AccountStore) All(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile applies the provided fields and returns the updated user,
// or nil when the id does not resolve.
func (s *AccountStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	fields := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Phone != nil {
		fields["phone"] = *upd.Phone
	}
	if upd.Address != nil {
		fields["address"] = *upd.Address
	}
	if upd.Image != nil {
		fields["image"] = *upd.Image
	}
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), s.saltRounds)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashed)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ComparePassword checks a plaintext candidate against the stored hash.
func (s *AccountStore) ComparePassword(u *models.User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}
