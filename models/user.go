package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthMethod string
type UserRole string

const (
	MethodCredentials AuthMethod = "credentials"
	MethodGithub      AuthMethod = "github"
	MethodGoogle      AuthMethod = "google"

	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the persisted account document. Password always holds a bcrypt
// hash; AccountStore.Save is the only writer.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Method    AuthMethod         `bson:"method" json:"method"`
	Role      UserRole           `bson:"role" json:"role"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
