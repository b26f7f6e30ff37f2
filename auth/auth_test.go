package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shakibwebx/GadegtsHub-Server/models"
)

func TestIssueJWT(t *testing.T) {
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}

	signed, err := issueJWT("secret", user)
	if err != nil {
		t.Fatalf("issueJWT: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !token.Valid {
		t.Fatal("token should be valid")
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["_id"] != user.ID.Hex() {
		t.Errorf("_id claim = %v, want %s", claims["_id"], user.ID.Hex())
	}
	if claims["email"] != "admin@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role claim = %v", claims["role"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	expiry := time.Unix(int64(exp), 0)
	if d := time.Until(expiry); d < 23*time.Hour || d > 25*time.Hour {
		t.Errorf("token lifetime = %v, want about 24h", d)
	}
}
