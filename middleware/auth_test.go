package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shakibwebx/GadegtsHub-Server/models"
)

const testSecret = "test-secret"

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func signToken(t *testing.T, email string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return signed
}

func authRouter(users UserFinder, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(testSecret, users, roles...), func(c *gin.Context) {
		u := c.MustGet("user").(*models.User)
		c.JSON(http.StatusOK, gin.H{"email": u.Email})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthValidToken(t *testing.T) {
	users := &fakeUsers{users: map[string]*models.User{
		"user@example.com": {ID: primitive.NewObjectID(), Email: "user@example.com", Role: models.RoleUser},
	}}
	r := authRouter(users)

	w := request(r, signToken(t, "user@example.com", time.Hour))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestAuthMissingHeader(t *testing.T) {
	r := authRouter(&fakeUsers{})

	w := request(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	users := &fakeUsers{users: map[string]*models.User{
		"user@example.com": {Email: "user@example.com", Role: models.RoleUser},
	}}
	r := authRouter(users)

	w := request(r, signToken(t, "user@example.com", -time.Hour))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	r := authRouter(&fakeUsers{})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	w := request(r, signed)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthUnknownUser(t *testing.T) {
	r := authRouter(&fakeUsers{})

	w := request(r, signToken(t, "ghost@example.com", time.Hour))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRoleGuard(t *testing.T) {
	users := &fakeUsers{users: map[string]*models.User{
		"user@example.com":  {Email: "user@example.com", Role: models.RoleUser},
		"admin@example.com": {Email: "admin@example.com", Role: models.RoleAdmin},
	}}
	r := authRouter(users, models.RoleAdmin)

	w := request(r, signToken(t, "user@example.com", time.Hour))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("non-admin status = %d, want 401", w.Code)
	}

	w = request(r, signToken(t, "admin@example.com", time.Hour))
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200: %s", w.Code, w.Body.String())
	}
}
