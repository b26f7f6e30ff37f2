package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shakibwebx/GadegtsHub-Server/apperror"
)

func errorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", handler)
	return r
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		c.Error(apperror.NotFound("Order not found!"))
	})

	w := doGet(r)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var body struct {
		Success    bool   `json:"success"`
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.StatusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want 404", body.StatusCode)
	}
	if body.Message != "Order not found!" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestErrorHandlerDefaultsTo500(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		c.Error(errors.New("database exploded"))
	})

	w := doGet(r)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestErrorHandlerSkipsWrittenResponse(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		c.Error(errors.New("too late"))
	})

	w := doGet(r)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 from the handler's own response", w.Code)
	}
}
