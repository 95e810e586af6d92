package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stocklens/internal/service"

	"github.com/gin-gonic/gin"
)

func runRespond(t *testing.T, fn func(c *gin.Context)) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return w.Code, body["message"]
}

func TestRespondServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "duplicate code",
			err:     fmt.Errorf("create: %w", service.ErrProductCodeExists),
			code:    http.StatusBadRequest,
			message: "Product code already exists",
		},
		{
			name:    "in use",
			err:     service.ErrProductInUse,
			code:    http.StatusConflict,
			message: "Product has sell-in or sell-through records",
		},
		{
			name:    "validation keeps detail",
			err:     &service.ValidationError{Field: "month", Message: "must be YYYY-MM"},
			code:    http.StatusUnprocessableEntity,
			message: "month: must be YYYY-MM",
		},
		{
			name:    "unknown hides detail",
			err:     errors.New("pq: connection refused"),
			code:    http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := runRespond(t, func(c *gin.Context) { RespondServiceError(c, tc.err) })
			if code != tc.code {
				t.Fatalf("status want %d got %d", tc.code, code)
			}
			if msg != tc.message {
				t.Fatalf("message want %q got %q", tc.message, msg)
			}
		})
	}
}

func TestRespondMappedErrorRuleOrder(t *testing.T) {
	rules := []MappedError{{Target: service.ErrNotFound, Code: http.StatusNotFound, Message: "Product not found"}}

	code, msg := runRespond(t, func(c *gin.Context) {
		RespondMappedError(c, service.ErrNotFound, rules, CommonErrorRules)
	})
	if code != http.StatusNotFound || msg != "Product not found" {
		t.Fatalf("unexpected response: %d %s", code, msg)
	}
}

func TestParseOptionalIDQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for raw, want := range map[string]bool{"": true, "12": true, "0": false, "-1": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/?product_id="+raw, nil)

		_, ok := ParseOptionalIDQuery(c, "product_id")
		if ok != want {
			t.Fatalf("product_id=%q ok want %v got %v", raw, want, ok)
		}
		if !ok && w.Code != http.StatusBadRequest {
			t.Fatalf("product_id=%q status want 400 got %d", raw, w.Code)
		}
	}
}
