package optimize

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartcart/internal/core/catalog"
	"smartcart/internal/core/optimizer"
	"smartcart/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func testHandler() *Handler {
	svc := optimizer.NewService(catalog.New(), nil, nil, &config.DealsConfig{
		DefaultPrice: 5.0,
		DefaultStore: "Walmart",
	})
	return NewHandler(svc, nil)
}

func testRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/optimize", h.HandleOptimize)
	r.GET("/api/optimize/meals", h.HandleMeals)
	r.GET("/api/optimize/categories", h.HandleCategories)
	return r
}

func TestOptimizeRejectsBadPayload(t *testing.T) {
	router := testRouter(testHandler())

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "servings"},
		{"missing mealServings", `{}`},
		{"empty selection", `{"mealServings":{}}`},
		{"wrong value type", `{"mealServings":{"Mac and Cheese":"two"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/optimize", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestMealsListing(t *testing.T) {
	router := testRouter(testHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/optimize/meals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Mac and Cheese") {
		t.Error("meal listing missing a known meal")
	}
}

func TestMealsByCategory(t *testing.T) {
	router := testRouter(testHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/optimize/meals?category=Asian", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Pad Thai") {
		t.Error("Asian listing missing Pad Thai")
	}
	if strings.Contains(body, "Mac and Cheese") {
		t.Error("Asian listing contains an American meal")
	}
}

func TestCategories(t *testing.T) {
	router := testRouter(testHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/optimize/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, category := range []string{"American", "Asian", "Breakfast", "Italian", "Mexican", "Seafood"} {
		if !strings.Contains(body, category) {
			t.Errorf("categories missing %q", category)
		}
	}
	if strings.Contains(body, "Comfort Food") {
		t.Error("retired category exposed")
	}
}
