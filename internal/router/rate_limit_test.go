package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marketfee-next/internal/cache"
	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/constants"

	"github.com/gin-gonic/gin"
)

func TestKeyByCustomerOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/store/cart", nil)
	c.Request.RemoteAddr = "1.2.3.4:5678"

	if key := KeyByCustomerOrIP(c); key != "1.2.3.4" {
		t.Fatalf("anonymous key want 1.2.3.4 got %s", key)
	}

	c.Request.Header.Set(constants.HeaderCustomerID, " cus_1 ")
	if key := KeyByCustomerOrIP(c); key != "cus_1|1.2.3.4" {
		t.Fatalf("customer key want cus_1|1.2.3.4 got %s", key)
	}
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{Scope: "public", WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status want 200 got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"ok":true`) {
			t.Fatalf("expected handler response body, got %s", w.Body.String())
		}
	}
}

func TestRateLimitRuleKeyAndActivation(t *testing.T) {
	if err := cache.InitRedis(nil); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	rule := NewRateLimitRule("store", config.RateLimitConfig{WindowSeconds: 60, MaxRequests: 10})
	if !rule.active() {
		t.Fatalf("rule with window and limit should be active")
	}
	if got := rule.key("cus_1|1.2.3.4"); got != "mf:rate:store:cus_1|1.2.3.4" {
		t.Fatalf("unexpected key: %s", got)
	}
	if NewRateLimitRule("store", config.RateLimitConfig{WindowSeconds: 60}).active() {
		t.Fatalf("rule without limit should be inactive")
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	cases := []struct {
		ttl    int64
		window int
		want   int
	}{
		{ttl: 42, window: 60, want: 42},
		{ttl: -1, window: 60, want: 60},
		{ttl: 0, window: 0, want: 1},
	}
	for _, tc := range cases {
		if got := retryAfterSeconds(tc.ttl, tc.window); got != tc.want {
			t.Fatalf("retryAfterSeconds(%d, %d) want %d got %d", tc.ttl, tc.window, tc.want, got)
		}
	}
}
