package router

import (
	"context"
	"strconv"
	"strings"

	"github.com/marketfee-next/internal/cache"
	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/i18n"
	"github.com/marketfee-next/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 提取限流主体（IP、顾客等）
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口限流规则
type RateLimitRule struct {
	Scope         string
	WindowSeconds int
	MaxRequests   int
}

// NewRateLimitRule 按配置生成某个接口分组的限流规则
func NewRateLimitRule(scope string, cfg config.RateLimitConfig) RateLimitRule {
	return RateLimitRule{
		Scope:         scope,
		WindowSeconds: cfg.WindowSeconds,
		MaxRequests:   cfg.MaxRequests,
	}
}

func (r RateLimitRule) active() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

func (r RateLimitRule) key(subject string) string {
	return cache.Key("rate", r.Scope, subject)
}

// 窗口计数：首次命中设置过期时间，返回当前计数与剩余 TTL
var windowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("TTL", KEYS[1])}
`)

// RateLimitMiddleware Redis 固定窗口限流；Redis 故障时放行并记录告警
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !rule.active() {
			c.Next()
			return
		}
		subject := ""
		if keyFunc != nil {
			subject = strings.TrimSpace(keyFunc(c))
		}
		if subject == "" {
			subject = c.ClientIP()
		}

		count, ttl, err := hitWindow(c.Request.Context(), client, rule.key(subject), rule.WindowSeconds)
		if err != nil {
			logger.Ctx(c.Request.Context()).Warnw("rate_limit_unavailable", "scope", rule.Scope, "error", err)
			c.Next()
			return
		}
		if count <= int64(rule.MaxRequests) {
			c.Next()
			return
		}

		wait := retryAfterSeconds(ttl, rule.WindowSeconds)
		msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.rate_limited", wait)
		c.Header("Retry-After", strconv.Itoa(wait))
		response.ErrorWithData(c, response.CodeTooManyRequests, msg, gin.H{"retry_after": wait})
		c.Abort()
	}
}

func hitWindow(ctx context.Context, client *redis.Client, key string, windowSeconds int) (int64, int64, error) {
	values, err := windowScript.Run(ctx, client, []string{key}, windowSeconds).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(values) < 2 {
		return 0, 0, redis.Nil
	}
	return values[0], values[1], nil
}

func retryAfterSeconds(ttl int64, windowSeconds int) int {
	if ttl >= 1 {
		return int(ttl)
	}
	if windowSeconds >= 1 {
		return windowSeconds
	}
	return 1
}

// KeyByIP 按客户端 IP 限流
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByCustomerOrIP 有顾客标识时按顾客 + IP 限流，否则按 IP
func KeyByCustomerOrIP(c *gin.Context) string {
	customerID := strings.TrimSpace(c.GetHeader(constants.HeaderCustomerID))
	if customerID == "" {
		return c.ClientIP()
	}
	return customerID + "|" + c.ClientIP()
}
