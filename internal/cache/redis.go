package cache

import (
	"context"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/constants"

	"github.com/redis/go-redis/v9"
)

var (
	mu          sync.RWMutex
	redisClient *redis.Client
	redisPrefix = constants.RedisPrefixDefault
)

// InitRedis 初始化 Redis；未启用时锁与限流全部降级为放行
func InitRedis(cfg *config.RedisConfig) error {
	mu.Lock()
	defer mu.Unlock()
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
	redisPrefix = constants.RedisPrefixDefault
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	if p := strings.TrimSpace(cfg.Prefix); p != "" {
		redisPrefix = p
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	redisClient = redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return nil
}

// Enabled 判断 Redis 是否可用
func Enabled() bool {
	return Client() != nil
}

// Client 返回 Redis 客户端，未启用时为 nil
func Client() *redis.Client {
	mu.RLock()
	defer mu.RUnlock()
	return redisClient
}

// Key 生成带前缀的键，空片段会被忽略
func Key(parts ...string) string {
	mu.RLock()
	prefix := redisPrefix
	mu.RUnlock()
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, prefix)
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return strings.Join(segments, ":")
}

// Ping 探测 Redis 连通性，未启用时视为正常
func Ping(ctx context.Context) error {
	client := Client()
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

// Close 关闭 Redis 客户端
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if redisClient == nil {
		return nil
	}
	err := redisClient.Close()
	redisClient = nil
	return err
}
