package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stocklens/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "stocklens"

// Redis 带键前缀的 Redis 客户端
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis 按配置创建 Redis 客户端，未启用时返回 nil
func NewRedis(cfg *config.RedisConfig) *Redis {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return Wrap(client, cfg.Prefix)
}

// Wrap 包装已有客户端
func Wrap(client *redis.Client, prefix string) *Redis {
	if client == nil {
		return nil
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

// Enabled 判断 Redis 是否可用
func (r *Redis) Enabled() bool {
	return r != nil && r.client != nil
}

// Client 获取底层客户端
func (r *Redis) Client() *redis.Client {
	if !r.Enabled() {
		return nil
	}
	return r.client
}

// Key 拼接带前缀的键
func (r *Redis) Key(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return r.prefix
	}
	return fmt.Sprintf("%s:%s", r.prefix, trimmed)
}

// Ping 检查连通性
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

// Close 关闭连接
func (r *Redis) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
