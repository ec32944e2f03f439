package upstream

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Cache 上游响应缓存抽象，由 pkg/redis 实现
type Cache interface {
	CacheGet(ctx context.Context, key string) ([]byte, bool, error)
	CacheSet(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// Client 上游 HTTP 访问的公共底座：注入的 http.Client、
// 响应缓存与统一请求头；缓存键为 方法+URL+请求体 的摘要
type Client struct {
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
	userAgent  string
	logger     *zap.Logger
}

// NewClient 创建上游访问底座；cache 可为 nil 表示不缓存
func NewClient(httpClient *http.Client, cache Cache, cacheTTL time.Duration, userAgent string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

func cacheKey(method, url string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte(" "))
	h.Write([]byte(url))
	h.Write([]byte(" "))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// do 发出请求并返回响应体；命中缓存时不触网
func (c *Client) do(ctx context.Context, method, url string, body []byte, headers map[string]string) ([]byte, error) {
	key := cacheKey(method, url, body)
	if c.cache != nil {
		cached, ok, err := c.cache.CacheGet(ctx, key)
		if err != nil {
			c.logger.Warn("读取上游响应缓存失败", zap.Error(err))
		} else if ok {
			c.logger.Debug("上游响应缓存命中", zap.String("url", url))
			return cached, nil
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("构造上游请求失败: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("上游请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("上游返回异常状态码 %d: %s %s", resp.StatusCode, method, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取上游响应失败: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.CacheSet(ctx, key, data, c.cacheTTL); err != nil {
			c.logger.Warn("写入上游响应缓存失败", zap.Error(err))
		}
	}
	return data, nil
}
