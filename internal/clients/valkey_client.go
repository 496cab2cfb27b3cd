package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/HarshTambade/ai-crm-insights/internal/models"
)

const (
	SENTIMENT_CACHE_PREFIX = "sentiment:result:"
	SENTIMENT_CACHE_TTL    = 86400
)

// ValkeyCache memoizes sentiment results keyed by content hash so repeated
// analysis of the same message body skips the classifier. Cache errors are
// logged and treated as misses; the request path never fails on the cache.
type ValkeyCache struct {
	client valkey.Client
}

func NewValkeyCache() (*ValkeyCache, error) {
	valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
	valkeyPassword := os.Getenv("VALKEY_PASSWORD")
	useTLS := os.Getenv("VALKEY_TLS") == "true"

	opts := valkey.ClientOption{
		InitAddress: []string{
			valkeyAddr,
		},
		Password:         valkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyCache] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyCache] failed to ping Valkey: %w", res.Error())
	}

	slog.Info("[ValkeyCache] Successfully connected to valkey")
	return &ValkeyCache{client: client}, nil
}

func (vc *ValkeyCache) Get(ctx context.Context, key string) (models.SentimentResult, bool) {
	res := vc.client.Do(ctx, vc.client.B().Get().Key(SENTIMENT_CACHE_PREFIX+key).Build())
	if err := res.Error(); err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[ValkeyCache] Get failed",
				slog.String("error", err.Error()))
		}
		return models.SentimentResult{}, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return models.SentimentResult{}, false
	}

	var result models.SentimentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		slog.Warn("[ValkeyCache] Failed to decode cached result",
			slog.String("error", err.Error()))
		return models.SentimentResult{}, false
	}
	return result, true
}

func (vc *ValkeyCache) Set(ctx context.Context, key string, result models.SentimentResult) {
	blob, err := json.Marshal(result)
	if err != nil {
		slog.Warn("[ValkeyCache] Failed to encode result",
			slog.String("error", err.Error()))
		return
	}

	cacheKey := SENTIMENT_CACHE_PREFIX + key
	completed := []valkey.Completed{
		vc.client.B().Set().Key(cacheKey).Value(string(blob)).Build(),
		vc.client.B().Expire().Key(cacheKey).Seconds(SENTIMENT_CACHE_TTL).Build(),
	}

	for _, res := range vc.client.DoMulti(ctx, completed...) {
		if err := res.Error(); err != nil {
			slog.Warn("[ValkeyCache] Set failed",
				slog.String("error", err.Error()))
			return
		}
	}
}

func (vc *ValkeyCache) Close() {
	vc.client.Close()
}
